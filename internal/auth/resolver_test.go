// Copyright 2026 Hubgate, Inc.
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package auth

import (
	"context"
	"strings"
	"testing"

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
)

var (
	validHeaderToken   = "ghp_" + strings.Repeat("a", 36)
	validFallbackToken = strings.Repeat("0123456789", 4)
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		fallback  string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "header token wins",
			header:    "Bearer " + validHeaderToken,
			fallback:  validFallbackToken,
			wantToken: validHeaderToken,
		},
		{
			name:      "no header uses fallback",
			header:    "",
			fallback:  validFallbackToken,
			wantToken: validFallbackToken,
		},
		{
			name:     "no header and no fallback",
			header:   "",
			fallback: "",
			wantErr:  true,
		},
		{
			name:      "malformed header falls back",
			header:    "Basic dXNlcjpwYXNz",
			fallback:  validFallbackToken,
			wantToken: validFallbackToken,
		},
		{
			name:      "lowercase scheme falls back",
			header:    "bearer " + validHeaderToken,
			fallback:  validFallbackToken,
			wantToken: validFallbackToken,
		},
		{
			name:      "scheme without token falls back",
			header:    "Bearer",
			fallback:  validFallbackToken,
			wantToken: validFallbackToken,
		},
		{
			name:      "extra space falls back",
			header:    "Bearer  " + validHeaderToken,
			fallback:  validFallbackToken,
			wantToken: validFallbackToken,
		},
		{
			name:     "malformed header and no fallback",
			header:   "Token abc",
			fallback: "",
			wantErr:  true,
		},
		{
			name:     "well-formed header with invalid token never silently succeeds",
			header:   "Bearer not-a-real-token",
			fallback: validFallbackToken,
			wantErr:  true,
		},
		{
			name:     "fallback with invalid format",
			header:   "",
			fallback: "garbage",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.fallback)
			token, err := r.Resolve(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve() = %q, want error", token)
				}
				if gwerrors.CodeOf(err) != gwerrors.CodeUnauthenticated {
					t.Errorf("CodeOf(err) = %q, want UNAUTHENTICATED", gwerrors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("Resolve() = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestHeaderContextRoundTrip(t *testing.T) {
	ctx := WithHeader(context.Background(), "Bearer "+validHeaderToken)
	if got := HeaderFromContext(ctx); got != "Bearer "+validHeaderToken {
		t.Errorf("HeaderFromContext() = %q", got)
	}
	if got := HeaderFromContext(context.Background()); got != "" {
		t.Errorf("HeaderFromContext(empty ctx) = %q, want empty", got)
	}
}

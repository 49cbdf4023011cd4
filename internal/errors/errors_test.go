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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "unauthenticated",
			err:  Unauthenticated("no usable credential"),
			want: "[UNAUTHENTICATED] no usable credential",
		},
		{
			name: "invalid argument",
			err:  InvalidArgument("first must be between 1 and 100, got %d", 500),
			want: "[INVALID_ARGUMENT] first must be between 1 and 100, got 500",
		},
		{
			name: "upstream graphql",
			err:  UpstreamGraphQL("boom; bust"),
			want: "[UPSTREAM_GRAPHQL_ERROR] boom; bust",
		},
		{
			name: "upstream empty",
			err:  UpstreamEmpty("no data and no errors in response"),
			want: "[UPSTREAM_EMPTY_RESPONSE] no data and no errors in response",
		},
		{
			name: "transport with status",
			err:  Transport(502, stderrors.New("bad gateway")),
			want: "[TRANSPORT_ERROR] upstream request failed with status 502",
		},
		{
			name: "transport without status",
			err:  Transport(0, stderrors.New("dial tcp: connection refused")),
			want: "[TRANSPORT_ERROR] upstream request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "direct gateway error",
			err:  Unauthenticated("nope"),
			want: CodeUnauthenticated,
		},
		{
			name: "wrapped gateway error",
			err:  fmt.Errorf("dispatch user: %w", InvalidArgument("bad first")),
			want: CodeInvalidArgument,
		},
		{
			name: "deeply wrapped",
			err:  fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", Transport(503, nil))),
			want: CodeTransport,
		},
		{
			name: "foreign error",
			err:  stderrors.New("plain"),
			want: "",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportPreservesStatusAndCause(t *testing.T) {
	cause := stderrors.New("bad gateway")
	err := Transport(502, cause)

	if err.HTTPStatus != 502 {
		t.Errorf("HTTPStatus = %d, want 502", err.HTTPStatus)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be in the error chain")
	}
	if !IsCode(err, CodeTransport) {
		t.Error("expected IsCode(err, CodeTransport) to be true")
	}
}

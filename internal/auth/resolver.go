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

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
)

// Resolver decides which credential each request uses. Fallback is the
// process-wide token loaded once at startup; it is read-only afterwards.
type Resolver struct {
	Fallback string
}

// NewResolver returns a Resolver with the given fallback token. An empty
// fallback is allowed; requests must then authenticate via header.
func NewResolver(fallback string) *Resolver {
	return &Resolver{Fallback: fallback}
}

// Resolve picks the credential for a request. headerValue is the raw
// Authorization header, empty when the request carried none.
//
// A well-formed "Bearer <token>" header wins over the fallback. A header
// that is present but not extractable falls back to the process-wide token;
// this lenience is deliberate and load-bearing for clients that send
// unrelated Authorization schemes to the gateway. The chosen token is then
// format-checked, and any failure surfaces as UNAUTHENTICATED.
func (r *Resolver) Resolve(headerValue string) (string, error) {
	token, ok := extractBearer(headerValue)
	if !ok {
		token = r.Fallback
	}
	if token == "" {
		return "", gwerrors.Unauthenticated("no GitHub token provided: send an Authorization: Bearer header or configure a fallback token")
	}
	if !IsValidToken(token) {
		return "", gwerrors.Unauthenticated("invalid GitHub token format")
	}
	return token, nil
}

// extractBearer pulls the token out of "Bearer <token>". The scheme is
// case-sensitive and exactly one space separates it from the token.
func extractBearer(headerValue string) (string, bool) {
	if headerValue == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(headerValue, " ")
	if !found || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

type headerContextKey struct{}

// WithHeader stashes the raw Authorization header value in ctx so the
// dispatcher can resolve the credential outside the HTTP layer.
func WithHeader(ctx context.Context, headerValue string) context.Context {
	return context.WithValue(ctx, headerContextKey{}, headerValue)
}

// HeaderFromContext returns the Authorization header recorded by WithHeader,
// or the empty string when the request carried none.
func HeaderFromContext(ctx context.Context) string {
	v, _ := ctx.Value(headerContextKey{}).(string)
	return v
}

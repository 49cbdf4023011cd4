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

// Package auth validates GitHub personal access tokens and resolves which
// credential a request should use: the inbound Authorization header when one
// is present and well formed, otherwise the process-wide fallback token.
//
// Raw token values must never reach a log line; use Redacted wherever a
// credential would otherwise be printed.
package auth

import "regexp"

var (
	// Fine-grained and classic ghp_ tokens: fixed prefix plus exactly 36
	// alphanumeric characters.
	prefixedTokenPattern = regexp.MustCompile(`^ghp_[A-Za-z0-9]{36}$`)

	// Legacy OAuth tokens: exactly 40 lowercase hex characters.
	legacyTokenPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)
)

// Redacted is the only representation of a credential that may appear in
// logs or error messages.
const Redacted = "[REDACTED]"

// IsValidToken reports whether token matches one of the two accepted GitHub
// personal access token formats. The empty string is never valid.
func IsValidToken(token string) bool {
	if token == "" {
		return false
	}
	return prefixedTokenPattern.MatchString(token) || legacyTokenPattern.MatchString(token)
}

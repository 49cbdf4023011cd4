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

// Package errors defines the coded errors the gateway returns to callers.
// Every failure that crosses the public GraphQL surface carries one of the
// codes below so that clients can branch on a stable machine-readable value
// instead of parsing message text.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure category on the public surface.
type Code string

// The complete set of failure codes the gateway can return.
const (
	// CodeUnauthenticated covers a missing, malformed, or invalid credential.
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// CodeInvalidArgument covers caller arguments rejected before any
	// upstream exchange, such as an out-of-range page size.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeUpstreamGraphQL covers one or more errors reported by the upstream
	// GraphQL API. The message is the semicolon-joined upstream messages.
	CodeUpstreamGraphQL Code = "UPSTREAM_GRAPHQL_ERROR"

	// CodeUpstreamEmpty covers a 2xx upstream response that carried neither
	// data nor errors.
	CodeUpstreamEmpty Code = "UPSTREAM_EMPTY_RESPONSE"

	// CodeTransport covers network and HTTP-level failures reaching the
	// upstream endpoint.
	CodeTransport Code = "TRANSPORT_ERROR"
)

// Error is a gateway failure with a machine-readable code. The code travels
// with the error through wrapping and is recovered with CodeOf.
type Error struct {
	Code    Code
	Message string

	// HTTPStatus holds the upstream HTTP status for transport failures,
	// zero otherwise.
	HTTPStatus int

	cause error
}

// Error formats the failure as "[CODE] message". The bracketed prefix is the
// wire contract: the transport layer lifts it into the response extensions.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Unauthenticated returns an UNAUTHENTICATED error.
func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// InvalidArgument returns an INVALID_ARGUMENT error.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// UpstreamGraphQL returns an UPSTREAM_GRAPHQL_ERROR carrying the joined
// upstream messages.
func UpstreamGraphQL(joined string) *Error {
	return &Error{Code: CodeUpstreamGraphQL, Message: joined}
}

// UpstreamEmpty returns an UPSTREAM_EMPTY_RESPONSE error.
func UpstreamEmpty(message string) *Error {
	return &Error{Code: CodeUpstreamEmpty, Message: message}
}

// Transport returns a TRANSPORT_ERROR wrapping cause. status is the upstream
// HTTP status when one was received, zero for pure network failures.
func Transport(status int, cause error) *Error {
	msg := "upstream request failed"
	if status != 0 {
		msg = fmt.Sprintf("upstream request failed with status %d", status)
	}
	return &Error{Code: CodeTransport, Message: msg, HTTPStatus: status, cause: cause}
}

// CodeOf extracts the gateway code from err's chain. It returns the empty
// string for errors that did not originate from this package.
func CodeOf(err error) Code {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

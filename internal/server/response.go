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

package server

import (
	"encoding/json"
	"regexp"
	"strings"

	"zombiezen.com/go/graphql-server/graphql"
)

// responseError is the wire form of a GraphQL error. The gateway's coded
// errors carry a "[CODE] " marker in their message; writeErrors lifts the
// code into extensions and strips the marker, so clients branch on
// extensions.code instead of parsing text.
type responseError struct {
	Message    string                 `json:"message"`
	Locations  []graphql.Location     `json:"locations,omitempty"`
	Path       []graphql.PathSegment  `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

type responseBody struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []responseError `json:"errors,omitempty"`
}

var codeMarker = regexp.MustCompile(`\[([A-Z][A-Z0-9_]+)\] `)

// extractCode pulls the bracketed failure code out of message. cleaned is
// the message without the marker and without the execution engine's
// "server error" wrapper.
func extractCode(message string) (code, cleaned string, ok bool) {
	loc := codeMarker.FindStringSubmatchIndex(message)
	if loc == nil {
		return "", message, false
	}
	code = message[loc[2]:loc[3]]
	cleaned = message[loc[1]:]
	prefix := strings.TrimSuffix(message[:loc[0]], "server error: ")
	return code, prefix + cleaned, true
}

// buildResponseBody converts an execution response into the wire shape.
// When sanitize is set, errors carry only their message and code; locations
// and paths are withheld.
func buildResponseBody(resp graphql.Response, sanitize bool) (responseBody, error) {
	var body responseBody
	if !resp.Data.IsNull() {
		data, err := json.Marshal(resp.Data)
		if err != nil {
			return responseBody{}, err
		}
		body.Data = data
	}
	for _, e := range resp.Errors {
		re := responseError{Message: e.Message}
		if code, cleaned, ok := extractCode(e.Message); ok {
			re.Message = cleaned
			re.Extensions = map[string]interface{}{"code": code}
		}
		if !sanitize {
			re.Locations = e.Locations
			re.Path = e.Path
		}
		body.Errors = append(body.Errors, re)
	}
	return body, nil
}

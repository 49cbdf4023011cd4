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

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
	"github.com/hubgatehq/hubgate/internal/giterror"
	"github.com/hubgatehq/hubgate/internal/ratelimit"
)

// QueryError is a single entry in the errors array of an upstream
// GraphQL response.
type QueryError struct {
	Type    string        `json:"type"`
	Message string        `json:"message"`
	Path    []interface{} `json:"path"`
}

// envelope is the standard GraphQL-over-HTTP response shape.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []QueryError    `json:"errors"`
}

// GraphQLClient executes raw GraphQL documents against the upstream API and
// returns the errors array untouched, so callers can discriminate partial
// failures (a NOT_FOUND entry alongside usable data) from hard ones.
type GraphQLClient struct {
	httpClient *http.Client
	endpoint   string
	inspector  giterror.Inspector
	tracker    *ratelimit.Tracker
}

var _ Client = (*GraphQLClient)(nil)

// NewGraphQLClient creates a raw client for the given upstream endpoint.
// The tracker, when non-nil, observes rate limit headers on every response.
func NewGraphQLClient(endpoint string, timeout time.Duration, tracker *ratelimit.Tracker) *GraphQLClient {
	return &GraphQLClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newBaseTransport(tracker),
		},
		endpoint:  endpoint,
		inspector: giterror.NewInspector(),
		tracker:   tracker,
	}
}

// do posts a GraphQL document with variables, authenticating with token, and
// unmarshals the data payload into out. The upstream errors array is returned
// as-is so each operation can apply its own not-found policy. A non-nil error
// is returned only for transport failures, non-2xx statuses, undecodable
// bodies, and responses carrying neither data nor errors.
func (c *GraphQLClient) do(ctx context.Context, token, query string, variables map[string]interface{}, out interface{}) ([]QueryError, error) {
	payload := struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables,omitempty"`
	}{
		Query:     query,
		Variables: variables,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.inspector.IsNetworkError(err) {
			return nil, gwerrors.Transport(0, fmt.Errorf("upstream unreachable: %w", err))
		}
		return nil, gwerrors.Transport(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gwerrors.Transport(resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		msg := restMessage(raw)
		// Secondary rate limits also arrive as 403; those are transport
		// failures, not credential ones.
		if c.inspector.IsRateLimited("", msg) {
			return nil, gwerrors.Transport(resp.StatusCode, fmt.Errorf("upstream rate limited: %s", msg))
		}
		if resp.StatusCode == http.StatusUnauthorized || c.inspector.IsAuthError("", msg) {
			return nil, gwerrors.Unauthenticated("upstream rejected the credential")
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, gwerrors.Transport(resp.StatusCode, fmt.Errorf("upstream returned status %d", resp.StatusCode))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, gwerrors.Transport(resp.StatusCode, fmt.Errorf("decoding response body: %w", err))
	}

	if len(env.Data) == 0 && len(env.Errors) == 0 {
		return nil, gwerrors.UpstreamEmpty("upstream returned neither data nor errors")
	}

	if len(env.Data) > 0 && out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Errors, gwerrors.Transport(resp.StatusCode, fmt.Errorf("decoding data payload: %w", err))
		}
	}

	return env.Errors, nil
}

// restMessage extracts the message field GitHub attaches to non-GraphQL
// error bodies, empty when the body has some other shape.
func restMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

// foldErrors collapses an upstream errors array into a single gateway error,
// joining the messages with "; " in array order.
func foldErrors(errs []QueryError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return gwerrors.UpstreamGraphQL(strings.Join(msgs, "; "))
}

// notFoundOnly reports whether every entry in errs is a not-found
// classification. Single-entity lookups use this to map a missing entity to
// an absent result instead of a failure.
func (c *GraphQLClient) notFoundOnly(errs []QueryError) bool {
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !c.inspector.IsNotFound(e.Type, e.Message) {
			return false
		}
	}
	return true
}

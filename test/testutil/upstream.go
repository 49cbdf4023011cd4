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

// Package testutil provides common test helpers for hubgate.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// UpstreamServer impersonates the GitHub GraphQL endpoint. Responses are
// selected by matching a registered fragment against the incoming query
// document, in registration order.
type UpstreamServer struct {
	*httptest.Server
	requestCount int32
	routes       []upstreamRoute
}

type upstreamRoute struct {
	fragment string
	body     string
	status   int
}

// NewUpstreamServer starts an empty upstream. Register responses with On;
// unmatched queries get an empty data object.
func NewUpstreamServer(t *testing.T) *UpstreamServer {
	t.Helper()
	u := &UpstreamServer{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.requestCount, 1)

		var payload struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, route := range u.routes {
			if strings.Contains(payload.Query, route.fragment) {
				w.WriteHeader(route.status)
				w.Write([]byte(route.body))
				return
			}
		}
		w.Write([]byte(`{"data": {}}`))
	}))
	t.Cleanup(u.Close)
	return u
}

// On registers a 200 response body for queries containing fragment.
func (u *UpstreamServer) On(fragment, body string) *UpstreamServer {
	u.routes = append(u.routes, upstreamRoute{fragment: fragment, body: body, status: http.StatusOK})
	return u
}

// OnStatus registers a response with an explicit HTTP status.
func (u *UpstreamServer) OnStatus(fragment string, status int, body string) *UpstreamServer {
	u.routes = append(u.routes, upstreamRoute{fragment: fragment, body: body, status: status})
	return u
}

// RequestCount reports how many exchanges the upstream has served.
func (u *UpstreamServer) RequestCount() int {
	return int(atomic.LoadInt32(&u.requestCount))
}

// UserResponse builds an upstream user payload with the given login and
// follower count.
func UserResponse(login string, followers int) string {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"user": map[string]interface{}{
				"id":           "U_" + login,
				"login":        login,
				"name":         "Test " + login,
				"email":        "",
				"avatarUrl":    "https://avatars.example/" + login,
				"url":          "https://github.com/" + login,
				"createdAt":    "2011-01-25T18:44:36Z",
				"updatedAt":    "2024-03-01T00:00:00Z",
				"followers":    map[string]int{"totalCount": followers},
				"following":    map[string]int{"totalCount": 0},
				"repositories": map[string]int{"totalCount": 0},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

// RepositoryResponse builds an upstream single-repository payload.
func RepositoryResponse(owner, name, ownerType string) string {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{
				"id":               "R_" + name,
				"name":             name,
				"nameWithOwner":    owner + "/" + name,
				"url":              "https://github.com/" + owner + "/" + name,
				"isPrivate":        false,
				"isFork":           false,
				"isArchived":       false,
				"isDisabled":       false,
				"stargazerCount":   10,
				"forkCount":        2,
				"watchers":         map[string]int{"totalCount": 3},
				"createdAt":        "2011-01-26T19:01:12Z",
				"updatedAt":        "2024-03-01T00:00:00Z",
				"defaultBranchRef": map[string]string{"name": "main"},
				"owner": map[string]string{
					"__typename": ownerType,
					"login":      owner,
					"url":        "https://github.com/" + owner,
					"avatarUrl":  "https://avatars.example/" + owner,
				},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

// NotFoundResponse builds an upstream errors-only payload for a missing
// entity of the given kind.
func NotFoundResponse(field, kind, login string) string {
	payload := map[string]interface{}{
		"data": map[string]interface{}{field: nil},
		"errors": []map[string]interface{}{
			{
				"type":    "NOT_FOUND",
				"message": "Could not resolve to a " + kind + " with the login of '" + login + "'.",
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

// RateLimitResponse builds the typed rate limit probe payload.
func RateLimitResponse(limit, remaining, cost int) string {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"rateLimit": map[string]interface{}{
				"limit":     limit,
				"remaining": remaining,
				"resetAt":   "2024-03-01T12:00:00Z",
				"cost":      cost,
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

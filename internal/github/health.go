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
	"context"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
	"github.com/hubgatehq/hubgate/internal/ratelimit"
)

// FetchRateLimit probes the API with a minimal typed query and returns the
// resulting snapshot. The probe's own point cost is included, which the
// header-derived snapshots cannot report. The probe builds a short-lived
// client because the credential is per-request.
func (c *GraphQLClient) FetchRateLimit(ctx context.Context, token string) (*ratelimit.Snapshot, error) {
	httpClient := &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &authTransport{
			token: token,
			base:  newBaseTransport(c.tracker),
		},
	}
	client := graphql.NewClient(c.endpoint, httpClient)

	var query struct {
		RateLimit struct {
			Limit     int
			Remaining int
			ResetAt   time.Time
			Cost      int
		}
	}
	if err := client.Query(ctx, &query, nil); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, gwerrors.Transport(0, err)
	}

	s := &ratelimit.Snapshot{
		Limit:     query.RateLimit.Limit,
		Remaining: query.RateLimit.Remaining,
		ResetAt:   query.RateLimit.ResetAt,
		Cost:      query.RateLimit.Cost,
	}
	if c.tracker != nil {
		c.tracker.Record(*s)
	}
	return s, nil
}

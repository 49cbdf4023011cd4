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
	"time"
)

type wirePullRequest struct {
	ID          string            `json:"id"`
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	State       string            `json:"state"`
	URL         string            `json:"url"`
	IsDraft     bool              `json:"isDraft"`
	Mergeable   string            `json:"mergeable"`
	BaseRefName string            `json:"baseRefName"`
	HeadRefName string            `json:"headRefName"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	ClosedAt    *time.Time        `json:"closedAt"`
	MergedAt    *time.Time        `json:"mergedAt"`
	Author      *Actor            `json:"author"`
	Assignees   nodeList[Actor]   `json:"assignees"`
	Repo        wireRepositoryRef `json:"repository"`
}

func reshapePullRequest(w wirePullRequest) PullRequest {
	return PullRequest{
		ID:          w.ID,
		Number:      w.Number,
		Title:       w.Title,
		Body:        w.Body,
		State:       w.State,
		URL:         w.URL,
		IsDraft:     w.IsDraft,
		Mergeable:   w.Mergeable,
		BaseRefName: w.BaseRefName,
		HeadRefName: w.HeadRefName,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		ClosedAt:    w.ClosedAt,
		MergedAt:    w.MergedAt,
		Author:      w.Author,
		Assignees:   w.Assignees.Nodes,
		Repo:        reshapeRepositoryRef(w.Repo),
	}
}

// FetchPullRequests retrieves a page of a repository's pull requests.
func (c *GraphQLClient) FetchPullRequests(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*PullRequestConnection, error) {
	vars := pageVariables(opts.First, opts.After)
	vars["owner"] = owner
	vars["name"] = repo
	if len(opts.States) > 0 {
		vars["states"] = opts.States
	}
	orderByVariable(vars, opts.OrderBy)

	var payload struct {
		Repository *struct {
			PullRequests wireConnection[wirePullRequest] `json:"pullRequests"`
		} `json:"repository"`
	}
	errs, err := c.do(ctx, token, pullRequestsQuery, vars, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, foldErrors(errs)
	}
	if payload.Repository == nil {
		return nil, foldErrors([]QueryError{{
			Type:    "NOT_FOUND",
			Message: "could not resolve to a repository with the name '" + owner + "/" + repo + "'",
		}})
	}
	return buildConnection(payload.Repository.PullRequests, reshapePullRequest), nil
}

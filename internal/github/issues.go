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

// nodeList is the upstream {nodes: [...]} wrapper around bounded
// sub-collections like assignees and labels.
type nodeList[T any] struct {
	Nodes []T `json:"nodes"`
}

type wireIssue struct {
	ID        string            `json:"id"`
	Number    int               `json:"number"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	State     string            `json:"state"`
	URL       string            `json:"url"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	ClosedAt  *time.Time        `json:"closedAt"`
	Author    *Actor            `json:"author"`
	Assignees nodeList[Actor]   `json:"assignees"`
	Labels    nodeList[Label]   `json:"labels"`
	Repo      wireRepositoryRef `json:"repository"`
}

func reshapeIssue(w wireIssue) Issue {
	return Issue{
		ID:        w.ID,
		Number:    w.Number,
		Title:     w.Title,
		Body:      w.Body,
		State:     w.State,
		URL:       w.URL,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		ClosedAt:  w.ClosedAt,
		Author:    w.Author,
		Assignees: w.Assignees.Nodes,
		Labels:    w.Labels.Nodes,
		Repo:      reshapeRepositoryRef(w.Repo),
	}
}

// FetchIssues retrieves a page of a repository's issues.
func (c *GraphQLClient) FetchIssues(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*IssueConnection, error) {
	vars := pageVariables(opts.First, opts.After)
	vars["owner"] = owner
	vars["name"] = repo
	if len(opts.States) > 0 {
		vars["states"] = opts.States
	}
	orderByVariable(vars, opts.OrderBy)

	var payload struct {
		Repository *struct {
			Issues wireConnection[wireIssue] `json:"issues"`
		} `json:"repository"`
	}
	errs, err := c.do(ctx, token, issuesQuery, vars, &payload)
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
	return buildConnection(payload.Repository.Issues, reshapeIssue), nil
}

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
	"encoding/json"
	"net/http"
	"testing"

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
)

func TestFetchIssues(t *testing.T) {
	var gotVars map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]interface{} `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotVars = body.Variables
		w.Write([]byte(`{"data": {"repository": {"issues": {
			"totalCount": 1,
			"pageInfo": {"hasNextPage": false, "hasPreviousPage": false, "startCursor": "i1", "endCursor": "i1"},
			"edges": [{"cursor": "i1", "node": {
				"id": "I_1",
				"number": 101,
				"title": "Bug report",
				"body": "It breaks",
				"state": "OPEN",
				"url": "https://github.com/octocat/hello-world/issues/101",
				"createdAt": "2024-01-01T00:00:00Z",
				"updatedAt": "2024-01-02T00:00:00Z",
				"closedAt": null,
				"author": {"login": "reporter", "avatarUrl": "a", "url": "u"},
				"assignees": {"nodes": [{"login": "fixer", "avatarUrl": "a2", "url": "u2"}]},
				"labels": {"nodes": [{"name": "bug", "color": "d73a4a", "description": null}]},
				"repository": {"name": "hello-world", "nameWithOwner": "octocat/hello-world", "url": "https://github.com/octocat/hello-world", "owner": {"login": "octocat"}}
			}}]
		}}}}`))
	})

	conn, err := client.FetchIssues(context.Background(), "t", "octocat", "hello-world", IssueListOptions{
		PageOptions: PageOptions{First: 20},
		States:      []string{"OPEN"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	states, _ := gotVars["states"].([]interface{})
	if len(states) != 1 || states[0] != "OPEN" {
		t.Errorf("states variable = %v, want [OPEN]", gotVars["states"])
	}

	if len(conn.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(conn.Nodes))
	}
	issue := conn.Nodes[0]
	if issue.Number != 101 || issue.State != "OPEN" {
		t.Errorf("issue = number %d state %q", issue.Number, issue.State)
	}
	if issue.Author == nil || issue.Author.Login != "reporter" {
		t.Errorf("author = %+v, want reporter", issue.Author)
	}
	if len(issue.Assignees) != 1 || issue.Assignees[0].Login != "fixer" {
		t.Errorf("assignees = %+v, want flattened [fixer]", issue.Assignees)
	}
	if len(issue.Labels) != 1 || issue.Labels[0].Name != "bug" {
		t.Errorf("labels = %+v, want flattened [bug]", issue.Labels)
	}
	if issue.Repo.FullName != "octocat/hello-world" {
		t.Errorf("repository.fullName = %q, want octocat/hello-world", issue.Repo.FullName)
	}
}

func TestFetchIssuesDeletedAuthor(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"repository": {"issues": {
			"totalCount": 1,
			"pageInfo": {"hasNextPage": false, "hasPreviousPage": false, "startCursor": "i1", "endCursor": "i1"},
			"edges": [{"cursor": "i1", "node": {
				"id": "I_2", "number": 102, "title": "Old issue", "body": "", "state": "CLOSED",
				"url": "u", "createdAt": "2020-01-01T00:00:00Z", "updatedAt": "2020-01-01T00:00:00Z",
				"closedAt": "2020-06-01T00:00:00Z",
				"author": null,
				"assignees": {"nodes": []},
				"labels": {"nodes": []},
				"repository": {"name": "hello-world", "nameWithOwner": "octocat/hello-world", "url": "u", "owner": {"login": "octocat"}}
			}}]
		}}}}`))
	})

	conn, err := client.FetchIssues(context.Background(), "t", "octocat", "hello-world", IssueListOptions{
		PageOptions: PageOptions{First: 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	issue := conn.Nodes[0]
	if issue.Author != nil {
		t.Errorf("author = %+v, want nil for a deleted account", issue.Author)
	}
	if issue.ClosedAt == nil {
		t.Error("closedAt should be set on a closed issue")
	}
}

func TestFetchIssuesRepositoryNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"repository": null}, "errors": [
			{"type": "NOT_FOUND", "message": "Could not resolve to a Repository with the name 'ghost/ghost'."}
		]}`))
	})

	_, err := client.FetchIssues(context.Background(), "t", "ghost", "ghost", IssueListOptions{
		PageOptions: PageOptions{First: 20},
	})
	if gwerrors.CodeOf(err) != gwerrors.CodeUpstreamGraphQL {
		t.Fatalf("code = %s, want %s", gwerrors.CodeOf(err), gwerrors.CodeUpstreamGraphQL)
	}
}

func TestFetchPullRequests(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"repository": {"pullRequests": {
			"totalCount": 1,
			"pageInfo": {"hasNextPage": false, "hasPreviousPage": false, "startCursor": "p1", "endCursor": "p1"},
			"edges": [{"cursor": "p1", "node": {
				"id": "PR_1",
				"number": 7,
				"title": "Add feature",
				"body": "Adds the feature",
				"state": "MERGED",
				"url": "https://github.com/octocat/hello-world/pull/7",
				"isDraft": false,
				"mergeable": "UNKNOWN",
				"baseRefName": "main",
				"headRefName": "feature",
				"createdAt": "2024-02-01T00:00:00Z",
				"updatedAt": "2024-02-03T00:00:00Z",
				"closedAt": "2024-02-03T00:00:00Z",
				"mergedAt": "2024-02-03T00:00:00Z",
				"author": {"login": "contributor", "avatarUrl": "a", "url": "u"},
				"assignees": {"nodes": []},
				"repository": {"name": "hello-world", "nameWithOwner": "octocat/hello-world", "url": "u", "owner": {"login": "octocat"}}
			}}]
		}}}}`))
	})

	conn, err := client.FetchPullRequests(context.Background(), "t", "octocat", "hello-world", IssueListOptions{
		PageOptions: PageOptions{First: 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pr := conn.Nodes[0]
	if pr.State != "MERGED" {
		t.Errorf("state = %q, want MERGED", pr.State)
	}
	if pr.MergedAt == nil {
		t.Error("mergedAt should be set on a merged pull request")
	}
	if pr.BaseRefName != "main" || pr.HeadRefName != "feature" {
		t.Errorf("refs = %q <- %q", pr.BaseRefName, pr.HeadRefName)
	}
	if pr.Repo.FullName != "octocat/hello-world" {
		t.Errorf("repository.fullName = %q", pr.Repo.FullName)
	}
}

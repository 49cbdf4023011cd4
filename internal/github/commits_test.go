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
	"testing"
)

func TestFetchCommits(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"repository": {"defaultBranchRef": {"target": {"history": {
			"totalCount": 2,
			"pageInfo": {"hasNextPage": true, "hasPreviousPage": false, "startCursor": "h1", "endCursor": "h2"},
			"edges": [
				{"cursor": "h1", "node": {
					"oid": "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
					"abbreviatedOid": "a1b2c3d",
					"message": "Fix parser\n\nLonger body",
					"messageHeadline": "Fix parser",
					"url": "https://github.com/octocat/hello-world/commit/a1b2c3d",
					"authoredDate": "2024-02-01T10:00:00Z",
					"committedDate": "2024-02-01T10:05:00Z",
					"additions": 10,
					"deletions": 3,
					"changedFilesIfAvailable": 2,
					"author": {"name": "Mona Lisa", "email": "mona@example.com", "user": {"login": "octocat", "avatarUrl": "a", "url": "u"}},
					"committer": {"name": "GitHub", "email": "noreply@github.com", "user": null}
				}},
				{"cursor": "h2", "node": {
					"oid": "ffffffffffffffffffffffffffffffffffffffff",
					"abbreviatedOid": "fffffff",
					"message": "Initial commit",
					"messageHeadline": "Initial commit",
					"url": "https://github.com/octocat/hello-world/commit/fffffff",
					"authoredDate": "2024-01-01T00:00:00Z",
					"committedDate": "2024-01-01T00:00:00Z",
					"additions": 1,
					"deletions": 0,
					"changedFilesIfAvailable": null,
					"author": {"name": "Mona Lisa", "email": "mona@example.com", "user": null},
					"committer": {"name": "Mona Lisa", "email": "mona@example.com", "user": null}
				}}
			]
		}}}}}}`))
	})

	conn, err := client.FetchCommits(context.Background(), "t", "octocat", "hello-world", PageOptions{First: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(conn.Nodes))
	}

	first := conn.Nodes[0]
	if first.Author.User == nil || first.Author.User.Login != "octocat" {
		t.Errorf("author.user = %+v, want octocat", first.Author.User)
	}
	if first.Committer.User != nil {
		t.Errorf("committer.user = %+v, want nil when unresolved", first.Committer.User)
	}
	if first.ChangedFiles != 2 {
		t.Errorf("changedFiles = %d, want 2", first.ChangedFiles)
	}
	if conn.Nodes[1].ChangedFiles != 0 {
		t.Errorf("changedFiles = %d, want 0 when unavailable", conn.Nodes[1].ChangedFiles)
	}

	// Every commit carries the back-reference built from the call's
	// arguments, not from the response.
	for i, commit := range conn.Nodes {
		want := RepositoryRef{
			Name:     "hello-world",
			FullName: "octocat/hello-world",
			URL:      "https://github.com/octocat/hello-world",
			Owner:    OwnerRef{Login: "octocat"},
		}
		if commit.Repo != want {
			t.Errorf("commit %d repository = %+v, want %+v", i, commit.Repo, want)
		}
	}
}

func TestFetchCommitsEmptyRepository(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"repository": {"defaultBranchRef": null}}}`))
	})

	conn, err := client.FetchCommits(context.Background(), "t", "octocat", "empty", PageOptions{First: 20})
	if err != nil {
		t.Fatalf("an empty repository yields an empty page, got error: %v", err)
	}
	if conn.TotalCount != 0 || len(conn.Nodes) != 0 || len(conn.Edges) != 0 {
		t.Errorf("connection = %+v, want empty", conn)
	}
	if conn.PageInfo.HasNextPage {
		t.Error("hasNextPage should be false for an empty page")
	}
}

func TestSynthesizeRepositoryRef(t *testing.T) {
	ref := synthesizeRepositoryRef("octocat", "hello-world")
	if ref.FullName != "octocat/hello-world" {
		t.Errorf("fullName = %q", ref.FullName)
	}
	if ref.URL != "https://github.com/octocat/hello-world" {
		t.Errorf("url = %q", ref.URL)
	}
	if ref.Owner.Login != "octocat" {
		t.Errorf("owner.login = %q", ref.Owner.Login)
	}
}

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

	"github.com/hubgatehq/hubgate/internal/ratelimit"
)

// MockClient is a configurable Client for tests. Each hook mirrors one
// interface method; unset hooks return zero values.
type MockClient struct {
	FetchUserFunc         func(ctx context.Context, token, login string) (*User, error)
	FetchOrganizationFunc func(ctx context.Context, token, login string) (*Organization, error)
	FetchRepositoryFunc   func(ctx context.Context, token, owner, name string) (*Repository, error)
	FetchRepositoriesFunc func(ctx context.Context, token, owner string, opts RepositoryListOptions) (*RepositoryConnection, error)
	FetchIssuesFunc       func(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*IssueConnection, error)
	FetchPullRequestsFunc func(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*PullRequestConnection, error)
	FetchCommitsFunc      func(ctx context.Context, token, owner, repo string, opts PageOptions) (*CommitConnection, error)
	FetchRateLimitFunc    func(ctx context.Context, token string) (*ratelimit.Snapshot, error)
}

var _ Client = (*MockClient)(nil)

// FetchUser implements Client.
func (m *MockClient) FetchUser(ctx context.Context, token, login string) (*User, error) {
	if m.FetchUserFunc != nil {
		return m.FetchUserFunc(ctx, token, login)
	}
	return nil, nil
}

// FetchOrganization implements Client.
func (m *MockClient) FetchOrganization(ctx context.Context, token, login string) (*Organization, error) {
	if m.FetchOrganizationFunc != nil {
		return m.FetchOrganizationFunc(ctx, token, login)
	}
	return nil, nil
}

// FetchRepository implements Client.
func (m *MockClient) FetchRepository(ctx context.Context, token, owner, name string) (*Repository, error) {
	if m.FetchRepositoryFunc != nil {
		return m.FetchRepositoryFunc(ctx, token, owner, name)
	}
	return nil, nil
}

// FetchRepositories implements Client.
func (m *MockClient) FetchRepositories(ctx context.Context, token, owner string, opts RepositoryListOptions) (*RepositoryConnection, error) {
	if m.FetchRepositoriesFunc != nil {
		return m.FetchRepositoriesFunc(ctx, token, owner, opts)
	}
	return &RepositoryConnection{Nodes: []Repository{}, Edges: []Edge[Repository]{}}, nil
}

// FetchIssues implements Client.
func (m *MockClient) FetchIssues(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*IssueConnection, error) {
	if m.FetchIssuesFunc != nil {
		return m.FetchIssuesFunc(ctx, token, owner, repo, opts)
	}
	return &IssueConnection{Nodes: []Issue{}, Edges: []Edge[Issue]{}}, nil
}

// FetchPullRequests implements Client.
func (m *MockClient) FetchPullRequests(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*PullRequestConnection, error) {
	if m.FetchPullRequestsFunc != nil {
		return m.FetchPullRequestsFunc(ctx, token, owner, repo, opts)
	}
	return &PullRequestConnection{Nodes: []PullRequest{}, Edges: []Edge[PullRequest]{}}, nil
}

// FetchCommits implements Client.
func (m *MockClient) FetchCommits(ctx context.Context, token, owner, repo string, opts PageOptions) (*CommitConnection, error) {
	if m.FetchCommitsFunc != nil {
		return m.FetchCommitsFunc(ctx, token, owner, repo, opts)
	}
	return &CommitConnection{Nodes: []Commit{}, Edges: []Edge[Commit]{}}, nil
}

// FetchRateLimit implements Client.
func (m *MockClient) FetchRateLimit(ctx context.Context, token string) (*ratelimit.Snapshot, error) {
	if m.FetchRateLimitFunc != nil {
		return m.FetchRateLimitFunc(ctx, token)
	}
	return &ratelimit.Snapshot{Limit: 5000, Remaining: 5000}, nil
}

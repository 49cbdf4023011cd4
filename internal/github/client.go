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

// Client defines the interface for the upstream GitHub API. One method per
// public operation; the interface allows for easy mocking in tests.
//
// Every method takes the resolved credential explicitly: the gateway holds
// no client-wide token, because each inbound request may authenticate with
// its own header.
//
// Single-entity fetches return (nil, nil) when the upstream resolves the
// named entity to "not found"; that is an absent result, not an error.
type Client interface {
	// FetchUser retrieves a user's profile and relationship counts.
	FetchUser(ctx context.Context, token, login string) (*User, error)

	// FetchOrganization retrieves an organization's profile; the public
	// members count is reshaped from the upstream membersWithRole field.
	FetchOrganization(ctx context.Context, token, login string) (*Organization, error)

	// FetchRepository retrieves a single repository with its tagged owner.
	FetchRepository(ctx context.Context, token, owner, name string) (*Repository, error)

	// FetchRepositories retrieves a page of an owner's repositories.
	FetchRepositories(ctx context.Context, token, owner string, opts RepositoryListOptions) (*RepositoryConnection, error)

	// FetchIssues retrieves a page of a repository's issues.
	FetchIssues(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*IssueConnection, error)

	// FetchPullRequests retrieves a page of a repository's pull requests.
	FetchPullRequests(ctx context.Context, token, owner, repo string, opts IssueListOptions) (*PullRequestConnection, error)

	// FetchCommits retrieves a page of commit history from the default
	// branch. Each returned commit carries a repository back-reference
	// synthesized from owner and repo.
	FetchCommits(ctx context.Context, token, owner, repo string, opts PageOptions) (*CommitConnection, error)

	// FetchRateLimit probes the API with a minimal query and returns the
	// current rate limit snapshot. Used by the health operation.
	FetchRateLimit(ctx context.Context, token string) (*ratelimit.Snapshot, error)
}

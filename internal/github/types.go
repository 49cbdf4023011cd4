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

import "time"

// PageInfo describes a page's position inside an upstream connection.
// Cursors are opaque; the gateway never parses them.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Edge pairs a node with the cursor addressing it.
type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// Connection is the uniform pagination envelope every list operation
// returns. Nodes and Edges always describe the same page in the same order:
// Edges[i].Node == Nodes[i].
type Connection[T any] struct {
	TotalCount int       `json:"totalCount"`
	PageInfo   PageInfo  `json:"pageInfo"`
	Nodes      []T       `json:"nodes"`
	Edges      []Edge[T] `json:"edges"`
}

// Concrete connections on the public surface.
type (
	RepositoryConnection  = Connection[Repository]
	IssueConnection       = Connection[Issue]
	PullRequestConnection = Connection[PullRequest]
	CommitConnection      = Connection[Commit]
)

// CountConnection is a count-only relationship summary.
type CountConnection struct {
	TotalCount int `json:"totalCount"`
}

// User is the public projection of a GitHub user.
type User struct {
	ID         string          `json:"id"`
	Login      string          `json:"login"`
	Name       *string         `json:"name"`
	Email      string          `json:"email"`
	Bio        *string         `json:"bio"`
	Company    *string         `json:"company"`
	Location   *string         `json:"location"`
	WebsiteURL *string         `json:"websiteUrl"`
	AvatarURL  string          `json:"avatarUrl"`
	URL        string          `json:"url"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Followers  CountConnection `json:"followers"`
	Following  CountConnection `json:"following"`
	Repos      CountConnection `json:"repositories"`
}

// Organization is the public projection of a GitHub organization. Members
// is copied from the upstream's membersWithRole connection; GitHub exposes
// no follower counts on organizations.
type Organization struct {
	ID          string          `json:"id"`
	Login       string          `json:"login"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Email       *string         `json:"email"`
	Location    *string         `json:"location"`
	WebsiteURL  *string         `json:"websiteUrl"`
	AvatarURL   string          `json:"avatarUrl"`
	URL         string          `json:"url"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Repos       CountConnection `json:"repositories"`
	Members     CountConnection `json:"members"`
}

// OwnerType values for RepositoryOwner.Type. The tag is recorded from the
// upstream union's __typename at fetch time, never re-inferred from field
// presence. OwnerTypeUser is the default when the upstream omits the tag.
const (
	OwnerTypeUser         = "User"
	OwnerTypeOrganization = "Organization"
)

// RepositoryOwner identifies the user or organization owning a repository,
// tagged with its concrete type.
type RepositoryOwner struct {
	Login     string `json:"login"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatarUrl"`
}

// Language is a repository's primary language.
type Language struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// Repository is the public projection of a GitHub repository. FullName is
// always derived from the upstream nameWithOwner field; the original field
// is kept alongside it.
type Repository struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	NameWithOwner   string          `json:"nameWithOwner"`
	FullName        string          `json:"fullName"`
	Description     *string         `json:"description"`
	URL             string          `json:"url"`
	HomepageURL     *string         `json:"homepageUrl"`
	IsPrivate       bool            `json:"isPrivate"`
	IsFork          bool            `json:"isFork"`
	IsArchived      bool            `json:"isArchived"`
	IsDisabled      bool            `json:"isDisabled"`
	StargazerCount  int             `json:"stargazerCount"`
	WatcherCount    int             `json:"watcherCount"`
	ForkCount       int             `json:"forkCount"`
	PrimaryLanguage *Language       `json:"primaryLanguage"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	PushedAt        *time.Time      `json:"pushedAt"`
	DefaultBranch   *string         `json:"defaultBranch"`
	Owner           RepositoryOwner `json:"owner"`
}

// OwnerRef is the owner stub inside a RepositoryRef: login only.
type OwnerRef struct {
	Login string `json:"login"`
}

// RepositoryRef is a partial projection of a repository used as a
// back-reference on issues, pull requests, and commits. Only name,
// fullName, url, and the owner login are populated; every other repository
// field is intentionally absent. For commit pages the value is synthesized
// from the caller's arguments rather than fetched.
type RepositoryRef struct {
	Name     string   `json:"name"`
	FullName string   `json:"fullName"`
	URL      string   `json:"url"`
	Owner    OwnerRef `json:"owner"`
}

// Actor is a minimal platform identity: issue and pull request authors and
// assignees.
type Actor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	URL       string `json:"url"`
}

// Label is an issue label.
type Label struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

// Issue is the public projection of a GitHub issue. State is OPEN or
// CLOSED. Assignees and labels are bounded sub-collections.
type Issue struct {
	ID        string        `json:"id"`
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	State     string        `json:"state"`
	URL       string        `json:"url"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	ClosedAt  *time.Time    `json:"closedAt"`
	Author    *Actor        `json:"author"`
	Assignees []Actor       `json:"assignees"`
	Labels    []Label       `json:"labels"`
	Repo      RepositoryRef `json:"repository"`
}

// PullRequest is the public projection of a GitHub pull request. State is
// OPEN, CLOSED, or MERGED; Mergeable is the upstream mergeable-state value
// (MERGEABLE, CONFLICTING, or UNKNOWN).
type PullRequest struct {
	ID          string        `json:"id"`
	Number      int           `json:"number"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	State       string        `json:"state"`
	URL         string        `json:"url"`
	IsDraft     bool          `json:"isDraft"`
	Mergeable   string        `json:"mergeable"`
	BaseRefName string        `json:"baseRefName"`
	HeadRefName string        `json:"headRefName"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	ClosedAt    *time.Time    `json:"closedAt"`
	MergedAt    *time.Time    `json:"mergedAt"`
	Author      *Actor        `json:"author"`
	Assignees   []Actor       `json:"assignees"`
	Repo        RepositoryRef `json:"repository"`
}

// GitActor is a commit attribution: the recorded name/email pair plus the
// platform user it resolves to, when GitHub can match one.
type GitActor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	User  *Actor `json:"user"`
}

// Commit is the public projection of a commit on the repository's default
// branch. Repo is synthesized from the caller's owner/repo arguments; the
// upstream commit-history query does not embed it.
type Commit struct {
	OID             string        `json:"oid"`
	AbbreviatedOID  string        `json:"abbreviatedOid"`
	Message         string        `json:"message"`
	MessageHeadline string        `json:"messageHeadline"`
	URL             string        `json:"url"`
	AuthoredAt      time.Time     `json:"authoredAt"`
	CommittedAt     time.Time     `json:"committedAt"`
	Additions       int           `json:"additions"`
	Deletions       int           `json:"deletions"`
	ChangedFiles    int           `json:"changedFiles"`
	Author          GitActor      `json:"author"`
	Committer       GitActor      `json:"committer"`
	Repo            RepositoryRef `json:"repository"`
}

// PageOptions carries the two pagination arguments every list operation
// accepts. First must already be validated by the dispatcher; After is the
// opaque cursor, empty for the first page.
type PageOptions struct {
	First int
	After string
}

// OrderBy is a caller-supplied sort; field and direction pass through to
// the upstream unchanged.
type OrderBy struct {
	Field     string
	Direction string
}

// RepositoryListOptions configures the repositories operation.
type RepositoryListOptions struct {
	PageOptions
	OrderBy *OrderBy
}

// IssueListOptions configures the issues and pullRequests operations.
// States pass through to the upstream unchanged.
type IssueListOptions struct {
	PageOptions
	States  []string
	OrderBy *OrderBy
}

// DefaultPageSize is used when a list operation is called without first.
const DefaultPageSize = 20

// MaxPageSize is GitHub's per-page ceiling, enforced by the dispatcher.
const MaxPageSize = 100

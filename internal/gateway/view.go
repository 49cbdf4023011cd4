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

package gateway

import (
	"time"

	"github.com/hubgatehq/hubgate/internal/github"
	"github.com/hubgatehq/hubgate/internal/ratelimit"
)

// View structs back the schema's output types. The engine resolves a
// GraphQL field by capitalizing its first letter and looking up the Go
// field of that exact name, so names like Url and Oid here are deliberate.
// Types whose Go names already line up (PageInfo, CountConnection, Label,
// Language, OwnerRef) are used from the github package directly.

type actorView struct {
	Login     string
	AvatarUrl string
	Url       string
}

func actorFrom(a github.Actor) actorView {
	return actorView{Login: a.Login, AvatarUrl: a.AvatarURL, Url: a.URL}
}

func actorPtrFrom(a *github.Actor) *actorView {
	if a == nil {
		return nil
	}
	v := actorFrom(*a)
	return &v
}

func actorsFrom(as []github.Actor) []actorView {
	views := make([]actorView, len(as))
	for i, a := range as {
		views[i] = actorFrom(a)
	}
	return views
}

type userView struct {
	Id           string
	Login        string
	Name         *string
	Email        string
	Bio          *string
	Company      *string
	Location     *string
	WebsiteUrl   *string
	AvatarUrl    string
	Url          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Followers    github.CountConnection
	Following    github.CountConnection
	Repositories github.CountConnection
}

func userFrom(u *github.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{
		Id:           u.ID,
		Login:        u.Login,
		Name:         u.Name,
		Email:        u.Email,
		Bio:          u.Bio,
		Company:      u.Company,
		Location:     u.Location,
		WebsiteUrl:   u.WebsiteURL,
		AvatarUrl:    u.AvatarURL,
		Url:          u.URL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Followers:    u.Followers,
		Following:    u.Following,
		Repositories: u.Repos,
	}
}

type organizationView struct {
	Id           string
	Login        string
	Name         *string
	Description  *string
	Email        *string
	Location     *string
	WebsiteUrl   *string
	AvatarUrl    string
	Url          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Repositories github.CountConnection
	Members      github.CountConnection
}

func organizationFrom(o *github.Organization) *organizationView {
	if o == nil {
		return nil
	}
	return &organizationView{
		Id:           o.ID,
		Login:        o.Login,
		Name:         o.Name,
		Description:  o.Description,
		Email:        o.Email,
		Location:     o.Location,
		WebsiteUrl:   o.WebsiteURL,
		AvatarUrl:    o.AvatarURL,
		Url:          o.URL,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Repositories: o.Repos,
		Members:      o.Members,
	}
}

type ownerView struct {
	Login     string
	Type      string
	Url       string
	AvatarUrl string
}

type repositoryView struct {
	Id              string
	Name            string
	NameWithOwner   string
	FullName        string
	Description     *string
	Url             string
	HomepageUrl     *string
	IsPrivate       bool
	IsFork          bool
	IsArchived      bool
	IsDisabled      bool
	StargazerCount  int
	WatcherCount    int
	ForkCount       int
	PrimaryLanguage *github.Language
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PushedAt        *time.Time
	DefaultBranch   *string
	Owner           ownerView
}

func repositoryFrom(r github.Repository) repositoryView {
	return repositoryView{
		Id:              r.ID,
		Name:            r.Name,
		NameWithOwner:   r.NameWithOwner,
		FullName:        r.FullName,
		Description:     r.Description,
		Url:             r.URL,
		HomepageUrl:     r.HomepageURL,
		IsPrivate:       r.IsPrivate,
		IsFork:          r.IsFork,
		IsArchived:      r.IsArchived,
		IsDisabled:      r.IsDisabled,
		StargazerCount:  r.StargazerCount,
		WatcherCount:    r.WatcherCount,
		ForkCount:       r.ForkCount,
		PrimaryLanguage: r.PrimaryLanguage,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		PushedAt:        r.PushedAt,
		DefaultBranch:   r.DefaultBranch,
		Owner: ownerView{
			Login:     r.Owner.Login,
			Type:      r.Owner.Type,
			Url:       r.Owner.URL,
			AvatarUrl: r.Owner.AvatarURL,
		},
	}
}

func repositoryPtrFrom(r *github.Repository) *repositoryView {
	if r == nil {
		return nil
	}
	v := repositoryFrom(*r)
	return &v
}

type repositoryRefView struct {
	Name     string
	FullName string
	Url      string
	Owner    github.OwnerRef
}

func repositoryRefFrom(ref github.RepositoryRef) repositoryRefView {
	return repositoryRefView{
		Name:     ref.Name,
		FullName: ref.FullName,
		Url:      ref.URL,
		Owner:    ref.Owner,
	}
}

type issueView struct {
	Id         string
	Number     int
	Title      string
	Body       string
	State      string
	Url        string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ClosedAt   *time.Time
	Author     *actorView
	Assignees  []actorView
	Labels     []github.Label
	Repository repositoryRefView
}

func issueFrom(i github.Issue) issueView {
	labels := i.Labels
	if labels == nil {
		labels = []github.Label{}
	}
	return issueView{
		Id:         i.ID,
		Number:     i.Number,
		Title:      i.Title,
		Body:       i.Body,
		State:      i.State,
		Url:        i.URL,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
		ClosedAt:   i.ClosedAt,
		Author:     actorPtrFrom(i.Author),
		Assignees:  actorsFrom(i.Assignees),
		Labels:     labels,
		Repository: repositoryRefFrom(i.Repo),
	}
}

type pullRequestView struct {
	Id          string
	Number      int
	Title       string
	Body        string
	State       string
	Url         string
	IsDraft     bool
	Mergeable   string
	BaseRefName string
	HeadRefName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	MergedAt    *time.Time
	Author      *actorView
	Assignees   []actorView
	Repository  repositoryRefView
}

func pullRequestFrom(p github.PullRequest) pullRequestView {
	return pullRequestView{
		Id:          p.ID,
		Number:      p.Number,
		Title:       p.Title,
		Body:        p.Body,
		State:       p.State,
		Url:         p.URL,
		IsDraft:     p.IsDraft,
		Mergeable:   p.Mergeable,
		BaseRefName: p.BaseRefName,
		HeadRefName: p.HeadRefName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ClosedAt:    p.ClosedAt,
		MergedAt:    p.MergedAt,
		Author:      actorPtrFrom(p.Author),
		Assignees:   actorsFrom(p.Assignees),
		Repository:  repositoryRefFrom(p.Repo),
	}
}

type gitActorView struct {
	Name  string
	Email string
	User  *actorView
}

func gitActorFrom(a github.GitActor) gitActorView {
	return gitActorView{Name: a.Name, Email: a.Email, User: actorPtrFrom(a.User)}
}

type commitView struct {
	Oid             string
	AbbreviatedOid  string
	Message         string
	MessageHeadline string
	Url             string
	AuthoredAt      time.Time
	CommittedAt     time.Time
	Additions       int
	Deletions       int
	ChangedFiles    int
	Author          gitActorView
	Committer       gitActorView
	Repository      repositoryRefView
}

func commitFrom(c github.Commit) commitView {
	return commitView{
		Oid:             c.OID,
		AbbreviatedOid:  c.AbbreviatedOID,
		Message:         c.Message,
		MessageHeadline: c.MessageHeadline,
		Url:             c.URL,
		AuthoredAt:      c.AuthoredAt,
		CommittedAt:     c.CommittedAt,
		Additions:       c.Additions,
		Deletions:       c.Deletions,
		ChangedFiles:    c.ChangedFiles,
		Author:          gitActorFrom(c.Author),
		Committer:       gitActorFrom(c.Committer),
		Repository:      repositoryRefFrom(c.Repo),
	}
}

type edgeView[T any] struct {
	Cursor string
	Node   T
}

type connectionView[T any] struct {
	TotalCount int
	PageInfo   github.PageInfo
	Nodes      []T
	Edges      []edgeView[T]
}

func connectionFrom[S, T any](conn *github.Connection[S], view func(S) T) *connectionView[T] {
	out := &connectionView[T]{
		TotalCount: conn.TotalCount,
		PageInfo:   conn.PageInfo,
		Nodes:      make([]T, 0, len(conn.Nodes)),
		Edges:      make([]edgeView[T], 0, len(conn.Edges)),
	}
	for _, e := range conn.Edges {
		node := view(e.Node)
		out.Edges = append(out.Edges, edgeView[T]{Cursor: e.Cursor, Node: node})
		out.Nodes = append(out.Nodes, node)
	}
	return out
}

type rateLimitView struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	Cost      int
}

func rateLimitFrom(s *ratelimit.Snapshot) *rateLimitView {
	if s == nil {
		return nil
	}
	return &rateLimitView{
		Limit:     s.Limit,
		Remaining: s.Remaining,
		ResetAt:   s.ResetAt,
		Cost:      s.Cost,
	}
}

type healthView struct {
	Status    string
	Timestamp time.Time
	RateLimit *rateLimitView
}

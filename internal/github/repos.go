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

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
)

// wireRepositoryOwner carries the upstream owner union member's __typename,
// which becomes the public type tag.
type wireRepositoryOwner struct {
	TypeName  string `json:"__typename"`
	Login     string `json:"login"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatarUrl"`
}

type wireRef struct {
	Name string `json:"name"`
}

// wireRepository is the full upstream repository selection.
type wireRepository struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	NameWithOwner    string              `json:"nameWithOwner"`
	Description      *string             `json:"description"`
	URL              string              `json:"url"`
	HomepageURL      *string             `json:"homepageUrl"`
	IsPrivate        bool                `json:"isPrivate"`
	IsFork           bool                `json:"isFork"`
	IsArchived       bool                `json:"isArchived"`
	IsDisabled       bool                `json:"isDisabled"`
	StargazerCount   int                 `json:"stargazerCount"`
	ForkCount        int                 `json:"forkCount"`
	Watchers         CountConnection     `json:"watchers"`
	PrimaryLanguage  *Language           `json:"primaryLanguage"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	PushedAt         *time.Time          `json:"pushedAt"`
	DefaultBranchRef *wireRef            `json:"defaultBranchRef"`
	Owner            wireRepositoryOwner `json:"owner"`
}

// reshapeRepository applies the public renames: nameWithOwner is mirrored
// into fullName, the watcher connection collapses to a count, the default
// branch ref collapses to its name, and the owner keeps its recorded
// concrete type. An owner without a recorded type defaults to User.
func reshapeRepository(w wireRepository) Repository {
	ownerType := w.Owner.TypeName
	if ownerType == "" {
		ownerType = OwnerTypeUser
	}
	var defaultBranch *string
	if w.DefaultBranchRef != nil {
		name := w.DefaultBranchRef.Name
		defaultBranch = &name
	}
	return Repository{
		ID:              w.ID,
		Name:            w.Name,
		NameWithOwner:   w.NameWithOwner,
		FullName:        w.NameWithOwner,
		Description:     w.Description,
		URL:             w.URL,
		HomepageURL:     w.HomepageURL,
		IsPrivate:       w.IsPrivate,
		IsFork:          w.IsFork,
		IsArchived:      w.IsArchived,
		IsDisabled:      w.IsDisabled,
		StargazerCount:  w.StargazerCount,
		WatcherCount:    w.Watchers.TotalCount,
		ForkCount:       w.ForkCount,
		PrimaryLanguage: w.PrimaryLanguage,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
		PushedAt:        w.PushedAt,
		DefaultBranch:   defaultBranch,
		Owner: RepositoryOwner{
			Login:     w.Owner.Login,
			Type:      ownerType,
			URL:       w.Owner.URL,
			AvatarURL: w.Owner.AvatarURL,
		},
	}
}

// FetchRepository retrieves a single repository with its tagged owner.
func (c *GraphQLClient) FetchRepository(ctx context.Context, token, owner, name string) (*Repository, error) {
	vars := map[string]interface{}{"owner": owner, "name": name}
	var payload struct {
		Repository *wireRepository `json:"repository"`
	}
	errs, err := c.do(ctx, token, repositoryQuery, vars, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		if c.notFoundOnly(errs) {
			return nil, nil
		}
		return nil, foldErrors(errs)
	}
	if payload.Repository == nil {
		return nil, nil
	}
	if payload.Repository.NameWithOwner == "" {
		return nil, gwerrors.UpstreamEmpty("repository payload is missing nameWithOwner")
	}
	repo := reshapeRepository(*payload.Repository)
	return &repo, nil
}

// FetchRepositories retrieves a page of an owner's repositories. The owner
// may be a user or an organization; the upstream repositoryOwner lookup
// covers both.
func (c *GraphQLClient) FetchRepositories(ctx context.Context, token, owner string, opts RepositoryListOptions) (*RepositoryConnection, error) {
	vars := pageVariables(opts.First, opts.After)
	vars["login"] = owner
	orderByVariable(vars, opts.OrderBy)

	var payload struct {
		RepositoryOwner *struct {
			Repositories wireConnection[wireRepository] `json:"repositories"`
		} `json:"repositoryOwner"`
	}
	errs, err := c.do(ctx, token, repositoriesQuery, vars, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, foldErrors(errs)
	}
	if payload.RepositoryOwner == nil {
		return nil, foldErrors([]QueryError{{
			Type:    "NOT_FOUND",
			Message: "could not resolve to a repository owner with the login '" + owner + "'",
		}})
	}
	page := payload.RepositoryOwner.Repositories
	for _, e := range page.Edges {
		// fullName is derived from this field; its absence is a payload
		// integrity failure, not a default.
		if e.Node.NameWithOwner == "" {
			return nil, gwerrors.UpstreamEmpty("repository payload is missing nameWithOwner")
		}
	}
	return buildConnection(page, reshapeRepository), nil
}

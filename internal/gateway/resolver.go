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
	"context"
	"log/slog"
	"time"

	"zombiezen.com/go/graphql-server/graphql"

	"github.com/hubgatehq/hubgate/internal/auth"
	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
	"github.com/hubgatehq/hubgate/internal/github"
)

// Query is the root resolver. Each method dispatches one public operation:
// it resolves the credential, validates pagination bounds, invokes the
// matching fetch, and records failures before surfacing them.
type Query struct {
	client github.Client
	auth   *auth.Resolver
	logger *slog.Logger
}

// resolveToken turns the inbound request's Authorization header, carried in
// ctx, into the credential for the upstream exchange.
func (q *Query) resolveToken(ctx context.Context) (string, error) {
	return q.auth.Resolve(auth.HeaderFromContext(ctx))
}

// fail records an operation failure and passes the error through.
func (q *Query) fail(ctx context.Context, op string, err error) error {
	q.logger.ErrorContext(ctx, "operation failed",
		slog.String("operation", op),
		slog.String("code", string(gwerrors.CodeOf(err))),
		slog.String("error", err.Error()),
	)
	return err
}

func (q *Query) User(ctx context.Context, args map[string]graphql.Value) (*userView, error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "user", err)
	}
	user, err := q.client.FetchUser(ctx, token, stringArg(args, "login"))
	if err != nil {
		return nil, q.fail(ctx, "user", err)
	}
	return userFrom(user), nil
}

func (q *Query) Organization(ctx context.Context, args map[string]graphql.Value) (*organizationView, error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "organization", err)
	}
	org, err := q.client.FetchOrganization(ctx, token, stringArg(args, "login"))
	if err != nil {
		return nil, q.fail(ctx, "organization", err)
	}
	return organizationFrom(org), nil
}

func (q *Query) Repository(ctx context.Context, args map[string]graphql.Value) (*repositoryView, error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "repository", err)
	}
	repo, err := q.client.FetchRepository(ctx, token, stringArg(args, "owner"), stringArg(args, "name"))
	if err != nil {
		return nil, q.fail(ctx, "repository", err)
	}
	return repositoryPtrFrom(repo), nil
}

func (q *Query) Repositories(ctx context.Context, args map[string]graphql.Value) (*connectionView[repositoryView], error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "repositories", err)
	}
	page, err := pageArgs(args)
	if err != nil {
		return nil, q.fail(ctx, "repositories", err)
	}
	conn, err := q.client.FetchRepositories(ctx, token, stringArg(args, "owner"), github.RepositoryListOptions{
		PageOptions: page,
		OrderBy:     orderByArg(args),
	})
	if err != nil {
		return nil, q.fail(ctx, "repositories", err)
	}
	return connectionFrom(conn, repositoryFrom), nil
}

func (q *Query) Issues(ctx context.Context, args map[string]graphql.Value) (*connectionView[issueView], error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "issues", err)
	}
	page, err := pageArgs(args)
	if err != nil {
		return nil, q.fail(ctx, "issues", err)
	}
	conn, err := q.client.FetchIssues(ctx, token, stringArg(args, "owner"), stringArg(args, "repo"), github.IssueListOptions{
		PageOptions: page,
		States:      statesArg(args),
		OrderBy:     orderByArg(args),
	})
	if err != nil {
		return nil, q.fail(ctx, "issues", err)
	}
	return connectionFrom(conn, issueFrom), nil
}

func (q *Query) PullRequests(ctx context.Context, args map[string]graphql.Value) (*connectionView[pullRequestView], error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "pullRequests", err)
	}
	page, err := pageArgs(args)
	if err != nil {
		return nil, q.fail(ctx, "pullRequests", err)
	}
	conn, err := q.client.FetchPullRequests(ctx, token, stringArg(args, "owner"), stringArg(args, "repo"), github.IssueListOptions{
		PageOptions: page,
		States:      statesArg(args),
		OrderBy:     orderByArg(args),
	})
	if err != nil {
		return nil, q.fail(ctx, "pullRequests", err)
	}
	return connectionFrom(conn, pullRequestFrom), nil
}

func (q *Query) Commits(ctx context.Context, args map[string]graphql.Value) (*connectionView[commitView], error) {
	token, err := q.resolveToken(ctx)
	if err != nil {
		return nil, q.fail(ctx, "commits", err)
	}
	page, err := pageArgs(args)
	if err != nil {
		return nil, q.fail(ctx, "commits", err)
	}
	conn, err := q.client.FetchCommits(ctx, token, stringArg(args, "owner"), stringArg(args, "repo"), page)
	if err != nil {
		return nil, q.fail(ctx, "commits", err)
	}
	return connectionFrom(conn, commitFrom), nil
}

// Health reports gateway reachability to the upstream. It never fails the
// request: any failure, including a bad credential, downgrades to an
// unhealthy status with no rate limit attached.
func (q *Query) Health(ctx context.Context) *healthView {
	now := time.Now().UTC()
	token, err := q.resolveToken(ctx)
	if err != nil {
		q.logger.WarnContext(ctx, "health probe degraded",
			slog.String("code", string(gwerrors.CodeOf(err))),
			slog.String("error", err.Error()),
		)
		return &healthView{Status: "unhealthy", Timestamp: now}
	}
	snap, err := q.client.FetchRateLimit(ctx, token)
	if err != nil {
		q.logger.WarnContext(ctx, "health probe degraded",
			slog.String("code", string(gwerrors.CodeOf(err))),
			slog.String("error", err.Error()),
		)
		return &healthView{Status: "unhealthy", Timestamp: now}
	}
	return &healthView{Status: "healthy", Timestamp: now, RateLimit: rateLimitFrom(snap)}
}

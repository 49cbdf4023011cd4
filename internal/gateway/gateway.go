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

// Package gateway executes the public GraphQL schema. It owns the schema
// text, the root resolver dispatching each operation to the upstream
// client, and the view types shaping results for execution.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"zombiezen.com/go/graphql-server/graphql"

	"github.com/hubgatehq/hubgate/internal/auth"
	"github.com/hubgatehq/hubgate/internal/github"
)

// Gateway executes public GraphQL operations against the upstream API.
type Gateway struct {
	server *graphql.Server
}

// New parses the public schema and binds it to the given upstream client
// and credential resolver.
func New(client github.Client, authResolver *auth.Resolver, logger *slog.Logger) (*Gateway, error) {
	schema, err := graphql.ParseSchema(schemaSource)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	query := &Query{
		client: client,
		auth:   authResolver,
		logger: logger,
	}
	server, err := graphql.NewServer(schema, query, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return &Gateway{server: server}, nil
}

// Schema returns the parsed public schema.
func (g *Gateway) Schema() *graphql.Schema {
	return g.server.Schema()
}

// Execute runs a single GraphQL operation. Safe for concurrent use.
func (g *Gateway) Execute(ctx context.Context, req graphql.Request) graphql.Response {
	return g.server.Execute(ctx, req)
}

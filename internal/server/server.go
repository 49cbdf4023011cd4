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

// Package server exposes the gateway over HTTP: the /graphql endpoint, a
// liveness probe, and the middleware chain (request IDs, structured request
// logging, CORS).
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"zombiezen.com/go/graphql-server/graphqlhttp"

	"github.com/hubgatehq/hubgate/internal/auth"
	"github.com/hubgatehq/hubgate/internal/config"
	"github.com/hubgatehq/hubgate/internal/gateway"
	"github.com/hubgatehq/hubgate/pkg/version"
)

// Server routes HTTP traffic to the gateway.
type Server struct {
	engine  *gin.Engine
	gateway *gateway.Gateway
	cfg     *config.Config
	logger  *slog.Logger
}

// New builds the HTTP surface for the given gateway.
func New(cfg *config.Config, gw *gateway.Gateway, logger *slog.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		gateway: gw,
		cfg:     cfg,
		logger:  logger,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/healthz", s.handleLiveness)
	engine.POST("/graphql", s.handleGraphQL)
	engine.GET("/graphql", s.handleGraphQL)

	s.engine = engine
	return s
}

// Handler returns the root http.Handler for serving.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// handleGraphQL parses the inbound GraphQL HTTP request, carries its
// Authorization header into the execution context, and writes the response
// in the wire shape.
func (s *Server) handleGraphQL(c *gin.Context) {
	req, err := graphqlhttp.Parse(s.gateway.Schema(), c.Request)
	if err != nil {
		code := graphqlhttp.StatusCode(err)
		if code == http.StatusMethodNotAllowed {
			c.Header("Allow", "GET, HEAD, POST")
		}
		c.String(code, err.Error())
		return
	}

	ctx := auth.WithHeader(c.Request.Context(), c.GetHeader("Authorization"))
	resp := s.gateway.Execute(ctx, req)

	body, err := buildResponseBody(resp, !s.cfg.IsDevelopment())
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "encoding response failed",
			slog.String("error", err.Error()),
		)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, body)
}

// handleLiveness reports process liveness only. Upstream reachability is
// the GraphQL health operation's job.
func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}

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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hubgatehq/hubgate/internal/auth"
	"github.com/hubgatehq/hubgate/internal/config"
	"github.com/hubgatehq/hubgate/internal/gateway"
	"github.com/hubgatehq/hubgate/internal/github"
	"github.com/hubgatehq/hubgate/internal/ratelimit"
	"github.com/hubgatehq/hubgate/internal/server"
)

func newServeCommand() *cobra.Command {
	var (
		configPath string
		listen     string
		token      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gateway HTTP server",
		Long: `Start the HTTP server exposing the public GraphQL schema on /graphql.

A fallback GitHub token is read from the configured environment variable
(GITHUB_TOKEN by default) or the --token flag; requests carrying their own
Bearer token use that instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath, listen, token)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides configuration)")
	cmd.Flags().StringVar(&token, "token", "", "Fallback GitHub token (overrides GITHUB_TOKEN env var)")

	return cmd
}

func runServe(ctx context.Context, configPath, listenFlag, tokenFlag string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if listenFlag != "" {
		cfg.Server.Listen = listenFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	fallback := tokenFlag
	if fallback == "" {
		fallback = cfg.FallbackToken()
	}

	tracker := ratelimit.NewTracker()
	client := github.NewGraphQLClient(cfg.GitHub.GraphQLEndpoint, cfg.GitHub.RequestTimeout, tracker)
	gw, err := gateway.New(client, auth.NewResolver(fallback), logger)
	if err != nil {
		return err
	}
	srv := server.New(cfg, gw, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway listening",
			slog.String("addr", cfg.Server.Listen),
			slog.String("environment", string(cfg.Server.Environment)),
			slog.String("upstream", cfg.GitHub.GraphQLEndpoint),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newLogger builds the process logger: human-readable text in development,
// JSON lines elsewhere.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

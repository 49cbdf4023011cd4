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

// Package config types define the configuration structures used throughout
// hubgate. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import "time"

// Environment selects how much detail failure payloads expose to callers.
type Environment string

// Recognized deployment environments.
const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config represents the complete configuration for hubgate. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	Server ServerConfig `yaml:"server"`
	GitHub GitHubConfig `yaml:"github"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig contains the inbound HTTP listener settings.
type ServerConfig struct {
	Listen      string      `yaml:"listen"`
	Environment Environment `yaml:"environment"`
}

// GitHubConfig contains upstream settings: the GraphQL endpoint (custom for
// GitHub Enterprise deployments), the environment variable holding the
// process-wide fallback token, and the per-exchange timeout.
type GitHubConfig struct {
	GraphQLEndpoint string        `yaml:"graphql_endpoint"`
	TokenEnv        string        `yaml:"token_env"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// CORSConfig lists the origins allowed to call the gateway from a browser.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults target public GitHub.com and a local listener;
// production deployments override the environment and allowed origins.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:      "127.0.0.1:8080",
			Environment: EnvDevelopment,
		},
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
			RequestTimeout:  30 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

// IsDevelopment reports whether failure payloads should include full detail.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment != EnvProduction
}

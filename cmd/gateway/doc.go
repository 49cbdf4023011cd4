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

// Command hubgate serves a simplified GraphQL view of the GitHub API.
//
// Usage:
//
//	hubgate serve [--config path] [--listen addr] [--token token]
//
// The serve command reads configuration from a YAML file, environment
// variables, and flags, then listens for GraphQL requests on /graphql.
package main

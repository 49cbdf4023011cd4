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

// Package github translates the gateway's public operations into GitHub
// GraphQL queries and reshapes the responses into the public schema's types.
//
// Each public operation maps to exactly one upstream exchange: a fetch
// method owns its fixed query text, passes caller arguments through as
// variables unchanged, and applies the field renames the public schema
// promises (nameWithOwner becomes fullName, membersWithRole becomes
// members, commit pages gain a synthesized repository back-reference).
//
// The package includes:
//   - A Client interface covering every public operation
//   - A GraphQLClient implementation posting raw {query, variables}
//     envelopes, so translators can inspect the upstream errors array
//   - A typed rate-limit probe on the shurcooL/graphql client
//   - A MockClient for testing
//
// No retries, no caching, no rate limit enforcement: one inbound request
// costs one upstream exchange and any failure is surfaced verbatim.
package github

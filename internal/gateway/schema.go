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

// schemaSource is the public schema. It is deliberately smaller and flatter
// than the upstream's: state and sort fields are plain strings, and the
// repository owner is a concrete object tagged with its type instead of a
// union, so clients never need inline fragments.
const schemaSource = `
scalar DateTime

type Query {
  user(login: String!): User
  organization(login: String!): Organization
  repository(owner: String!, name: String!): Repository
  repositories(owner: String!, first: Int, after: String, orderBy: OrderInput): RepositoryConnection!
  issues(owner: String!, repo: String!, first: Int, after: String, states: [String!], orderBy: OrderInput): IssueConnection!
  pullRequests(owner: String!, repo: String!, first: Int, after: String, states: [String!], orderBy: OrderInput): PullRequestConnection!
  commits(owner: String!, repo: String!, first: Int, after: String): CommitConnection!
  health: Health!
}

input OrderInput {
  field: String!
  direction: String!
}

type PageInfo {
  hasNextPage: Boolean!
  hasPreviousPage: Boolean!
  startCursor: String
  endCursor: String
}

type CountConnection {
  totalCount: Int!
}

type User {
  id: ID!
  login: String!
  name: String
  email: String!
  bio: String
  company: String
  location: String
  websiteUrl: String
  avatarUrl: String!
  url: String!
  createdAt: DateTime!
  updatedAt: DateTime!
  followers: CountConnection!
  following: CountConnection!
  repositories: CountConnection!
}

type Organization {
  id: ID!
  login: String!
  name: String
  description: String
  email: String
  location: String
  websiteUrl: String
  avatarUrl: String!
  url: String!
  createdAt: DateTime!
  updatedAt: DateTime!
  repositories: CountConnection!
  members: CountConnection!
}

type RepositoryOwner {
  login: String!
  type: String!
  url: String!
  avatarUrl: String!
}

type Language {
  name: String!
  color: String
}

type Repository {
  id: ID!
  name: String!
  nameWithOwner: String!
  fullName: String!
  description: String
  url: String!
  homepageUrl: String
  isPrivate: Boolean!
  isFork: Boolean!
  isArchived: Boolean!
  isDisabled: Boolean!
  stargazerCount: Int!
  watcherCount: Int!
  forkCount: Int!
  primaryLanguage: Language
  createdAt: DateTime!
  updatedAt: DateTime!
  pushedAt: DateTime
  defaultBranch: String
  owner: RepositoryOwner!
}

type OwnerRef {
  login: String!
}

type RepositoryRef {
  name: String!
  fullName: String!
  url: String!
  owner: OwnerRef!
}

type Actor {
  login: String!
  avatarUrl: String!
  url: String!
}

type Label {
  name: String!
  color: String!
  description: String
}

type Issue {
  id: ID!
  number: Int!
  title: String!
  body: String!
  state: String!
  url: String!
  createdAt: DateTime!
  updatedAt: DateTime!
  closedAt: DateTime
  author: Actor
  assignees: [Actor!]!
  labels: [Label!]!
  repository: RepositoryRef!
}

type PullRequest {
  id: ID!
  number: Int!
  title: String!
  body: String!
  state: String!
  url: String!
  isDraft: Boolean!
  mergeable: String!
  baseRefName: String!
  headRefName: String!
  createdAt: DateTime!
  updatedAt: DateTime!
  closedAt: DateTime
  mergedAt: DateTime
  author: Actor
  assignees: [Actor!]!
  repository: RepositoryRef!
}

type GitActor {
  name: String!
  email: String!
  user: Actor
}

type Commit {
  oid: ID!
  abbreviatedOid: String!
  message: String!
  messageHeadline: String!
  url: String!
  authoredAt: DateTime!
  committedAt: DateTime!
  additions: Int!
  deletions: Int!
  changedFiles: Int!
  author: GitActor!
  committer: GitActor!
  repository: RepositoryRef!
}

type RepositoryEdge {
  cursor: String!
  node: Repository!
}

type RepositoryConnection {
  totalCount: Int!
  pageInfo: PageInfo!
  nodes: [Repository!]!
  edges: [RepositoryEdge!]!
}

type IssueEdge {
  cursor: String!
  node: Issue!
}

type IssueConnection {
  totalCount: Int!
  pageInfo: PageInfo!
  nodes: [Issue!]!
  edges: [IssueEdge!]!
}

type PullRequestEdge {
  cursor: String!
  node: PullRequest!
}

type PullRequestConnection {
  totalCount: Int!
  pageInfo: PageInfo!
  nodes: [PullRequest!]!
  edges: [PullRequestEdge!]!
}

type CommitEdge {
  cursor: String!
  node: Commit!
}

type CommitConnection {
  totalCount: Int!
  pageInfo: PageInfo!
  nodes: [Commit!]!
  edges: [CommitEdge!]!
}

type RateLimit {
  limit: Int!
  remaining: Int!
  resetAt: DateTime!
  cost: Int!
}

type Health {
  status: String!
  timestamp: DateTime!
  rateLimit: RateLimit
}
`

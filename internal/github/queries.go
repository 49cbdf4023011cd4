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

// Each public operation owns one fixed query document. The documents select
// the upstream's real field names; the translators in this package apply
// the public renames after decoding.

const userQuery = `query($login: String!) {
  user(login: $login) {
    id
    login
    name
    email
    bio
    company
    location
    websiteUrl
    avatarUrl
    url
    createdAt
    updatedAt
    followers { totalCount }
    following { totalCount }
    repositories { totalCount }
  }
}`

const organizationQuery = `query($login: String!) {
  organization(login: $login) {
    id
    login
    name
    description
    email
    location
    websiteUrl
    avatarUrl
    url
    createdAt
    updatedAt
    repositories { totalCount }
    membersWithRole { totalCount }
  }
}`

// repositoryFields is the shared selection for full repository projections.
// The owner selection carries __typename so the concrete member of the
// upstream owner union survives into the public type tag.
const repositoryFields = `
      id
      name
      nameWithOwner
      description
      url
      homepageUrl
      isPrivate
      isFork
      isArchived
      isDisabled
      stargazerCount
      forkCount
      watchers { totalCount }
      primaryLanguage {
        name
        color
      }
      createdAt
      updatedAt
      pushedAt
      defaultBranchRef { name }
      owner {
        __typename
        login
        url
        avatarUrl
      }`

const repositoryQuery = `query($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {` + repositoryFields + `
  }
}`

const repositoriesQuery = `query($login: String!, $first: Int!, $after: String, $orderBy: RepositoryOrder) {
  repositoryOwner(login: $login) {
    repositories(first: $first, after: $after, orderBy: $orderBy) {
      totalCount
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
      edges {
        cursor
        node {` + repositoryFields + `
        }
      }
    }
  }
}`

// repositoryRefFields is the partial projection fetched for issue and pull
// request back-references.
const repositoryRefFields = `
            name
            nameWithOwner
            url
            owner { login }`

const actorFields = `
            login
            avatarUrl
            url`

const issuesQuery = `query($owner: String!, $name: String!, $first: Int!, $after: String, $states: [IssueState!], $orderBy: IssueOrder) {
  repository(owner: $owner, name: $name) {
    issues(first: $first, after: $after, states: $states, orderBy: $orderBy) {
      totalCount
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
      edges {
        cursor
        node {
          id
          number
          title
          body
          state
          url
          createdAt
          updatedAt
          closedAt
          author {` + actorFields + `
          }
          assignees(first: 10) {
            nodes {` + actorFields + `
            }
          }
          labels(first: 20) {
            nodes {
              name
              color
              description
            }
          }
          repository {` + repositoryRefFields + `
          }
        }
      }
    }
  }
}`

const pullRequestsQuery = `query($owner: String!, $name: String!, $first: Int!, $after: String, $states: [PullRequestState!], $orderBy: IssueOrder) {
  repository(owner: $owner, name: $name) {
    pullRequests(first: $first, after: $after, states: $states, orderBy: $orderBy) {
      totalCount
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
      edges {
        cursor
        node {
          id
          number
          title
          body
          state
          url
          isDraft
          mergeable
          baseRefName
          headRefName
          createdAt
          updatedAt
          closedAt
          mergedAt
          author {` + actorFields + `
          }
          assignees(first: 10) {
            nodes {` + actorFields + `
            }
          }
          repository {` + repositoryRefFields + `
          }
        }
      }
    }
  }
}`

// commitsQuery reaches the default branch history through the ref target,
// which is a union; only Commit targets carry history.
const commitsQuery = `query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: $first, after: $after) {
            totalCount
            pageInfo {
              hasNextPage
              hasPreviousPage
              startCursor
              endCursor
            }
            edges {
              cursor
              node {
                oid
                abbreviatedOid
                message
                messageHeadline
                url
                authoredDate
                committedDate
                additions
                deletions
                changedFilesIfAvailable
                author {
                  name
                  email
                  user {` + actorFields + `
                  }
                }
                committer {
                  name
                  email
                  user {` + actorFields + `
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

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
)

type wireCommit struct {
	OID             string    `json:"oid"`
	AbbreviatedOID  string    `json:"abbreviatedOid"`
	Message         string    `json:"message"`
	MessageHeadline string    `json:"messageHeadline"`
	URL             string    `json:"url"`
	AuthoredDate    time.Time `json:"authoredDate"`
	CommittedDate   time.Time `json:"committedDate"`
	Additions       int       `json:"additions"`
	Deletions       int       `json:"deletions"`
	ChangedFiles    *int      `json:"changedFilesIfAvailable"`
	Author          GitActor  `json:"author"`
	Committer       GitActor  `json:"committer"`
}

// synthesizeRepositoryRef builds the back-reference for a commit page from
// the caller's arguments. The upstream history query does not embed the
// repository, so the ref is constructed locally and carries only the
// partial projection.
func synthesizeRepositoryRef(owner, repo string) RepositoryRef {
	return RepositoryRef{
		Name:     repo,
		FullName: owner + "/" + repo,
		URL:      "https://github.com/" + owner + "/" + repo,
		Owner:    OwnerRef{Login: owner},
	}
}

// FetchCommits retrieves a page of default branch commit history. A
// repository without a default branch (empty repository) yields an empty
// connection rather than an error.
func (c *GraphQLClient) FetchCommits(ctx context.Context, token, owner, repo string, opts PageOptions) (*CommitConnection, error) {
	vars := pageVariables(opts.First, opts.After)
	vars["owner"] = owner
	vars["name"] = repo

	var payload struct {
		Repository *struct {
			DefaultBranchRef *struct {
				Target struct {
					History *wireConnection[wireCommit] `json:"history"`
				} `json:"target"`
			} `json:"defaultBranchRef"`
		} `json:"repository"`
	}
	errs, err := c.do(ctx, token, commitsQuery, vars, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, foldErrors(errs)
	}
	if payload.Repository == nil {
		return nil, foldErrors([]QueryError{{
			Type:    "NOT_FOUND",
			Message: "could not resolve to a repository with the name '" + owner + "/" + repo + "'",
		}})
	}
	ref := payload.Repository.DefaultBranchRef
	if ref == nil || ref.Target.History == nil {
		return &CommitConnection{Nodes: []Commit{}, Edges: []Edge[Commit]{}}, nil
	}

	backRef := synthesizeRepositoryRef(owner, repo)
	return buildConnection(*ref.Target.History, func(w wireCommit) Commit {
		changed := 0
		if w.ChangedFiles != nil {
			changed = *w.ChangedFiles
		}
		return Commit{
			OID:             w.OID,
			AbbreviatedOID:  w.AbbreviatedOID,
			Message:         w.Message,
			MessageHeadline: w.MessageHeadline,
			URL:             w.URL,
			AuthoredAt:      w.AuthoredDate,
			CommittedAt:     w.CommittedDate,
			Additions:       w.Additions,
			Deletions:       w.Deletions,
			ChangedFiles:    changed,
			Author:          w.Author,
			Committer:       w.Committer,
			Repo:            backRef,
		}
	}), nil
}

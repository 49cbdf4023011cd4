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

// Package ratelimit observes GitHub API rate limit state. The gateway never
// enforces or waits on limits; it only records the most recent snapshot so
// the health operation can surface it to callers.
package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Snapshot is a point-in-time view of the upstream rate limit budget.
type Snapshot struct {
	// Limit is the maximum point budget per window.
	Limit int `json:"limit"`

	// Remaining is the budget left in the current window.
	Remaining int `json:"remaining"`

	// ResetAt is when the current window ends.
	ResetAt time.Time `json:"resetAt"`

	// Cost is the point cost of the call that produced this snapshot.
	// Zero when the snapshot came from response headers, which do not
	// carry per-call cost.
	Cost int `json:"cost"`
}

// Tracker keeps the most recent rate limit snapshot. It is safe for
// concurrent use; requests overwrite each other in arrival order and the
// gateway only ever reads the latest value.
type Tracker struct {
	mu   sync.RWMutex
	last Snapshot
	seen bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record stores s as the most recent snapshot.
func (t *Tracker) Record(s Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = s
	t.seen = true
}

// Last returns the most recent snapshot. ok is false until the first
// upstream exchange has reported one.
func (t *Tracker) Last() (s Snapshot, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last, t.seen
}

// RecordHeaders extracts the X-RateLimit-* response headers from an upstream
// exchange and records them when present. GitHub attaches these headers to
// GraphQL responses as well as REST ones.
func (t *Tracker) RecordHeaders(h http.Header) {
	s, ok := SnapshotFromHeaders(h)
	if !ok {
		return
	}
	t.Record(s)
}

// SnapshotFromHeaders parses the X-RateLimit-Limit, X-RateLimit-Remaining,
// and X-RateLimit-Reset headers. ok is false when the limit header is absent
// or malformed.
func SnapshotFromHeaders(h http.Header) (Snapshot, bool) {
	limit, err := strconv.Atoi(h.Get("X-RateLimit-Limit"))
	if err != nil {
		return Snapshot{}, false
	}
	s := Snapshot{Limit: limit}
	if remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining")); err == nil {
		s.Remaining = remaining
	}
	if reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		s.ResetAt = time.Unix(reset, 0).UTC()
	}
	return s, true
}

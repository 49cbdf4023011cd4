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

package ratelimit

import (
	"net/http"
	"testing"
	"time"
)

func TestSnapshotFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    Snapshot
		wantOK  bool
	}{
		{
			name: "complete headers",
			headers: map[string]string{
				"X-RateLimit-Limit":     "5000",
				"X-RateLimit-Remaining": "4970",
				"X-RateLimit-Reset":     "1767225600",
			},
			want: Snapshot{
				Limit:     5000,
				Remaining: 4970,
				ResetAt:   time.Unix(1767225600, 0).UTC(),
			},
			wantOK: true,
		},
		{
			name:    "missing limit",
			headers: map[string]string{"X-RateLimit-Remaining": "10"},
			wantOK:  false,
		},
		{
			name:    "malformed limit",
			headers: map[string]string{"X-RateLimit-Limit": "lots"},
			wantOK:  false,
		},
		{
			name:    "limit only",
			headers: map[string]string{"X-RateLimit-Limit": "5000"},
			want:    Snapshot{Limit: 5000},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			got, ok := SnapshotFromHeaders(h)
			if ok != tt.wantOK {
				t.Fatalf("SnapshotFromHeaders() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SnapshotFromHeaders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTrackerRecordAndLast(t *testing.T) {
	tracker := NewTracker()

	if _, ok := tracker.Last(); ok {
		t.Fatal("empty tracker reported a snapshot")
	}

	first := Snapshot{Limit: 5000, Remaining: 100, Cost: 1}
	second := Snapshot{Limit: 5000, Remaining: 99, Cost: 3}
	tracker.Record(first)
	tracker.Record(second)

	got, ok := tracker.Last()
	if !ok {
		t.Fatal("tracker lost its snapshot")
	}
	if got != second {
		t.Errorf("Last() = %+v, want %+v", got, second)
	}
}

func TestTrackerRecordHeadersIgnoresAbsent(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordHeaders(http.Header{})
	if _, ok := tracker.Last(); ok {
		t.Error("RecordHeaders recorded a snapshot from empty headers")
	}

	h := http.Header{}
	h.Set("X-RateLimit-Limit", "5000")
	h.Set("X-RateLimit-Remaining", "4999")
	tracker.RecordHeaders(h)
	got, ok := tracker.Last()
	if !ok || got.Remaining != 4999 {
		t.Errorf("Last() = %+v, %v; want remaining 4999", got, ok)
	}
}

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
	"fmt"
	"io"
	"net/http"

	"github.com/hubgatehq/hubgate/internal/ratelimit"
	"github.com/hubgatehq/hubgate/pkg/version"
)

// maxResponseBytes caps upstream response bodies (10MB) to bound memory use.
const maxResponseBytes = 10 * 1024 * 1024

// baseTransport adds the standard headers and safety limits every upstream
// exchange shares: User-Agent, the response size cap, and recording of
// rate limit headers into the tracker. Authorization is per-request and set
// by the caller, not here.
type baseTransport struct {
	base    http.RoundTripper
	tracker *ratelimit.Tracker
}

func newBaseTransport(tracker *ratelimit.Tracker) http.RoundTripper {
	return &baseTransport{
		base:    http.DefaultTransport,
		tracker: tracker,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *baseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", fmt.Sprintf("hubgate/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if t.tracker != nil {
		t.tracker.RecordHeaders(resp.Header)
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}

// authTransport binds a single credential to a transport. Used by the typed
// rate-limit probe, whose client library offers no per-call header hook.
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

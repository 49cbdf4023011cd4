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

import (
	"strconv"

	"zombiezen.com/go/graphql-server/graphql"

	gwerrors "github.com/hubgatehq/hubgate/internal/errors"
	"github.com/hubgatehq/hubgate/internal/github"
)

func stringArg(args map[string]graphql.Value, name string) string {
	v := args[name]
	if v.IsNull() {
		return ""
	}
	return v.Scalar()
}

// firstArg resolves the page size: absent means the default, and any
// supplied value outside [1,100] is rejected before an upstream exchange is
// attempted.
func firstArg(args map[string]graphql.Value) (int, error) {
	v := args["first"]
	if v.IsNull() {
		return github.DefaultPageSize, nil
	}
	first, err := strconv.Atoi(v.Scalar())
	if err != nil {
		return 0, gwerrors.InvalidArgument("first must be an integer")
	}
	if first < 1 || first > github.MaxPageSize {
		return 0, gwerrors.InvalidArgument("first must be between 1 and %d, got %d", github.MaxPageSize, first)
	}
	return first, nil
}

func pageArgs(args map[string]graphql.Value) (github.PageOptions, error) {
	first, err := firstArg(args)
	if err != nil {
		return github.PageOptions{}, err
	}
	return github.PageOptions{First: first, After: stringArg(args, "after")}, nil
}

func statesArg(args map[string]graphql.Value) []string {
	v := args["states"]
	if v.IsNull() {
		return nil
	}
	states := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		states = append(states, v.At(i).Scalar())
	}
	return states
}

func orderByArg(args map[string]graphql.Value) *github.OrderBy {
	v := args["orderBy"]
	if v.IsNull() {
		return nil
	}
	return &github.OrderBy{
		Field:     v.ValueFor("field").Scalar(),
		Direction: v.ValueFor("direction").Scalar(),
	}
}

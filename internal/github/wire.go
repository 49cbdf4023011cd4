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

// Wire shapes decode the upstream's response layout where it differs from
// the public one. Types whose fields and names already line up (PageInfo,
// Actor, Label, CountConnection) decode directly and need no wire twin.

// wireEdge is an upstream connection edge before reshaping.
type wireEdge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// wireConnection is an upstream connection page. Only edges are selected;
// the public nodes list is rebuilt from them so the two views always agree.
type wireConnection[T any] struct {
	TotalCount int           `json:"totalCount"`
	PageInfo   PageInfo      `json:"pageInfo"`
	Edges      []wireEdge[T] `json:"edges"`
}

// buildConnection reshapes every edge node and derives the nodes list from
// the reshaped edges, in order.
func buildConnection[W, T any](wc wireConnection[W], reshape func(W) T) *Connection[T] {
	conn := &Connection[T]{
		TotalCount: wc.TotalCount,
		PageInfo:   wc.PageInfo,
		Nodes:      make([]T, 0, len(wc.Edges)),
		Edges:      make([]Edge[T], 0, len(wc.Edges)),
	}
	for _, e := range wc.Edges {
		node := reshape(e.Node)
		conn.Edges = append(conn.Edges, Edge[T]{Cursor: e.Cursor, Node: node})
		conn.Nodes = append(conn.Nodes, node)
	}
	return conn
}

// wireRepositoryRef is the partial repository selection embedded in issue
// and pull request nodes.
type wireRepositoryRef struct {
	Name          string   `json:"name"`
	NameWithOwner string   `json:"nameWithOwner"`
	URL           string   `json:"url"`
	Owner         OwnerRef `json:"owner"`
}

func reshapeRepositoryRef(w wireRepositoryRef) RepositoryRef {
	return RepositoryRef{
		Name:     w.Name,
		FullName: w.NameWithOwner,
		URL:      w.URL,
		Owner:    w.Owner,
	}
}

// pageVariables builds the variables common to every list operation.
// After is sent as null for the first page; GitHub treats an empty cursor
// string as malformed.
func pageVariables(first int, after string) map[string]interface{} {
	vars := map[string]interface{}{"first": first}
	if after != "" {
		vars["after"] = after
	}
	return vars
}

// orderByVariable converts an optional sort into the upstream's input
// object form.
func orderByVariable(vars map[string]interface{}, orderBy *OrderBy) {
	if orderBy == nil {
		return
	}
	vars["orderBy"] = map[string]interface{}{
		"field":     orderBy.Field,
		"direction": orderBy.Direction,
	}
}

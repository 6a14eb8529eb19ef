// Package match implements the convex subgraph matching search: given a
// search. Given a rule and a target hypergraph, Iter enumerates a lazy,
// restartable, finite sequence of Match values — each a pair of total
// handle maps embedding the rule's LHS into the target — in a
// deterministic, reproducible order (ascending target-handle tie-break).
//
// The search is a backtracking DFS over an explicit frame stack rather
// than recursion or a goroutine-fed channel, so a caller can stop
// consuming at any point (the interactive "next match" workflow) without
// leaking a blocked goroutine or leaving any external resource to unwind
// (dropping an iterator mid-search leaves nothing to clean up).
package match

import "github.com/chyp-core/chyp/hypergraph"

// Match describes one well-formed embedding of a rule's LHS into a
// target graph: VertexMap and EdgeMap are total maps from every LHS
// handle to a target handle, satisfying label preservation, incidence
// preservation, interior injectivity, boundary gluing, convexity, and
// monogamy preservation.
type Match struct {
	LHS    *hypergraph.Graph
	Target *hypergraph.Graph

	VertexMap map[hypergraph.VHandle]hypergraph.VHandle
	EdgeMap   map[hypergraph.EHandle]hypergraph.EHandle
}

// clone returns an independent copy of m's maps, used when the iterator
// snapshots a completed assignment before continuing to search (the
// live maps keep mutating as the DFS backtracks and explores further).
func (m *Match) clone() *Match {
	vm := make(map[hypergraph.VHandle]hypergraph.VHandle, len(m.VertexMap))
	for k, v := range m.VertexMap {
		vm[k] = v
	}
	em := make(map[hypergraph.EHandle]hypergraph.EHandle, len(m.EdgeMap))
	for k, v := range m.EdgeMap {
		em[k] = v
	}
	return &Match{LHS: m.LHS, Target: m.Target, VertexMap: vm, EdgeMap: em}
}

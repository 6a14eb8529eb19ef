// File: methods_adjacent.go
// Role: incidence queries used by the matcher's forward-checking and by
// the acyclicity check: Successors/Predecessors (edges touching a
// vertex) and InEdges/OutEdges (one-hop edge-to-edge precedence).
// Determinism: all results are returned in incidence-insertion order,
// which for a graph built by the term compiler coincides with
// construction order; callers needing a canonical order sort separately
// (TopologicalOrder does this for the edge-precedes-edge relation).

package hypergraph

// Successors returns the edges for which v appears as a source, one
// entry per occurrence: an edge whose source list repeats v appears
// once for each repetition.
func (g *Graph) Successors(v VHandle) []EHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return append([]EHandle(nil), g.outIncidence[v]...)
}

// Predecessors returns the edges for which v appears as a target.
func (g *Graph) Predecessors(v VHandle) []EHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return append([]EHandle(nil), g.inIncidence[v]...)
}

// InEdges returns the edges e' such that some target of e' is a source
// of e — the edges reachable in one hop "backward" from e.
func (g *Graph) InEdges(e EHandle) []EHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	edge, ok := g.edges[e]
	if !ok {
		return nil
	}
	seen := make(map[EHandle]struct{})
	var out []EHandle
	for _, v := range edge.Sources {
		for _, pred := range g.inIncidence[v] {
			if _, dup := seen[pred]; !dup {
				seen[pred] = struct{}{}
				out = append(out, pred)
			}
		}
	}

	return out
}

// OutEdges returns the edges e' such that some source of e' is a target
// of e — the edges reachable in one hop "forward" from e.
func (g *Graph) OutEdges(e EHandle) []EHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	edge, ok := g.edges[e]
	if !ok {
		return nil
	}
	seen := make(map[EHandle]struct{})
	var out []EHandle
	for _, v := range edge.Targets {
		for _, succ := range g.outIncidence[v] {
			if _, dup := seen[succ]; !dup {
				seen[succ] = struct{}{}
				out = append(out, succ)
			}
		}
	}

	return out
}

// InDegree and OutDegree count incidence occurrences, used by the
// matcher's monogamy forward-check (constraint 6): a matched interior
// vertex must have the same degree in the target as the corresponding
// LHS vertex, i.e. nothing outside the match may attach to it.
func (g *Graph) InDegree(v VHandle) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.inIncidence[v])
}

func (g *Graph) OutDegree(v VHandle) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.outIncidence[v])
}

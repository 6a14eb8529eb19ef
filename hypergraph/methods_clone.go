// File: methods_clone.go
// Role: deep copy of a Graph. Grounded on core/methods_clone.go's
// "allocate fresh handles, copy attribute data" idiom; here Clone
// preserves handle identity (unlike the rewriter's insertion step,
// which allocates fresh handles for RHS content) because matching and
// isomorphism testing need a graph snapshot with stable handles.

package hypergraph

// Clone returns a deep copy of g: every vertex and edge is duplicated
// with the same handles, and the boundary and incidence index are
// rebuilt to match. The clone shares no mutable state with g.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	g.muEdge.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdge.RUnlock()

	out := New()
	out.nextVertexID = g.nextVertexID
	out.nextEdgeID = g.nextEdgeID

	for h, v := range g.vertices {
		out.vertices[h] = &Vertex{ID: v.ID, Pos: v.Pos, Value: v.Value}
	}
	for h, e := range g.edges {
		out.edges[h] = &Edge{
			ID:      e.ID,
			Sources: append([]VHandle(nil), e.Sources...),
			Targets: append([]VHandle(nil), e.Targets...),
			Pos:     e.Pos,
			Value:   e.Value,
			Hyper:   e.Hyper,
		}
	}
	for v, list := range g.outIncidence {
		out.outIncidence[v] = append([]EHandle(nil), list...)
	}
	for v, list := range g.inIncidence {
		out.inIncidence[v] = append([]EHandle(nil), list...)
	}
	out.inputs = append([]VHandle(nil), g.inputs...)
	out.outputs = append([]VHandle(nil), g.outputs...)

	return out
}

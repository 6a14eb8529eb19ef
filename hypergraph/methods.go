// File: methods.go
// Role: vertex/edge lifecycle (AddVertex/AddEdge/RemoveVertex/RemoveEdge),
// boundary mutation (SetInputs/SetOutputs), and handle-keyed lookups.
// Determinism: Vertices()/Edges() return handles sorted ascending.
// Concurrency: mutations take the relevant write lock; lookups take the
// matching read lock; AddEdge additionally touches muVert only via the
// already-locked caller-supplied handles (no vertex allocation inside).

package hypergraph

import "sort"

// AddVertex allocates a fresh vertex handle with the given cosmetic
// position and value label. Complexity: O(1).
func (g *Graph) AddVertex(pos Pos, value string) VHandle {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.nextVertexID++
	h := VHandle(g.nextVertexID)
	g.vertices[h] = &Vertex{ID: h, Pos: pos, Value: value}

	return h
}

// AddEdge allocates a fresh edge handle with the given ordered source and
// target vertex lists, recording incidence on both sides. All handles in
// sources/targets must already exist in the graph, or ErrVertexNotFound
// is returned and no edge is added.
//
// Complexity: O(|sources|+|targets|).
func (g *Graph) AddEdge(sources, targets []VHandle, pos Pos, value string, hyper bool) (EHandle, error) {
	g.muVert.RLock()
	for _, v := range sources {
		if _, ok := g.vertices[v]; !ok {
			g.muVert.RUnlock()
			return 0, ErrVertexNotFound
		}
	}
	for _, v := range targets {
		if _, ok := g.vertices[v]; !ok {
			g.muVert.RUnlock()
			return 0, ErrVertexNotFound
		}
	}
	g.muVert.RUnlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.nextEdgeID++
	h := EHandle(g.nextEdgeID)
	srcCopy := append([]VHandle(nil), sources...)
	tgtCopy := append([]VHandle(nil), targets...)
	g.edges[h] = &Edge{ID: h, Sources: srcCopy, Targets: tgtCopy, Pos: pos, Value: value, Hyper: hyper}

	for _, v := range srcCopy {
		g.outIncidence[v] = append(g.outIncidence[v], h)
	}
	for _, v := range tgtCopy {
		g.inIncidence[v] = append(g.inIncidence[v], h)
	}

	return h, nil
}

// RemoveVertex deletes a vertex and purges it from the boundary lists and
// incidence index. It does not remove edges still referencing the vertex;
// callers that need to delete an interior subgraph should remove its
// edges first (see rewrite, which deletes in that order).
//
// Complexity: O(|inputs|+|outputs|) for boundary compaction.
func (g *Graph) RemoveVertex(h VHandle) error {
	g.muVert.Lock()
	if _, ok := g.vertices[h]; !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	delete(g.vertices, h)
	g.muVert.Unlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	delete(g.outIncidence, h)
	delete(g.inIncidence, h)
	g.inputs = removeHandle(g.inputs, h)
	g.outputs = removeHandle(g.outputs, h)

	return nil
}

func removeHandle(list []VHandle, h VHandle) []VHandle {
	out := list[:0:0]
	for _, v := range list {
		if v != h {
			out = append(out, v)
		}
	}
	return out
}

// RemoveEdge deletes an edge and its incidence entries.
// Complexity: O(|sources|+|targets|) to compact incidence lists.
func (g *Graph) RemoveEdge(h EHandle) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[h]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, h)

	for _, v := range e.Sources {
		g.outIncidence[v] = removeEdgeHandle(g.outIncidence[v], h)
	}
	for _, v := range e.Targets {
		g.inIncidence[v] = removeEdgeHandle(g.inIncidence[v], h)
	}

	return nil
}

func removeEdgeHandle(list []EHandle, h EHandle) []EHandle {
	out := list[:0:0]
	for _, e := range list {
		if e != h {
			out = append(out, e)
		}
	}
	return out
}

// SetInputs replaces the ordered input boundary. The graph does not
// auto-add identity wires; callers (the term compiler, chypio) are
// responsible for ensuring every handle already exists.
func (g *Graph) SetInputs(list []VHandle) error {
	g.muVert.RLock()
	for _, v := range list {
		if _, ok := g.vertices[v]; !ok {
			g.muVert.RUnlock()
			return ErrVertexNotFound
		}
	}
	g.muVert.RUnlock()

	g.muEdge.Lock()
	g.inputs = append([]VHandle(nil), list...)
	g.muEdge.Unlock()

	return nil
}

// SetOutputs replaces the ordered output boundary; see SetInputs.
func (g *Graph) SetOutputs(list []VHandle) error {
	g.muVert.RLock()
	for _, v := range list {
		if _, ok := g.vertices[v]; !ok {
			g.muVert.RUnlock()
			return ErrVertexNotFound
		}
	}
	g.muVert.RUnlock()

	g.muEdge.Lock()
	g.outputs = append([]VHandle(nil), list...)
	g.muEdge.Unlock()

	return nil
}

// Inputs returns a copy of the ordered input boundary.
func (g *Graph) Inputs() []VHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return append([]VHandle(nil), g.inputs...)
}

// Outputs returns a copy of the ordered output boundary.
func (g *Graph) Outputs() []VHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return append([]VHandle(nil), g.outputs...)
}

// Type returns the morphism arity (|inputs|, |outputs|).
func (g *Graph) Type() (int, int) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.inputs), len(g.outputs)
}

// Vertex looks up a vertex by handle.
func (g *Graph) Vertex(h VHandle) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[h]
	return v, ok
}

// Edge looks up an edge by handle.
func (g *Graph) Edge(h EHandle) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[h]
	return e, ok
}

// Vertices returns all vertex handles, sorted ascending for deterministic
// iteration order.
func (g *Graph) Vertices() []VHandle {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]VHandle, 0, len(g.vertices))
	for h := range g.vertices {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all edge handles, sorted ascending for deterministic
// iteration order.
func (g *Graph) Edges() []EHandle {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]EHandle, 0, len(g.edges))
	for h := range g.edges {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount and EdgeCount report arena sizes in O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

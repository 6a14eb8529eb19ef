// Package iso tests two hypergraphs for structural isomorphism: a
// bijection on vertices and edges that preserves labels, incidence, and
// boundary order. This underlies "is this rewrite result the graph the
// proof claims it is" checks in package proof, and the testable
// property that isomorphic diagrams compile to isomorphic graphs.
//
// The search mirrors package match's backtracking shape (topologically
// ordered edge steps, then isolated-vertex steps), but every vertex —
// boundary included — is required to unify injectively, since this is
// whole-graph equality rather than subgraph embedding.
package iso

import "github.com/chyp-core/chyp/hypergraph"

type stepKind int

const (
	stepEdge stepKind = iota
	stepVertex
)

type step struct {
	kind   stepKind
	edge   hypergraph.EHandle
	vertex hypergraph.VHandle
}

type undoEntry struct {
	isEdge bool
	v, bv  hypergraph.VHandle
	e, be  hypergraph.EHandle
}

type solver struct {
	a, b *hypergraph.Graph

	steps          []step
	edgeCandidates map[hypergraph.EHandle][]hypergraph.EHandle
	vertCandidates map[hypergraph.VHandle][]hypergraph.VHandle

	vmap  map[hypergraph.VHandle]hypergraph.VHandle
	vused map[hypergraph.VHandle]hypergraph.VHandle
	emap  map[hypergraph.EHandle]hypergraph.EHandle
	eused map[hypergraph.EHandle]hypergraph.EHandle
}

// IsIsomorphic reports whether a and b are isomorphic: same boundary
// arity, a bijection between their vertices and edges that preserves
// value labels and incidence structure, and agreement on boundary
// order (a.Inputs()[i] must correspond to b.Inputs()[i], not merely
// some permutation of it).
func IsIsomorphic(a, b *hypergraph.Graph) bool {
	ain, aout := a.Type()
	bin, bout := b.Type()
	if ain != bin || aout != bout {
		return false
	}
	if a.VertexCount() != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}

	order, err := a.TopologicalOrder()
	if err != nil {
		return false
	}

	s := &solver{
		a: a, b: b,
		edgeCandidates: make(map[hypergraph.EHandle][]hypergraph.EHandle),
		vertCandidates: make(map[hypergraph.VHandle][]hypergraph.VHandle),
		vmap:           make(map[hypergraph.VHandle]hypergraph.VHandle),
		vused:          make(map[hypergraph.VHandle]hypergraph.VHandle),
		emap:           make(map[hypergraph.EHandle]hypergraph.EHandle),
		eused:          make(map[hypergraph.EHandle]hypergraph.EHandle),
	}

	bEdges := b.Edges()
	for _, e := range order {
		s.steps = append(s.steps, step{kind: stepEdge, edge: e})
		ae, _ := a.Edge(e)
		s.edgeCandidates[e] = filterEdges(ae, b, bEdges)
	}

	bVerts := b.Vertices()
	for _, v := range a.Vertices() {
		if a.InDegree(v) == 0 && a.OutDegree(v) == 0 {
			s.steps = append(s.steps, step{kind: stepVertex, vertex: v})
			av, _ := a.Vertex(v)
			s.vertCandidates[v] = filterVertices(av, b, bVerts)
		}
	}

	ains, aouts := a.Inputs(), a.Outputs()
	bins, bouts := b.Inputs(), b.Outputs()
	for i := range ains {
		if _, ok := s.unify(ains[i], bins[i]); !ok {
			return false
		}
	}
	for i := range aouts {
		if _, ok := s.unify(aouts[i], bouts[i]); !ok {
			return false
		}
	}

	return s.search(0)
}

func filterEdges(ae *hypergraph.Edge, b *hypergraph.Graph, bEdges []hypergraph.EHandle) []hypergraph.EHandle {
	var out []hypergraph.EHandle
	for _, be := range bEdges {
		ce, _ := b.Edge(be)
		if ce.Value == ae.Value && len(ce.Sources) == len(ae.Sources) && len(ce.Targets) == len(ae.Targets) {
			out = append(out, be)
		}
	}
	return out
}

func filterVertices(av *hypergraph.Vertex, b *hypergraph.Graph, bVerts []hypergraph.VHandle) []hypergraph.VHandle {
	var out []hypergraph.VHandle
	for _, bv := range bVerts {
		cv, _ := b.Vertex(bv)
		if cv.Value == av.Value {
			out = append(out, bv)
		}
	}
	return out
}

func (s *solver) search(i int) bool {
	if i == len(s.steps) {
		return true
	}

	st := s.steps[i]
	switch st.kind {
	case stepEdge:
		for _, be := range s.edgeCandidates[st.edge] {
			undo, ok := s.tryEdge(st.edge, be)
			if !ok {
				continue
			}
			if s.search(i + 1) {
				return true
			}
			s.rollback(undo)
		}
	case stepVertex:
		for _, bv := range s.vertCandidates[st.vertex] {
			newly, ok := s.unify(st.vertex, bv)
			if !ok {
				continue
			}
			var undo []undoEntry
			if newly {
				undo = []undoEntry{{v: st.vertex, bv: bv}}
			}
			if s.search(i + 1) {
				return true
			}
			s.rollback(undo)
		}
	}
	return false
}

func (s *solver) tryEdge(e, be hypergraph.EHandle) ([]undoEntry, bool) {
	if _, used := s.eused[be]; used {
		return nil, false
	}
	ae, _ := s.a.Edge(e)
	ce, _ := s.b.Edge(be)

	var undo []undoEntry
	ok := true
	for i, v := range ae.Sources {
		newly, success := s.unify(v, ce.Sources[i])
		if !success {
			ok = false
			break
		}
		if newly {
			undo = append(undo, undoEntry{v: v, bv: ce.Sources[i]})
		}
	}
	if ok {
		for i, v := range ae.Targets {
			newly, success := s.unify(v, ce.Targets[i])
			if !success {
				ok = false
				break
			}
			if newly {
				undo = append(undo, undoEntry{v: v, bv: ce.Targets[i]})
			}
		}
	}
	if !ok {
		s.rollback(undo)
		return nil, false
	}

	s.emap[e] = be
	s.eused[be] = e
	undo = append(undo, undoEntry{isEdge: true, e: e, be: be})
	return undo, true
}

// unify binds a-vertex v to b-vertex bv, requiring a global bijection
// (no two distinct a-vertices may claim the same b-vertex and vice
// versa) and equal vertex value labels. Reports (newlyAssigned, ok).
func (s *solver) unify(v, bv hypergraph.VHandle) (bool, bool) {
	if existing, ok := s.vmap[v]; ok {
		return false, existing == bv
	}
	if owner, used := s.vused[bv]; used && owner != v {
		return false, false
	}
	av, _ := s.a.Vertex(v)
	bvert, _ := s.b.Vertex(bv)
	if av.Value != bvert.Value {
		return false, false
	}
	s.vmap[v] = bv
	s.vused[bv] = v
	return true, true
}

func (s *solver) rollback(undo []undoEntry) {
	for i := len(undo) - 1; i >= 0; i-- {
		u := undo[i]
		if u.isEdge {
			delete(s.emap, u.e)
			delete(s.eused, u.be)
		} else {
			delete(s.vmap, u.v)
			delete(s.vused, u.bv)
		}
	}
}

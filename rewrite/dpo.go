// File: dpo.go
// Role: double-pushout rewriting. Given a rule and a match of its LHS
// into a target, Apply produces the target with the matched occurrence
// replaced by the rule's RHS: delete the LHS image's interior, then
// glue in a fresh copy of the RHS along the shared interface (the
// boundary vertices the match identified).
//
// Left-linearity of the LHS (enforced by rule.New) means every interior
// vertex's image is claimed by exactly one LHS vertex, so deletion never
// double-frees a target vertex.
package rewrite

import (
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/match"
	"github.com/chyp-core/chyp/rule"
)

// Result is the outcome of one rewrite step: the resulting graph, plus
// the embedding of the rule's RHS into it (so a proof step can chain
// further rewrites against the freshly inserted material).
type Result struct {
	Graph *hypergraph.Graph

	RHSVertexMap map[hypergraph.VHandle]hypergraph.VHandle
	RHSEdgeMap   map[hypergraph.EHandle]hypergraph.EHandle
}

// Apply performs one DPO rewrite step: interface identification,
// deletion of m's image, insertion of a fresh copy of r.RHS, and
// gluing along the interface. m.Target is left untouched; Apply works
// on a clone.
func Apply(r *rule.Rule, m *match.Match) (*Result, error) {
	g := m.Target.Clone()

	lhsIn, lhsOut := r.LHS.Inputs(), r.LHS.Outputs()
	interfaceIn := make([]hypergraph.VHandle, len(lhsIn))
	for i, v := range lhsIn {
		interfaceIn[i] = m.VertexMap[v]
	}
	interfaceOut := make([]hypergraph.VHandle, len(lhsOut))
	for i, v := range lhsOut {
		interfaceOut[i] = m.VertexMap[v]
	}

	if err := deleteImage(g, r, m); err != nil {
		return nil, err
	}

	rhsVertexMap := gluingVertexMap(r, interfaceIn, interfaceOut)
	insertFreshVertices(g, r, rhsVertexMap)

	rhsEdgeMap, err := insertEdges(g, r, rhsVertexMap)
	if err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
	}

	return &Result{Graph: g, RHSVertexMap: rhsVertexMap, RHSEdgeMap: rhsEdgeMap}, nil
}

// deleteImage removes every edge in m's image, then every interior
// (non-boundary) LHS vertex's image. Boundary vertex images are the
// interface and survive to be reused by the RHS.
func deleteImage(g *hypergraph.Graph, r *rule.Rule, m *match.Match) error {
	for _, te := range m.EdgeMap {
		if err := g.RemoveEdge(te); err != nil {
			return fmt.Errorf("rewrite: deleting matched edge: %w", err)
		}
	}

	boundary := make(map[hypergraph.VHandle]bool)
	for _, v := range r.LHS.Inputs() {
		boundary[v] = true
	}
	for _, v := range r.LHS.Outputs() {
		boundary[v] = true
	}

	for _, lv := range r.LHS.Vertices() {
		if boundary[lv] {
			continue
		}
		tv := m.VertexMap[lv]
		if err := g.RemoveVertex(tv); err != nil {
			return fmt.Errorf("rewrite: deleting matched vertex: %w", err)
		}
	}

	return nil
}

// gluingVertexMap seeds the RHS-to-result vertex map with the interface
// identification: RHS boundary vertices are identified with the target
// vertices the match's LHS boundary resolved to, position by position.
// rule.New rejects a non-left-linear RHS, so no RHS vertex appears twice
// across inputs/outputs and this loop never overwrites an earlier
// identification with a later one.
func gluingVertexMap(r *rule.Rule, interfaceIn, interfaceOut []hypergraph.VHandle) map[hypergraph.VHandle]hypergraph.VHandle {
	rhsVertexMap := make(map[hypergraph.VHandle]hypergraph.VHandle)
	for i, v := range r.RHS.Inputs() {
		rhsVertexMap[v] = interfaceIn[i]
	}
	for i, v := range r.RHS.Outputs() {
		rhsVertexMap[v] = interfaceOut[i]
	}
	return rhsVertexMap
}

// insertFreshVertices allocates a new target vertex for every RHS
// vertex not already identified with an interface vertex.
func insertFreshVertices(g *hypergraph.Graph, r *rule.Rule, rhsVertexMap map[hypergraph.VHandle]hypergraph.VHandle) {
	for _, rv := range r.RHS.Vertices() {
		if _, done := rhsVertexMap[rv]; done {
			continue
		}
		rvert, _ := r.RHS.Vertex(rv)
		rhsVertexMap[rv] = g.AddVertex(rvert.Pos, rvert.Value)
	}
}

// insertEdges copies every RHS edge into g, translating its endpoints
// through rhsVertexMap.
func insertEdges(g *hypergraph.Graph, r *rule.Rule, rhsVertexMap map[hypergraph.VHandle]hypergraph.VHandle) (map[hypergraph.EHandle]hypergraph.EHandle, error) {
	rhsEdgeMap := make(map[hypergraph.EHandle]hypergraph.EHandle)
	for _, re := range r.RHS.Edges() {
		redge, _ := r.RHS.Edge(re)
		srcs := remapVertices(redge.Sources, rhsVertexMap)
		tgts := remapVertices(redge.Targets, rhsVertexMap)
		ne, err := g.AddEdge(srcs, tgts, redge.Pos, redge.Value, redge.Hyper)
		if err != nil {
			return nil, fmt.Errorf("rewrite: inserting rhs edge: %w", err)
		}
		rhsEdgeMap[re] = ne
	}
	return rhsEdgeMap, nil
}

func remapVertices(in []hypergraph.VHandle, m map[hypergraph.VHandle]hypergraph.VHandle) []hypergraph.VHandle {
	out := make([]hypergraph.VHandle, len(in))
	for i, v := range in {
		out[i] = m[v]
	}
	return out
}

// File: iter.go
// Role: the backtracking search that enumerates matches,
// driven through an explicit frame stack so Next can be called
// repeatedly to pull one Match at a time and stopped (dropped) at any
// point without leaving goroutines or other resources to clean up.
//
// Determinism: LHS edges are visited in hypergraph.TopologicalOrder
// (itself reproducible for a fixed LHS), and for each LHS edge the
// candidate target edges are tried in ascending target-handle order —
// a reproducible, deterministic enumeration order.

package match

import (
	"context"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/rule"
)

type stepKind int

const (
	stepEdge stepKind = iota
	stepVertex
)

// step is one decision point in the search order: bind one LHS edge to
// a candidate target edge, or (for LHS vertices untouched by any LHS
// edge — isolated boundary passthroughs) bind one LHS vertex to a
// candidate target vertex.
type step struct {
	kind   stepKind
	edge   hypergraph.EHandle
	vertex hypergraph.VHandle
}

type undoEntry struct {
	isEdge bool
	v, tv  hypergraph.VHandle
	e, te  hypergraph.EHandle
}

type frame struct {
	stepIdx  int
	candIdx  int
	verified bool
	undo     []undoEntry
}

// Iter enumerates matches of a rule's LHS into a target graph. Construct
// with New; call Next repeatedly (optionally passing a cancellable
// context) until it returns ok=false.
type Iter struct {
	lhs    *hypergraph.Graph
	target *hypergraph.Graph

	steps            []step
	edgeCandidates   map[hypergraph.EHandle][]hypergraph.EHandle
	vertexCandidates map[hypergraph.VHandle][]hypergraph.VHandle
	lhsBoundary      map[hypergraph.VHandle]bool

	vertexMap             map[hypergraph.VHandle]hypergraph.VHandle
	edgeMap               map[hypergraph.EHandle]hypergraph.EHandle
	usedNonBoundaryTarget map[hypergraph.VHandle]hypergraph.VHandle
	usedTargetEdge        map[hypergraph.EHandle]hypergraph.EHandle

	stack []frame

	trivial         bool // LHS has no vertices at all (e.g. refl): match vacuously
	trivialEmitted  bool
	done            bool
}

// New constructs a restartable match iterator for r.LHS against target.
// The LHS is assumed already validated (monogamous, acyclic) by
// rule.New; target is read-only for the lifetime of the iterator.
func New(r *rule.Rule, target *hypergraph.Graph) *Iter {
	lhs := r.LHS

	it := &Iter{
		lhs:                   lhs,
		target:                target,
		edgeCandidates:        make(map[hypergraph.EHandle][]hypergraph.EHandle),
		vertexCandidates:      make(map[hypergraph.VHandle][]hypergraph.VHandle),
		lhsBoundary:           make(map[hypergraph.VHandle]bool),
		vertexMap:             make(map[hypergraph.VHandle]hypergraph.VHandle),
		edgeMap:               make(map[hypergraph.EHandle]hypergraph.EHandle),
		usedNonBoundaryTarget: make(map[hypergraph.VHandle]hypergraph.VHandle),
		usedTargetEdge:        make(map[hypergraph.EHandle]hypergraph.EHandle),
	}

	for _, v := range lhs.Inputs() {
		it.lhsBoundary[v] = true
	}
	for _, v := range lhs.Outputs() {
		it.lhsBoundary[v] = true
	}

	order, _ := lhs.TopologicalOrder() // lhs is already validated acyclic

	targetEdges := target.Edges()
	for _, e := range order {
		it.steps = append(it.steps, step{kind: stepEdge, edge: e})
		le, _ := lhs.Edge(e)
		it.edgeCandidates[e] = filterEdgeCandidates(lhs, le, target, targetEdges)
	}

	targetVerts := target.Vertices()
	for _, v := range lhs.Vertices() {
		if lhs.InDegree(v) == 0 && lhs.OutDegree(v) == 0 {
			it.steps = append(it.steps, step{kind: stepVertex, vertex: v})
			lv, _ := lhs.Vertex(v)
			it.vertexCandidates[v] = filterVertexCandidates(lv, target, targetVerts)
		}
	}

	if lhs.VertexCount() == 0 {
		it.trivial = true
	}

	it.stack = []frame{{}}

	return it
}

func filterEdgeCandidates(lhs *hypergraph.Graph, le *hypergraph.Edge, target *hypergraph.Graph, targetEdges []hypergraph.EHandle) []hypergraph.EHandle {
	var out []hypergraph.EHandle
	for _, te := range targetEdges {
		ce, _ := target.Edge(te)
		if ce.Value == le.Value && len(ce.Sources) == len(le.Sources) && len(ce.Targets) == len(le.Targets) {
			out = append(out, te)
		}
	}
	return out
}

func filterVertexCandidates(lv *hypergraph.Vertex, target *hypergraph.Graph, targetVerts []hypergraph.VHandle) []hypergraph.VHandle {
	var out []hypergraph.VHandle
	for _, tv := range targetVerts {
		cv, _ := target.Vertex(tv)
		if cv.Value == lv.Value {
			out = append(out, tv)
		}
	}
	return out
}

// Next advances the search and returns the next Match, or ok=false once
// the sequence is exhausted or ctx is done. It is safe to stop calling
// Next at any point; no cleanup is required.
func (it *Iter) Next(ctx context.Context) (*Match, bool) {
	if it.done {
		return nil, false
	}

	if it.trivial {
		if it.trivialEmitted {
			it.done = true
			return nil, false
		}
		it.trivialEmitted = true
		return &Match{
			LHS:       it.lhs,
			Target:    it.target,
			VertexMap: map[hypergraph.VHandle]hypergraph.VHandle{},
			EdgeMap:   map[hypergraph.EHandle]hypergraph.EHandle{},
		}, true
	}

	for {
		select {
		case <-ctx.Done():
			it.done = true
			return nil, false
		default:
		}

		if len(it.stack) == 0 {
			it.done = true
			return nil, false
		}
		top := &it.stack[len(it.stack)-1]

		if top.stepIdx == len(it.steps) {
			if !top.verified {
				top.verified = true
				if it.isImageConvex() {
					return it.snapshot(), true
				}
			}
			it.rollback(top.undo)
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		s := it.steps[top.stepIdx]
		switch s.kind {
		case stepEdge:
			cands := it.edgeCandidates[s.edge]
			if top.candIdx >= len(cands) {
				it.rollback(top.undo)
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			cand := cands[top.candIdx]
			top.candIdx++
			if undo, ok := it.tryAssignEdge(s.edge, cand); ok {
				it.stack = append(it.stack, frame{stepIdx: top.stepIdx + 1, undo: undo})
			}

		case stepVertex:
			cands := it.vertexCandidates[s.vertex]
			if top.candIdx >= len(cands) {
				it.rollback(top.undo)
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			cand := cands[top.candIdx]
			top.candIdx++
			newly, ok := it.unify(s.vertex, cand)
			if ok {
				var undo []undoEntry
				if newly {
					undo = append(undo, undoEntry{v: s.vertex, tv: cand})
				}
				it.stack = append(it.stack, frame{stepIdx: top.stepIdx + 1, undo: undo})
			}
		}
	}
}

// unify binds LHS vertex v to target vertex tv, enforcing interior
// injectivity and monogamy preservation (constraints 3 and 6) for
// non-boundary v; boundary v may unify non-injectively (constraint 4).
// Reports (newlyAssigned, ok).
func (it *Iter) unify(v, tv hypergraph.VHandle) (bool, bool) {
	if existing, ok := it.vertexMap[v]; ok {
		return false, existing == tv
	}

	if it.lhsBoundary[v] {
		it.vertexMap[v] = tv
		return true, true
	}

	if owner, used := it.usedNonBoundaryTarget[tv]; used && owner != v {
		return false, false
	}
	if it.target.InDegree(tv) != it.lhs.InDegree(v) || it.target.OutDegree(tv) != it.lhs.OutDegree(v) {
		return false, false
	}

	it.vertexMap[v] = tv
	it.usedNonBoundaryTarget[tv] = v
	return true, true
}

// tryAssignEdge attempts to bind LHS edge e to target edge cand,
// enforcing label preservation (1), incidence preservation (2), and
// edge injectivity. On failure it rolls back any partial vertex
// unifications it made before returning ok=false.
func (it *Iter) tryAssignEdge(e, cand hypergraph.EHandle) ([]undoEntry, bool) {
	if _, used := it.usedTargetEdge[cand]; used {
		return nil, false
	}

	le, _ := it.lhs.Edge(e)
	ce, _ := it.target.Edge(cand)
	if le.Value != ce.Value || len(le.Sources) != len(ce.Sources) || len(le.Targets) != len(ce.Targets) {
		return nil, false
	}

	var undo []undoEntry
	ok := true
	for i, v := range le.Sources {
		newly, success := it.unify(v, ce.Sources[i])
		if !success {
			ok = false
			break
		}
		if newly {
			undo = append(undo, undoEntry{v: v, tv: ce.Sources[i]})
		}
	}
	if ok {
		for i, v := range le.Targets {
			newly, success := it.unify(v, ce.Targets[i])
			if !success {
				ok = false
				break
			}
			if newly {
				undo = append(undo, undoEntry{v: v, tv: ce.Targets[i]})
			}
		}
	}
	if !ok {
		it.rollback(undo)
		return nil, false
	}

	it.edgeMap[e] = cand
	it.usedTargetEdge[cand] = e
	undo = append(undo, undoEntry{isEdge: true, e: e, te: cand})

	return undo, true
}

func (it *Iter) rollback(undo []undoEntry) {
	for i := len(undo) - 1; i >= 0; i-- {
		u := undo[i]
		if u.isEdge {
			delete(it.edgeMap, u.e)
			delete(it.usedTargetEdge, u.te)
		} else {
			delete(it.vertexMap, u.v)
			delete(it.usedNonBoundaryTarget, u.tv)
		}
	}
}

// isImageConvex performs the final, whole-image verification of
// convexity (5); label/incidence/injectivity/monogamy (1,2,3,4,6) are
// all enforced incrementally and monotonically by unify/tryAssignEdge,
// so no full recheck of those is needed here.
func (it *Iter) isImageConvex() bool {
	image := make(map[hypergraph.EHandle]struct{}, len(it.edgeMap))
	for _, te := range it.edgeMap {
		image[te] = struct{}{}
	}
	return isConvex(it.target, image)
}

func (it *Iter) snapshot() *Match {
	m := &Match{LHS: it.lhs, Target: it.target, VertexMap: it.vertexMap, EdgeMap: it.edgeMap}
	return m.clone()
}

// Collect drains up to max matches from it (max<=0 means unbounded,
// bounded only by the rule/target's finite search space); it is a
// convenience for tests and examples, not part of the lazy contract
// itself.
func Collect(ctx context.Context, it *Iter, max int) []*Match {
	var out []*Match
	for max <= 0 || len(out) < max {
		m, ok := it.Next(ctx)
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}

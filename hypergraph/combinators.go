// File: combinators.go
// Role: the algebraic primitives the term compiler
// folds over a term tree with: Identity, Generator, Permutation, Tensor
// (disjoint union with concatenated boundary), and Compose (sequential
// composition, unifying g1's outputs with g2's inputs under a type
// check). Grounded on core/methods_clone.go's "build a fresh graph,
// copy attribute data, remap handles" idiom, applied here to merging
// two graphs rather than duplicating one.

package hypergraph

// Identity builds the graph for the identity morphism on n wires: n
// vertices, no edges, each vertex used as both the i-th input and i-th
// output.
func Identity(n int) *Graph {
	g := New()
	vs := make([]VHandle, n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(Pos{}, "")
	}
	_ = g.SetInputs(vs)
	_ = g.SetOutputs(append([]VHandle(nil), vs...))
	return g
}

// Generator builds the graph for a single labeled box: arityIn fresh
// input vertices, arityOut fresh output vertices, and one edge from the
// inputs to the outputs carrying the given label. Boundary vertices get
// the empty (untyped) wire value, not the box's own label, so that
// Compose can freely sequence differently-labeled generators; a wire
// value is only meaningful on graphs that opt into it by construction.
func Generator(label string, arityIn, arityOut int) *Graph {
	g := New()
	ins := make([]VHandle, arityIn)
	for i := range ins {
		ins[i] = g.AddVertex(Pos{}, "")
	}
	outs := make([]VHandle, arityOut)
	for i := range outs {
		outs[i] = g.AddVertex(Pos{}, "")
	}
	_, _ = g.AddEdge(ins, outs, Pos{}, label, true)
	_ = g.SetInputs(ins)
	_ = g.SetOutputs(outs)
	return g
}

// Permutation builds a graph with len(perm) boundary vertices wired so
// that the i-th output equals the perm[i]-th input — i.e. output wire i
// carries the value that arrived on input wire perm[i]. perm must be a
// bijection on {0,...,n-1}; ErrNotPermutation otherwise.
func Permutation(perm []int) (*Graph, error) {
	n := len(perm)
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, ErrNotPermutation
		}
		seen[p] = true
	}

	g := New()
	vs := make([]VHandle, n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(Pos{}, "")
	}
	outs := make([]VHandle, n)
	for i, p := range perm {
		outs[i] = vs[p]
	}
	_ = g.SetInputs(vs)
	_ = g.SetOutputs(outs)

	return g, nil
}

// Tensor builds the disjoint union (parallel composition) of g1 and g2:
// g1's vertices and edges first, then g2's, with fresh handles allocated
// for g2's content to avoid collisions; the boundary is the
// concatenation inputs(g1)++inputs(g2), outputs(g1)++outputs(g2).
func Tensor(g1, g2 *Graph) *Graph {
	out := g1.Clone()
	remap := out.absorb(g2)

	out.inputs = append(out.inputs, remapList(g2.Inputs(), remap)...)
	out.outputs = append(out.outputs, remapList(g2.Outputs(), remap)...)

	return out
}

// Compose builds the sequential composition of g1 and g2: requires
// |outputs(g1)| == |inputs(g2)|, then unifies the i-th output vertex of
// g1 with the i-th input vertex of g2 (quotienting the pair into g1's
// vertex, which survives). Composition fails with ErrArityMismatch on a
// boundary-size mismatch, or ErrValueMismatch if a unified pair carries
// different value labels ("composition fails with a type
// error" clause); on either error no graph is returned.
func Compose(g1, g2 *Graph) (*Graph, error) {
	g1outs := g1.Outputs()
	g2ins := g2.Inputs()
	if len(g1outs) != len(g2ins) {
		return nil, ErrArityMismatch
	}

	out := g1.Clone()
	remap := out.absorb(g2)

	// resolved tracks, for a vertex quotient has already folded away, the
	// surviving vertex it was folded into. g2 may repeat a vertex across
	// its own boundary (legal per the boundary-repetition rule), so the
	// same remap[g2ins[i]] handle can come up more than once after its
	// first occurrence has already been quotiented elsewhere; resolve
	// follows the chain to the current representative instead of hitting
	// the now-deleted vertex.
	resolved := make(map[VHandle]VHandle)
	resolve := func(v VHandle) VHandle {
		for {
			k, ok := resolved[v]
			if !ok {
				return v
			}
			v = k
		}
	}

	// Quotient: redirect every incidence of the image of g2's i-th input
	// onto g1's i-th output vertex, then drop the now-unused g2 vertex.
	for i, g1v := range g1outs {
		g1v = resolve(g1v)
		g2v := resolve(remap[g2ins[i]])
		if g2v == g1v {
			continue
		}

		gv1, _ := out.vertices[g1v]
		gv2, _ := out.vertices[g2v]
		if gv1.Value != gv2.Value {
			return nil, ErrValueMismatch
		}

		out.quotient(g2v, g1v)
		resolved[g2v] = g1v
	}

	out.outputs = append([]VHandle(nil), g2.Outputs()...)
	for i, v := range out.outputs {
		out.outputs[i] = resolve(remap[v])
	}

	return out, nil
}

// absorb copies every vertex and edge of other into g under freshly
// allocated handles, and returns the vertex-handle remap (other's handle
// -> g's handle). Edge handles are remapped internally but not returned;
// callers needing them should track g's edge set before/after the call.
func (g *Graph) absorb(other *Graph) map[VHandle]VHandle {
	vremap := make(map[VHandle]VHandle, len(other.vertices))
	for _, h := range other.Vertices() {
		v, _ := other.Vertex(h)
		vremap[h] = g.AddVertex(v.Pos, v.Value)
	}
	for _, h := range other.Edges() {
		e, _ := other.Edge(h)
		_, _ = g.AddEdge(remapList(e.Sources, vremap), remapList(e.Targets, vremap), e.Pos, e.Value, e.Hyper)
	}
	return vremap
}

func remapList(list []VHandle, remap map[VHandle]VHandle) []VHandle {
	out := make([]VHandle, len(list))
	for i, v := range list {
		out[i] = remap[v]
	}
	return out
}

// quotient identifies vertex "from" with vertex "keep": every incidence
// occurrence of "from" is rewritten to "keep", boundary occurrences are
// rewritten likewise, and "from" is then dropped from the arena.
func (g *Graph) quotient(from, keep VHandle) {
	if from == keep {
		return
	}
	for _, eh := range g.outIncidence[from] {
		e := g.edges[eh]
		for i, v := range e.Sources {
			if v == from {
				e.Sources[i] = keep
			}
		}
	}
	for _, eh := range g.inIncidence[from] {
		e := g.edges[eh]
		for i, v := range e.Targets {
			if v == from {
				e.Targets[i] = keep
			}
		}
	}
	g.outIncidence[keep] = append(g.outIncidence[keep], g.outIncidence[from]...)
	g.inIncidence[keep] = append(g.inIncidence[keep], g.inIncidence[from]...)
	delete(g.outIncidence, from)
	delete(g.inIncidence, from)
	delete(g.vertices, from)

	for i, v := range g.inputs {
		if v == from {
			g.inputs[i] = keep
		}
	}
	for i, v := range g.outputs {
		if v == from {
			g.outputs[i] = keep
		}
	}
}

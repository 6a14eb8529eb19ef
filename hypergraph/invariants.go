// File: invariants.go
// Role: the monogamous-acyclic shape check required for matcher/rewriter
// correctness, plus the deterministic topological edge ordering the
// matcher uses to fix its search order.
//
// Grounded on dfs/topological.go's three-color (white/gray/black) DFS,
// generalized from a plain vertex-successor relation to the
// edge-precedes-edge relation: edge e1 precedes e2 iff some target of
// e1 is a source of e2.

package hypergraph

const (
	white = 0
	gray  = 1
	black = 2
)

// Validate checks the monogamous acyclic shape required by the matcher
// and rewriter: every non-boundary vertex has exactly one in-incidence
// and exactly one out-incidence, boundary vertices carrying an input have
// zero out-of-boundary... err, have zero target incidence (they are not
// targeted by any edge) and boundary vertices carrying an output have
// zero source incidence, and the edge-precedes-edge relation is acyclic.
func (g *Graph) Validate() error {
	if err := g.checkMonogamy(); err != nil {
		return err
	}
	if _, err := g.TopologicalOrder(); err != nil {
		return err
	}
	return nil
}

// checkMonogamy enforces the monogamy invariant. A vertex "carries
// an input" if it appears in Inputs(); "carries an output" if it appears
// in Outputs(). Non-boundary vertices must have in-incidence == 1 and
// out-incidence == 1. A vertex carrying an input must have in-incidence
// == 0 (nothing targets it — it is a dangling wire fed from outside);
// a vertex carrying an output must have out-incidence == 0.
func (g *Graph) checkMonogamy() error {
	inputSet := make(map[VHandle]int)
	for _, v := range g.Inputs() {
		inputSet[v]++
	}
	outputSet := make(map[VHandle]int)
	for _, v := range g.Outputs() {
		outputSet[v]++
	}

	for _, h := range g.Vertices() {
		inDeg := g.InDegree(h)
		outDeg := g.OutDegree(h)
		_, isInput := inputSet[h]
		_, isOutput := outputSet[h]

		if isInput && inDeg != 0 {
			return ErrNonMonogamous
		}
		if isOutput && outDeg != 0 {
			return ErrNonMonogamous
		}
		if !isInput && inDeg != 1 {
			return ErrNonMonogamous
		}
		if !isOutput && outDeg != 1 {
			return ErrNonMonogamous
		}
	}

	return nil
}

// TopologicalOrder returns the edge handles of g in a deterministic
// topological order consistent with the edge-precedes-edge relation
// or ErrCyclic if that relation has a cycle. The DFS starts from edges
// in ascending handle order and the post-order is then reversed, so
// edges with no precedence relation to one another come out in
// descending handle order (f*g yields g's edge before f's). The
// ordering is reproducible across runs for a fixed graph, which the
// matcher relies on for deterministic enumeration.
func (g *Graph) TopologicalOrder() ([]EHandle, error) {
	edges := g.Edges() // already ascending
	state := make(map[EHandle]int, len(edges))
	order := make([]EHandle, 0, len(edges))

	var visit func(e EHandle) error
	visit = func(e EHandle) error {
		switch state[e] {
		case black:
			return nil
		case gray:
			return ErrCyclic
		}
		state[e] = gray

		for _, next := range g.OutEdges(e) {
			if err := visit(next); err != nil {
				return err
			}
		}

		state[e] = black
		order = append(order, e)
		return nil
	}

	for _, e := range edges {
		if state[e] == white {
			if err := visit(e); err != nil {
				return nil, err
			}
		}
	}

	// visit() records post-order with successors emitted before e; reverse
	// to get edges preceding their successors first, as a DAG topological
	// sort requires.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

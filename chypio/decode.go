package chypio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/rule"
)

// DecodeGraph reads one .chyp document from r into a fresh hypergraph.Graph.
func DecodeGraph(r io.Reader) (*hypergraph.Graph, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var gj GraphJSON
	if err := dec.Decode(&gj); err != nil {
		return nil, fmt.Errorf("chypio: decode graph: %w", err)
	}
	return graphFromJSON(gj)
}

// DecodeRule reads one .chyprule document from r, builds its lhs/rhs
// graphs, and constructs the resulting rule.Rule (which validates
// boundary agreement and left-linearity).
func DecodeRule(r io.Reader) (*rule.Rule, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var rj RuleJSON
	if err := dec.Decode(&rj); err != nil {
		return nil, fmt.Errorf("chypio: decode rule: %w", err)
	}

	lhs, err := graphFromJSON(rj.LHS)
	if err != nil {
		return nil, fmt.Errorf("chypio: rule lhs: %w", err)
	}
	rhs, err := graphFromJSON(rj.RHS)
	if err != nil {
		return nil, fmt.Errorf("chypio: rule rhs: %w", err)
	}

	r2, err := rule.New(lhs, rhs)
	if err != nil {
		return nil, fmt.Errorf("chypio: rule: %w", err)
	}
	return r2, nil
}

// graphFromJSON allocates one fresh arena handle per vertex/edge name
// and remaps every reference through idMap, since the in-memory arena
// owns its own numbering independent of the file's names. Vertices and
// edges are walked in ascending numeric name order so construction
// (and therefore the resulting handle numbering) is deterministic
// regardless of Go's randomized map iteration order.
func graphFromJSON(gj GraphJSON) (*hypergraph.Graph, error) {
	g := hypergraph.New()

	vnames, err := sortedNames(gj.Vertices)
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}

	idMap := make(map[int64]hypergraph.VHandle, len(gj.Vertices))
	for _, nk := range vnames {
		vj := gj.Vertices[nk.key]
		idMap[nk.name] = g.AddVertex(hypergraph.Pos{X: vj.X, Y: vj.Y}, vj.Value)
	}

	enames, err := sortedNames(gj.Edges)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	for _, nk := range enames {
		ej := gj.Edges[nk.key]
		srcs, err := remapIDs(ej.S, idMap)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", nk.name, err)
		}
		tgts, err := remapIDs(ej.T, idMap)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", nk.name, err)
		}
		if _, err := g.AddEdge(srcs, tgts, hypergraph.Pos{X: ej.X, Y: ej.Y}, ej.Value, ej.Hyper); err != nil {
			return nil, fmt.Errorf("edge %d: %w", nk.name, err)
		}
	}

	ins, err := remapIDs(gj.Inputs, idMap)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	if err := g.SetInputs(ins); err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}

	outs, err := remapIDs(gj.Outputs, idMap)
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}
	if err := g.SetOutputs(outs); err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}

	return g, nil
}

// namedKey pairs a parsed integer name with the original map key it
// came from, so a lookup after sorting finds the right entry even if
// its string form isn't the canonical decimal rendering (e.g. "05").
type namedKey struct {
	name int64
	key  string
}

// sortedNames parses every key of m as a non-negative integer name and
// returns the (name, key) pairs in ascending name order.
func sortedNames[V any](m map[string]V) ([]namedKey, error) {
	names := make([]namedKey, 0, len(m))
	for k := range m {
		n, err := strconv.ParseInt(k, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVertexName, k)
		}
		names = append(names, namedKey{name: n, key: k})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].name < names[j].name })
	return names, nil
}

func remapIDs(ids []int64, idMap map[int64]hypergraph.VHandle) ([]hypergraph.VHandle, error) {
	out := make([]hypergraph.VHandle, len(ids))
	for i, id := range ids {
		h, ok := idMap[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVertexID, id)
		}
		out[i] = h
	}
	return out, nil
}

package chypio

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/rule"
)

// EncodeGraph writes g to w as a .chyp document, two-space indented.
func EncodeGraph(w io.Writer, g *hypergraph.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(graphToJSON(g))
}

// EncodeRule writes r to w as a .chyprule document, two-space indented.
func EncodeRule(w io.Writer, r *rule.Rule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	rj := RuleJSON{LHS: graphToJSON(r.LHS), RHS: graphToJSON(r.RHS)}
	return enc.Encode(rj)
}

// graphToJSON names every vertex and edge after its own arena handle,
// so the file's names are stable for a given graph and round-trip
// through decode's ascending-name walk without reordering.
func graphToJSON(g *hypergraph.Graph) GraphJSON {
	gj := GraphJSON{
		Vertices: make(map[string]VertexJSON),
		Edges:    make(map[string]EdgeJSON),
	}

	for _, vh := range g.Vertices() {
		v, _ := g.Vertex(vh)
		gj.Vertices[strconv.FormatInt(int64(vh), 10)] = VertexJSON{
			X: v.Pos.X, Y: v.Pos.Y, Value: v.Value,
		}
	}

	for _, eh := range g.Edges() {
		e, _ := g.Edge(eh)
		gj.Edges[strconv.FormatInt(int64(eh), 10)] = EdgeJSON{
			S: toInt64s(e.Sources),
			T: toInt64s(e.Targets),
			X: e.Pos.X, Y: e.Pos.Y,
			Value: e.Value,
			Hyper: e.Hyper,
		}
	}

	gj.Inputs = toInt64s(g.Inputs())
	gj.Outputs = toInt64s(g.Outputs())

	return gj
}

func toInt64s(hs []hypergraph.VHandle) []int64 {
	out := make([]int64, len(hs))
	for i, h := range hs {
		out[i] = int64(h)
	}
	return out
}

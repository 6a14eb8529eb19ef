package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chyp-core/chyp/hypergraph"
)

func TestAddVertexAddEdge(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{X: 1}, "nat")
	b := g.AddVertex(hypergraph.Pos{}, "nat")

	e, err := g.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{b}, hypergraph.Pos{}, "f", true)
	require.NoError(t, err)

	edge, ok := g.Edge(e)
	require.True(t, ok)
	require.Equal(t, []hypergraph.VHandle{a}, edge.Sources)
	require.Equal(t, []hypergraph.VHandle{b}, edge.Targets)

	require.Equal(t, []hypergraph.EHandle{e}, g.Successors(a))
	require.Equal(t, []hypergraph.EHandle{e}, g.Predecessors(b))
}

func TestAddEdgeUnknownVertexRejected(t *testing.T) {
	g := hypergraph.New()
	_, err := g.AddEdge([]hypergraph.VHandle{99}, nil, hypergraph.Pos{}, "f", false)
	require.ErrorIs(t, err, hypergraph.ErrVertexNotFound)
}

func TestSetInputsOutputsAndType(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{}, "")
	b := g.AddVertex(hypergraph.Pos{}, "")

	require.NoError(t, g.SetInputs([]hypergraph.VHandle{a}))
	require.NoError(t, g.SetOutputs([]hypergraph.VHandle{b}))

	ins, outs := g.Type()
	require.Equal(t, 1, ins)
	require.Equal(t, 1, outs)
}

func TestRemoveVertexPurgesBoundary(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, g.SetInputs([]hypergraph.VHandle{a}))

	require.NoError(t, g.RemoveVertex(a))
	require.Empty(t, g.Inputs())
	_, ok := g.Vertex(a)
	require.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{}, "x")
	b := g.AddVertex(hypergraph.Pos{}, "x")
	_, err := g.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{b}, hypergraph.Pos{}, "f", true)
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(1))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 0, clone.EdgeCount())
}

func TestIdentityGraph(t *testing.T) {
	g := hypergraph.Identity(2)
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	ins, outs := g.Type()
	require.Equal(t, 2, ins)
	require.Equal(t, 2, outs)
	require.Equal(t, g.Inputs(), g.Outputs())
}

func TestGeneratorGraph(t *testing.T) {
	g := hypergraph.Generator("m", 2, 1)
	ins, outs := g.Type()
	require.Equal(t, 2, ins)
	require.Equal(t, 1, outs)
	require.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestPermutationRejectsNonBijection(t *testing.T) {
	_, err := hypergraph.Permutation([]int{0, 0})
	require.ErrorIs(t, err, hypergraph.ErrNotPermutation)
}

func TestPermutationSwap(t *testing.T) {
	g, err := hypergraph.Permutation([]int{1, 0})
	require.NoError(t, err)
	ins := g.Inputs()
	outs := g.Outputs()
	require.Equal(t, ins[0], outs[1])
	require.Equal(t, ins[1], outs[0])
}

func TestTensorConcatenatesBoundary(t *testing.T) {
	g1 := hypergraph.Identity(1)
	g2 := hypergraph.Identity(1)
	g := hypergraph.Tensor(g1, g2)

	ins, outs := g.Type()
	require.Equal(t, 2, ins)
	require.Equal(t, 2, outs)
	require.Equal(t, 2, g.VertexCount())
}

func TestComposeUnifiesBoundary(t *testing.T) {
	g1 := hypergraph.Generator("f", 1, 1)
	g2 := hypergraph.Generator("g", 1, 1)

	g, err := hypergraph.Compose(g1, g2)
	require.NoError(t, err)

	ins, outs := g.Type()
	require.Equal(t, 1, ins)
	require.Equal(t, 1, outs)
	require.Equal(t, 2, g.EdgeCount())
	require.NoError(t, g.Validate())
}

// TestComposeUnifiesRepeatedG2BoundaryVertex covers composing against a
// g2 that repeats one vertex across its own inputs: both occurrences
// must end up identified with the same vertex on the g1 side too, not
// just the first. The surviving vertex is an input twice and sources no
// edge, so the result is not monogamous and Validate says so.
func TestComposeUnifiesRepeatedG2BoundaryVertex(t *testing.T) {
	g1 := hypergraph.Identity(2)

	g2 := hypergraph.New()
	c := g2.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, g2.SetInputs([]hypergraph.VHandle{c, c}))
	require.NoError(t, g2.SetOutputs(nil))

	g, err := hypergraph.Compose(g1, g2)
	require.NoError(t, err)
	require.ErrorIs(t, g.Validate(), hypergraph.ErrNonMonogamous)

	require.Equal(t, 1, g.VertexCount())
	ins, outs := g.Type()
	require.Equal(t, 2, ins)
	require.Equal(t, 0, outs)
	require.Equal(t, g.Inputs()[0], g.Inputs()[1])
}

func TestComposeArityMismatch(t *testing.T) {
	g1 := hypergraph.Generator("f", 1, 2)
	g2 := hypergraph.Generator("g", 1, 1)

	_, err := hypergraph.Compose(g1, g2)
	require.ErrorIs(t, err, hypergraph.ErrArityMismatch)
}

func TestComposeValueMismatch(t *testing.T) {
	g1 := hypergraph.New()
	a := g1.AddVertex(hypergraph.Pos{}, "in")
	b := g1.AddVertex(hypergraph.Pos{}, "red")
	_, err := g1.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{b}, hypergraph.Pos{}, "f", true)
	require.NoError(t, err)
	require.NoError(t, g1.SetInputs([]hypergraph.VHandle{a}))
	require.NoError(t, g1.SetOutputs([]hypergraph.VHandle{b}))

	g2 := hypergraph.New()
	c := g2.AddVertex(hypergraph.Pos{}, "blue")
	d := g2.AddVertex(hypergraph.Pos{}, "out")
	_, err = g2.AddEdge([]hypergraph.VHandle{c}, []hypergraph.VHandle{d}, hypergraph.Pos{}, "g", true)
	require.NoError(t, err)
	require.NoError(t, g2.SetInputs([]hypergraph.VHandle{c}))
	require.NoError(t, g2.SetOutputs([]hypergraph.VHandle{d}))

	_, err = hypergraph.Compose(g1, g2)
	require.ErrorIs(t, err, hypergraph.ErrValueMismatch)
}

func TestValidateDetectsNonMonogamousVertex(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{}, "")
	b := g.AddVertex(hypergraph.Pos{}, "")
	c := g.AddVertex(hypergraph.Pos{}, "")
	// a feeds both b and c: interior vertex "a" has out-degree 2.
	_, err := g.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{b}, hypergraph.Pos{}, "f", true)
	require.NoError(t, err)
	_, err = g.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{c}, hypergraph.Pos{}, "g", true)
	require.NoError(t, err)

	err = g.Validate()
	require.ErrorIs(t, err, hypergraph.ErrNonMonogamous)
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
	g := hypergraph.New()
	a := g.AddVertex(hypergraph.Pos{}, "")
	b := g.AddVertex(hypergraph.Pos{}, "")
	_, err := g.AddEdge([]hypergraph.VHandle{a}, []hypergraph.VHandle{b}, hypergraph.Pos{}, "f", true)
	require.NoError(t, err)
	_, err = g.AddEdge([]hypergraph.VHandle{b}, []hypergraph.VHandle{a}, hypergraph.Pos{}, "g", true)
	require.NoError(t, err)

	_, err = g.TopologicalOrder()
	require.ErrorIs(t, err, hypergraph.ErrCyclic)
}

func TestTopologicalOrderIsDeterministic(t *testing.T) {
	g := hypergraph.Generator("f", 1, 1)
	order1, err := g.TopologicalOrder()
	require.NoError(t, err)
	order2, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Equal(t, order1, order2)
}

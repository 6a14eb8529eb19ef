package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/rule"
	"github.com/chyp-core/chyp/term"
)

func compile(t *testing.T, tm *term.Term) *hypergraph.Graph {
	t.Helper()
	g, err := term.Compile(tm)
	require.NoError(t, err)
	return g
}

func TestNewRuleAssoc(t *testing.T) {
	m := func() *term.Term { return term.Gen("m", 2, 1) }
	lhs := compile(t, term.Seq(term.Par(m(), term.Id(1)), m()))
	rhs := compile(t, term.Seq(term.Par(term.Id(1), m()), m()))

	r, err := rule.New(lhs, rhs)
	require.NoError(t, err)
	require.Same(t, lhs, r.LHS)
	require.Same(t, rhs, r.RHS)
}

func TestNewRuleArityMismatch(t *testing.T) {
	lhs := compile(t, term.Gen("f", 1, 1))
	rhs := compile(t, term.Gen("g", 1, 2))

	_, err := rule.New(lhs, rhs)
	require.ErrorIs(t, err, rule.ErrArityMismatch)
}

func TestNewRuleBoundaryValueMismatch(t *testing.T) {
	lhs := hypergraph.New()
	a := lhs.AddVertex(hypergraph.Pos{}, "red")
	require.NoError(t, lhs.SetInputs([]hypergraph.VHandle{a}))
	require.NoError(t, lhs.SetOutputs([]hypergraph.VHandle{a}))

	rhs := hypergraph.New()
	b := rhs.AddVertex(hypergraph.Pos{}, "blue")
	require.NoError(t, rhs.SetInputs([]hypergraph.VHandle{b}))
	require.NoError(t, rhs.SetOutputs([]hypergraph.VHandle{b}))

	_, err := rule.New(lhs, rhs)
	require.ErrorIs(t, err, rule.ErrBoundaryValueMismatch)
}

func TestNewRuleRejectsNonLeftLinearLHS(t *testing.T) {
	lhs := hypergraph.New()
	a := lhs.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, lhs.SetInputs([]hypergraph.VHandle{a, a}))
	require.NoError(t, lhs.SetOutputs(nil))

	rhs := hypergraph.New()
	b := rhs.AddVertex(hypergraph.Pos{}, "")
	c := rhs.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, rhs.SetInputs([]hypergraph.VHandle{b, c}))
	require.NoError(t, rhs.SetOutputs(nil))

	_, err := rule.New(lhs, rhs)
	require.ErrorIs(t, err, rule.ErrNotLeftLinear)
}

func TestNewRuleRejectsNonLeftLinearRHS(t *testing.T) {
	lhs := hypergraph.New()
	a := lhs.AddVertex(hypergraph.Pos{}, "")
	b := lhs.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, lhs.SetInputs([]hypergraph.VHandle{a, b}))
	require.NoError(t, lhs.SetOutputs(nil))

	rhs := hypergraph.New()
	c := rhs.AddVertex(hypergraph.Pos{}, "")
	require.NoError(t, rhs.SetInputs([]hypergraph.VHandle{c, c}))
	require.NoError(t, rhs.SetOutputs(nil))

	_, err := rule.New(lhs, rhs)
	require.ErrorIs(t, err, rule.ErrRHSNotLeftLinear)
}

func TestReverseRule(t *testing.T) {
	lhs := compile(t, term.Gen("f", 1, 1))
	rhs := compile(t, term.Gen("g", 1, 1))
	r, err := rule.New(lhs, rhs)
	require.NoError(t, err)

	rev, err := r.Reverse()
	require.NoError(t, err)
	require.Same(t, r.RHS, rev.LHS)
	require.Same(t, r.LHS, rev.RHS)
}

func TestRefl(t *testing.T) {
	r := rule.Refl()
	ins, outs := r.LHS.Type()
	require.Equal(t, 0, ins)
	require.Equal(t, 0, outs)
	require.Equal(t, 0, r.LHS.EdgeCount())
	require.Equal(t, 0, r.RHS.EdgeCount())
}

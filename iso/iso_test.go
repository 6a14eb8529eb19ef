package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/iso"
	"github.com/chyp-core/chyp/term"
)

func mustCompile(t *testing.T, tm *term.Term) *hypergraph.Graph {
	t.Helper()
	g, err := term.Compile(tm)
	require.NoError(t, err)
	return g
}

func TestIsomorphicUpToRelabeledHandles(t *testing.T) {
	a := mustCompile(t, term.Seq(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
	b := mustCompile(t, term.Seq(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
	require.True(t, iso.IsIsomorphic(a, b))
}

func TestNotIsomorphicDifferentLabels(t *testing.T) {
	a := mustCompile(t, term.Gen("f", 1, 1))
	b := mustCompile(t, term.Gen("g", 1, 1))
	require.False(t, iso.IsIsomorphic(a, b))
}

func TestNotIsomorphicDifferentArity(t *testing.T) {
	a := mustCompile(t, term.Gen("f", 1, 1))
	b := mustCompile(t, term.Gen("f", 1, 2))
	require.False(t, iso.IsIsomorphic(a, b))
}

func TestIsomorphicIdentityAnyWidth(t *testing.T) {
	a := hypergraph.Identity(3)
	b := hypergraph.Identity(3)
	require.True(t, iso.IsIsomorphic(a, b))
}

func TestNotIsomorphicBoundaryOrderMatters(t *testing.T) {
	a, err := hypergraph.Permutation([]int{0, 1})
	require.NoError(t, err)
	b, err := hypergraph.Permutation([]int{1, 0})
	require.NoError(t, err)
	require.False(t, iso.IsIsomorphic(a, b))
}

func TestIsomorphicParallelUpToRelabeledHandles(t *testing.T) {
	a := mustCompile(t, term.Par(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
	b := mustCompile(t, term.Par(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
	require.True(t, iso.IsIsomorphic(a, b))
}

package match_test

import (
	"context"
	"testing"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/match"
	"github.com/chyp-core/chyp/rule"
	"github.com/chyp-core/chyp/term"
)

// chainTarget builds a target of n sequentially composed f-generators,
// i.e. f;f;...;f, to stress the matcher's backtracking over a long but
// shallow search order.
func chainTarget(b *testing.B, n int) *hypergraph.Graph {
	b.Helper()
	t := term.Gen("f", 1, 1)
	for i := 1; i < n; i++ {
		t = term.Seq(t, term.Gen("f", 1, 1))
	}
	g, err := term.Compile(t)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkIterSingleGeneratorChain(b *testing.B) {
	lhs, _ := term.Compile(term.Gen("f", 1, 1))
	rhs, _ := term.Compile(term.Gen("g", 1, 1))
	r, err := rule.New(lhs, rhs)
	if err != nil {
		b.Fatal(err)
	}

	target := chainTarget(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := match.New(r, target)
		match.Collect(context.Background(), it, 0)
	}
}

func BenchmarkIterParallelGenerators(b *testing.B) {
	lhs, _ := term.Compile(term.Par(term.Gen("f", 1, 1), term.Gen("f", 1, 1)))
	rhs, _ := term.Compile(term.Gen("g", 2, 2))
	r, err := rule.New(lhs, rhs)
	if err != nil {
		b.Fatal(err)
	}

	t := term.Gen("f", 1, 1)
	for i := 1; i < 16; i++ {
		t = term.Par(t, term.Gen("f", 1, 1))
	}
	target, err := term.Compile(t)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := match.New(r, target)
		match.Collect(context.Background(), it, 0)
	}
}

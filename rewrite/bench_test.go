package rewrite_test

import (
	"context"
	"testing"

	"github.com/chyp-core/chyp/match"
	"github.com/chyp-core/chyp/rewrite"
	"github.com/chyp-core/chyp/rule"
	"github.com/chyp-core/chyp/term"
)

// BenchmarkApplySingleGenerator stresses the delete/insert/glue pushout
// on a small, single-edge rewrite, repeated to amortize allocation noise.
func BenchmarkApplySingleGenerator(b *testing.B) {
	lhs, _ := term.Compile(term.Gen("f", 1, 1))
	rhs, _ := term.Compile(term.Seq(term.Gen("g", 1, 1), term.Gen("h", 1, 1)))
	r, err := rule.New(lhs, rhs)
	if err != nil {
		b.Fatal(err)
	}
	target, err := term.Compile(term.Gen("f", 1, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, ok := match.New(r, target).Next(context.Background())
		if !ok {
			b.Fatal("expected a match")
		}
		if _, err := rewrite.Apply(r, m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApplyInChain stresses repeated pushouts against a fixed
// 32-generator sequential chain, rewriting each occurrence in turn.
func BenchmarkApplyInChain(b *testing.B) {
	lhs, _ := term.Compile(term.Gen("f", 1, 1))
	rhs, _ := term.Compile(term.Gen("g", 1, 1))
	r, err := rule.New(lhs, rhs)
	if err != nil {
		b.Fatal(err)
	}

	t := term.Gen("f", 1, 1)
	for i := 1; i < 32; i++ {
		t = term.Seq(t, term.Gen("f", 1, 1))
	}
	target, err := term.Compile(t)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		current := target
		it := match.New(r, current)
		for {
			m, ok := it.Next(context.Background())
			if !ok {
				break
			}
			if _, err := rewrite.Apply(r, m); err != nil {
				b.Fatal(err)
			}
		}
	}
}

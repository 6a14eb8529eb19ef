package proof_test

import (
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/proof"
	"github.com/chyp-core/chyp/rule"
	"github.com/chyp-core/chyp/term"
)

func compile(t *term.Term) *hypergraph.Graph {
	g, err := term.Compile(t)
	if err != nil {
		panic(err)
	}
	return g
}

// ExampleCheck walks a two-step chain f -> g -> h and reports success.
func ExampleCheck() {
	start := compile(term.Gen("f", 1, 1))

	r1, err := rule.New(compile(term.Gen("f", 1, 1)), compile(term.Gen("g", 1, 1)))
	if err != nil {
		panic(err)
	}
	r2, err := rule.New(compile(term.Gen("g", 1, 1)), compile(term.Gen("h", 1, 1)))
	if err != nil {
		panic(err)
	}

	steps := []proof.Step{
		{RuleName: "f-to-g", Rule: r1, Result: compile(term.Gen("g", 1, 1))},
		{RuleName: "g-to-h", Rule: r2, Result: compile(term.Gen("h", 1, 1))},
	}

	err = proof.Check(start, steps)
	fmt.Println(err == nil)
	// Output: true
}

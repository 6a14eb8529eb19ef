// Package proof checks a chain of rewrite steps: starting from a
// graph, each step names a rule and claims a resulting graph; Check
// verifies that some occurrence of the rule's LHS in the current graph
// rewrites (up to isomorphism) to exactly the claimed result, then
// advances to it. The first step that has no witnessing match is
// reported by index and rule name.
package proof

import (
	"context"
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/iso"
	"github.com/chyp-core/chyp/match"
	"github.com/chyp-core/chyp/rewrite"
	"github.com/chyp-core/chyp/rule"
)

// Step is one link of a proof chain: applying Rule somewhere in the
// current graph must be able to produce Result, up to isomorphism.
type Step struct {
	RuleName string
	Rule     *rule.Rule
	Result   *hypergraph.Graph
}

// Check walks steps in order starting from start, verifying each one
// and returning the first failure. A nil return means every step is a
// valid rule application.
func Check(start *hypergraph.Graph, steps []Step) error {
	current := start
	for i, step := range steps {
		ok, err := verifyStep(current, step)
		if err != nil {
			return fmt.Errorf("proof: step %d (%s): %w", i, step.RuleName, err)
		}
		if !ok {
			return fmt.Errorf("proof: step %d (%s): %w", i, step.RuleName, ErrNoValidMatch)
		}
		current = step.Result
	}
	return nil
}

// verifyStep searches every occurrence of step.Rule's LHS in current,
// applies it, and reports whether any occurrence's rewrite result is
// isomorphic to step.Result.
func verifyStep(current *hypergraph.Graph, step Step) (bool, error) {
	ctx := context.Background()
	it := match.New(step.Rule, current)
	for {
		m, ok := it.Next(ctx)
		if !ok {
			return false, nil
		}
		res, err := rewrite.Apply(step.Rule, m)
		if err != nil {
			return false, err
		}
		if iso.IsIsomorphic(res.Graph, step.Result) {
			return true, nil
		}
	}
}

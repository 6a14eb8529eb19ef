// File: compile.go
// Role: Compile folds a Term tree into a hypergraph.Graph by recursing
// into Par/Seq and delegating leaves to the hypergraph combinators
// (Identity/Generator/Permutation). Boundary-list concatenation is
// position-sensitive (Par's left operand's boundary comes first); Seq
// propagates hypergraph.Compose's type-mismatch error, naming the
// offending composition site so a caller can report which subterm failed.

package term

import (
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
)

// CompileError describes a Compile failure at a specific composition
// site, wrapping the underlying hypergraph error (arity or value
// mismatch) with a human-readable description of the offending subterm.
type CompileError struct {
	Site string
	Err  error
}

func (e *CompileError) Error() string { return fmt.Sprintf("term: %s: %v", e.Site, e.Err) }
func (e *CompileError) Unwrap() error { return e.Err }

// Compile converts t into a hypergraph.Graph. A Seq whose operands have
// mismatched boundary (arity or value label) fails with a *CompileError
// naming the Seq site, and a Swap whose Perm is not a permutation fails
// with a *CompileError naming the Swap; Id and Gen cannot fail, and Par
// only passes on its operands' errors.
func Compile(t *Term) (*hypergraph.Graph, error) {
	switch t.Kind {
	case KindID:
		return hypergraph.Identity(t.N), nil

	case KindSwap:
		g, err := hypergraph.Permutation(t.Perm)
		if err != nil {
			return nil, &CompileError{Site: describe(t), Err: err}
		}
		return g, nil

	case KindGen:
		return hypergraph.Generator(t.Label, t.ArityIn, t.ArityOut), nil

	case KindPar:
		left, err := Compile(t.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(t.Right)
		if err != nil {
			return nil, err
		}
		return hypergraph.Tensor(left, right), nil

	case KindSeq:
		left, err := Compile(t.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(t.Right)
		if err != nil {
			return nil, err
		}
		g, err := hypergraph.Compose(left, right)
		if err != nil {
			return nil, &CompileError{Site: describe(t), Err: err}
		}
		return g, nil

	default:
		return nil, &CompileError{Site: describe(t), Err: fmt.Errorf("term: unknown term kind %d", t.Kind)}
	}
}

// describe renders a short, human-readable label for a term node, used
// to name the offending site in a CompileError.
func describe(t *Term) string {
	switch t.Kind {
	case KindID:
		return fmt.Sprintf("id(%d)", t.N)
	case KindSwap:
		return fmt.Sprintf("sw%v", t.Perm)
	case KindGen:
		return fmt.Sprintf("%s:%d->%d", t.Label, t.ArityIn, t.ArityOut)
	case KindPar:
		return fmt.Sprintf("(%s * %s)", describe(t.Left), describe(t.Right))
	case KindSeq:
		return fmt.Sprintf("(%s ; %s)", describe(t.Left), describe(t.Right))
	default:
		return "?"
	}
}

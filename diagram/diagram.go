// Package diagram is a fluent entry point for building term.Term trees
// without hand-nesting Par/Seq calls: Gen/Id/Swap start a Diagram, Then
// and Tensor combine two, and the variadic Seq/Par fold a whole slice
// in order, mirroring a single deterministic composition pass over its
// parts. Compile lowers the accumulated term into a hypergraph.Graph.
package diagram

import (
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/term"
)

// Diagram wraps an in-progress term.Term. Errors from malformed
// variadic folds are captured and returned from Compile rather than
// panicking, the same deferred-error shape term.Compile itself uses.
type Diagram struct {
	term *term.Term
	err  error
}

// Id starts a Diagram with the identity morphism on n wires.
func Id(n int) *Diagram { return &Diagram{term: term.Id(n)} }

// Gen starts a Diagram with a single labeled generator box.
func Gen(label string, arityIn, arityOut int) *Diagram {
	return &Diagram{term: term.Gen(label, arityIn, arityOut)}
}

// Swap starts a Diagram with the boundary permutation perm.
func Swap(perm []int) *Diagram { return &Diagram{term: term.Swap(perm)} }

// Then sequentially composes d with next ("d ; next").
func (d *Diagram) Then(next *Diagram) *Diagram {
	if d.err != nil {
		return d
	}
	if next.err != nil {
		return next
	}
	return &Diagram{term: term.Seq(d.term, next.term)}
}

// Tensor composes d with next in parallel ("d * next").
func (d *Diagram) Tensor(next *Diagram) *Diagram {
	if d.err != nil {
		return d
	}
	if next.err != nil {
		return next
	}
	return &Diagram{term: term.Par(d.term, next.term)}
}

// Seq folds parts left to right under sequential composition. An empty
// parts list yields a Diagram whose Compile reports ErrEmptyFold.
func Seq(parts ...*Diagram) *Diagram {
	if len(parts) == 0 {
		return &Diagram{err: fmt.Errorf("diagram: Seq: %w", ErrEmptyFold)}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = out.Then(p)
	}
	return out
}

// Par folds parts left to right under parallel composition. An empty
// parts list yields a Diagram whose Compile reports ErrEmptyFold.
func Par(parts ...*Diagram) *Diagram {
	if len(parts) == 0 {
		return &Diagram{err: fmt.Errorf("diagram: Par: %w", ErrEmptyFold)}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = out.Tensor(p)
	}
	return out
}

// Compile lowers the accumulated term into a hypergraph.Graph, or
// returns the first fold/compile error encountered.
func (d *Diagram) Compile() (*hypergraph.Graph, error) {
	if d.err != nil {
		return nil, d.err
	}
	g, err := term.Compile(d.term)
	if err != nil {
		return nil, fmt.Errorf("diagram: %w", err)
	}
	return g, nil
}

// Term exposes the accumulated term.Term directly, for callers (rule
// construction) that need the tree rather than a compiled graph.
func (d *Diagram) Term() (*term.Term, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.term, nil
}

// Package rule pairs an LHS and RHS
// hypergraph sharing a boundary signature (arity and per-position value
// labels), used by the matcher (to search for LHS) and the rewriter (to
// glue in RHS). Construction validates the boundary agreement and the
// left-linearity precondition the rewriter in this version requires
// (non-left-linear rules are rejected here,
// not silently under-supported).
package rule

import (
	"errors"
	"fmt"

	"github.com/chyp-core/chyp/hypergraph"
)

// Sentinel errors for rule construction.
var (
	// ErrArityMismatch indicates |inputs(LHS)| != |inputs(RHS)| or
	// |outputs(LHS)| != |outputs(RHS)|.
	ErrArityMismatch = errors.New("rule: lhs/rhs boundary arity mismatch")

	// ErrBoundaryValueMismatch indicates a corresponding LHS/RHS boundary
	// vertex pair carries different value labels.
	ErrBoundaryValueMismatch = errors.New("rule: lhs/rhs boundary value mismatch")

	// ErrInvalidGraph indicates LHS or RHS individually fails the
	// monogamous-acyclic invariant.
	ErrInvalidGraph = errors.New("rule: lhs or rhs is not a valid hypergraph")

	// ErrNotLeftLinear indicates the LHS has a repeated vertex across its
	// inputs and outputs; this version's rewriter does not support
	// non-left-linear rules.
	ErrNotLeftLinear = errors.New("rule: lhs is not left-linear")

	// ErrRHSNotLeftLinear indicates the RHS has a repeated vertex across
	// its inputs and outputs. The rewriter's gluing step identifies each
	// RHS boundary position with a single gluing vertex in turn; a
	// repeated RHS boundary vertex would need two gluing vertices
	// identified as one, which this version's rewriter does not support.
	ErrRHSNotLeftLinear = errors.New("rule: rhs is not left-linear")
)

// Rule is an (LHS, RHS) pair of hypergraphs sharing a boundary
// signature. Construct with New; Rule values are immutable once built.
type Rule struct {
	LHS, RHS *hypergraph.Graph
}

// New validates and constructs a Rule from lhs and rhs. It fails, in
// this order of checks, if the boundary arities differ, if any
// corresponding boundary vertex pair carries a different value label,
// if lhs or rhs is not left-linear, or if either graph fails its own
// monogamous-acyclic invariant.
func New(lhs, rhs *hypergraph.Graph) (*Rule, error) {
	lhsIn, lhsOut := lhs.Type()
	rhsIn, rhsOut := rhs.Type()
	if lhsIn != rhsIn || lhsOut != rhsOut {
		return nil, ErrArityMismatch
	}

	if err := checkBoundaryValues(lhs.Inputs(), rhs.Inputs(), lhs, rhs); err != nil {
		return nil, err
	}
	if err := checkBoundaryValues(lhs.Outputs(), rhs.Outputs(), lhs, rhs); err != nil {
		return nil, err
	}

	if !isLeftLinear(lhs) {
		return nil, ErrNotLeftLinear
	}
	if !isLeftLinear(rhs) {
		return nil, ErrRHSNotLeftLinear
	}

	if err := lhs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: lhs: %v", ErrInvalidGraph, err)
	}
	if err := rhs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: rhs: %v", ErrInvalidGraph, err)
	}

	return &Rule{LHS: lhs, RHS: rhs}, nil
}

func checkBoundaryValues(a, b []hypergraph.VHandle, ga, gb *hypergraph.Graph) error {
	for i := range a {
		va, _ := ga.Vertex(a[i])
		vb, _ := gb.Vertex(b[i])
		if va.Value != vb.Value {
			return ErrBoundaryValueMismatch
		}
	}
	return nil
}

// isLeftLinear reports whether g has no repeated vertex handle across
// its combined inputs and outputs. Applied to a rule's LHS this is
// left-linearity proper; applied to its RHS it is the same no-repeated-
// boundary-vertex condition the rewriter's gluing step requires.
func isLeftLinear(g *hypergraph.Graph) bool {
	seen := make(map[hypergraph.VHandle]struct{})
	for _, v := range g.Inputs() {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	for _, v := range g.Outputs() {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Reverse returns the rule obtained by swapping LHS and RHS, re-running
// construction (so a reversed rule whose new LHS — the original RHS — is
// not left-linear is rejected: "rules may be applied in
// reverse by swapping LHS/RHS").
func (r *Rule) Reverse() (*Rule, error) {
	return New(r.RHS, r.LHS)
}

// Refl returns the distinguished reflexivity rule: an empty LHS and an
// empty RHS. It matches everywhere (the empty embedding is trivially
// well-formed in any target) and rewriting by it never changes the
// target graph's content, only justifying "re-associate parenthesization,
// no content change" proof steps.
func Refl() *Rule {
	empty := hypergraph.New()
	r, _ := New(empty, empty.Clone())
	return r
}

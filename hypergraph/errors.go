package hypergraph

import "errors"

// Sentinel errors for the hypergraph package. Callers should branch with
// errors.Is; messages are stable but not part of the programmatic
// contract.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex handle
	// absent from the graph's arena.
	ErrVertexNotFound = errors.New("hypergraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge handle
	// absent from the graph's arena.
	ErrEdgeNotFound = errors.New("hypergraph: edge not found")

	// ErrArityMismatch indicates a composition or combinator received
	// graphs whose boundary arities do not line up.
	ErrArityMismatch = errors.New("hypergraph: boundary arity mismatch")

	// ErrValueMismatch indicates a composition unified two boundary
	// vertices carrying different value labels.
	ErrValueMismatch = errors.New("hypergraph: value label mismatch at unified boundary vertex")

	// ErrNotPermutation indicates a permutation combinator was given a
	// slice that is not a bijection on {0,...,n-1}.
	ErrNotPermutation = errors.New("hypergraph: not a permutation")

	// ErrNonMonogamous indicates Validate found a non-boundary vertex
	// with in/out-incidence other than exactly one.
	ErrNonMonogamous = errors.New("hypergraph: monogamy invariant violated")

	// ErrCyclic indicates Validate found a directed cycle in the
	// edge-precedes-edge relation.
	ErrCyclic = errors.New("hypergraph: acyclicity invariant violated")

	// ErrDanglingHandle indicates a boundary or incidence list refers to
	// a vertex handle that does not exist in the graph.
	ErrDanglingHandle = errors.New("hypergraph: dangling vertex handle")
)

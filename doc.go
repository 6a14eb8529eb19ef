// Package chyp is an interactive theorem prover for symmetric monoidal
// categories, working directly on string diagrams.
//
// A diagram is a labeled, monogamous acyclic hypergraph with an ordered
// boundary (inputs/outputs) — a cospan in the category of such
// hypergraphs. Composing, matching, and rewriting diagrams are all
// graph operations on that representation; there is no surface-language
// parser or module resolver at this layer.
//
// Everything lives under focused subpackages:
//
//	hypergraph/ — the arena-backed graph with boundary, and its invariants
//	term/       — the SMC term language (id, swap, generator, *, ;) and Compile
//	rule/       — (LHS, RHS) rewrite rules with boundary/left-linearity checks
//	match/      — the convex subgraph matcher: a lazy, cancellable occurrence search
//	rewrite/    — double-pushout rewriting: delete, insert, glue
//	iso/        — whole-graph structural isomorphism
//	proof/      — checking a chain of named rewrite steps
//	diagram/    — a fluent term-construction front end
//	chypio/     — the .chyp/.chyprule JSON file contract
//	cmd/chyp/   — the command-line front end over all of the above
//
//	go get github.com/chyp-core/chyp
package chyp

// Package term implements the SMC term language: identity,
// permutation, generator, parallel (*) and sequential (;) composition —
// and Compile, which folds a term tree into a hypergraph.Graph using the
// combinators of the hypergraph package.
package term

// Kind discriminates the node shapes of a Term.
type Kind int

const (
	// KindID is the identity morphism on N wires.
	KindID Kind = iota
	// KindSwap is a boundary permutation ("sw[π]").
	KindSwap
	// KindGen is a generator box: a labeled primitive of fixed arity.
	KindGen
	// KindPar is parallel composition ("*").
	KindPar
	// KindSeq is sequential composition (";").
	KindSeq
)

// Term is a node of the SMC term tree. Only the fields relevant to Kind
// are meaningful; construct values with Id/Swap/Gen/Par/Seq rather than
// a struct literal.
type Term struct {
	Kind Kind

	N    int   // KindID: wire count
	Perm []int // KindSwap: output i carries input Perm[i]

	Label             string // KindGen: generator label
	ArityIn, ArityOut int    // KindGen: generator arity

	Left, Right *Term // KindPar, KindSeq
}

// Id returns the identity term on n wires.
func Id(n int) *Term { return &Term{Kind: KindID, N: n} }

// Swap returns the boundary-permutation term described by perm: output
// wire i carries whatever arrived on input wire perm[i].
func Swap(perm []int) *Term {
	return &Term{Kind: KindSwap, Perm: append([]int(nil), perm...)}
}

// Gen returns a generator term: a labeled box of the given arity.
func Gen(label string, arityIn, arityOut int) *Term {
	return &Term{Kind: KindGen, Label: label, ArityIn: arityIn, ArityOut: arityOut}
}

// Par returns the parallel composition (tensor) of a and b.
func Par(a, b *Term) *Term { return &Term{Kind: KindPar, Left: a, Right: b} }

// Seq returns the sequential composition of a and b.
func Seq(a, b *Term) *Term { return &Term{Kind: KindSeq, Left: a, Right: b} }

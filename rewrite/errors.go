package rewrite

import "errors"

// ErrInvariantViolated indicates the rewritten graph failed the
// monogamous-acyclic check after gluing — a defect in the triggering
// rule or match rather than something a caller can retry around.
var ErrInvariantViolated = errors.New("rewrite: result graph violates monogamous-acyclic invariant")

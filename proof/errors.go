package proof

import "errors"

// ErrNoValidMatch indicates no occurrence of a step's rule rewrites the
// current graph into something isomorphic to the step's claimed result.
var ErrNoValidMatch = errors.New("proof: no match of rule rewrites to the claimed result")

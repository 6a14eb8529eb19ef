package chypio

import "errors"

// ErrUnknownVertexID indicates an edge, input, or output list in a
// decoded file referenced a vertex name not present in that file's
// vertex table.
var ErrUnknownVertexID = errors.New("chypio: reference to unknown vertex name")

// ErrInvalidVertexName indicates a vertices/edges object key was not a
// string-encoded non-negative integer, as §6 requires.
var ErrInvalidVertexName = errors.New("chypio: vertex/edge name is not a non-negative integer")

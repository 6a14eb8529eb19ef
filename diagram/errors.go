package diagram

import "errors"

// ErrEmptyFold indicates Seq or Par was called with no parts.
var ErrEmptyFold = errors.New("diagram: empty fold")

package matrix

import "errors"

// Errors returned by matrix constructors and views.
var (
	ErrBadShape   = errors.New("matrix: invalid shape")
	ErrRagged     = errors.New("matrix: ragged rows")
	ErrLength     = errors.New("matrix: data length does not match shape")
	ErrOutOfRange = errors.New("matrix: view exceeds backing buffer")
)

package conv2d

import (
	"errors"
	"fmt"
)

// ErrShape is the umbrella for every shape violation. The more specific
// errors below wrap it, so errors.Is(err, ErrShape) matches all of them.
var ErrShape = errors.New("conv2d: shape error")

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = fmt.Errorf("%w: empty input", ErrShape)
	ErrEmptyKernel    = fmt.Errorf("%w: empty kernel", ErrShape)
	ErrKernelTooLarge = fmt.Errorf("%w: kernel larger than input", ErrShape)
	ErrLengthMismatch = fmt.Errorf("%w: buffer length mismatch", ErrShape)
)

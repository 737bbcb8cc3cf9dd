package conv2d

import (
	"github.com/ssanderson/foundations-of-numerical-computing/dsp/core"
	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// Convolver applies one kernel to many inputs.
//
// It owns a private copy of the kernel and keeps the validity mask and score
// scratch between calls, rebuilding the mask only when the input shape
// changes. A Convolver is not safe for concurrent use.
type Convolver[T matrix.Scalar] struct {
	kernel *matrix.Dense[T]
	cfg    config

	mask       []bool
	maskRows   int
	maskCols   int
	scores     []T
	maskBuilds int
}

// NewConvolver creates a Convolver for kernel k.
func NewConvolver[T matrix.Scalar](k *matrix.Dense[T], opts ...Option) (*Convolver[T], error) {
	if err := validateKernel(k); err != nil {
		return nil, err
	}
	return &Convolver[T]{
		kernel: k.Clone(),
		cfg:    applyOptions(opts),
	}, nil
}

// Kernel returns the convolver's kernel. The returned matrix must not be modified.
func (c *Convolver[T]) Kernel() *matrix.Dense[T] {
	return c.kernel
}

// Process convolves m with the kernel and returns a newly allocated result.
func (c *Convolver[T]) Process(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	w, err := newWindows(m, c.kernel.Rows(), c.kernel.Cols())
	if err != nil {
		return nil, err
	}
	outRows, outCols := w.OutputShape()
	out, err := matrix.New[T](outRows, outCols)
	if err != nil {
		return nil, err
	}
	c.run(out, w)
	return out, nil
}

// ProcessTo convolves m into dst, which must have the valid-mode output shape.
func (c *Convolver[T]) ProcessTo(dst, m *matrix.Dense[T]) error {
	w, err := newWindows(m, c.kernel.Rows(), c.kernel.Cols())
	if err != nil {
		return err
	}
	if err := checkDst(dst, w); err != nil {
		return err
	}
	c.run(dst, w)
	return nil
}

// Reset drops the cached mask and scratch buffers.
func (c *Convolver[T]) Reset() {
	c.mask = nil
	c.scores = nil
	c.maskRows, c.maskCols = 0, 0
}

func (c *Convolver[T]) run(dst *matrix.Dense[T], w Windows[T]) {
	if c.mask == nil || c.maskRows != w.rows || c.maskCols != w.cols {
		c.mask = core.EnsureLen(c.mask, w.n)
		fillMask(c.mask, w.cols, w.kCols)
		c.maskRows, c.maskCols = w.rows, w.cols
		c.maskBuilds++
	}
	c.scores = core.EnsureLen(c.scores, w.n)
	reduceInto(dst.Data(), c.scores, w, c.mask, c.kernel.Data(), c.cfg)
}

package conv2d

import (
	"fmt"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// Windows is the ordered sequence of candidate kernel-sized windows over a
// matrix, one per flattened start offset.
//
// Window i has its top-left corner at offset i of the row-major source buffer
// and uses the source's own row stride, so element (a, b) of window i is
// src[i + a*cols + b]. Start offsets are scanned linearly up to the last valid
// corner, which means windows starting in the last kCols-1 columns of a row
// spill into the next row. Those candidates are discarded by the mask returned
// alongside the windows, not by the windows themselves.
//
// Windows borrows the source matrix's storage and must not outlive it.
type Windows[T matrix.Scalar] struct {
	src          []T
	rows, cols   int
	kRows, kCols int
	n            int
}

// NumWindows returns the number of candidate windows scanned for an R×C input
// and a kR×kC kernel: (R-kR)*C + (C-kC) + 1.
func NumWindows(rows, cols, kRows, kCols int) int {
	return (rows-kRows)*cols + (cols - kCols) + 1
}

// NumValid returns the number of candidates that are genuine valid-mode
// positions: (R-kR+1)*(C-kC+1).
func NumValid(rows, cols, kRows, kCols int) int {
	return (rows - kRows + 1) * (cols - kCols + 1)
}

// Extract builds the candidate windows of m for kernel k together with the
// validity mask. mask[i] reports whether window i stays inside one row of m.
//
// No element of m is copied; the windows alias m's backing slice.
func Extract[T matrix.Scalar](m, k *matrix.Dense[T]) (Windows[T], []bool, error) {
	if err := validateKernel(k); err != nil {
		return Windows[T]{}, nil, err
	}
	w, err := newWindows(m, k.Rows(), k.Cols())
	if err != nil {
		return Windows[T]{}, nil, err
	}
	return w, Mask(w.n, w.cols, w.kCols), nil
}

func newWindows[T matrix.Scalar](m *matrix.Dense[T], kRows, kCols int) (Windows[T], error) {
	if m == nil || m.Rows() <= 0 || m.Cols() <= 0 {
		return Windows[T]{}, ErrEmptyInput
	}
	rows, cols := m.Shape()
	if kRows > rows || kCols > cols {
		return Windows[T]{}, fmt.Errorf("%w: kernel %dx%d, input %dx%d", ErrKernelTooLarge, kRows, kCols, rows, cols)
	}
	return Windows[T]{
		src:   m.Data(),
		rows:  rows,
		cols:  cols,
		kRows: kRows,
		kCols: kCols,
		n:     NumWindows(rows, cols, kRows, kCols),
	}, nil
}

func validateKernel[T matrix.Scalar](k *matrix.Dense[T]) error {
	if k == nil || k.Rows() <= 0 || k.Cols() <= 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Mask returns the validity mask for n candidate windows over a matrix with
// cols columns and a kernel with kCols columns: mask[i] = i%cols <= cols-kCols.
func Mask(n, cols, kCols int) []bool {
	mask := make([]bool, n)
	fillMask(mask, cols, kCols)
	return mask
}

func fillMask(mask []bool, cols, kCols int) {
	lastCol := cols - kCols
	for i := range mask {
		mask[i] = i%cols <= lastCol
	}
}

// Len returns the number of candidate windows.
func (w Windows[T]) Len() int { return w.n }

// KernelShape returns the shape every window has.
func (w Windows[T]) KernelShape() (int, int) { return w.kRows, w.kCols }

// SourceShape returns the shape of the matrix the windows borrow from.
func (w Windows[T]) SourceShape() (int, int) { return w.rows, w.cols }

// OutputShape returns the shape of the valid-mode result.
func (w Windows[T]) OutputShape() (int, int) {
	return w.rows - w.kRows + 1, w.cols - w.kCols + 1
}

// At returns candidate window i as a strided view into the source buffer.
func (w Windows[T]) At(i int) matrix.View[T] {
	if i < 0 || i >= w.n {
		panic(fmt.Sprintf("conv2d: window %d out of range [0,%d)", i, w.n))
	}
	v, err := matrix.NewView(w.src, i, w.kRows, w.kCols, w.cols, 1)
	if err != nil {
		panic(fmt.Sprintf("conv2d: internal invariant violated: window %d: %v", i, err))
	}
	return v
}

// Row returns row a of candidate window i, aliasing the source buffer.
func (w Windows[T]) Row(i, a int) []T {
	start := i + a*w.cols
	return w.src[start : start+w.kCols : start+w.kCols]
}

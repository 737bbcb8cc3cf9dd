package conv2d

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
	"github.com/ssanderson/foundations-of-numerical-computing/internal/parallel"
)

// Reduce contracts every valid window against k and reshapes the results into
// the (R-kR+1)×(C-kC+1) output matrix.
//
// valid must be the mask produced by Extract for w. The windows selected by the
// mask are already in row-major output order, so the scores are compacted in
// sequence order without sorting. Sums are accumulated in T.
func Reduce[T matrix.Scalar](w Windows[T], valid []bool, k *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := checkReduceArgs(w, valid, k); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	outRows, outCols := w.OutputShape()
	out, err := matrix.New[T](outRows, outCols)
	if err != nil {
		return nil, err
	}

	scores := make([]T, w.n)
	reduceInto(out.Data(), scores, w, valid, k.Data(), cfg)
	return out, nil
}

func checkReduceArgs[T matrix.Scalar](w Windows[T], valid []bool, k *matrix.Dense[T]) error {
	if w.n <= 0 {
		return ErrEmptyInput
	}
	if err := validateKernel(k); err != nil {
		return err
	}
	if len(valid) != w.n {
		return fmt.Errorf("%w: mask has %d entries, want %d", ErrLengthMismatch, len(valid), w.n)
	}
	if k.Rows() != w.kRows || k.Cols() != w.kCols {
		return fmt.Errorf("%w: kernel %dx%d, windows %dx%d", ErrShape, k.Rows(), k.Cols(), w.kRows, w.kCols)
	}
	return nil
}

// reduceInto scores the valid windows into scores (indexed by window) and then
// compacts them into dst. len(scores) must be w.n and len(dst) the valid count.
func reduceInto[T matrix.Scalar](dst, scores []T, w Windows[T], valid []bool, kernel []T, cfg config) {
	score := scorer(w, kernel, cfg.generic)

	parallel.ForRange(w.n, func(start, end int) {
		for i := start; i < end; i++ {
			if valid[i] {
				scores[i] = score(i)
			}
		}
	}, cfg.parallel)

	n := 0
	for i, ok := range valid {
		if !ok {
			continue
		}
		if n == len(dst) {
			panic(fmt.Sprintf("conv2d: internal invariant violated: more than %d valid windows", len(dst)))
		}
		dst[n] = scores[i]
		n++
	}
	if n != len(dst) {
		panic(fmt.Sprintf("conv2d: internal invariant violated: %d valid windows, want %d", n, len(dst)))
	}
}

// scorer returns the contraction of window i with the kernel.
func scorer[T matrix.Scalar](w Windows[T], kernel []T, generic bool) func(i int) T {
	if !generic {
		if src, ok := any(w.src).([]float64); ok {
			kf := any(kernel).([]float64)
			return func(i int) T {
				return T(dotFloat64(src, kf, i, w.cols, w.kRows, w.kCols))
			}
		}
	}

	kCols := w.kCols
	return func(i int) T {
		var sum T
		for a := 0; a < w.kRows; a++ {
			krow := kernel[a*kCols : (a+1)*kCols]
			for b, v := range w.Row(i, a) {
				sum += v * krow[b]
			}
		}
		return sum
	}
}

// dotFloat64 contracts the window at offset i row by row. Each window row is a
// contiguous slice of the source, so the per-row product is a plain dot product.
func dotFloat64(src, kernel []float64, i, cols, kRows, kCols int) float64 {
	var sum float64
	for a := 0; a < kRows; a++ {
		start := i + a*cols
		sum += vecmath.DotProduct(src[start:start+kCols], kernel[a*kCols:(a+1)*kCols])
	}
	return sum
}

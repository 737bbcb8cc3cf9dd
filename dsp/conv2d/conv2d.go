package conv2d

import (
	"fmt"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// ConvolveValid returns the valid-mode 2-D convolution of m with k:
//
//	out[r][c] = Σ_{a,b} m[r+a][c+b] * k[a][b]
//
// for every position where k fits entirely inside m. The result has shape
// (m.Rows()-k.Rows()+1, m.Cols()-k.Cols()+1). The kernel is not flipped.
//
// Shape violations (empty operands, kernel larger than input in either
// dimension) return an error wrapping ErrShape before any window is built.
func ConvolveValid[T matrix.Scalar](m, k *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	w, valid, err := Extract(m, k)
	if err != nil {
		return nil, err
	}
	return Reduce(w, valid, k, opts...)
}

// ConvolveValidTo performs ConvolveValid, writing to a pre-allocated destination.
// dst must have shape (m.Rows()-k.Rows()+1, m.Cols()-k.Cols()+1).
func ConvolveValidTo[T matrix.Scalar](dst, m, k *matrix.Dense[T], opts ...Option) error {
	w, valid, err := Extract(m, k)
	if err != nil {
		return err
	}
	if err := checkDst(dst, w); err != nil {
		return err
	}
	reduceInto(dst.Data(), make([]T, w.n), w, valid, k.Data(), applyOptions(opts))
	return nil
}

func checkDst[T matrix.Scalar](dst *matrix.Dense[T], w Windows[T]) error {
	outRows, outCols := w.OutputShape()
	if dst == nil {
		return fmt.Errorf("%w: nil destination, want %dx%d", ErrLengthMismatch, outRows, outCols)
	}
	if dst.Rows() != outRows || dst.Cols() != outCols {
		return fmt.Errorf("%w: destination %dx%d, want %dx%d", ErrLengthMismatch, dst.Rows(), dst.Cols(), outRows, outCols)
	}
	return nil
}

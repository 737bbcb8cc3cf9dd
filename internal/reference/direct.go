package reference

import (
	"errors"
	"fmt"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// ErrShape is returned when the kernel does not fit inside the input.
var ErrShape = errors.New("reference: kernel does not fit input")

// Direct computes out[r][c] = Σ_{a,b} m[r+a][c+b] * k[a][b] by brute force.
func Direct[T matrix.Scalar](m, k *matrix.Dense[T]) (*matrix.Dense[T], error) {
	outRows, outCols, err := outputShape(m.Rows(), m.Cols(), k.Rows(), k.Cols())
	if err != nil {
		return nil, err
	}

	out, err := matrix.New[T](outRows, outCols)
	if err != nil {
		return nil, err
	}

	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			var sum T
			for a := 0; a < k.Rows(); a++ {
				for b := 0; b < k.Cols(); b++ {
					sum += m.At(r+a, c+b) * k.At(a, b)
				}
			}
			out.Set(r, c, sum)
		}
	}

	return out, nil
}

func outputShape(rows, cols, kRows, kCols int) (int, int, error) {
	if rows <= 0 || cols <= 0 || kRows <= 0 || kCols <= 0 || kRows > rows || kCols > cols {
		return 0, 0, fmt.Errorf("%w: input %dx%d, kernel %dx%d", ErrShape, rows, cols, kRows, kCols)
	}
	return rows - kRows + 1, cols - kCols + 1, nil
}

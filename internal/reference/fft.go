package reference

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// minFFTSize keeps plans away from degenerate lengths.
const minFFTSize = 16

// FFT computes valid-mode correlation in the frequency domain.
//
// Both operands are zero-padded to a P×Q grid with P >= rows and Q >= cols,
// transformed with row and column FFTs, multiplied as M·conj(K) and
// transformed back. With that much padding the circular correlation equals
// the linear one on every valid output cell.
func FFT(m, k *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	outRows, outCols, err := outputShape(m.Rows(), m.Cols(), k.Rows(), k.Cols())
	if err != nil {
		return nil, err
	}

	p := nextPowerOf2(max(m.Rows(), minFFTSize))
	q := nextPowerOf2(max(m.Cols(), minFFTSize))

	g, err := newGrid2D(p, q)
	if err != nil {
		return nil, err
	}

	mSpec := g.pad(m)
	kSpec := g.pad(k)
	if err := g.transform(mSpec, false); err != nil {
		return nil, err
	}
	if err := g.transform(kSpec, false); err != nil {
		return nil, err
	}

	for i := range mSpec {
		mSpec[i] *= cmplx.Conj(kSpec[i])
	}
	if err := g.transform(mSpec, true); err != nil {
		return nil, err
	}

	out, err := matrix.New[float64](outRows, outCols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < outRows; r++ {
		for c := 0; c < outCols; c++ {
			out.Set(r, c, real(mSpec[r*q+c]))
		}
	}
	return out, nil
}

// grid2D runs separable 2-D transforms over a row-major p×q complex grid.
type grid2D struct {
	p, q    int
	rowPlan *algofft.Plan[complex128] // length q
	colPlan *algofft.Plan[complex128] // length p
	column  []complex128
}

func newGrid2D(p, q int) (*grid2D, error) {
	rowPlan, err := algofft.NewPlan64(q)
	if err != nil {
		return nil, fmt.Errorf("reference: failed to create FFT plan: %w", err)
	}
	colPlan := rowPlan
	if p != q {
		colPlan, err = algofft.NewPlan64(p)
		if err != nil {
			return nil, fmt.Errorf("reference: failed to create FFT plan: %w", err)
		}
	}
	return &grid2D{p: p, q: q, rowPlan: rowPlan, colPlan: colPlan, column: make([]complex128, p)}, nil
}

func (g *grid2D) pad(m *matrix.Dense[float64]) []complex128 {
	out := make([]complex128, g.p*g.q)
	for r := 0; r < m.Rows(); r++ {
		for c, v := range m.Row(r) {
			out[r*g.q+c] = complex(v, 0)
		}
	}
	return out
}

// transform applies the forward (or normalized inverse) 2-D FFT in place.
func (g *grid2D) transform(data []complex128, inverse bool) error {
	step := g.rowPlan.Forward
	colStep := g.colPlan.Forward
	if inverse {
		step = g.rowPlan.Inverse
		colStep = g.colPlan.Inverse
	}

	for r := 0; r < g.p; r++ {
		row := data[r*g.q : (r+1)*g.q]
		if err := step(row, row); err != nil {
			return fmt.Errorf("reference: row FFT failed: %w", err)
		}
	}

	for c := 0; c < g.q; c++ {
		for r := 0; r < g.p; r++ {
			g.column[r] = data[r*g.q+c]
		}
		if err := colStep(g.column, g.column); err != nil {
			return fmt.Errorf("reference: column FFT failed: %w", err)
		}
		for r := 0; r < g.p; r++ {
			data[r*g.q+c] = g.column[r]
		}
	}
	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

package testutil

import (
	"math/rand"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// DeterministicMatrix returns a rows×cols matrix of uniform noise in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicMatrix(seed int64, rows, cols int, amplitude float64) *matrix.Dense[float64] {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return mustWrap(rows, cols, data)
}

// DeterministicIntMatrix returns a rows×cols matrix of integers in
// [-maxAbs, maxAbs] drawn from a fixed seed.
func DeterministicIntMatrix(seed int64, rows, cols int, maxAbs int64) *matrix.Dense[int64] {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = rng.Int63n(2*maxAbs+1) - maxAbs
	}
	return mustWrap(rows, cols, data)
}

// Shapes enumerates every (rows, cols, kRows, kCols) combination with
// rows, cols in [lo, hi] and a kernel that fits.
func Shapes(lo, hi int) [][4]int {
	var out [][4]int
	for r := lo; r <= hi; r++ {
		for c := lo; c <= hi; c++ {
			for kr := 1; kr <= r; kr++ {
				for kc := 1; kc <= c; kc++ {
					out = append(out, [4]int{r, c, kr, kc})
				}
			}
		}
	}
	return out
}

func mustWrap[T matrix.Scalar](rows, cols int, data []T) *matrix.Dense[T] {
	m, err := matrix.FromSlice(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return m
}

package testutil

import (
	"math"
	"testing"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireMatrixNearlyEqual fails t if got and want differ in shape or if any
// element pair exceeds eps (absolute tolerance, compared in float64).
func RequireMatrixNearlyEqual[T matrix.Scalar](t *testing.T, got, want *matrix.Dense[T], eps float64) {
	t.Helper()
	if got == nil || want == nil {
		t.Fatalf("nil matrix: got %v, want %v", got, want)
	}
	gr, gc := got.Shape()
	wr, wc := want.Shape()
	if gr != wr || gc != wc {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", gr, gc, wr, wc)
	}
	for r := 0; r < gr; r++ {
		for c := 0; c < gc; c++ {
			g, w := float64(got.At(r, c)), float64(want.At(r, c))
			if diff := math.Abs(g - w); diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", r, c, g, w, diff, eps)
			}
		}
	}
}

// RequireMatrixEqual fails t unless got and want have the same shape and
// identical elements.
func RequireMatrixEqual[T matrix.Scalar](t *testing.T, got, want *matrix.Dense[T]) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("matrices differ:\ngot  %v\nwant %v", got, want)
	}
}

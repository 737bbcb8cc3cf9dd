package conv2d

import (
	"errors"
	"testing"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
	"github.com/ssanderson/foundations-of-numerical-computing/internal/testutil"
)

func TestConvolverMatchesOneShot(t *testing.T) {
	k := testutil.DeterministicMatrix(81, 3, 3, 1)
	c, err := NewConvolver(k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for seed := int64(0); seed < 5; seed++ {
		m := testutil.DeterministicMatrix(seed, 8, 6, 1)
		got, err := c.Process(m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, err := ConvolveValid(m, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.RequireMatrixEqual(t, got, want)
	}

	if c.maskBuilds != 1 {
		t.Errorf("mask built %d times for one input shape, want 1", c.maskBuilds)
	}
}

func TestConvolverShapeChange(t *testing.T) {
	k, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	c, err := NewConvolver(k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, shape := range [][2]int{{4, 4}, {3, 7}, {7, 3}, {2, 2}, {4, 4}} {
		m := matrix.Convert[int](testutil.DeterministicIntMatrix(int64(shape[0]*10+shape[1]), shape[0], shape[1], 9))
		got, err := c.Process(m)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", shape, err)
		}
		want, err := ConvolveValid(m, k)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", shape, err)
		}
		testutil.RequireMatrixEqual(t, got, want)
	}
	if c.maskBuilds != 5 {
		t.Errorf("mask built %d times, want 5", c.maskBuilds)
	}
}

func TestConvolverOwnsKernel(t *testing.T) {
	k, _ := matrix.FromRows([][]float64{{1, 1}})
	c, err := NewConvolver(k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k.Set(0, 0, 100)

	m, _ := matrix.FromRows([][]float64{{1, 2, 3}})
	out, err := c.Process(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Data(), []float64{3, 5}, 0)
	if c.Kernel().At(0, 0) != 1 {
		t.Errorf("Kernel() = %v, want private copy", c.Kernel())
	}
}

func TestConvolverProcessToAndReset(t *testing.T) {
	m, k := demoInput(t)
	c, err := NewConvolver(k, WithWorkers(2), WithMinChunk(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dst, _ := matrix.New[int](4, 3)
	if err := c.ProcessTo(dst, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := ConvolveValid(m, k)
	testutil.RequireMatrixEqual(t, dst, want)

	c.Reset()
	dst2, _ := matrix.New[int](4, 3)
	if err := c.ProcessTo(dst2, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireMatrixEqual(t, dst2, want)
	if c.maskBuilds != 2 {
		t.Errorf("mask built %d times, want 2 after Reset", c.maskBuilds)
	}

	bad, _ := matrix.New[int](4, 4)
	if err := c.ProcessTo(bad, m); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestConvolverErrors(t *testing.T) {
	if _, err := NewConvolver[float64](nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}

	k, _ := matrix.New[float64](3, 3)
	c, err := NewConvolver(k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	small, _ := matrix.New[float64](2, 5)
	if _, err := c.Process(small); !errors.Is(err, ErrKernelTooLarge) {
		t.Fatalf("expected ErrKernelTooLarge, got %v", err)
	}
	if _, err := c.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

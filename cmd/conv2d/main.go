// Command conv2d prints the valid-mode 2-D convolution of a matrix with a kernel.
//
// Usage:
//
//	conv2d [flags]
//
// Matrices are plain text, one row per line, values separated by spaces,
// tabs or commas. Without -input the 6x5 matrix 0..29 is used; without
// -kernel the identity kernel of size -identity is used.
//
// Examples:
//
//	conv2d
//	conv2d -windows
//	conv2d -input image.txt -kernel blur.txt -type float
//	conv2d -input image.txt -identity 5 -workers 4 -verify
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/conv2d"
	"github.com/ssanderson/foundations-of-numerical-computing/dsp/core"
	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
	"github.com/ssanderson/foundations-of-numerical-computing/internal/reference"
	"github.com/ssanderson/foundations-of-numerical-computing/internal/textmat"
)

var errVerify = errors.New("verification failed")

type options struct {
	input    string
	kernel   string
	identity int
	kind     textmat.Kind
	workers  int
	verify   bool
	windows  bool
	tol      float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("conv2d", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	var kind string
	fs.StringVar(&opts.input, "input", "", "input matrix file (default: 6x5 matrix of 0..29)")
	fs.StringVar(&opts.kernel, "kernel", "", "kernel matrix file (default: identity kernel)")
	fs.IntVar(&opts.identity, "identity", 3, "size of the identity kernel used when -kernel is not set")
	fs.StringVar(&kind, "type", "auto", "element type: auto, int or float")
	fs.IntVar(&opts.workers, "workers", 1, "reduction goroutines (0 = one per CPU)")
	fs.BoolVar(&opts.verify, "verify", false, "cross-check the result against brute-force and FFT references (FFT is skipped after an exact match)")
	fs.BoolVar(&opts.windows, "windows", false, "print candidate window counts and the validity mask")
	fs.Float64Var(&opts.tol, "tol", 1e-9, "tolerance used by -verify for float results")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: conv2d [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the valid-mode 2-D convolution of a matrix with a kernel.\n")
		fmt.Fprintf(stderr, "Without -input and -kernel, convolves the 6x5 matrix 0..29 with a 3x3 identity.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  conv2d -windows\n")
		fmt.Fprintf(stderr, "  conv2d -input image.txt -kernel blur.txt -type float\n")
		fmt.Fprintf(stderr, "  conv2d -input image.txt -identity 5 -workers 4 -verify\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	k, err := textmat.ParseKind(kind)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	opts.kind = k

	if err := execute(opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func execute(opts options, stdout, stderr io.Writer) error {
	in, err := loadTable(opts.input, func() (*matrix.Dense[int64], error) {
		return matrix.Arange[int64](6, 5)
	})
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	kern, err := loadTable(opts.kernel, func() (*matrix.Dense[int64], error) {
		return matrix.Identity[int64](opts.identity)
	})
	if err != nil {
		return fmt.Errorf("kernel: %w", err)
	}

	kind, err := textmat.Resolve(opts.kind, in.Kind(), kern.Kind())
	if err != nil {
		return err
	}

	convOpts := []conv2d.Option{conv2d.WithWorkers(opts.workers)}
	switch kind {
	case textmat.KindInt:
		m, err := in.Ints()
		if err != nil {
			return err
		}
		k, err := kern.Ints()
		if err != nil {
			return err
		}
		return process(m, k, 0, convOpts, opts, stdout, stderr)
	default:
		m, err := in.Floats()
		if err != nil {
			return err
		}
		k, err := kern.Floats()
		if err != nil {
			return err
		}
		return process(m, k, opts.tol, convOpts, opts, stdout, stderr)
	}
}

// loadTable reads path, or renders the fallback matrix when path is empty.
func loadTable(path string, fallback func() (*matrix.Dense[int64], error)) (*textmat.Table, error) {
	if path == "" {
		m, err := fallback()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := textmat.Write(&buf, m); err != nil {
			return nil, err
		}
		return textmat.Read(&buf)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return textmat.Read(f)
}

func process[T matrix.Scalar](m, k *matrix.Dense[T], tol float64, convOpts []conv2d.Option, opts options, stdout, stderr io.Writer) error {
	if opts.windows {
		if err := printWindows(stdout, m, k); err != nil {
			return err
		}
	}

	out, err := conv2d.ConvolveValid(m, k, convOpts...)
	if err != nil {
		return err
	}
	if err := textmat.Write(stdout, out); err != nil {
		return err
	}

	if opts.verify {
		return verify(stderr, m, k, out, tol)
	}
	return nil
}

func printWindows[T matrix.Scalar](w io.Writer, m, k *matrix.Dense[T]) error {
	windows, valid, err := conv2d.Extract(m, k)
	if err != nil {
		return err
	}
	outRows, outCols := windows.OutputShape()
	f := cpu.DetectFeatures()

	fmt.Fprintf(w, "input:      %dx%d\n", m.Rows(), m.Cols())
	fmt.Fprintf(w, "kernel:     %dx%d\n", k.Rows(), k.Cols())
	fmt.Fprintf(w, "candidates: %d\n", windows.Len())
	fmt.Fprintf(w, "valid:      %d\n", core.CountTrue(valid))
	fmt.Fprintf(w, "output:     %dx%d\n", outRows, outCols)
	fmt.Fprintf(w, "simd:       arch=%s avx2=%t neon=%t\n", f.Architecture, f.HasAVX2, f.HasNEON)

	// One mask line per input row; the last line is cut where scanning stops.
	var sb strings.Builder
	for i, ok := range valid {
		if i > 0 && i%m.Cols() == 0 {
			sb.WriteByte('\n')
		}
		if ok {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	fmt.Fprintf(w, "mask:\n%s\n\n", sb.String())
	return nil
}

func verify[T matrix.Scalar](w io.Writer, m, k, got *matrix.Dense[T], tol float64) error {
	direct, err := reference.Direct(m, k)
	if err != nil {
		return err
	}

	gotF := matrix.Convert[float64](got).Data()
	failed := false

	// tol == 0 demands an exact match, used for integer results.
	directOK := got.Equal(direct)
	if tol > 0 {
		directOK = core.NearlyEqualSlices(gotF, matrix.Convert[float64](direct).Data(), tol)
	}
	if !directOK {
		fmt.Fprintf(w, "verify: direct MISMATCH\n")
		failed = true
	} else {
		fmt.Fprintf(w, "verify: direct ok\n")
	}

	// Integer sums wrap on overflow and the float64 FFT does not; an exact
	// brute-force match is final.
	if tol == 0 && directOK {
		fmt.Fprintf(w, "verify: fft skipped (exact match)\n")
		return nil
	}

	fft, err := reference.FFT(matrix.Convert[float64](m), matrix.Convert[float64](k))
	if err != nil {
		return err
	}

	fftTol := max(tol, 1e-9)
	if !core.NearlyEqualSlices(gotF, fft.Data(), fftTol) {
		fmt.Fprintf(w, "verify: fft MISMATCH\n")
		failed = true
	} else {
		fmt.Fprintf(w, "verify: fft ok\n")
	}

	if failed {
		return errVerify
	}
	return nil
}

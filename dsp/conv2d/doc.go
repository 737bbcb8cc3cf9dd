// Package conv2d computes valid-mode two-dimensional convolution of a dense
// matrix with a small kernel.
//
// The result matches convolve2d(mode="valid") in the correlation form
//
//	out[r][c] = Σ_{a,b} m[r+a][c+b] * k[a][b]
//
// evaluated only where the kernel fits entirely inside the input.
//
// # Algorithm
//
// The work is split into two stages:
//
//   - [Extract] scans every flattened start offset i of the row-major input up
//     to the last valid corner, (R-kR)*C + (C-kC) + 1 offsets in total. Window
//     i is a strided view sharing the input's row stride, so its element (a, b)
//     is m.Data()[i + a*C + b]. No input data is copied.
//   - A window whose start column exceeds C-kC runs past the row edge and
//     picks up elements of the next row. The validity mask, mask[i] = i%C <= C-kC,
//     flags those candidates. Exactly (R-kR+1)*(C-kC+1) entries are set.
//   - [Reduce] contracts each valid window with the kernel and compacts the
//     scores in scan order, which is already row-major output order.
//
// Scanning offsets linearly turns the 2-D iteration into a single stride
// pattern; the invalid candidates are cheap to discard.
//
// # Usage
//
// For one-shot convolution:
//
//	out, err := conv2d.ConvolveValid(m, k)
//
// For repeated convolution with the same kernel, create a reusable convolver,
// which caches the mask and scratch buffers between inputs of equal shape:
//
//	c, err := conv2d.NewConvolver(k)
//	out, err := c.Process(m)
//
// # Element types
//
// Both operands share the element type T and sums are accumulated in T:
// integer inputs give exact integer results, floating inputs give floating
// results. Operands of different types are widened by the caller with
// [matrix.Convert]. float64 inputs contract each kernel row with the SIMD dot
// product from algo-vecmath.
//
// # Concurrency
//
// Every output cell is independent. [WithWorkers] partitions the candidate
// windows across goroutines; results are identical to the sequential run.
package conv2d

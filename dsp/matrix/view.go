package matrix

import "fmt"

// View is a read-only strided window over a shared buffer.
//
// Element (a, b) lives at buf[offset + a*rowStride + b*colStride]. Nothing is
// copied, so two views may alias the same elements, and a View stays valid
// only as long as the buffer it borrows.
type View[T Scalar] struct {
	buf       []T
	offset    int
	rows      int
	cols      int
	rowStride int
	colStride int
}

// NewView returns a rows×cols view starting at buf[offset].
// The farthest element addressed by the view must lie inside buf.
func NewView[T Scalar](buf []T, offset, rows, cols, rowStride, colStride int) (View[T], error) {
	if rows <= 0 || cols <= 0 || colStride < 1 || rowStride < 0 {
		return View[T]{}, fmt.Errorf("%w: view %dx%d strides (%d,%d)", ErrBadShape, rows, cols, rowStride, colStride)
	}
	last := offset + (rows-1)*rowStride + (cols-1)*colStride
	if offset < 0 || last >= len(buf) {
		return View[T]{}, fmt.Errorf("%w: offset %d last %d len %d", ErrOutOfRange, offset, last, len(buf))
	}
	return View[T]{
		buf:       buf,
		offset:    offset,
		rows:      rows,
		cols:      cols,
		rowStride: rowStride,
		colStride: colStride,
	}, nil
}

// At returns element (a, b) of the view.
func (v View[T]) At(a, b int) T {
	if a < 0 || a >= v.rows || b < 0 || b >= v.cols {
		panic(fmt.Sprintf("matrix: view index (%d,%d) out of range for %dx%d", a, b, v.rows, v.cols))
	}
	return v.buf[v.offset+a*v.rowStride+b*v.colStride]
}

// Row returns row a as a slice aliasing the backing buffer.
// It panics unless the view has unit column stride.
func (v View[T]) Row(a int) []T {
	if v.colStride != 1 {
		panic("matrix: Row requires unit column stride")
	}
	if a < 0 || a >= v.rows {
		panic(fmt.Sprintf("matrix: view row %d out of range for %d rows", a, v.rows))
	}
	start := v.offset + a*v.rowStride
	return v.buf[start : start+v.cols : start+v.cols]
}

// Offset returns the position of element (0, 0) in the backing buffer.
func (v View[T]) Offset() int { return v.offset }

// Shape returns (rows, cols).
func (v View[T]) Shape() (int, int) { return v.rows, v.cols }

// Strides returns (rowStride, colStride) in elements.
func (v View[T]) Strides() (int, int) { return v.rowStride, v.colStride }

// Dense copies the viewed elements into a new matrix.
func (v View[T]) Dense() *Dense[T] {
	out := &Dense[T]{rows: v.rows, cols: v.cols, data: make([]T, v.rows*v.cols)}
	for a := 0; a < v.rows; a++ {
		for b := 0; b < v.cols; b++ {
			out.data[a*v.cols+b] = v.buf[v.offset+a*v.rowStride+b*v.colStride]
		}
	}
	return out
}

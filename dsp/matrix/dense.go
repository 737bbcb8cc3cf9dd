package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix. data holds rows*cols elements, row r occupying
// data[r*cols : (r+1)*cols].
type Dense[T Scalar] struct {
	rows, cols int
	data       []T
}

// New returns a zero-filled rows×cols matrix.
func New[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice wraps data as a rows×cols matrix without copying.
// Mutations to data are visible through the matrix and vice versa.
func FromSlice[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d elements, got %d", ErrLength, rows, cols, rows*cols, len(data))
	}
	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies a slice of rows into a new matrix.
// All rows must have the same, non-zero length.
func FromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrBadShape)
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, r, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Dense[T]{rows: len(rows), cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Scalar](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Arange returns a rows×cols matrix holding 0, 1, ..., rows*cols-1 in row-major order.
func Arange[T Scalar](rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = T(i)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// RowStride returns the number of elements between vertically adjacent entries.
// For a Dense matrix it always equals Cols.
func (m *Dense[T]) RowStride() int { return m.cols }

// At returns the element at (r, c). It panics if the index is out of range,
// like a slice index would.
func (m *Dense[T]) At(r, c int) T {
	m.checkIndex(r, c)
	return m.data[r*m.cols+c]
}

// Set assigns v at (r, c). It panics if the index is out of range.
func (m *Dense[T]) Set(r, c int, v T) {
	m.checkIndex(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Dense[T]) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", r, c, m.rows, m.cols))
	}
}

// Row returns row r as a slice aliasing the backing storage.
func (m *Dense[T]) Row(r int) []T {
	m.checkIndex(r, 0)
	return m.data[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
}

// Data returns the flat row-major backing slice. The slice aliases the matrix.
func (m *Dense[T]) Data() []T { return m.data }

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Dense[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether o has the same shape and identical elements.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteByte('[')
		for c, v := range m.data[r*m.cols : (r+1)*m.cols] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

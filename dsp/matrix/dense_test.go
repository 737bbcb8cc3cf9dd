package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

func TestNewRejectsNonPositiveShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.New[float64](shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrBadShape, "shape %v", shape)
	}
}

func TestNewZeroFilled(t *testing.T) {
	m, err := matrix.New[int](2, 3)
	require.NoError(t, err)

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, m.Data())
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.RowStride())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
}

func TestFromRowsCopies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1, m.At(0, 0))
}

func TestFromRowsErrors(t *testing.T) {
	_, err := matrix.FromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestFromSliceSharesMemory(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5, 6}
	m, err := matrix.FromSlice(3, 2, data)
	require.NoError(t, err)

	data[5] = 60
	assert.Equal(t, int64(60), m.At(2, 1))

	m.Set(0, 0, 10)
	assert.Equal(t, int64(10), data[0])

	_, err = matrix.FromSlice(4, 2, data)
	require.ErrorIs(t, err, matrix.ErrLength)
}

func TestRowAliasesStorage(t *testing.T) {
	m, err := matrix.Arange[int](3, 3)
	require.NoError(t, err)

	row := m.Row(1)
	row[0] = -1
	assert.Equal(t, -1, m.At(1, 0))
	assert.Equal(t, 3, cap(row), "row slice must not reach into the next row")
}

func TestIdentityAndArange(t *testing.T) {
	id, err := matrix.Identity[float32](3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	ar, err := matrix.Arange[int](2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, ar.Data())

	_, err = matrix.Identity[int](0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAtPanicsOutOfRange(t *testing.T) {
	m, err := matrix.New[int](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
	assert.Panics(t, func() { m.Set(0, 2, 1) })
}

func TestCloneAndEqual(t *testing.T) {
	m, err := matrix.Arange[int](2, 2)
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, 7)
	assert.False(t, m.Equal(c))
	assert.Equal(t, 0, m.At(0, 0))

	other, err := matrix.Arange[int](1, 4)
	require.NoError(t, err)
	assert.False(t, m.Equal(other), "same data, different shape")

	var nilM *matrix.Dense[int]
	assert.False(t, m.Equal(nilM))
}

func TestConvert(t *testing.T) {
	m, err := matrix.FromRows([][]int32{{1, -2}, {3, 4}})
	require.NoError(t, err)

	f := matrix.Convert[float64](m)
	assert.Equal(t, []float64{1, -2, 3, 4}, f.Data())

	f.Set(0, 0, 0.5)
	assert.Equal(t, int32(1), m.At(0, 0))
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[[1 2]\n [3 4]]", m.String())
}

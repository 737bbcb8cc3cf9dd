package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// ViewSuite exercises strided views over a 4×5 arange matrix.
type ViewSuite struct {
	suite.Suite
	m *matrix.Dense[int]
}

func (s *ViewSuite) SetupTest() {
	m, err := matrix.Arange[int](4, 5)
	s.Require().NoError(err)
	s.m = m
}

func (s *ViewSuite) TestElementAddressing() {
	v, err := matrix.NewView(s.m.Data(), 6, 2, 3, s.m.Cols(), 1)
	s.Require().NoError(err)

	s.Equal(6, v.At(0, 0))
	s.Equal(8, v.At(0, 2))
	s.Equal(11, v.At(1, 0))
	s.Equal(13, v.At(1, 2))

	rs, cs := v.Strides()
	s.Equal(5, rs)
	s.Equal(1, cs)
	s.Equal(6, v.Offset())
}

func (s *ViewSuite) TestWrappingViewReadsNextRow() {
	// Starting at column 4, the second column of the view is the next row's first element.
	v, err := matrix.NewView(s.m.Data(), 4, 2, 2, s.m.Cols(), 1)
	s.Require().NoError(err)
	s.Equal([]int{4, 5}, v.Row(0))
	s.Equal([]int{9, 10}, v.Row(1))
}

func (s *ViewSuite) TestViewAliasesBuffer() {
	v, err := matrix.NewView(s.m.Data(), 0, 2, 2, s.m.Cols(), 1)
	s.Require().NoError(err)

	s.m.Set(1, 1, 100)
	s.Equal(100, v.At(1, 1))

	row := v.Row(0)
	s.Equal(2, cap(row))
}

func (s *ViewSuite) TestNonUnitColumnStride() {
	v, err := matrix.NewView(s.m.Data(), 0, 2, 3, 10, 2)
	s.Require().NoError(err)
	s.Equal(4, v.At(0, 2))
	s.Equal(14, v.At(1, 2))
	s.Panics(func() { v.Row(0) })

	d := v.Dense()
	s.Equal([]int{0, 2, 4, 10, 12, 14}, d.Data())
}

func (s *ViewSuite) TestBounds() {
	_, err := matrix.NewView(s.m.Data(), 16, 1, 5, 5, 1)
	s.ErrorIs(err, matrix.ErrOutOfRange)

	_, err = matrix.NewView(s.m.Data(), -1, 1, 1, 5, 1)
	s.ErrorIs(err, matrix.ErrOutOfRange)

	_, err = matrix.NewView(s.m.Data(), 0, 0, 1, 5, 1)
	s.ErrorIs(err, matrix.ErrBadShape)

	_, err = matrix.NewView(s.m.Data(), 0, 1, 1, 5, 0)
	s.ErrorIs(err, matrix.ErrBadShape)

	v, err := matrix.NewView(s.m.Data(), 15, 1, 5, 5, 1)
	s.Require().NoError(err)
	s.Equal(19, v.At(0, 4))
	s.Panics(func() { v.At(1, 0) })
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewSuite))
}

// Package matrix provides the dense row-major containers used by the 2-D
// convolution routines.
//
// [Dense] owns a flat backing slice of rows*cols elements in C order.
// [View] is a borrowed, strided window onto any such slice: it records a base
// offset, a row stride and a column stride, and never copies. Views may
// overlap each other freely; they must not outlive the storage they borrow.
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	v, _ := matrix.NewView(m.Data(), 1, 2, 2, m.Cols(), 1)
//	v.At(1, 1) // 6
package matrix

package matrix

// Scalar is the set of element types a matrix may hold.
// Arithmetic is carried out in the element type itself, so integer matrices
// produce integer results and floating matrices produce floating results.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Convert returns a copy of m with every element converted to To.
//
// Go generics require both convolution operands to share one element type.
// Callers holding mixed types widen the narrower operand with Convert first.
func Convert[To, From Scalar](m *Dense[From]) *Dense[To] {
	out := make([]To, len(m.data))
	for i, v := range m.data {
		out[i] = To(v)
	}
	return &Dense[To]{rows: m.rows, cols: m.cols, data: out}
}

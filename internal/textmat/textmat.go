// Package textmat reads and writes matrices as plain text.
//
// One row per line; values are separated by spaces, tabs or commas. Blank
// lines and lines starting with '#' are ignored. A table whose tokens all
// parse as integers has [KindInt]; anything else that parses as a number
// makes it [KindFloat].
package textmat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/matrix"
)

// maxLineSize bounds a single row of text.
const maxLineSize = 64 << 20

// Errors returned by the reader.
var (
	ErrEmpty        = errors.New("textmat: no rows")
	ErrSyntax       = errors.New("textmat: invalid number")
	ErrTypeMismatch = errors.New("textmat: element types cannot be promoted")
)

// Kind is the scalar family of a table.
type Kind int

const (
	// KindAuto asks Resolve to pick the widest kind of its operands.
	KindAuto Kind = iota
	KindInt
	KindFloat
)

// String returns the flag spelling of k.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// ParseKind parses "auto", "int" or "float".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindAuto, nil
	case "int", "int64":
		return KindInt, nil
	case "float", "float64":
		return KindFloat, nil
	default:
		return KindAuto, fmt.Errorf("textmat: unknown kind %q", s)
	}
}

// Resolve picks the element kind both operands are converted to.
// KindAuto widens to the larger kind present (int < float). An explicit
// KindInt fails with ErrTypeMismatch if any operand holds non-integers.
func Resolve(want Kind, kinds ...Kind) (Kind, error) {
	widest := KindInt
	for _, k := range kinds {
		if k == KindFloat {
			widest = KindFloat
		}
	}
	switch want {
	case KindAuto:
		return widest, nil
	case KindFloat:
		return KindFloat, nil
	case KindInt:
		if widest == KindFloat {
			return KindInt, fmt.Errorf("%w: float data requested as int", ErrTypeMismatch)
		}
		return KindInt, nil
	default:
		return KindAuto, fmt.Errorf("%w: kind %d", ErrTypeMismatch, want)
	}
}

// Table is a parsed but not yet typed matrix.
type Table struct {
	rows, cols int
	tokens     []string
	kind       Kind
}

// Shape returns (rows, cols).
func (t *Table) Shape() (int, int) { return t.rows, t.cols }

// Kind returns the narrowest kind that holds every value.
func (t *Table) Kind() Kind { return t.kind }

// Read parses a table from r.
func Read(r io.Reader) (*Table, error) {
	t := &Table{kind: KindInt}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if t.rows == 0 {
			t.cols = len(fields)
		} else if len(fields) != t.cols {
			return nil, fmt.Errorf("line %d: %w: %d values, want %d", line, matrix.ErrRagged, len(fields), t.cols)
		}
		for _, f := range fields {
			if _, err := strconv.ParseInt(f, 10, 64); err == nil {
				continue
			}
			if _, err := strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", line, ErrSyntax, f)
			}
			t.kind = KindFloat
		}
		t.tokens = append(t.tokens, fields...)
		t.rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textmat: read: %w", err)
	}
	if t.rows == 0 || t.cols == 0 {
		return nil, ErrEmpty
	}
	return t, nil
}

// Ints converts the table to int64. It fails with ErrTypeMismatch when the
// table holds non-integer values.
func (t *Table) Ints() (*matrix.Dense[int64], error) {
	if t.kind == KindFloat {
		return nil, fmt.Errorf("%w: table holds non-integer values", ErrTypeMismatch)
	}
	data := make([]int64, len(t.tokens))
	for i, tok := range t.tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, tok)
		}
		data[i] = v
	}
	return matrix.FromSlice(t.rows, t.cols, data)
}

// Floats converts the table to float64.
func (t *Table) Floats() (*matrix.Dense[float64], error) {
	data := make([]float64, len(t.tokens))
	for i, tok := range t.tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, tok)
		}
		data[i] = v
	}
	return matrix.FromSlice(t.rows, t.cols, data)
}

// Write prints m one row per line with tab-aligned columns.
func Write[T matrix.Scalar](w io.Writer, m *matrix.Dense[T]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for r := 0; r < m.Rows(); r++ {
		for _, v := range m.Row(r) {
			fmt.Fprintf(tw, "%v\t", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

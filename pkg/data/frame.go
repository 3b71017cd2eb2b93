package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Column is a single named column. Numeric columns use Num with NaN for a
// missing value; categorical columns use Str with "" for a missing value.
type Column struct {
	Name string
	Kind Kind
	Num  []float64
	Str  []string
}

// NewNumeric creates a numeric column.
func NewNumeric(name string, v []float64) *Column {
	return &Column{Name: name, Kind: Numeric, Num: v}
}

// NewCategorical creates a categorical column.
func NewCategorical(name string, v []string) *Column {
	return &Column{Name: name, Kind: Categorical, Str: v}
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Num)
	}
	return len(c.Str)
}

// IsMissing reports whether row i holds a missing value.
func (c *Column) IsMissing(i int) bool {
	if c.Kind == Numeric {
		return math.IsNaN(c.Num[i])
	}
	return c.Str[i] == ""
}

// Missing counts the missing values of the column.
func (c *Column) Missing() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

func (c *Column) take(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Numeric {
		out.Num = make([]float64, len(rows))
		for i, r := range rows {
			out.Num[i] = c.Num[r]
		}
		return out
	}
	out.Str = make([]string, len(rows))
	for i, r := range rows {
		out.Str[i] = c.Str[r]
	}
	return out
}

func (c *Column) cell(i int) string {
	if c.Kind == Numeric {
		if math.IsNaN(c.Num[i]) {
			return "NaN"
		}
		return strconv.FormatFloat(c.Num[i], 'g', -1, 64)
	}
	return c.Str[i]
}

// Frame is an ordered set of equal-length columns.
type Frame struct {
	cols  []*Column
	index map[string]int
	n     int
}

// NewFrame assembles columns into a frame.
func NewFrame(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := f.Add(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns the columns in order. The slice is shared with the frame.
func (f *Frame) Columns() []*Column { return f.cols }

// Has reports whether the frame contains a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Col returns the named column.
func (f *Frame) Col(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, apperrors.MissingColumn(name)
	}
	return f.cols[i], nil
}

// Float returns the values of a numeric column.
func (f *Frame) Float(name string) ([]float64, error) {
	c, err := f.Col(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, apperrors.InvalidArgument("column %q is %s, not numeric", name, c.Kind)
	}
	return c.Num, nil
}

// Strings returns the values of a categorical column.
func (f *Frame) Strings(name string) ([]string, error) {
	c, err := f.Col(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Categorical {
		return nil, apperrors.InvalidArgument("column %q is %s, not categorical", name, c.Kind)
	}
	return c.Str, nil
}

// Add appends a column. The first column of an empty frame fixes the row count.
func (f *Frame) Add(c *Column) error {
	if _, dup := f.index[c.Name]; dup {
		return apperrors.InvalidArgument("duplicate column %q", c.Name)
	}
	if len(f.cols) == 0 {
		f.n = c.Len()
	} else if c.Len() != f.n {
		return apperrors.DimensionMismatch("column %q has %d rows, frame has %d", c.Name, c.Len(), f.n)
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// Drop returns a new frame without the named columns. Columns are shared, not copied.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		if !f.Has(n) {
			return nil, apperrors.MissingColumn(n)
		}
		skip[n] = true
	}
	out := &Frame{index: make(map[string]int), n: f.n}
	for _, c := range f.cols {
		if skip[c.Name] {
			continue
		}
		out.index[c.Name] = len(out.cols)
		out.cols = append(out.cols, c)
	}
	return out, nil
}

// Select returns a new frame holding only the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{index: make(map[string]int, len(names)), n: f.n}
	for _, n := range names {
		c, err := f.Col(n)
		if err != nil {
			return nil, err
		}
		if err := out.Add(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Take copies the given rows into a new frame.
func (f *Frame) Take(rows []int) (*Frame, error) {
	for _, r := range rows {
		if r < 0 || r >= f.n {
			return nil, apperrors.InvalidArgument("row %d out of range [0,%d)", r, f.n)
		}
	}
	out := &Frame{index: make(map[string]int, len(f.cols)), n: len(rows)}
	for _, c := range f.cols {
		out.index[c.Name] = len(out.cols)
		out.cols = append(out.cols, c.take(rows))
	}
	return out, nil
}

// rowKey renders row i as a single string with a separator no CSV cell contains.
func (f *Frame) rowKey(i int) string {
	var b strings.Builder
	for j, c := range f.cols {
		if j > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(c.cell(i))
	}
	return b.String()
}

// DropDuplicates removes repeated rows, keeping the first occurrence.
// Missing values compare equal to each other.
func (f *Frame) DropDuplicates() *Frame {
	buckets := make(map[uint64][]string, f.n)
	keep := make([]int, 0, f.n)
	for i := 0; i < f.n; i++ {
		key := f.rowKey(i)
		h := xxhash.Sum64String(key)
		dup := false
		for _, seen := range buckets[h] {
			if seen == key {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], key)
		keep = append(keep, i)
	}
	out, _ := f.Take(keep)
	return out
}

// MissingCount is the number of missing values in one column.
type MissingCount struct {
	Column string
	Count  int
}

// Missing returns per-column missing counts, in column order.
func (f *Frame) Missing() []MissingCount {
	out := make([]MissingCount, len(f.cols))
	for i, c := range f.cols {
		out[i] = MissingCount{Column: c.Name, Count: c.Missing()}
	}
	return out
}

// IsMissing reports whether the cell at (row, col) is missing.
func (f *Frame) IsMissing(row, col int) bool {
	return f.cols[col].IsMissing(row)
}

// Schema returns the declared kinds of the frame's columns.
func (f *Frame) Schema() Schema {
	s := make(Schema, len(f.cols))
	for i, c := range f.cols {
		s[i] = ColumnSpec{Name: c.Name, Kind: c.Kind}
	}
	return s
}

// DropMissing returns the rows with no missing value in any column.
func (f *Frame) DropMissing() *Frame {
	keep := make([]int, 0, f.n)
	for i := 0; i < f.n; i++ {
		ok := true
		for _, c := range f.cols {
			if c.IsMissing(i) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}
	out, _ := f.Take(keep)
	return out
}

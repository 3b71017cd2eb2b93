package pipeline

import (
	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Block is the unit a Transformer works on: a set of named numeric columns
// and a set of named string columns, all with the same number of rows.
// Columns are stored column-major: Num[j] holds every row of NumNames[j].
type Block struct {
	NumNames []string
	Num      [][]float64
	StrNames []string
	Str      [][]string
	rows     int
}

// NewBlock returns an empty block with the given row count.
func NewBlock(rows int) *Block {
	return &Block{rows: rows}
}

// Rows returns the row count.
func (b *Block) Rows() int { return b.rows }

// AddNum appends a numeric column.
func (b *Block) AddNum(name string, col []float64) error {
	if len(col) != b.rows {
		return apperrors.DimensionMismatch("column %q has %d rows, block has %d", name, len(col), b.rows)
	}
	b.NumNames = append(b.NumNames, name)
	b.Num = append(b.Num, col)
	return nil
}

// AddStr appends a string column.
func (b *Block) AddStr(name string, col []string) error {
	if len(col) != b.rows {
		return apperrors.DimensionMismatch("column %q has %d rows, block has %d", name, len(col), b.rows)
	}
	b.StrNames = append(b.StrNames, name)
	b.Str = append(b.Str, col)
	return nil
}

// Clone deep copies the block so a transformer can write without touching its input.
func (b *Block) Clone() *Block {
	out := &Block{
		rows:     b.rows,
		NumNames: append([]string(nil), b.NumNames...),
		StrNames: append([]string(nil), b.StrNames...),
		Num:      make([][]float64, len(b.Num)),
		Str:      make([][]string, len(b.Str)),
	}
	for j, c := range b.Num {
		out.Num[j] = append([]float64(nil), c...)
	}
	for j, c := range b.Str {
		out.Str[j] = append([]string(nil), c...)
	}
	return out
}

// Matrix returns the numeric columns as row-major rows.
func (b *Block) Matrix() [][]float64 {
	out := make([][]float64, b.rows)
	for i := range out {
		row := make([]float64, len(b.Num))
		for j := range b.Num {
			row[j] = b.Num[j][i]
		}
		out[i] = row
	}
	return out
}

// CheckNames verifies that got lists exactly the columns a transformer was fit on.
func CheckNames(what string, want, got []string) error {
	if len(want) != len(got) {
		return apperrors.DimensionMismatch("%s fit on %d columns, got %d", what, len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return apperrors.DimensionMismatch("%s fit on column %q at %d, got %q", what, want[i], i, got[i])
		}
	}
	return nil
}

package data

import "fmt"

// Kind is the declared storage kind of a column.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ColumnSpec declares one column of a Schema.
type ColumnSpec struct {
	Name string
	Kind Kind
}

// Schema describes the structure of a dataset. Column kinds are always
// declared by the caller and never inferred from the data.
type Schema []ColumnSpec

// NewSchema builds a schema from numeric and categorical name lists.
// Numeric columns come first.
func NewSchema(numeric, categorical []string) Schema {
	s := make(Schema, 0, len(numeric)+len(categorical))
	for _, n := range numeric {
		s = append(s, ColumnSpec{Name: n, Kind: Numeric})
	}
	for _, n := range categorical {
		s = append(s, ColumnSpec{Name: n, Kind: Categorical})
	}
	return s
}

// Names returns the names of all columns of kind k, in schema order.
func (s Schema) Names(k Kind) []string {
	var out []string
	for _, c := range s {
		if c.Kind == k {
			out = append(out, c.Name)
		}
	}
	return out
}

// Lookup returns the spec for name.
func (s Schema) Lookup(name string) (ColumnSpec, bool) {
	for _, c := range s {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// Without returns a copy of s minus the named columns.
func (s Schema) Without(names ...string) Schema {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	out := make(Schema, 0, len(s))
	for _, c := range s {
		if !skip[c.Name] {
			out = append(out, c)
		}
	}
	return out
}

package geometry

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// #region table-error
// TableError reports an invalid symbol→segments configuration.
type TableError struct {
	Symbol string
	Reason string
}

func (e *TableError) Error() string {
	if e.Symbol == "" {
		return "geometry table: " + e.Reason
	}
	return fmt.Sprintf("geometry table: symbol %q: %s", e.Symbol, e.Reason)
}

// #endregion table-error

// #region table
// Table is an immutable symbol→segments mapping. It is validated once at
// construction and read-only afterwards; the correction pipeline never
// writes to it.
type Table struct {
	forms map[string][]Segment
}

// NewTable validates and copies the given forms. Every symbol must carry
// at least one segment, every segment two distinct non-empty endpoints.
// Duplicate segments (after endpoint normalization) are dropped.
func NewTable(forms map[string][]Segment) (*Table, error) {
	if len(forms) == 0 {
		return nil, &TableError{Reason: "no symbols defined"}
	}

	copied := make(map[string][]Segment, len(forms))
	for sym, segs := range forms {
		if sym == "" {
			return nil, &TableError{Reason: "empty symbol name"}
		}
		if len(segs) == 0 {
			return nil, &TableError{Symbol: sym, Reason: "no segments"}
		}

		seen := make(map[Segment]struct{}, len(segs))
		out := make([]Segment, 0, len(segs))
		for _, seg := range segs {
			if seg.A == "" || seg.B == "" {
				return nil, &TableError{Symbol: sym, Reason: "segment with empty endpoint"}
			}
			if seg.A == seg.B {
				return nil, &TableError{Symbol: sym, Reason: fmt.Sprintf("degenerate segment {%s, %s}", seg.A, seg.B)}
			}
			n := seg.Normalize()
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
		copied[sym] = out
	}

	return &Table{forms: copied}, nil
}

// Segments returns a copy of the segment collection for a symbol and
// whether the symbol resolves.
func (t *Table) Segments(symbol string) ([]Segment, bool) {
	segs, ok := t.forms[symbol]
	if !ok {
		return nil, false
	}
	out := make([]Segment, len(segs))
	copy(out, segs)
	return out, true
}

// Resolve checks that every referenced symbol is defined.
func (t *Table) Resolve(symbols ...string) error {
	for _, s := range symbols {
		if _, ok := t.forms[s]; !ok {
			return &TableError{Symbol: s, Reason: "not defined"}
		}
	}
	return nil
}

// Len returns the number of defined symbols.
func (t *Table) Len() int {
	return len(t.forms)
}

// #endregion table

// #region yaml

// tableFile mirrors the YAML geometry document:
//
//	symbols:
//	  "0":
//	    - [C1, C2]
//	    - [C2, C4]
type tableFile struct {
	Symbols map[string][][2]string `yaml:"symbols" validate:"required,min=1,dive,min=1"`
}

var fileValidator = validator.New()

// ParseTable decodes a YAML geometry document into a validated Table.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse geometry table: %w", err)
	}
	if err := fileValidator.Struct(&file); err != nil {
		return nil, fmt.Errorf("validate geometry table: %w", err)
	}

	forms := make(map[string][]Segment, len(file.Symbols))
	for sym, pairs := range file.Symbols {
		segs := make([]Segment, 0, len(pairs))
		for _, p := range pairs {
			segs = append(segs, Segment{A: p[0], B: p[1]})
		}
		forms[sym] = segs
	}
	return NewTable(forms)
}

// LoadTable reads a YAML geometry table from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry table: %w", err)
	}
	return ParseTable(data)
}

// #endregion yaml

// #region default-table

// DefaultTable returns the built-in glyph forms. Vertices follow the
// square-cell naming of the geometric parser: C1-C4 are the cell corners,
// V0/V1 the vertical midline, H0/H1 the horizontal midline.
func DefaultTable() *Table {
	t, err := NewTable(map[string][]Segment{
		"0": {
			{A: "C1", B: "C2"},
			{A: "C2", B: "C4"},
			{A: "C4", B: "C3"},
			{A: "C3", B: "C1"},
		},
		"1": {
			{A: "V0", B: "V1"},
		},
		"7": {
			{A: "C1", B: "C2"},
			{A: "C2", B: "C3"},
		},
		"L": {
			{A: "C1", B: "C3"},
			{A: "C3", B: "C4"},
		},
		"T": {
			{A: "C1", B: "C2"},
			{A: "V0", B: "V1"},
		},
		"X": {
			{A: "C1", B: "C4"},
			{A: "C2", B: "C3"},
		},
		"+": {
			{A: "V0", B: "V1"},
			{A: "H0", B: "H1"},
		},
	})
	if err != nil {
		panic("geometry: default table invalid: " + err.Error())
	}
	return t
}

// #endregion default-table

package tableschema

import (
	"fmt"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

// Schema pairs column definitions with the frames they validate. A schema
// is immutable after construction and safe for concurrent use.
type Schema struct {
	columns []Column
	ordered bool
}

// Option configures a schema at construction.
type Option func(*Schema)

// Ordered matches schema columns to frame columns by position instead of by
// name, reporting name mismatches as warnings.
func Ordered() Option {
	return func(s *Schema) { s.ordered = true }
}

// New builds a schema from column definitions. Every column needs a unique
// name and at least one rule.
func New(columns []Column, opts ...Option) (*Schema, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = struct{}{}
		if len(c.rules) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoRules, c.Name)
		}
	}

	s := &Schema{columns: append([]Column(nil), columns...)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Columns returns the schema's column definitions.
func (s *Schema) Columns() []Column {
	return append([]Column(nil), s.columns...)
}

// Validate checks the frame against every column's rules and returns all
// warnings ordered by row then column. Structural differences (column count,
// missing or misplaced columns) are warnings like any other finding; an
// error means the run could not complete and no warnings are returned.
func (s *Schema) Validate(f *frame.Frame) ([]validate.Warning, error) {
	if f == nil {
		return nil, &validate.ConfigurationError{Reason: "nil frame", Err: validate.ErrNilFrame}
	}

	var warnings []validate.Warning
	if f.ColumnCount() != len(s.columns) {
		warnings = append(warnings, validate.Warning{
			Scope: validate.ScopeTable,
			Row:   -1,
			Message: fmt.Sprintf("invalid number of columns: the schema specifies %d, the data has %d",
				len(s.columns), f.ColumnCount()),
		})
	}

	var columnWarnings []validate.Warning
	var err error
	if s.ordered {
		columnWarnings, err = s.validateOrdered(f)
	} else {
		columnWarnings, err = s.validateByName(f)
	}
	if err != nil {
		return nil, err
	}

	warnings = append(warnings, columnWarnings...)
	validate.SortWarnings(warnings)
	return warnings, nil
}

// validateByName matches schema columns to frame columns by name. Frame
// columns the schema does not mention are ignored.
func (s *Schema) validateByName(f *frame.Frame) ([]validate.Warning, error) {
	var warnings []validate.Warning
	for _, c := range s.columns {
		if _, ok := f.ColumnIndex(c.Name); !ok {
			warnings = append(warnings, validate.Warning{
				Scope:   validate.ScopeColumn,
				Row:     -1,
				Column:  c.Name,
				Message: "exists in the schema but not in the data",
			})
			continue
		}
		ws, err := c.validateAgainst(f, indexer.Label(indexer.Cols, c.Name))
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

// validateOrdered matches schema columns to frame columns by position. A
// name mismatch is reported but the positional column is still validated.
func (s *Schema) validateOrdered(f *frame.Frame) ([]validate.Warning, error) {
	var warnings []validate.Warning
	for i, c := range s.columns {
		if i >= f.ColumnCount() {
			warnings = append(warnings, validate.Warning{
				Scope:   validate.ScopeColumn,
				Row:     -1,
				Column:  c.Name,
				Message: "exists in the schema but not in the data",
			})
			continue
		}
		actual, err := f.ColumnName(i)
		if err != nil {
			return nil, err
		}
		if actual != c.Name {
			warnings = append(warnings, validate.Warning{
				Scope:   validate.ScopeColumn,
				Row:     -1,
				Column:  actual,
				Message: fmt.Sprintf("column %d does not match the schema: expected %q, found %q", i, c.Name, actual),
			})
		}
		ws, err := c.validateAgainst(f, indexer.Position(indexer.Cols, i))
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

package frame

import (
	"fmt"
)

// Column pairs a name with a slice of cell values. It is the unit of frame
// construction.
type Column struct {
	Name   string
	Values []Value
}

// Strings builds a column of string values.
func Strings(name string, values ...string) Column {
	vals := make([]Value, len(values))
	for i, s := range values {
		vals[i] = String(s)
	}
	return Column{Name: name, Values: vals}
}

// Ints builds a column of integer values.
func Ints(name string, values ...int64) Column {
	vals := make([]Value, len(values))
	for i, n := range values {
		vals[i] = Int(n)
	}
	return Column{Name: name, Values: vals}
}

// Floats builds a column of floating-point values.
func Floats(name string, values ...float64) Column {
	vals := make([]Value, len(values))
	for i, f := range values {
		vals[i] = Float(f)
	}
	return Column{Name: name, Values: vals}
}

// Values builds a column from explicit cell values, allowing nulls.
func Values(name string, values ...Value) Column {
	return Column{Name: name, Values: values}
}

// Frame is an immutable in-memory table stored column-major. All read methods
// are safe for concurrent use.
type Frame struct {
	cols []Column
	rows int
}

// New constructs a frame from the given columns. All columns must have the
// same length and unique names.
func New(cols ...Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}

	rows := len(cols[0].Values)
	seen := make(map[string]struct{}, len(cols))
	copied := make([]Column, len(cols))
	for i, col := range cols {
		if len(col.Values) != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d", ErrColumnLength, col.Name, len(col.Values), rows)
		}
		if _, ok := seen[col.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		seen[col.Name] = struct{}{}

		vals := make([]Value, rows)
		copy(vals, col.Values)
		copied[i] = Column{Name: col.Name, Values: vals}
	}

	return &Frame{cols: copied, rows: rows}, nil
}

// RowCount returns the number of rows in the frame.
func (f *Frame) RowCount() int {
	return f.rows
}

// ColumnCount returns the number of columns in the frame.
func (f *Frame) ColumnCount() int {
	return len(f.cols)
}

// ColumnNames returns the column names in order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, col := range f.cols {
		names[i] = col.Name
	}
	return names
}

// ColumnIndex returns the position of the named column.
func (f *Frame) ColumnIndex(name string) (int, bool) {
	for i, col := range f.cols {
		if col.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ColumnName returns the name of the column at the given position.
func (f *Frame) ColumnName(col int) (string, error) {
	if col < 0 || col >= len(f.cols) {
		return "", fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return f.cols[col].Name, nil
}

// Cell returns the value at the specified row and column.
func (f *Frame) Cell(row, col int) (Value, error) {
	if row < 0 || row >= f.rows {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	if col < 0 || col >= len(f.cols) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return f.cols[col].Values[row], nil
}

// Row returns all values for the specified row.
func (f *Frame) Row(row int) ([]Value, error) {
	if row < 0 || row >= f.rows {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	vals := make([]Value, len(f.cols))
	for i, col := range f.cols {
		vals[i] = col.Values[row]
	}
	return vals, nil
}

// Column returns the column at the given position as a series covering every
// row of the frame.
func (f *Frame) Column(col int) (Series, error) {
	if col < 0 || col >= len(f.cols) {
		return Series{}, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	rows := make([]int, f.rows)
	for i := range rows {
		rows[i] = i
	}
	vals := make([]Value, f.rows)
	copy(vals, f.cols[col].Values)
	return Series{name: f.cols[col].Name, rows: rows, values: vals}, nil
}

// Select builds a selection over the given row and column positions. The
// scalar flags record whether each axis was addressed by a single position,
// which determines whether the selection is a cell, a series, or a block.
func (f *Frame) Select(rows, cols []int, scalarRow, scalarCol bool) (Selection, error) {
	for _, r := range rows {
		if r < 0 || r >= f.rows {
			return Selection{}, fmt.Errorf("%w: %d", ErrInvalidRow, r)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= len(f.cols) {
			return Selection{}, fmt.Errorf("%w: %d", ErrInvalidColumn, c)
		}
	}
	return Selection{
		frame:     f,
		rows:      rows,
		cols:      cols,
		scalarRow: scalarRow,
		scalarCol: scalarCol,
	}, nil
}

// Series is a named one-dimensional slice of cells together with the frame
// row positions they came from.
type Series struct {
	name   string
	rows   []int
	values []Value
}

// NewSeries constructs a series from explicit row positions and values.
// The two slices must have the same length.
func NewSeries(name string, rows []int, values []Value) (Series, error) {
	if len(rows) != len(values) {
		return Series{}, fmt.Errorf("%w: %d rows, %d values", ErrColumnLength, len(rows), len(values))
	}
	return Series{name: name, rows: rows, values: values}, nil
}

// Name returns the column name this series was selected from.
func (s Series) Name() string {
	return s.name
}

// Len returns the number of cells in the series.
func (s Series) Len() int {
	return len(s.values)
}

// At returns the value at position i within the series.
func (s Series) At(i int) Value {
	return s.values[i]
}

// RowAt returns the originating frame row for position i within the series.
func (s Series) RowAt(i int) int {
	return s.rows[i]
}

// Selection is a resolved sub-region of a frame: a cell, a series, or a
// two-dimensional block, depending on how each axis was addressed.
type Selection struct {
	frame     *Frame
	rows      []int
	cols      []int
	scalarRow bool
	scalarCol bool
}

// RowPositions returns the selected frame row positions.
func (sel Selection) RowPositions() []int {
	return sel.rows
}

// ColPositions returns the selected frame column positions.
func (sel Selection) ColPositions() []int {
	return sel.cols
}

// IsEmpty reports whether the selection contains no cells.
func (sel Selection) IsEmpty() bool {
	return len(sel.rows) == 0 || len(sel.cols) == 0
}

// IsScalar reports whether the selection is a single cell addressed by
// scalar indexers on both axes.
func (sel Selection) IsScalar() bool {
	return sel.scalarRow && sel.scalarCol
}

// IsSeries reports whether the selection is one-dimensional: exactly one
// axis was addressed by a scalar indexer.
func (sel Selection) IsSeries() bool {
	return !sel.IsScalar() && (sel.scalarRow || sel.scalarCol)
}

// ColumnName returns the name of the j-th selected column.
func (sel Selection) ColumnName(j int) string {
	name, _ := sel.frame.ColumnName(sel.cols[j])
	return name
}

// ValueAt returns the cell at position (i, j) within the selection.
func (sel Selection) ValueAt(i, j int) Value {
	return sel.frame.cols[sel.cols[j]].Values[sel.rows[i]]
}

// Scalar returns the single selected cell.
func (sel Selection) Scalar() (Value, error) {
	if !sel.IsScalar() || sel.IsEmpty() {
		return Value{}, ErrNotScalar
	}
	return sel.ValueAt(0, 0), nil
}

// Series returns the selection as a single series. It fails when the
// selection spans more than one column.
func (sel Selection) Series() (Series, error) {
	if len(sel.cols) != 1 {
		return Series{}, fmt.Errorf("%w: %d columns selected", ErrNotSeries, len(sel.cols))
	}
	vals := make([]Value, len(sel.rows))
	for i := range sel.rows {
		vals[i] = sel.ValueAt(i, 0)
	}
	rows := make([]int, len(sel.rows))
	copy(rows, sel.rows)
	return Series{name: sel.ColumnName(0), rows: rows, values: vals}, nil
}

// Columns returns the selection one series per selected column.
func (sel Selection) Columns() []Series {
	out := make([]Series, len(sel.cols))
	for j := range sel.cols {
		vals := make([]Value, len(sel.rows))
		for i := range sel.rows {
			vals[i] = sel.ValueAt(i, j)
		}
		rows := make([]int, len(sel.rows))
		copy(rows, sel.rows)
		out[j] = Series{name: sel.ColumnName(j), rows: rows, values: vals}
	}
	return out
}

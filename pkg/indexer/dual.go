package indexer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// Dual pairs a row indexer and a column indexer into one fully-specified
// selection of a frame. Like AxisIndexer it is immutable; Invert returns a
// new value.
type Dual struct {
	rows AxisIndexer
	cols AxisIndexer
}

// NewDual builds a dual indexer. The row indexer must be bound to Rows and
// the column indexer to Cols.
func NewDual(rows, cols AxisIndexer) (Dual, error) {
	if rows.Axis() != Rows {
		return Dual{}, fmt.Errorf("%w: row indexer bound to %s", ErrAxisMismatch, rows.Axis())
	}
	if cols.Axis() != Cols {
		return Dual{}, fmt.Errorf("%w: column indexer bound to %s", ErrAxisMismatch, cols.Axis())
	}
	return Dual{rows: rows, cols: cols}, nil
}

// Rows returns the row-axis indexer.
func (d Dual) Rows() AxisIndexer {
	return d.rows
}

// Cols returns the column-axis indexer.
func (d Dual) Cols() AxisIndexer {
	return d.cols
}

// Apply resolves rows first, then columns, and returns the resulting
// selection: a cell when both axes are scalar, a series when one is, and a
// block otherwise.
func (d Dual) Apply(f *frame.Frame) (frame.Selection, error) {
	rowPos, rowScalar, err := d.rows.Resolve(f)
	if err != nil {
		return frame.Selection{}, fmt.Errorf("resolve rows: %w", err)
	}
	colPos, colScalar, err := d.cols.Resolve(f)
	if err != nil {
		return frame.Selection{}, fmt.Errorf("resolve columns: %w", err)
	}
	return f.Select(rowPos, colPos, rowScalar, colScalar)
}

// Invert returns a new dual indexer with only the requested axis logically
// complemented; the other axis is unchanged.
func (d Dual) Invert(axis Axis) (Dual, error) {
	switch axis {
	case Rows:
		inverted, err := d.rows.Invert()
		if err != nil {
			return Dual{}, err
		}
		return Dual{rows: inverted, cols: d.cols}, nil
	case Cols:
		inverted, err := d.cols.Invert()
		if err != nil {
			return Dual{}, err
		}
		return Dual{rows: d.rows, cols: inverted}, nil
	default:
		return Dual{}, fmt.Errorf("%w: axis %d", ErrAxisMismatch, int(axis))
	}
}

// On returns the indexer for the given axis.
func (d Dual) On(axis Axis) AxisIndexer {
	if axis == Rows {
		return d.rows
	}
	return d.cols
}

// Equal reports whether both axes match.
func (d Dual) Equal(other Dual) bool {
	return d.rows.Equal(other.rows) && d.cols.Equal(other.cols)
}

// Describe joins the axis descriptions into one message fragment, omitting
// unconstrained axes. It returns false when neither axis constrains anything.
func (d Dual) Describe() (string, bool) {
	var parts []string
	if s, ok := d.cols.Describe(); ok {
		parts = append(parts, s)
	}
	if s, ok := d.rows.Describe(); ok {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

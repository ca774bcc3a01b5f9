package validate

import (
	"fmt"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
)

// Warning records one difference between the rules and the data, located as
// precisely as the owning node's scope allows. Warnings are immutable once
// materialized; combinator merges reference the originating child warnings
// through Children for auditing.
type Warning struct {
	// Scope is the granularity this warning was materialized at.
	Scope Scope

	// Row is the failing frame row, or -1 when the scope carries no row.
	Row int

	// Column is the failing column name, empty when the scope carries none.
	Column string

	// Value is the offending cell value for cell-scope warnings.
	Value frame.Value

	// Message is the failure reason.
	Message string

	// Children holds the child warnings a combinator merged into this one.
	Children []Warning

	hasValue bool
}

// Render returns the warning in its documented shape:
// `{row: R, column: "C"}: "value" <reason>` with absent parts omitted.
func (w Warning) Render() string {
	switch {
	case w.Row >= 0 && w.Column != "" && w.hasValue:
		return fmt.Sprintf("{row: %d, column: %q}: %q %s", w.Row, w.Column, w.Value.String(), w.Message)
	case w.Row >= 0 && w.Column != "":
		return fmt.Sprintf("{row: %d, column: %q}: %s", w.Row, w.Column, w.Message)
	case w.Column != "":
		return fmt.Sprintf("{column: %q}: %s", w.Column, w.Message)
	case w.Row >= 0:
		return fmt.Sprintf("{row: %d}: %s", w.Row, w.Message)
	default:
		return w.Message
	}
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return w.Render()
}

// HasValue reports whether the warning captured the offending cell value.
func (w Warning) HasValue() bool {
	return w.hasValue
}

// position locates the warning along an axis, when it carries a coordinate
// there.
func (w Warning) position(f *frame.Frame, axis indexer.Axis) (int, bool) {
	if axis == indexer.Rows {
		if w.Row >= 0 {
			return w.Row, true
		}
		return 0, false
	}
	if w.Column == "" {
		return 0, false
	}
	return f.ColumnIndex(w.Column)
}

// materialize converts a failed selection into warnings at the given scope.
// Zero failed positions produce an empty collection, never an error.
func materialize(scope Scope, sel frame.Selection, reason string) []Warning {
	if sel.IsEmpty() {
		return nil
	}

	switch scope {
	case ScopeTable:
		return []Warning{{Scope: ScopeTable, Row: -1, Message: reason}}

	case ScopeColumn:
		cols := sel.ColPositions()
		warnings := make([]Warning, 0, len(cols))
		for j := range cols {
			warnings = append(warnings, Warning{
				Scope:   ScopeColumn,
				Row:     -1,
				Column:  sel.ColumnName(j),
				Message: reason,
			})
		}
		return warnings

	case ScopeRow:
		rows := sel.RowPositions()
		warnings := make([]Warning, 0, len(rows))
		for _, row := range rows {
			warnings = append(warnings, Warning{
				Scope:   ScopeRow,
				Row:     row,
				Message: reason,
			})
		}
		return warnings

	default: // ScopeCell
		rows := sel.RowPositions()
		cols := sel.ColPositions()
		warnings := make([]Warning, 0, len(rows)*len(cols))
		for i, row := range rows {
			for j := range cols {
				warnings = append(warnings, Warning{
					Scope:    ScopeCell,
					Row:      row,
					Column:   sel.ColumnName(j),
					Value:    sel.ValueAt(i, j),
					Message:  reason,
					hasValue: true,
				})
			}
		}
		return warnings
	}
}

package validate

import "fmt"

// Scope is the granularity at which a validation node reports failures. It
// is fixed when the node is constructed and only decides how failed
// positions materialize into warnings.
type Scope int

const (
	// ScopeTable emits a single warning when any position failed.
	ScopeTable Scope = iota
	// ScopeColumn emits one warning per failing column.
	ScopeColumn
	// ScopeRow emits one warning per failing row.
	ScopeRow
	// ScopeCell emits one warning per failing cell, with its value.
	ScopeCell
)

// String returns the string representation of a Scope.
func (s Scope) String() string {
	switch s {
	case ScopeTable:
		return "table"
	case ScopeColumn:
		return "column"
	case ScopeRow:
		return "row"
	case ScopeCell:
		return "cell"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

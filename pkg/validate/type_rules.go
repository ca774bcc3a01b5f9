package validate

import (
	"fmt"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// typePredicate checks a whole series for a uniform data type. Scope is
// column: either the column has the type or it does not.
type typePredicate struct {
	want frame.DataType
}

func (p typePredicate) Check(s frame.Series) ([]bool, error) {
	match := true
	seen := false
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		if v.IsNull() {
			continue
		}
		seen = true
		if v.Type() != p.want {
			match = false
			break
		}
	}
	// A column of only nulls has no observable type and fails the check.
	if !seen {
		match = false
	}

	mask := make([]bool, s.Len())
	for i := range mask {
		mask[i] = match
	}
	return mask, nil
}

func (p typePredicate) Message() string {
	return fmt.Sprintf("did not have the type %q", p.want)
}

// IsType checks that every non-null cell in the column has the given data
// type. It reports at column scope: one warning for the whole column.
func IsType(want frame.DataType) *Validation {
	return newLeaf(typePredicate{want: want}, ScopeColumn)
}

// CanCall checks that fn succeeds on each cell. A returned error marks the
// cell as failed instead of aborting evaluation; this is the sanctioned way
// to validate parseability.
func CanCall(fn func(frame.Value) error, msg string) *Validation {
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			return fn(v) == nil, nil
		},
		msg: msg,
	}
	return newLeaf(pred, ScopeCell)
}

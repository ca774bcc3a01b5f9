package validate

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// DateFormat checks that each cell parses as a date in the given Go time
// layout. Cells that already hold time values pass regardless of layout.
func DateFormat(layout string) *Validation {
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			if _, ok := v.Time(); ok {
				return true, nil
			}
			_, err := time.Parse(layout, v.String())
			return err == nil, nil
		},
		msg: fmt.Sprintf("does not match the date format %q", layout),
	}
	return newLeaf(pred, ScopeCell)
}

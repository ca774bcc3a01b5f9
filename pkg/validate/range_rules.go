package validate

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// InRange checks that each cell is numeric and within [min, max). Cells that
// have no numeric interpretation fail the check rather than aborting the
// run.
func InRange(min, max float64) *Validation {
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			f, ok := v.Float()
			if !ok {
				return false, nil
			}
			return f >= min && f < max, nil
		},
		msg: fmt.Sprintf("was not in the range [%s, %s)", formatBound(min), formatBound(max)),
	}
	return newLeaf(pred, ScopeCell)
}

// AtLeast checks that each cell is numeric and not below min.
func AtLeast(min float64) *Validation {
	return InRange(min, math.Inf(1)).WithMessage(fmt.Sprintf("was below the minimum %s", formatBound(min)))
}

// Below checks that each cell is numeric and below max.
func Below(max float64) *Validation {
	return InRange(math.Inf(-1), max).WithMessage(fmt.Sprintf("was not below the maximum %s", formatBound(max)))
}

func formatBound(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%g", f)
	}
}

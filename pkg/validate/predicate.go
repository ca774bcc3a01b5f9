package validate

import (
	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// Predicate checks a series and returns a pass mask aligned to it: true
// means the cell at the same position passed. Returning an error aborts the
// whole evaluation as an EvaluationError; predicates that expect individual
// cells to be unparseable should fail the cell instead (can-call style).
type Predicate interface {
	// Check returns one pass/fail flag per series element.
	Check(s frame.Series) ([]bool, error)

	// Message is the failure reason shown when no custom message is set.
	Message() string
}

// FramePredicate checks a two-dimensional selection and returns a pass mask
// along its rows. It is used by whole-frame rules such as row uniqueness.
type FramePredicate interface {
	// CheckSelection returns one pass/fail flag per selected row.
	CheckSelection(sel frame.Selection) ([]bool, error)

	// Message is the failure reason shown when no custom message is set.
	Message() string
}

// elementPredicate adapts a per-cell check into a Predicate.
type elementPredicate struct {
	check func(v frame.Value) (bool, error)
	msg   string
}

func (p elementPredicate) Check(s frame.Series) ([]bool, error) {
	mask := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		ok, err := p.check(s.At(i))
		if err != nil {
			return nil, &EvaluationError{Row: s.RowAt(i), Column: s.Name(), Err: err}
		}
		mask[i] = ok
	}
	return mask, nil
}

func (p elementPredicate) Message() string {
	return p.msg
}

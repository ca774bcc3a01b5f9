package validate

import "github.com/dmitrymomot/tableschema/pkg/frame"

// seriesPredicate adapts a user function over a whole series.
type seriesPredicate struct {
	check func(s frame.Series) ([]bool, error)
	msg   string
}

func (p seriesPredicate) Check(s frame.Series) ([]bool, error) {
	mask, err := p.check(s)
	if err != nil {
		return nil, asEvaluationError(err, s.Name())
	}
	if len(mask) != s.Len() {
		return nil, &EvaluationError{Row: -1, Column: s.Name(), Err: ErrMaskShape}
	}
	return mask, nil
}

func (p seriesPredicate) Message() string {
	return p.msg
}

// CustomSeries wraps a user function that inspects the whole series at once
// and returns one pass/fail flag per element. The mask must have exactly one
// entry per series element.
func CustomSeries(fn func(s frame.Series) ([]bool, error), msg string) *Validation {
	if fn == nil {
		return newBrokenLeaf(newConfigErr("custom series function is nil", ErrNilPredicate))
	}
	return newLeaf(seriesPredicate{check: fn, msg: msg}, ScopeCell)
}

// CustomElement wraps a user function applied to each cell independently.
func CustomElement(fn func(v frame.Value) (bool, error), msg string) *Validation {
	if fn == nil {
		return newBrokenLeaf(newConfigErr("custom element function is nil", ErrNilPredicate))
	}
	return newLeaf(elementPredicate{check: fn, msg: msg}, ScopeCell)
}

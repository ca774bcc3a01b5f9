package validate

import "github.com/dmitrymomot/tableschema/pkg/frame"

// IsEmpty checks that every cell is empty: either null or an empty string.
func IsEmpty() *Validation {
	return newLeaf(elementPredicate{
		check: func(v frame.Value) (bool, error) { return v.IsEmpty(), nil },
		msg:   "is not empty",
	}, ScopeCell)
}

// NotEmpty checks that every cell carries a value: neither null nor an
// empty string.
func NotEmpty() *Validation {
	return newLeaf(elementPredicate{
		check: func(v frame.Value) (bool, error) { return !v.IsEmpty(), nil },
		msg:   "is empty",
	}, ScopeCell)
}

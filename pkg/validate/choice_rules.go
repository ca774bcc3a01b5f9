package validate

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// InList checks that each cell's string form equals one of the allowed
// options.
func InList(options []string) *Validation {
	allowed := make([]string, len(options))
	copy(allowed, options)

	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			s := v.String()
			for _, opt := range allowed {
				if s == opt {
					return true, nil
				}
			}
			return false, nil
		},
		msg: fmt.Sprintf("is not in the list of legal options (%s)", strings.Join(allowed, ", ")),
	}
	return newLeaf(pred, ScopeCell)
}

// InListCaseInsensitive is InList with case folded comparison.
func InListCaseInsensitive(options []string) *Validation {
	allowed := make([]string, len(options))
	copy(allowed, options)

	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			s := v.String()
			for _, opt := range allowed {
				if strings.EqualFold(s, opt) {
					return true, nil
				}
			}
			return false, nil
		},
		msg: fmt.Sprintf("is not in the list of legal options (%s)", strings.Join(allowed, ", ")),
	}
	return newLeaf(pred, ScopeCell)
}

// NotInList checks that each cell's string form is none of the forbidden
// options.
func NotInList(options []string) *Validation {
	forbidden := make([]string, len(options))
	copy(forbidden, options)

	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			s := v.String()
			for _, opt := range forbidden {
				if s == opt {
					return false, nil
				}
			}
			return true, nil
		},
		msg: fmt.Sprintf("is in the list of forbidden options (%s)", strings.Join(forbidden, ", ")),
	}
	return newLeaf(pred, ScopeCell)
}

package validate

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

var (
	leadingWhitespace  = regexp.MustCompile(`^\s+`)
	trailingWhitespace = regexp.MustCompile(`\s+$`)
)

// MatchesPattern checks that the pattern matches somewhere in each cell's
// string form. An invalid pattern is a tree-construction error surfaced at
// Evaluate entry.
func MatchesPattern(pattern string) *Validation {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return newBrokenLeaf(fmt.Errorf("compile pattern %q: %w", pattern, err))
	}
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			return re.MatchString(v.String()), nil
		},
		msg: fmt.Sprintf("does not match the pattern %q", pattern),
	}
	return newLeaf(pred, ScopeCell)
}

// LeadingWhitespace checks that no cell starts with whitespace.
func LeadingWhitespace() *Validation {
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			return !leadingWhitespace.MatchString(v.String()), nil
		},
		msg: "contains leading whitespace",
	}
	return newLeaf(pred, ScopeCell)
}

// TrailingWhitespace checks that no cell ends with whitespace.
func TrailingWhitespace() *Validation {
	pred := elementPredicate{
		check: func(v frame.Value) (bool, error) {
			return !trailingWhitespace.MatchString(v.String()), nil
		},
		msg: "contains trailing whitespace",
	}
	return newLeaf(pred, ScopeCell)
}

package validate

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// Keep selects which occurrence of a duplicated value survives a
// uniqueness check.
type Keep int

const (
	// KeepNone fails every occurrence of a duplicated value.
	KeepNone Keep = iota
	// KeepFirst passes the first occurrence and fails the rest.
	KeepFirst
	// KeepLast passes the last occurrence and fails the rest.
	KeepLast
)

// String returns the string representation of a Keep policy.
func (k Keep) String() string {
	switch k {
	case KeepNone:
		return "none"
	case KeepFirst:
		return "first"
	case KeepLast:
		return "last"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// distinctMask marks which positions pass a uniqueness check over the given
// occurrence keys.
func distinctMask(keys []string, keep Keep) []bool {
	first := make(map[string]int, len(keys))
	last := make(map[string]int, len(keys))
	count := make(map[string]int, len(keys))
	for i, key := range keys {
		if _, ok := first[key]; !ok {
			first[key] = i
		}
		last[key] = i
		count[key]++
	}

	mask := make([]bool, len(keys))
	for i, key := range keys {
		if count[key] == 1 {
			mask[i] = true
			continue
		}
		switch keep {
		case KeepFirst:
			mask[i] = first[key] == i
		case KeepLast:
			mask[i] = last[key] == i
		default:
			mask[i] = false
		}
	}
	return mask
}

// distinctPredicate checks series-level uniqueness.
type distinctPredicate struct {
	keep Keep
}

func (p distinctPredicate) Check(s frame.Series) ([]bool, error) {
	keys := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		keys[i] = cellKey(s.At(i))
	}
	return distinctMask(keys, p.keep), nil
}

func (p distinctPredicate) Message() string {
	return "contains values that are not unique"
}

// IsDistinct checks that every cell in the column is unique. The keep
// policy decides which duplicate occurrences still pass.
func IsDistinct(keep Keep) *Validation {
	return newLeaf(distinctPredicate{keep: keep}, ScopeCell)
}

// distinctRowsPredicate checks whole-row uniqueness over a selection.
type distinctRowsPredicate struct {
	keep Keep
}

func (p distinctRowsPredicate) CheckSelection(sel frame.Selection) ([]bool, error) {
	rows := sel.RowPositions()
	cols := sel.ColPositions()
	keys := make([]string, len(rows))
	for i := range rows {
		parts := make([]string, len(cols))
		for j := range cols {
			parts[j] = cellKey(sel.ValueAt(i, j))
		}
		keys[i] = strings.Join(parts, "\x1f")
	}
	return distinctMask(keys, p.keep), nil
}

func (p distinctRowsPredicate) Message() string {
	return "is a duplicate row"
}

// DistinctRows checks that no two rows of the frame are identical. It
// reports at row scope and spans all columns.
func DistinctRows(keep Keep) *Validation {
	return newFrameLeaf(distinctRowsPredicate{keep: keep}, ScopeRow)
}

// cellKey builds a duplicate-detection key that keeps nulls distinct from
// empty strings and types distinct from their renderings.
func cellKey(v frame.Value) string {
	if v.IsNull() {
		return "\x00null"
	}
	return fmt.Sprintf("%d:%s", int(v.Type()), v.String())
}

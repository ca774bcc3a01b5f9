package tableschema

import (
	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

// Column pairs a set of validation rules with a named frame column. The
// zero value is not usable; build columns with NewColumn.
type Column struct {
	// Name is the frame column the rules apply to.
	Name string

	// AllowEmpty makes empty and null cells pass every rule automatically.
	AllowEmpty bool

	rules []*validate.Validation
}

// NewColumn builds a column definition from a name and its rules.
func NewColumn(name string, rules ...*validate.Validation) Column {
	copied := make([]*validate.Validation, len(rules))
	copy(copied, rules)
	return Column{Name: name, rules: copied}
}

// Optional returns a copy of the column with AllowEmpty set.
func (c Column) Optional() Column {
	c.AllowEmpty = true
	return c
}

// Rules returns the column's rule trees.
func (c Column) Rules() []*validate.Validation {
	out := make([]*validate.Validation, len(c.rules))
	copy(out, c.rules)
	return out
}

// validateAgainst binds each rule to the given column indexer and collects
// the warnings of every rule over the frame. Rule trees are never mutated;
// binding produces fresh trees, so one schema can validate many frames.
func (c Column) validateAgainst(f *frame.Frame, col indexer.AxisIndexer) ([]validate.Warning, error) {
	var warnings []validate.Warning
	for _, rule := range c.rules {
		tree := rule
		if c.AllowEmpty {
			tree = tree.Optional()
		}
		ws, err := tree.Bind(col).Evaluate(f)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

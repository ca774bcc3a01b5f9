package validate

import (
	"github.com/dmitrymomot/tableschema/pkg/indexer"
)

// nodeKind tags the Validation variant.
type nodeKind int

const (
	kindLeaf nodeKind = iota
	kindAnd
	kindOr
)

// Validation is a node in an immutable validation tree: either a leaf
// predicate bound to a selection, or an AND/OR combinator over two children.
// Trees are built once and can be evaluated against any number of frames,
// concurrently, because evaluation allocates all intermediate state fresh.
type Validation struct {
	kind nodeKind

	// Leaf fields.
	pred      Predicate
	framePred FramePredicate
	index     *indexer.Dual
	negated   bool
	message   string
	scope     Scope
	buildErr  error

	// Combinator fields.
	left  *Validation
	right *Validation
	axis  indexer.Axis
}

// newLeaf builds a leaf node around a series predicate.
func newLeaf(pred Predicate, scope Scope) *Validation {
	return &Validation{kind: kindLeaf, pred: pred, scope: scope}
}

// newFrameLeaf builds a leaf node around a whole-selection predicate.
func newFrameLeaf(pred FramePredicate, scope Scope) *Validation {
	v := &Validation{kind: kindLeaf, framePred: pred, scope: scope}
	return v.withDefaultFrameIndex()
}

// withDefaultFrameIndex binds the open selection to frame-wide leaves.
func (v *Validation) withDefaultFrameIndex() *Validation {
	dual, err := indexer.NewDual(indexer.All(indexer.Rows), indexer.All(indexer.Cols))
	if err != nil {
		clone := v.clone()
		clone.buildErr = err
		return clone
	}
	clone := v.clone()
	clone.index = &dual
	return clone
}

// newBrokenLeaf records a construction failure surfaced at Evaluate entry.
func newBrokenLeaf(err error) *Validation {
	return &Validation{kind: kindLeaf, buildErr: err}
}

// clone copies the node one level deep; children are shared because nodes
// are immutable.
func (v *Validation) clone() *Validation {
	c := *v
	return &c
}

// And combines two validations so a position passes only when it passes
// both. Combination runs along the row axis.
func And(left, right *Validation) *Validation {
	return AndAlong(indexer.Rows, left, right)
}

// AndAlong is And with an explicit combination axis.
func AndAlong(axis indexer.Axis, left, right *Validation) *Validation {
	return &Validation{kind: kindAnd, left: left, right: right, axis: axis}
}

// Or combines two validations so a position passes when it passes either.
// Combination runs along the row axis.
func Or(left, right *Validation) *Validation {
	return OrAlong(indexer.Rows, left, right)
}

// OrAlong is Or with an explicit combination axis.
func OrAlong(axis indexer.Axis, left, right *Validation) *Validation {
	return &Validation{kind: kindOr, left: left, right: right, axis: axis}
}

// Not returns a validation reporting the complement of v's passing
// positions. Leaves toggle their negation flag; combinators rebuild through
// De Morgan's laws, so Not(Not(v)) behaves identically to v.
func Not(v *Validation) *Validation {
	if v == nil {
		return newBrokenLeaf(ErrNilValidation)
	}
	switch v.kind {
	case kindLeaf:
		clone := v.clone()
		clone.negated = !clone.negated
		return clone
	case kindAnd:
		return OrAlong(v.axis, Not(v.left), Not(v.right))
	case kindOr:
		return AndAlong(v.axis, Not(v.left), Not(v.right))
	default:
		return newBrokenLeaf(ErrNilValidation)
	}
}

// WithMessage returns a copy of the node with a custom failure message.
// For combinators the message applies to merged warnings.
func (v *Validation) WithMessage(msg string) *Validation {
	clone := v.clone()
	clone.message = msg
	return clone
}

// WithIndex returns a copy of a leaf with the full dual index replaced.
// Calling it on a combinator rebuilds both children with the index.
func (v *Validation) WithIndex(dual indexer.Dual) *Validation {
	if v == nil {
		return newBrokenLeaf(ErrNilValidation)
	}
	clone := v.clone()
	if v.kind == kindLeaf {
		clone.index = &dual
		return clone
	}
	clone.left = v.left.WithIndex(dual)
	clone.right = v.right.WithIndex(dual)
	return clone
}

// Bind attaches a column indexer to every unbound leaf in the tree,
// selecting all rows of that column. It is a pure transform: the receiver
// is untouched and shared nodes are never mutated.
func (v *Validation) Bind(col indexer.AxisIndexer) *Validation {
	if v == nil {
		return newBrokenLeaf(ErrNilValidation)
	}
	if v.kind != kindLeaf {
		clone := v.clone()
		clone.left = v.left.Bind(col)
		clone.right = v.right.Bind(col)
		return clone
	}
	if v.index != nil {
		return v
	}
	dual, err := indexer.NewDual(indexer.All(indexer.Rows), col)
	if err != nil {
		clone := v.clone()
		clone.buildErr = err
		return clone
	}
	clone := v.clone()
	clone.index = &dual
	return clone
}

// Optional returns a validation equivalent to `v OR is_empty(same index)`:
// empty and null cells pass automatically, everything else is judged by v.
func (v *Validation) Optional() *Validation {
	empty := IsEmpty()
	if idx := v.primaryIndex(); idx != nil {
		empty = empty.WithIndex(*idx)
	}
	return Or(v, empty)
}

// primaryIndex finds the index the node validates over: a leaf's own index,
// or the leftmost bound leaf of a combinator.
func (v *Validation) primaryIndex() *indexer.Dual {
	if v == nil {
		return nil
	}
	if v.kind == kindLeaf {
		return v.index
	}
	if idx := v.left.primaryIndex(); idx != nil {
		return idx
	}
	return v.right.primaryIndex()
}

// Scope returns the granularity this node reports failures at. Combinators
// report at cell granularity through their merged warnings.
func (v *Validation) Scope() Scope {
	if v.kind == kindLeaf {
		return v.scope
	}
	return ScopeCell
}

// check verifies the tree is well-formed. It is called once at Evaluate
// entry so malformed trees never fail mid-combination.
func (v *Validation) check() error {
	if v == nil {
		return newConfigErr("nil validation", ErrNilValidation)
	}
	if v.kind == kindLeaf {
		if v.buildErr != nil {
			if IsConfigurationError(v.buildErr) {
				return v.buildErr
			}
			return newConfigErr("broken leaf", v.buildErr)
		}
		if v.pred == nil && v.framePred == nil {
			return newConfigErr("leaf without predicate", ErrNilPredicate)
		}
		if v.index == nil {
			return newConfigErr("unbound leaf", ErrMissingIndex)
		}
		return nil
	}
	if v.left == nil || v.right == nil {
		return newConfigErr("combinator with missing operand", ErrNilValidation)
	}
	if err := v.left.check(); err != nil {
		return err
	}
	return v.right.check()
}

// Package indexer describes selections over frame axes: which rows and which
// columns a validation claims, passes, or fails.
//
// An AxisIndexer addresses one axis by ordinal position, by column label, by
// a boolean mask aligned to the axis, or by an open/empty slice. A Dual pairs
// a row indexer with a column indexer into a fully-specified rectangular (or
// masked) selection. Both are immutable: inversion always returns a new
// value, which is what lets a validation tree be evaluated concurrently
// against distinct frames without synchronization.
//
// # Architecture
//
// Kind classification is deterministic: New infers position from integers,
// positions from []int, label from strings, and mask from []bool; anything
// else is rejected at construction. Inversion is defined only where a
// complement is well-defined: masks negate, and the everything-slice becomes
// the nothing-slice and vice versa. Positions and labels fail loudly with
// ErrNotInvertible instead of guessing.
//
// # Usage
//
//	dual, err := indexer.NewDual(
//	    indexer.All(indexer.Rows),
//	    indexer.Label(indexer.Cols, "age"),
//	)
//	sel, err := dual.Apply(f) // the whole "age" column
//
// Describe renders message fragments such as `Column "age"` and omits axes
// that select everything, so unconstrained axes never clutter warnings.
package indexer

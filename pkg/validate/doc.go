// Package validate builds and evaluates composable validation trees over
// tabular frames.
//
// A Validation is either a leaf (a predicate bound to a selection of the
// frame) or an AND/OR combinator over two sub-validations. Trees are
// immutable: every modifier (Not, WithMessage, WithIndex, Bind, Optional)
// returns a new tree and never mutates the receiver, so a tree built once
// can be evaluated concurrently against any number of frames.
//
// # Architecture
//
// Evaluation is a two-phase pipeline. First every node resolves a passed
// index: a boolean mask along its free axis (rows for column selections,
// columns for fixed-row selections) where positions the node never claimed
// count as passing. Combinators verify that both children judged the same
// region on the fixed axis, then combine the masks with boolean algebra
// along the combination axis. Second, failed positions (the passed index
// inverted along the free axis) are materialized
// into warnings at the node's scope: one warning for the whole table, one
// per failing column, one per failing row, or one per failing cell with
// the offending value captured.
//
// Combinators merge rather than concatenate: at a position where both
// children failed, a single warning is emitted whose message joins the
// child reasons and whose Children field keeps the originals for auditing.
//
// Malformed trees (unbound leaves, nil operands, invalid patterns) are
// detected at Evaluate entry and reported as a ConfigurationError before
// any data is touched. Predicates that cannot judge a cell fail the cell
// instead of erroring; an EvaluationError is reserved for genuinely broken
// predicates.
//
// # Usage
//
//	rule := validate.Or(
//	    validate.MatchesPattern(`^\d{4}$`),
//	    validate.InList("n/a"),
//	).Bind(indexer.Label(indexer.Cols, "code"))
//
//	warnings, err := rule.Evaluate(f)
//	for _, w := range warnings {
//	    fmt.Println(w.Render())
//	}
//
// Bind attaches a column to every unbound leaf, which is how a schema
// applies one rule set across many columns without rebuilding predicates.
package validate

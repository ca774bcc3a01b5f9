package validate

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
)

// Evaluate runs the validation tree against a frame and returns every
// warning, ordered by row then column. On any configuration, resolution, or
// evaluation error no warnings are returned: the result is either complete
// or absent.
func (v *Validation) Evaluate(f *frame.Frame) ([]Warning, error) {
	if f == nil {
		return nil, newConfigErr("nil frame", ErrNilFrame)
	}
	if err := v.check(); err != nil {
		return nil, err
	}
	warnings, err := v.warnings(f)
	if err != nil {
		return nil, err
	}
	SortWarnings(warnings)
	return warnings, nil
}

// passResult is a node's resolved pass mask: a dual indexer carrying a
// boolean mask on the free axis (the axis the mask varies along) and the
// node's claimed indexer on the fixed axis.
type passResult struct {
	dual indexer.Dual
	axis indexer.Axis
}

// passedIndex resolves which positions this node believes are valid.
// Positions the node never claimed count as passing.
func (v *Validation) passedIndex(f *frame.Frame) (passResult, error) {
	if v.kind == kindLeaf {
		return v.leafPassedIndex(f)
	}
	return v.combinedPassedIndex(f)
}

// leafPassedIndex evaluates the predicate over the claimed selection. The
// free axis follows the selection's shape: a column selection produces a row
// mask, a single fixed row across several columns produces a column mask.
func (v *Validation) leafPassedIndex(f *frame.Frame) (passResult, error) {
	sel, err := v.index.Apply(f)
	if err != nil {
		return passResult{}, err
	}

	if v.framePred != nil {
		rawPass, err := v.framePred.CheckSelection(sel)
		if err != nil {
			return passResult{}, asEvaluationError(err, "")
		}
		return v.maskedResult(f, indexer.Rows, sel.RowPositions(), rawPass)
	}

	rows := sel.RowPositions()
	cols := sel.ColPositions()
	switch {
	case len(cols) == 1:
		series, serr := sel.Series()
		if serr != nil {
			return passResult{}, newConfigErr("resolve column series", serr)
		}
		rawPass, perr := v.pred.Check(series)
		if perr != nil {
			return passResult{}, asEvaluationError(perr, series.Name())
		}
		return v.maskedResult(f, indexer.Rows, rows, rawPass)

	case len(rows) == 1:
		values := make([]frame.Value, len(cols))
		fixed := make([]int, len(cols))
		for j := range cols {
			values[j] = sel.ValueAt(0, j)
			fixed[j] = rows[0]
		}
		series, serr := frame.NewSeries("", fixed, values)
		if serr != nil {
			return passResult{}, newConfigErr("resolve row series", serr)
		}
		rawPass, perr := v.pred.Check(series)
		if perr != nil {
			return passResult{}, asEvaluationError(perr, "")
		}
		return v.maskedResult(f, indexer.Cols, cols, rawPass)

	default:
		return passResult{}, newConfigErr(
			fmt.Sprintf("series predicate over a %dx%d selection", len(rows), len(cols)),
			frame.ErrNotSeries,
		)
	}
}

// maskedResult expands raw per-position pass flags into a full-axis mask.
// Negation swaps pass and fail within the claimed positions only, leaving
// the predicate untouched.
func (v *Validation) maskedResult(f *frame.Frame, axis indexer.Axis, positions []int, rawPass []bool) (passResult, error) {
	if len(rawPass) != len(positions) {
		return passResult{}, &EvaluationError{Row: -1, Err: fmt.Errorf("predicate returned %d flags for %d cells", len(rawPass), len(positions))}
	}

	mask := make([]bool, axisLength(f, axis))
	for i := range mask {
		mask[i] = true
	}
	for j, pos := range positions {
		mask[pos] = rawPass[j] != v.negated
	}

	var (
		dual indexer.Dual
		err  error
	)
	if axis == indexer.Rows {
		dual, err = indexer.NewDual(indexer.Mask(indexer.Rows, mask), v.index.Cols())
	} else {
		dual, err = indexer.NewDual(v.index.Rows(), indexer.Mask(indexer.Cols, mask))
	}
	if err != nil {
		return passResult{}, err
	}
	return passResult{dual: dual, axis: axis}, nil
}

func (v *Validation) combinedPassedIndex(f *frame.Frame) (passResult, error) {
	left, err := v.left.passedIndex(f)
	if err != nil {
		return passResult{}, err
	}
	right, err := v.right.passedIndex(f)
	if err != nil {
		return passResult{}, err
	}

	// Combining along one axis is only sound when both children judged the
	// same region on the other axis.
	other := otherAxis(v.axis)
	if !left.dual.On(other).Equal(right.dual.On(other)) {
		return passResult{}, newConfigErr(
			fmt.Sprintf("operands combined along %s select different %s", v.axis, other),
			ErrOperandMismatch,
		)
	}

	n := axisLength(f, v.axis)
	leftBits, err := axisMask(left.dual.On(v.axis), n)
	if err != nil {
		return passResult{}, err
	}
	rightBits, err := axisMask(right.dual.On(v.axis), n)
	if err != nil {
		return passResult{}, err
	}

	combined := make([]bool, n)
	for i := range combined {
		if v.kind == kindAnd {
			combined[i] = leftBits[i] && rightBits[i]
		} else {
			combined[i] = leftBits[i] || rightBits[i]
		}
	}

	var dual indexer.Dual
	if v.axis == indexer.Rows {
		dual, err = indexer.NewDual(indexer.Mask(indexer.Rows, combined), left.dual.Cols())
	} else {
		dual, err = indexer.NewDual(left.dual.Rows(), indexer.Mask(indexer.Cols, combined))
	}
	if err != nil {
		return passResult{}, err
	}
	return passResult{dual: dual, axis: v.axis}, nil
}

// failedSelection applies the node's failed indexer: the passed indexer
// inverted along its free axis.
func (v *Validation) failedSelection(f *frame.Frame) (frame.Selection, error) {
	passed, err := v.passedIndex(f)
	if err != nil {
		return frame.Selection{}, err
	}
	failed, err := passed.dual.Invert(passed.axis)
	if err != nil {
		return frame.Selection{}, newConfigErr("invert failed index", err)
	}
	return failed.Apply(f)
}

// warnings materializes the node's failed positions.
func (v *Validation) warnings(f *frame.Frame) ([]Warning, error) {
	sel, err := v.failedSelection(f)
	if err != nil {
		return nil, err
	}
	if v.kind == kindLeaf {
		return materialize(v.scope, sel, v.reason()), nil
	}
	return v.combineWarnings(f, sel)
}

// combineWarnings implements the merge policy: each child materializes its
// own failures independently, the output is restricted to exactly the
// combined failed positions, and positions where both children failed get a
// single merged warning referencing both child warnings.
func (v *Validation) combineWarnings(f *frame.Frame, failedSel frame.Selection) ([]Warning, error) {
	positions := axisPositions(failedSel, v.axis)

	leftByPos, err := v.left.warningsByPos(f, v.axis)
	if err != nil {
		return nil, err
	}
	rightByPos, err := v.right.warningsByPos(f, v.axis)
	if err != nil {
		return nil, err
	}

	var out []Warning
	for _, pos := range positions {
		lws, lok := leftByPos[pos]
		rws, rok := rightByPos[pos]
		switch {
		case lok && rok:
			out = append(out, v.mergeAt(pos, lws, rws))
		case lok:
			out = append(out, lws...)
		case rok:
			out = append(out, rws...)
		}
	}
	return out, nil
}

// warningsByPos buckets a node's warnings by position along the given axis.
// Warnings that carry no coordinate on that axis (table and column scope
// when combining rows) fan out to every position the node failed at.
func (v *Validation) warningsByPos(f *frame.Frame, axis indexer.Axis) (map[int][]Warning, error) {
	warnings, err := v.warnings(f)
	if err != nil {
		return nil, err
	}
	sel, err := v.failedSelection(f)
	if err != nil {
		return nil, err
	}
	positions := axisPositions(sel, axis)

	byPos := make(map[int][]Warning)
	for _, w := range warnings {
		if pos, ok := w.position(f, axis); ok {
			byPos[pos] = append(byPos[pos], w)
			continue
		}
		for _, pos := range positions {
			byPos[pos] = append(byPos[pos], w)
		}
	}
	return byPos, nil
}

// mergeAt builds the single warning for a position where both children
// failed.
func (v *Validation) mergeAt(pos int, lws, rws []Warning) Warning {
	reason := v.message
	if reason == "" {
		reason = fmt.Sprintf("(%s) %s (%s)", lws[0].Message, v.opWord(), rws[0].Message)
	}

	merged := Warning{Scope: ScopeCell, Row: -1, Message: reason}
	if v.axis == indexer.Rows {
		merged.Row = pos
	}

	// Carry the most specific coordinates either child offers.
	children := make([]Warning, 0, len(lws)+len(rws))
	children = append(children, lws...)
	children = append(children, rws...)
	for _, w := range children {
		if merged.Column == "" && w.Column != "" {
			merged.Column = w.Column
		}
		if !merged.hasValue && w.hasValue {
			merged.Value = w.Value
			merged.hasValue = true
		}
	}
	merged.Children = children
	return merged
}

func (v *Validation) opWord() string {
	if v.kind == kindAnd {
		return "and"
	}
	return "or"
}

// reason is the failure message for this node's warnings.
func (v *Validation) reason() string {
	if v.message != "" {
		return v.message
	}
	if v.pred != nil {
		return v.pred.Message()
	}
	if v.framePred != nil {
		return v.framePred.Message()
	}
	return "failed the validation"
}

func otherAxis(axis indexer.Axis) indexer.Axis {
	if axis == indexer.Rows {
		return indexer.Cols
	}
	return indexer.Rows
}

func axisLength(f *frame.Frame, axis indexer.Axis) int {
	if axis == indexer.Rows {
		return f.RowCount()
	}
	return f.ColumnCount()
}

func axisPositions(sel frame.Selection, axis indexer.Axis) []int {
	if axis == indexer.Rows {
		return sel.RowPositions()
	}
	return sel.ColPositions()
}

// axisMask normalizes a child's result indexer into a boolean mask of
// length n so the combinator can apply boolean algebra.
func axisMask(ix indexer.AxisIndexer, n int) ([]bool, error) {
	if bits, ok := ix.MaskBits(); ok {
		if len(bits) != n {
			return nil, newConfigErr(fmt.Sprintf("mask of %d bits on axis of length %d", len(bits), n), ErrCombineKind)
		}
		return bits, nil
	}
	if ix.Kind() == indexer.KindSlice {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = ix.IsAll()
		}
		return bits, nil
	}
	return nil, newConfigErr(fmt.Sprintf("cannot combine %s index", ix.Kind()), ErrCombineKind)
}

// asEvaluationError preserves predicate-raised evaluation errors and wraps
// anything else with the column it happened in.
func asEvaluationError(err error, column string) error {
	if IsEvaluationError(err) {
		return err
	}
	return &EvaluationError{Row: -1, Column: column, Err: err}
}

// SortWarnings orders warnings by row then column, stably, in place.
// Coordinate-free warnings (row -1, empty column) sort first.
func SortWarnings(warnings []Warning) {
	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Row != warnings[j].Row {
			return warnings[i].Row < warnings[j].Row
		}
		return warnings[i].Column < warnings[j].Column
	})
}

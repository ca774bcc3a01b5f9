package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

func TestOrMergesWarnings(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Strings("code", "123", "456", "78a"))
	require.NoError(t, err)

	rule := validate.Or(
		validate.MatchesPattern(`^\d+$`),
		validate.MatchesPattern(`^[a-z]+$`),
	).Bind(indexer.Label(indexer.Cols, "code"))

	warnings, err := rule.Evaluate(f)
	require.NoError(t, err)

	// Rows passing either pattern pass; the single row failing both gets one
	// merged warning, not two.
	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, 2, w.Row)
	assert.Equal(t, "code", w.Column)
	assert.Equal(t,
		`(does not match the pattern "^\d+$") or (does not match the pattern "^[a-z]+$")`,
		w.Message)
	require.Len(t, w.Children, 2)
	assert.Equal(t, 2, w.Children[0].Row)
	assert.Equal(t, 2, w.Children[1].Row)
}

func TestAndMergesWarnings(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Ints("n", 5, 15, 25))
	require.NoError(t, err)

	rule := validate.And(
		validate.AtLeast(10),
		validate.Below(20),
	).Bind(indexer.Label(indexer.Cols, "n"))

	warnings, err := rule.Evaluate(f)
	require.NoError(t, err)

	// Each row violates at most one bound, so no merge happens.
	require.Len(t, warnings, 2)
	assert.Equal(t, 0, warnings[0].Row)
	assert.Equal(t, "was below the minimum 10", warnings[0].Message)
	assert.Equal(t, 2, warnings[1].Row)
	assert.Equal(t, "was not below the maximum 20", warnings[1].Message)
	assert.Empty(t, warnings[0].Children)
}

func TestNestedCombination(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Strings("val", "1", "2", "3", "x"))
	require.NoError(t, err)

	// A value is valid when it is in the list, or when it is a real integer
	// column value inside the range. The string column fails the type check,
	// so every row outside the list gets a merged warning that carries the
	// type reason.
	rule := validate.Or(
		validate.InList([]string{"1"}),
		validate.And(
			validate.IsType(frame.TypeInt),
			validate.InRange(0, 2),
		),
	).Bind(indexer.Label(indexer.Cols, "val"))

	warnings, err := rule.Evaluate(f)
	require.NoError(t, err)

	require.Len(t, warnings, 3)
	assert.Equal(t, []int{1, 2, 3}, failedRows(warnings))
	for _, w := range warnings {
		assert.Contains(t, w.Message, "is not in the list of legal options (1)")
		assert.Contains(t, w.Message, `did not have the type "int"`)
		assert.NotEmpty(t, w.Children)
	}
}

func TestCombineAlongColumns(t *testing.T) {
	t.Parallel()

	f, err := frame.New(
		frame.Strings("a", "1", "ok"),
		frame.Strings("b", "x ", "ok"),
		frame.Strings("c", " y", "ok"),
	)
	require.NoError(t, err)

	// A fixed-row selection across all columns produces a column mask, so
	// the combinator runs per-column instead of per-row.
	headerRow, err := indexer.NewDual(indexer.Position(indexer.Rows, 0), indexer.All(indexer.Cols))
	require.NoError(t, err)

	rule := validate.AndAlong(indexer.Cols,
		validate.LeadingWhitespace().WithIndex(headerRow),
		validate.TrailingWhitespace().WithIndex(headerRow),
	)

	warnings, werr := rule.Evaluate(f)
	require.NoError(t, werr)

	require.Len(t, warnings, 2)
	assert.Equal(t, "b", warnings[0].Column)
	assert.Equal(t, "contains trailing whitespace", warnings[0].Message)
	assert.Equal(t, "c", warnings[1].Column)
	assert.Equal(t, "contains leading whitespace", warnings[1].Message)
	for _, w := range warnings {
		assert.Equal(t, 0, w.Row)
	}
}

func TestOperandMismatch(t *testing.T) {
	t.Parallel()

	f, err := frame.New(
		frame.Strings("a", "x"),
		frame.Strings("b", "y"),
	)
	require.NoError(t, err)

	rule := validate.And(
		validate.InList([]string{"x"}).Bind(indexer.Label(indexer.Cols, "a")),
		validate.InList([]string{"y"}).Bind(indexer.Label(indexer.Cols, "b")),
	)

	_, err = rule.Evaluate(f)
	require.Error(t, err)
	assert.True(t, validate.IsConfigurationError(err))
	assert.ErrorIs(t, err, validate.ErrOperandMismatch)
}

func TestWarningOrderAndCount(t *testing.T) {
	t.Parallel()

	f, err := frame.New(
		frame.Strings("a", "1", "x", "2"),
		frame.Strings("b", "y", "3", "z"),
	)
	require.NoError(t, err)

	digits := validate.MatchesPattern(`^\d+$`)
	a := digits.Bind(indexer.Label(indexer.Cols, "a"))
	b := digits.Bind(indexer.Label(indexer.Cols, "b"))

	aw, err := a.Evaluate(f)
	require.NoError(t, err)
	bw, err := b.Evaluate(f)
	require.NoError(t, err)

	// One warning per failing cell, ordered by row.
	assert.Equal(t, []int{1}, failedRows(aw))
	assert.Equal(t, []int{0, 2}, failedRows(bw))
	for _, w := range append(aw, bw...) {
		assert.Equal(t, validate.ScopeCell, w.Scope)
		assert.True(t, w.HasValue())
	}
}

func TestWarningRender(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Strings("sex", "Male", "female"))
	require.NoError(t, err)

	warnings, err := validate.InList([]string{"Male", "Female"}).
		Bind(indexer.Label(indexer.Cols, "sex")).
		Evaluate(f)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t,
		`{row: 1, column: "sex"}: "female" is not in the list of legal options (Male, Female)`,
		warnings[0].Render())
	assert.Equal(t, warnings[0].Render(), warnings[0].String())
}

func TestEvaluateIsRepeatable(t *testing.T) {
	t.Parallel()

	rule := validate.Or(
		validate.InRange(0, 10),
		validate.IsEmpty(),
	).Bind(indexer.Label(indexer.Cols, "n"))

	f1, err := frame.New(frame.Values("n", frame.Int(5), frame.Int(42)))
	require.NoError(t, err)
	f2, err := frame.New(frame.Values("n", frame.String(""), frame.Int(-1), frame.Int(3)))
	require.NoError(t, err)

	w1, err := rule.Evaluate(f1)
	require.NoError(t, err)
	w2, err := rule.Evaluate(f2)
	require.NoError(t, err)
	w1again, err := rule.Evaluate(f1)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, failedRows(w1))
	assert.Equal(t, []int{1}, failedRows(w2))
	assert.Equal(t, w1, w1again)
}

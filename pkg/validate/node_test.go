package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/indexer"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

func TestNot(t *testing.T) {
	t.Parallel()

	t.Run("leaf complement", func(t *testing.T) {
		f, rule := column(t, validate.InList([]string{"a"}), "x",
			frame.String("a"), frame.String("b"))

		warnings, err := validate.Not(rule).Evaluate(f)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, failedRows(warnings))
	})

	t.Run("double negation restores the rule", func(t *testing.T) {
		f, rule := column(t, validate.InList([]string{"a"}), "x",
			frame.String("a"), frame.String("b"))

		direct, err := rule.Evaluate(f)
		require.NoError(t, err)
		twice, err := validate.Not(validate.Not(rule)).Evaluate(f)
		require.NoError(t, err)

		assert.Equal(t, failedRows(direct), failedRows(twice))
	})

	t.Run("negating an or fails only where both branches held", func(t *testing.T) {
		f, err := frame.New(frame.Strings("x", "a", "b", "c"))
		require.NoError(t, err)
		col := indexer.Label(indexer.Cols, "x")

		either := validate.Or(
			validate.InList([]string{"a"}),
			validate.InList([]string{"b"}),
		).Bind(col)

		warnings, err := validate.Not(either).Evaluate(f)
		require.NoError(t, err)
		// De Morgan: rows passing either branch now fail, row "c" passes.
		assert.Equal(t, []int{0, 1}, failedRows(warnings))
	})

	t.Run("negation leaves unclaimed rows passing", func(t *testing.T) {
		f, err := frame.New(frame.Strings("x", "a", "b", "a"))
		require.NoError(t, err)

		dual, err := indexer.NewDual(
			indexer.Mask(indexer.Rows, []bool{true, false, false}),
			indexer.Label(indexer.Cols, "x"),
		)
		require.NoError(t, err)

		rule := validate.Not(validate.InList([]string{"a"}).WithIndex(dual))
		warnings, err := rule.Evaluate(f)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, failedRows(warnings))
	})
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	f, rule := column(t, validate.InRange(0, 10).WithMessage("is out of bounds"), "n",
		frame.Int(42))

	warnings, err := rule.Evaluate(f)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "is out of bounds", warnings[0].Message)
}

func TestBind(t *testing.T) {
	t.Parallel()

	t.Run("binds every unbound leaf", func(t *testing.T) {
		f, err := frame.New(frame.Strings("x", "a", "zz"))
		require.NoError(t, err)

		rule := validate.Or(
			validate.InList([]string{"a"}),
			validate.MatchesPattern(`^\d+$`),
		).Bind(indexer.Label(indexer.Cols, "x"))

		warnings, werr := rule.Evaluate(f)
		require.NoError(t, werr)
		assert.Equal(t, []int{1}, failedRows(warnings))
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		unbound := validate.InList([]string{"a"})
		_ = unbound.Bind(indexer.Label(indexer.Cols, "x"))

		f, err := frame.New(frame.Strings("x", "a"))
		require.NoError(t, err)

		_, err = unbound.Evaluate(f)
		require.Error(t, err)
		assert.True(t, validate.IsConfigurationError(err))
		assert.ErrorIs(t, err, validate.ErrMissingIndex)
	})

	t.Run("already bound leaves are untouched", func(t *testing.T) {
		f, err := frame.New(frame.Strings("a", "x"), frame.Strings("b", "1"))
		require.NoError(t, err)

		rule := validate.MatchesPattern(`^\d+$`).
			Bind(indexer.Label(indexer.Cols, "b")).
			Bind(indexer.Label(indexer.Cols, "a"))

		warnings, werr := rule.Evaluate(f)
		require.NoError(t, werr)
		assert.Empty(t, warnings, "rule stays bound to column b")
	})
}

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("empty and null cells pass", func(t *testing.T) {
		f, rule := column(t, validate.InRange(0, 10).Optional(), "n",
			frame.Null(frame.TypeFloat), frame.String(""), frame.Int(5))

		warnings, err := rule.Evaluate(f)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("present cells are still judged", func(t *testing.T) {
		f, rule := column(t, validate.InRange(0, 10).Optional(), "n",
			frame.Int(42), frame.String(""))

		warnings, err := rule.Evaluate(f)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, failedRows(warnings))
	})
}

func TestEvaluateConfiguration(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Strings("x", "a"))
	require.NoError(t, err)
	col := indexer.Label(indexer.Cols, "x")

	t.Run("nil frame", func(t *testing.T) {
		_, err := validate.InList([]string{"a"}).Bind(col).Evaluate(nil)
		require.Error(t, err)
		assert.True(t, validate.IsConfigurationError(err))
		assert.ErrorIs(t, err, validate.ErrNilFrame)
	})

	t.Run("unbound leaf", func(t *testing.T) {
		_, err := validate.InList([]string{"a"}).Evaluate(f)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrMissingIndex)
	})

	t.Run("nil combinator operand", func(t *testing.T) {
		_, err := validate.And(validate.InList([]string{"a"}).Bind(col), nil).Evaluate(f)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrNilValidation)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := validate.InList([]string{"a"}).
			Bind(indexer.Label(indexer.Cols, "missing")).
			Evaluate(f)
		require.Error(t, err)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validate.ScopeCell, validate.InList([]string{"a"}).Scope())
	assert.Equal(t, validate.ScopeColumn, validate.IsType(frame.TypeInt).Scope())
	assert.Equal(t, validate.ScopeRow, validate.DistinctRows(validate.KeepFirst).Scope())
	assert.Equal(t, validate.ScopeCell,
		validate.And(validate.InList([]string{"a"}), validate.IsType(frame.TypeInt)).Scope())
}

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("ValidFrame", func(t *testing.T) {
		t.Parallel()
		f, err := frame.New(
			frame.Strings("name", "alice", "bob"),
			frame.Ints("age", 34, 27),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, f.RowCount())
		assert.Equal(t, 2, f.ColumnCount())
		assert.Equal(t, []string{"name", "age"}, f.ColumnNames())
	})

	t.Run("NoColumns", func(t *testing.T) {
		t.Parallel()
		_, err := frame.New()
		assert.ErrorIs(t, err, frame.ErrNoColumns)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		t.Parallel()
		_, err := frame.New(
			frame.Strings("a", "x"),
			frame.Strings("b", "y", "z"),
		)
		assert.ErrorIs(t, err, frame.ErrColumnLength)
	})

	t.Run("DuplicateNames", func(t *testing.T) {
		t.Parallel()
		_, err := frame.New(
			frame.Strings("a", "x"),
			frame.Strings("a", "y"),
		)
		assert.ErrorIs(t, err, frame.ErrDuplicateColumn)
	})

	t.Run("ImmutableAfterConstruction", func(t *testing.T) {
		t.Parallel()
		col := frame.Strings("a", "x", "y")
		f, err := frame.New(col)
		require.NoError(t, err)

		col.Values[0] = frame.String("mutated")
		v, err := f.Cell(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "x", v.String())
	})
}

func TestFrameAccess(t *testing.T) {
	t.Parallel()

	f, err := frame.New(
		frame.Strings("name", "alice", "bob", "carol"),
		frame.Floats("score", 1.5, 2.5, 3.5),
	)
	require.NoError(t, err)

	t.Run("Cell", func(t *testing.T) {
		t.Parallel()
		v, err := f.Cell(1, 0)
		require.NoError(t, err)
		assert.Equal(t, "bob", v.String())

		_, err = f.Cell(3, 0)
		assert.ErrorIs(t, err, frame.ErrInvalidRow)

		_, err = f.Cell(0, 2)
		assert.ErrorIs(t, err, frame.ErrInvalidColumn)
	})

	t.Run("Row", func(t *testing.T) {
		t.Parallel()
		row, err := f.Row(2)
		require.NoError(t, err)
		require.Len(t, row, 2)
		assert.Equal(t, "carol", row[0].String())
		assert.Equal(t, "3.5", row[1].String())
	})

	t.Run("ColumnIndex", func(t *testing.T) {
		t.Parallel()
		i, ok := f.ColumnIndex("score")
		assert.True(t, ok)
		assert.Equal(t, 1, i)

		_, ok = f.ColumnIndex("missing")
		assert.False(t, ok)
	})

	t.Run("ColumnSeries", func(t *testing.T) {
		t.Parallel()
		s, err := f.Column(1)
		require.NoError(t, err)
		assert.Equal(t, "score", s.Name())
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.RowAt(2))
		got, ok := s.At(2).Float()
		require.True(t, ok)
		assert.InDelta(t, 3.5, got, 1e-9)
	})
}

func TestSelection(t *testing.T) {
	t.Parallel()

	f, err := frame.New(
		frame.Strings("a", "r0", "r1", "r2"),
		frame.Strings("b", "s0", "s1", "s2"),
	)
	require.NoError(t, err)

	t.Run("CellSelection", func(t *testing.T) {
		t.Parallel()
		sel, err := f.Select([]int{1}, []int{1}, true, true)
		require.NoError(t, err)
		assert.True(t, sel.IsScalar())

		v, err := sel.Scalar()
		require.NoError(t, err)
		assert.Equal(t, "s1", v.String())
	})

	t.Run("SeriesSelection", func(t *testing.T) {
		t.Parallel()
		sel, err := f.Select([]int{0, 2}, []int{0}, false, true)
		require.NoError(t, err)
		assert.True(t, sel.IsSeries())

		s, err := sel.Series()
		require.NoError(t, err)
		assert.Equal(t, "a", s.Name())
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "r2", s.At(1).String())
		assert.Equal(t, 2, s.RowAt(1))
	})

	t.Run("BlockSelection", func(t *testing.T) {
		t.Parallel()
		sel, err := f.Select([]int{0, 1}, []int{0, 1}, false, false)
		require.NoError(t, err)
		assert.False(t, sel.IsScalar())
		assert.False(t, sel.IsSeries())

		_, err = sel.Series()
		assert.ErrorIs(t, err, frame.ErrNotSeries)

		cols := sel.Columns()
		require.Len(t, cols, 2)
		assert.Equal(t, "s1", cols[1].At(1).String())
	})

	t.Run("EmptySelection", func(t *testing.T) {
		t.Parallel()
		sel, err := f.Select(nil, []int{0}, false, true)
		require.NoError(t, err)
		assert.True(t, sel.IsEmpty())
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		t.Parallel()
		_, err := f.Select([]int{5}, []int{0}, false, true)
		assert.ErrorIs(t, err, frame.ErrInvalidRow)
	})
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("NullHandling", func(t *testing.T) {
		t.Parallel()
		v := frame.Null(frame.TypeInt)
		assert.True(t, v.IsNull())
		assert.True(t, v.IsEmpty())
		assert.Equal(t, "", v.String())
		_, ok := v.Float()
		assert.False(t, ok)
	})

	t.Run("NumericCoercion", func(t *testing.T) {
		t.Parallel()
		got, ok := frame.String("42.5").Float()
		require.True(t, ok)
		assert.InDelta(t, 42.5, got, 1e-9)

		_, ok = frame.String("abc").Float()
		assert.False(t, ok)

		n, ok := frame.Float(7).Int()
		require.True(t, ok)
		assert.EqualValues(t, 7, n)

		_, ok = frame.Float(7.5).Int()
		assert.False(t, ok)
	})

	t.Run("Equality", func(t *testing.T) {
		t.Parallel()
		assert.True(t, frame.Int(3).Equal(frame.Float(3)))
		assert.True(t, frame.Int(3).Equal(frame.String("3")))
		assert.False(t, frame.Int(3).Equal(frame.Int(4)))
		assert.True(t, frame.Null(frame.TypeInt).Equal(frame.Null(frame.TypeString)))
		assert.False(t, frame.Null(frame.TypeInt).Equal(frame.Int(0)))
	})

	t.Run("EmptyString", func(t *testing.T) {
		t.Parallel()
		assert.True(t, frame.String("").IsEmpty())
		assert.False(t, frame.String("").IsNull())
		assert.False(t, frame.String(" ").IsEmpty())
	})
}

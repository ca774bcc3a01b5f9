package tableschema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tableschema"
	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	schema, err := tableschema.New([]tableschema.Column{
		tableschema.NewColumn("age", validate.InRange(0, 120)),
	})
	require.NoError(t, err)

	f, err := frame.New(frame.Ints("age", 36, 270))
	require.NoError(t, err)

	warnings, err := schema.Validate(f)
	require.NoError(t, err)

	report := tableschema.NewReport(f, warnings)
	assert.False(t, report.Valid)
	assert.Equal(t, 2, report.RowCount)
	assert.Equal(t, 1, report.ColumnCount)
	require.Len(t, report.Warnings, 1)

	w := report.Warnings[0]
	assert.Equal(t, "cell", w.Scope)
	require.NotNil(t, w.Row)
	assert.Equal(t, 1, *w.Row)
	assert.Equal(t, "age", w.Column)
	assert.Equal(t, "270", w.Value)
	assert.Equal(t, `{row: 1, column: "age"}: "270" was not in the range [0, 120)`, w.Rendered)
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	f, err := frame.New(frame.Ints("age", 36))
	require.NoError(t, err)

	t.Run("clean run", func(t *testing.T) {
		raw, jerr := tableschema.NewReport(f, nil).JSON()
		require.NoError(t, jerr)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, true, decoded["valid"])
		assert.Equal(t, float64(1), decoded["row_count"])
		assert.Empty(t, decoded["warnings"])
	})

	t.Run("coordinate free warnings omit the row", func(t *testing.T) {
		warnings := []validate.Warning{{
			Scope:   validate.ScopeTable,
			Row:     -1,
			Message: "invalid number of columns",
		}}
		raw, jerr := tableschema.NewReport(f, warnings).JSON()
		require.NoError(t, jerr)

		assert.Contains(t, string(raw), `"scope":"table"`)
		assert.NotContains(t, string(raw), `"row"`)
	})
}

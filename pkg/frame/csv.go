package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type csvConfig struct {
	comma      rune
	inferTypes bool
	nullValues map[string]struct{}
}

// CSVOption configures ReadCSV.
type CSVOption func(*csvConfig)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(r rune) CSVOption {
	return func(c *csvConfig) {
		c.comma = r
	}
}

// WithTypeInference enables per-column type inference. A column becomes
// typed only when every non-null cell parses as the same type; otherwise it
// stays a string column.
func WithTypeInference() CSVOption {
	return func(c *csvConfig) {
		c.inferTypes = true
	}
}

// WithNullValues sets the cell literals treated as null in addition to the
// empty string.
func WithNullValues(values ...string) CSVOption {
	return func(c *csvConfig) {
		for _, v := range values {
			c.nullValues[v] = struct{}{}
		}
	}
}

// ReadCSV reads a comma-separated table with a header row into a frame.
// Empty cells become null values.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	cfg := &csvConfig{
		comma:      ',',
		nullValues: map[string]struct{}{"": {}},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.TrimLeadingSpace = false

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}

	header := records[0]
	cols := make([]Column, len(header))
	for j, name := range header {
		values := make([]Value, 0, len(records)-1)
		for _, record := range records[1:] {
			var cell string
			if j < len(record) {
				cell = record[j]
			}
			if _, null := cfg.nullValues[cell]; null {
				values = append(values, Null(TypeString))
				continue
			}
			values = append(values, String(cell))
		}
		cols[j] = Column{Name: name, Values: values}
	}

	if cfg.inferTypes {
		for j := range cols {
			cols[j] = inferColumn(cols[j])
		}
	}

	return New(cols...)
}

// inferColumn retypes a string column when every non-null cell parses as the
// same narrower type, trying int, then float, then bool.
func inferColumn(col Column) Column {
	var (
		allInt   = true
		allFloat = true
		allBool  = true
		seen     bool
	)
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		seen = true
		s := v.String()
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			allFloat = false
		}
		if !isBoolLiteral(s) {
			allBool = false
		}
	}
	if !seen {
		return col
	}

	values := make([]Value, len(col.Values))
	switch {
	case allInt:
		for i, v := range col.Values {
			if v.IsNull() {
				values[i] = Null(TypeInt)
				continue
			}
			n, _ := strconv.ParseInt(v.String(), 10, 64)
			values[i] = Int(n)
		}
	case allFloat:
		for i, v := range col.Values {
			if v.IsNull() {
				values[i] = Null(TypeFloat)
				continue
			}
			f, _ := strconv.ParseFloat(v.String(), 64)
			values[i] = Float(f)
		}
	case allBool:
		for i, v := range col.Values {
			if v.IsNull() {
				values[i] = Null(TypeBool)
				continue
			}
			values[i] = Bool(strings.EqualFold(v.String(), "true"))
		}
	default:
		return col
	}
	return Column{Name: col.Name, Values: values}
}

func isBoolLiteral(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

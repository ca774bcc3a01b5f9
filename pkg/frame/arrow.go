package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromArrowTable converts an arrow table into a frame, materializing all
// chunks. Null slots map to null values; unsupported column types fail with
// ErrArrowType.
func FromArrowTable(tbl arrow.Table) (*Frame, error) {
	schema := tbl.Schema()
	cols := make([]Column, len(schema.Fields()))
	for j, field := range schema.Fields() {
		cols[j] = Column{Name: field.Name, Values: make([]Value, 0, int(tbl.NumRows()))}
	}

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for j := 0; j < int(rec.NumCols()); j++ {
			values, err := arrowColumn(rec.Column(j))
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", schema.Field(j).Name, err)
			}
			cols[j].Values = append(cols[j].Values, values...)
		}
	}

	return New(cols...)
}

// FromArrowRecord converts a single arrow record batch into a frame.
func FromArrowRecord(rec arrow.Record) (*Frame, error) {
	cols := make([]Column, int(rec.NumCols()))
	for j := 0; j < int(rec.NumCols()); j++ {
		values, err := arrowColumn(rec.Column(j))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", rec.ColumnName(j), err)
		}
		cols[j] = Column{Name: rec.ColumnName(j), Values: values}
	}
	return New(cols...)
}

// arrowColumn converts one arrow array into frame values.
func arrowColumn(col arrow.Array) ([]Value, error) {
	n := col.Len()
	values := make([]Value, n)

	convert := func(dt DataType, at func(int) Value) {
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				values[i] = Null(dt)
				continue
			}
			values[i] = at(i)
		}
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		a := col.(*array.String)
		convert(TypeString, func(i int) Value { return String(a.Value(i)) })
	case arrow.LARGE_STRING:
		a := col.(*array.LargeString)
		convert(TypeString, func(i int) Value { return String(a.Value(i)) })
	case arrow.BOOL:
		a := col.(*array.Boolean)
		convert(TypeBool, func(i int) Value { return Bool(a.Value(i)) })
	case arrow.INT8:
		a := col.(*array.Int8)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.INT16:
		a := col.(*array.Int16)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.INT32:
		a := col.(*array.Int32)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.INT64:
		a := col.(*array.Int64)
		convert(TypeInt, func(i int) Value { return Int(a.Value(i)) })
	case arrow.UINT8:
		a := col.(*array.Uint8)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.UINT16:
		a := col.(*array.Uint16)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.UINT32:
		a := col.(*array.Uint32)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.UINT64:
		a := col.(*array.Uint64)
		convert(TypeInt, func(i int) Value { return Int(int64(a.Value(i))) })
	case arrow.FLOAT32:
		a := col.(*array.Float32)
		convert(TypeFloat, func(i int) Value { return Float(float64(a.Value(i))) })
	case arrow.FLOAT64:
		a := col.(*array.Float64)
		convert(TypeFloat, func(i int) Value { return Float(a.Value(i)) })
	case arrow.DATE32:
		a := col.(*array.Date32)
		convert(TypeTime, func(i int) Value { return Time(a.Value(i).ToTime()) })
	case arrow.DATE64:
		a := col.(*array.Date64)
		convert(TypeTime, func(i int) Value { return Time(a.Value(i).ToTime()) })
	case arrow.TIMESTAMP:
		a := col.(*array.Timestamp)
		unit := col.DataType().(*arrow.TimestampType).Unit
		convert(TypeTime, func(i int) Value { return Time(a.Value(i).ToTime(unit)) })
	default:
		return nil, fmt.Errorf("%w: %s", ErrArrowType, col.DataType().Name())
	}

	return values, nil
}

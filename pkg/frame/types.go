package frame

import (
	"fmt"
	"strconv"
	"time"
)

// DataType represents the type of data in a column.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeTime represents date or timestamp data.
	TypeTime
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeTime:
		return "Time"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Value is a typed container for a single cell. The zero value is a null
// string cell. Values are immutable; every accessor returns a copy.
type Value struct {
	kind DataType
	null bool
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: TypeString, s: s}
}

// Int creates an integer value.
func Int(i int64) Value {
	return Value{kind: TypeInt, i: i}
}

// Float creates a floating-point value.
func Float(f float64) Value {
	return Value{kind: TypeFloat, f: f}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: TypeBool, b: b}
}

// Time creates a time value.
func Time(t time.Time) Value {
	return Value{kind: TypeTime, t: t}
}

// Null creates a null value of the given type.
func Null(dt DataType) Value {
	return Value{kind: dt, null: true}
}

// Type returns the data type of this value.
func (v Value) Type() DataType {
	return v.kind
}

// IsNull reports whether this value is null.
func (v Value) IsNull() bool {
	return v.null
}

// String returns the display representation of the value. Null values render
// as the empty string.
func (v Value) String() string {
	if v.null {
		return ""
	}
	switch v.kind {
	case TypeString:
		return v.s
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Float returns the value as a float64. String values are parsed; the second
// return value reports whether a numeric interpretation exists.
func (v Value) Float() (float64, bool) {
	if v.null {
		return 0, false
	}
	switch v.kind {
	case TypeInt:
		return float64(v.i), true
	case TypeFloat:
		return v.f, true
	case TypeString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int returns the value as an int64 with an exactness flag. Float values with
// a fractional part and non-numeric strings report false.
func (v Value) Int() (int64, bool) {
	if v.null {
		return 0, false
	}
	switch v.kind {
	case TypeInt:
		return v.i, true
	case TypeFloat:
		if v.f == float64(int64(v.f)) {
			return int64(v.f), true
		}
		return 0, false
	case TypeString:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// Bool returns the value as a bool; the second return value reports whether
// the value is boolean.
func (v Value) Bool() (bool, bool) {
	if v.null || v.kind != TypeBool {
		return false, false
	}
	return v.b, true
}

// Time returns the value as a time.Time; the second return value reports
// whether the value holds a time.
func (v Value) Time() (time.Time, bool) {
	if v.null || v.kind != TypeTime {
		return time.Time{}, false
	}
	return v.t, true
}

// Raw returns the underlying value as an any, or nil for null values.
func (v Value) Raw() any {
	if v.null {
		return nil
	}
	switch v.kind {
	case TypeString:
		return v.s
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBool:
		return v.b
	case TypeTime:
		return v.t
	default:
		return nil
	}
}

// Equal reports whether two values are equal. Nulls compare equal only to
// nulls, and numeric values compare across int/float kinds.
func (v Value) Equal(other Value) bool {
	if v.null || other.null {
		return v.null && other.null
	}
	if vf, ok := v.Float(); ok {
		if of, ok := other.Float(); ok {
			return vf == of
		}
		return false
	}
	return v.kind == other.kind && v.String() == other.String()
}

// IsEmpty reports whether the value is null or an empty string.
func (v Value) IsEmpty() bool {
	return v.null || (v.kind == TypeString && v.s == "")
}

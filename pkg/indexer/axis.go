package indexer

import (
	"fmt"

	"github.com/dmitrymomot/tableschema/pkg/frame"
)

// Axis identifies a frame dimension: rows or columns.
type Axis int

const (
	// Rows is the row dimension of a frame.
	Rows Axis = 0
	// Cols is the column dimension of a frame.
	Cols Axis = 1
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Cols:
		return "columns"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Kind classifies how an AxisIndexer addresses its axis.
type Kind int

const (
	// KindPosition addresses a single ordinal position.
	KindPosition Kind = iota
	// KindPositions addresses a sequence of ordinal positions.
	KindPositions
	// KindLabel addresses a single named column.
	KindLabel
	// KindMask addresses a subset via a boolean vector aligned to the axis.
	KindMask
	// KindSlice addresses either everything or nothing on the axis.
	KindSlice
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindPositions:
		return "positions"
	case KindLabel:
		return "label"
	case KindMask:
		return "mask"
	case KindSlice:
		return "slice"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// AxisIndexer describes a selection along one axis of a frame. Indexers are
// immutable after construction; Invert returns a fresh instance.
type AxisIndexer struct {
	axis      Axis
	kind      Kind
	pos       int
	positions []int
	label     string
	mask      []bool
	all       bool
}

// Position creates a positional indexer selecting a single ordinal.
func Position(axis Axis, pos int) AxisIndexer {
	return AxisIndexer{axis: axis, kind: KindPosition, pos: pos}
}

// Positions creates an indexer selecting a sequence of ordinals. The slice
// is copied.
func Positions(axis Axis, positions []int) AxisIndexer {
	copied := make([]int, len(positions))
	copy(copied, positions)
	return AxisIndexer{axis: axis, kind: KindPositions, positions: copied}
}

// Label creates a label indexer selecting a single named column.
func Label(axis Axis, label string) AxisIndexer {
	return AxisIndexer{axis: axis, kind: KindLabel, label: label}
}

// Mask creates a boolean-mask indexer. The mask is copied.
func Mask(axis Axis, mask []bool) AxisIndexer {
	bits := make([]bool, len(mask))
	copy(bits, mask)
	return AxisIndexer{axis: axis, kind: KindMask, mask: bits}
}

// All creates an open slice selecting everything on the axis.
func All(axis Axis) AxisIndexer {
	return AxisIndexer{axis: axis, kind: KindSlice, all: true}
}

// None creates an empty slice selecting nothing on the axis.
func None(axis Axis) AxisIndexer {
	return AxisIndexer{axis: axis, kind: KindSlice, all: false}
}

// New creates an indexer by inferring the kind from the runtime type of
// index: integers become positions, strings become labels, and []bool
// becomes a mask. Anything else fails with ErrUnsupportedIndexType.
func New(axis Axis, index any) (AxisIndexer, error) {
	switch v := index.(type) {
	case int:
		return Position(axis, v), nil
	case int8:
		return Position(axis, int(v)), nil
	case int16:
		return Position(axis, int(v)), nil
	case int32:
		return Position(axis, int(v)), nil
	case int64:
		return Position(axis, int(v)), nil
	case []int:
		return Positions(axis, v), nil
	case string:
		return Label(axis, v), nil
	case []bool:
		return Mask(axis, v), nil
	case nil:
		return All(axis), nil
	default:
		return AxisIndexer{}, fmt.Errorf("%w: %T", ErrUnsupportedIndexType, index)
	}
}

// Axis returns the axis this indexer addresses.
func (ix AxisIndexer) Axis() Axis {
	return ix.axis
}

// Kind returns how this indexer addresses its axis.
func (ix AxisIndexer) Kind() Kind {
	return ix.kind
}

// IsAll reports whether the indexer is the open slice selecting everything.
func (ix AxisIndexer) IsAll() bool {
	return ix.kind == KindSlice && ix.all
}

// MaskBits returns a copy of the boolean mask, or false when the indexer is
// not mask-kind.
func (ix AxisIndexer) MaskBits() ([]bool, bool) {
	if ix.kind != KindMask {
		return nil, false
	}
	bits := make([]bool, len(ix.mask))
	copy(bits, ix.mask)
	return bits, true
}

// axisLength returns the frame's extent along this indexer's axis.
func (ix AxisIndexer) axisLength(f *frame.Frame) int {
	if ix.axis == Rows {
		return f.RowCount()
	}
	return f.ColumnCount()
}

// Resolve maps the indexer onto a frame, returning the selected ordinal
// positions and whether the selection is scalar.
func (ix AxisIndexer) Resolve(f *frame.Frame) ([]int, bool, error) {
	n := ix.axisLength(f)

	switch ix.kind {
	case KindPosition:
		if ix.pos < 0 || ix.pos >= n {
			return nil, false, fmt.Errorf("%w: %d on %s axis of length %d", ErrPositionRange, ix.pos, ix.axis, n)
		}
		return []int{ix.pos}, true, nil

	case KindPositions:
		positions := make([]int, len(ix.positions))
		for i, pos := range ix.positions {
			if pos < 0 || pos >= n {
				return nil, false, fmt.Errorf("%w: %d on %s axis of length %d", ErrPositionRange, pos, ix.axis, n)
			}
			positions[i] = pos
		}
		return positions, false, nil

	case KindLabel:
		if ix.axis == Rows {
			return nil, false, ErrLabelOnRows
		}
		pos, ok := f.ColumnIndex(ix.label)
		if !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrUnknownLabel, ix.label)
		}
		return []int{pos}, true, nil

	case KindMask:
		if len(ix.mask) != n {
			return nil, false, fmt.Errorf("%w: mask has %d bits, %s axis has %d", ErrMaskLength, len(ix.mask), ix.axis, n)
		}
		positions := make([]int, 0, n)
		for i, bit := range ix.mask {
			if bit {
				positions = append(positions, i)
			}
		}
		return positions, false, nil

	case KindSlice:
		if !ix.all {
			return nil, false, nil
		}
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i
		}
		return positions, false, nil

	default:
		return nil, false, fmt.Errorf("%w: kind %d", ErrUnsupportedIndexType, int(ix.kind))
	}
}

// Invert returns the logical complement of this indexer. Boolean masks are
// negated and the open slice swaps with the empty slice. Positions and
// labels have no defined complement and fail with ErrNotInvertible rather
// than guessing.
func (ix AxisIndexer) Invert() (AxisIndexer, error) {
	switch ix.kind {
	case KindMask:
		bits := make([]bool, len(ix.mask))
		for i, bit := range ix.mask {
			bits[i] = !bit
		}
		return AxisIndexer{axis: ix.axis, kind: KindMask, mask: bits}, nil

	case KindSlice:
		return AxisIndexer{axis: ix.axis, kind: KindSlice, all: !ix.all}, nil

	default:
		return AxisIndexer{}, fmt.Errorf("%w: %s", ErrNotInvertible, ix.kind)
	}
}

// Describe returns a human-readable fragment for warning messages, such as
// `Row 3` or `Column "age"`. The second return value is false when the
// indexer contributes nothing to a message: open slices constrain nothing,
// and masks describe results rather than intent.
func (ix AxisIndexer) Describe() (string, bool) {
	switch ix.kind {
	case KindPosition:
		if ix.axis == Rows {
			return fmt.Sprintf("Row %d", ix.pos), true
		}
		return fmt.Sprintf("Column %d", ix.pos), true

	case KindLabel:
		return fmt.Sprintf("Column %q", ix.label), true

	default:
		return "", false
	}
}

// Equal reports whether two indexers address the same axis the same way.
func (ix AxisIndexer) Equal(other AxisIndexer) bool {
	if ix.axis != other.axis || ix.kind != other.kind {
		return false
	}
	switch ix.kind {
	case KindPosition:
		return ix.pos == other.pos
	case KindPositions:
		if len(ix.positions) != len(other.positions) {
			return false
		}
		for i := range ix.positions {
			if ix.positions[i] != other.positions[i] {
				return false
			}
		}
		return true
	case KindLabel:
		return ix.label == other.label
	case KindMask:
		if len(ix.mask) != len(other.mask) {
			return false
		}
		for i := range ix.mask {
			if ix.mask[i] != other.mask[i] {
				return false
			}
		}
		return true
	case KindSlice:
		return ix.all == other.all
	default:
		return false
	}
}

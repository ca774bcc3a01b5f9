package frame

import "errors"

// Common errors returned by the frame package.
var (
	// ErrNoColumns is returned when constructing a frame without columns.
	ErrNoColumns = errors.New("frame must have at least one column")

	// ErrColumnLength is returned when columns have differing lengths.
	ErrColumnLength = errors.New("all columns must have the same length")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrColumnNotFound is returned when a column name is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrNotScalar is returned when a scalar is requested from a wider selection.
	ErrNotScalar = errors.New("selection is not a single cell")

	// ErrNotSeries is returned when a series is requested from a selection
	// spanning more than one column.
	ErrNotSeries = errors.New("selection spans more than one column")

	// ErrEmptyCSV is returned when CSV input has no header row.
	ErrEmptyCSV = errors.New("csv input has no header row")

	// ErrArrowType is returned when an arrow column type has no frame mapping.
	ErrArrowType = errors.New("unsupported arrow column type")
)

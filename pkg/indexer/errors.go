package indexer

import "errors"

// Index resolution errors. All of them mean the indexer could not be applied
// to the frame it was given; none of them are data-quality findings.
var (
	// ErrUnsupportedIndexType is returned when an index value cannot be
	// classified as position, label, or boolean mask.
	ErrUnsupportedIndexType = errors.New("index type is not a position, label, or boolean mask")

	// ErrLabelOnRows is returned when label indexing is requested on the row
	// axis; frames identify rows by position only.
	ErrLabelOnRows = errors.New("row axis does not support label indexing")

	// ErrUnknownLabel is returned when a column label does not exist in the frame.
	ErrUnknownLabel = errors.New("unknown column label")

	// ErrMaskLength is returned when a boolean mask does not match the axis length.
	ErrMaskLength = errors.New("boolean mask length does not match axis length")

	// ErrPositionRange is returned when a positional index is out of range.
	ErrPositionRange = errors.New("position out of range")

	// ErrNotInvertible is returned when inversion is requested for an index
	// kind that has no defined complement (positions and labels).
	ErrNotInvertible = errors.New("index kind is not invertible")

	// ErrAxisMismatch is returned when a dual indexer is built from indexers
	// bound to the wrong axes.
	ErrAxisMismatch = errors.New("indexer bound to wrong axis")
)

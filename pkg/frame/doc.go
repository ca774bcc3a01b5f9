// Package frame provides an immutable, in-memory tabular data model used as
// the validation target by the tableschema engine.
//
// A Frame stores data column-major as typed Value cells (string, int, float,
// bool, time) with explicit null tracking. Frames are constructed once from
// Column slices, a CSV stream, or an Apache Arrow table, and are read-only
// afterwards, which makes them safe for concurrent validation runs.
//
// # Architecture
//
// The package revolves around four small types:
//   - Value     – a tagged scalar cell with an explicit null flag
//   - Column    – a named []Value used only during construction
//   - Series    – a 1-D read view paired with originating row positions
//   - Selection – a resolved sub-region (cell, series, or 2-D block)
//
// Selection keeps positions rather than copies, so slicing a frame never
// duplicates cell data; the row positions it carries are what allow a
// validation warning to point back at the exact source coordinate.
//
// # Usage
//
//	f, err := frame.New(
//	    frame.Strings("name", "alice", "bob"),
//	    frame.Ints("age", 34, 27),
//	)
//
// Or from CSV with optional type inference:
//
//	f, err := frame.ReadCSV(file, frame.WithTypeInference())
//
// Arrow interop converts columnar data without going through text:
//
//	f, err := frame.FromArrowTable(tbl)
//
// # Error Handling
//
// All failures return sentinel errors (ErrColumnNotFound, ErrInvalidRow,
// ErrArrowType, ...) wrapped with context, suitable for errors.Is checks.
package frame

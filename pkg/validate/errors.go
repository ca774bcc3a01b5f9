package validate

import (
	"errors"
	"fmt"
)

// Tree-construction sentinels. They are always wrapped in a
// ConfigurationError and reported at build or Evaluate entry, never
// mid-combination.
var (
	// ErrMissingIndex is returned when a leaf validation is evaluated
	// without an index bound to it.
	ErrMissingIndex = errors.New("leaf validation has no index bound")

	// ErrNilValidation is returned when a combinator is built over a nil operand.
	ErrNilValidation = errors.New("combinator operand is nil")

	// ErrNilFrame is returned when Evaluate is called with a nil frame.
	ErrNilFrame = errors.New("frame is nil")

	// ErrNilPredicate is returned when a leaf is built without a predicate.
	ErrNilPredicate = errors.New("leaf validation has no predicate")

	// ErrOperandMismatch is returned when combinator operands were evaluated
	// over different selections on the non-combination axis.
	ErrOperandMismatch = errors.New("combinator operands select different regions on the fixed axis")

	// ErrCombineKind is returned when a child's result on the combination
	// axis cannot be expressed as a boolean mask.
	ErrCombineKind = errors.New("combinator requires boolean-mask results on the combination axis")

	// ErrMaskShape is returned when a custom predicate produces a mask whose
	// length does not match the series it checked.
	ErrMaskShape = errors.New("predicate mask length does not match series length")
)

// ConfigurationError indicates a malformed validation tree: a missing leaf
// index, incompatible combinator operands, an invalid pattern, or an
// un-invertible index inversion request.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid validation tree: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid validation tree: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func newConfigErr(reason string, err error) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Err: err}
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// EvaluationError indicates a predicate failed unexpectedly while checking a
// value, carrying the offending coordinate. Expected data-quality findings
// are never evaluation errors; they are warnings.
type EvaluationError struct {
	Row    int
	Column string
	Err    error
}

func (e *EvaluationError) Error() string {
	switch {
	case e.Column != "" && e.Row >= 0:
		return fmt.Sprintf("evaluation failed at {row: %d, column: %q}: %v", e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("evaluation failed at column %q: %v", e.Column, e.Err)
	default:
		return fmt.Sprintf("evaluation failed: %v", e.Err)
	}
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// IsEvaluationError reports whether err is an EvaluationError.
func IsEvaluationError(err error) bool {
	var e *EvaluationError
	return errors.As(err, &e)
}

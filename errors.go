package tableschema

import "errors"

var (
	// ErrNoColumns is returned when a schema is constructed without any
	// columns.
	ErrNoColumns = errors.New("schema has no columns")

	// ErrDuplicateColumn is returned when two schema columns share a name.
	ErrDuplicateColumn = errors.New("duplicate schema column")

	// ErrNoRules is returned when a schema column carries no rules.
	ErrNoRules = errors.New("schema column has no rules")

	// ErrUnknownRule is returned when a schema file names a rule that is not
	// registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidRule is returned when a schema file rule is missing a
	// required parameter or carries an invalid one.
	ErrInvalidRule = errors.New("invalid rule definition")
)

package components

import "errors"

var (
	// ErrInvalidConfiguration reports malformed timing or magnitude
	// parameters. It is an authoring error and is never recovered from.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidOperation reports an effect call made while the effect's
	// preconditions do not hold, such as unfreezing an entity that is not
	// frozen or pausing a scene that is already paused.
	ErrInvalidOperation = errors.New("invalid operation")
)

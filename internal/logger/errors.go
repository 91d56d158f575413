package logger

import "errors"

var (
	ErrUnknownLevel   = errors.New("unknown log level")
	ErrUnknownFormat  = errors.New("unknown log format")
	ErrUnknownHandler = errors.New("unknown log handler")
	// ErrPrimaryHandler is returned when RemoveHandler targets the primary
	// sink. Use SetLevel to reconfigure it.
	ErrPrimaryHandler = errors.New("primary log handler cannot be removed")
	// ErrNoRegistry is returned by sink operations on a Logger that was not
	// built by one of the constructors (e.g. one taken from a context).
	ErrNoRegistry = errors.New("logger has no sink registry")
)

package config

import "errors"

// Errors returned while loading [Settings]. Every one of them is a
// configuration failure and is fatal at startup.
var (
	// ErrUnknownEnvironment indicates an ENVIRONMENT value (or explicit
	// override) outside development, testing, staging and production.
	ErrUnknownEnvironment = errors.New("unknown environment")
	// ErrEnvFileNotFound indicates that an explicitly requested env file
	// does not exist.
	ErrEnvFileNotFound = errors.New("env file not found")
	// ErrInvalidSettings indicates that the merged settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)

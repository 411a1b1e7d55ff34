package statemachine

import "errors"

var (
	// ErrParsingConfig is returned when environment values cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse state machine config")

	// ErrReadingConfigFile is returned when an env file cannot be read.
	ErrReadingConfigFile = errors.New("failed to read state machine config file")

	// ErrInvalidHistorySize is returned when the configured history size is below 1.
	ErrInvalidHistorySize = errors.New("invalid history size: must be at least 1")
)

package qtest

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("config is nil")

	// ErrOutputNil indicates that a nil output writer was provided.
	ErrOutputNil = errors.New("output is nil")

	// ErrLoggerNil indicates that a nil logger was provided.
	ErrLoggerNil = errors.New("logger is nil")
)

var (
	// ErrTimeLimitExceeded indicates that a queue operation did not finish within the time limit.
	ErrTimeLimitExceeded = errors.New("time limit exceeded")

	// ErrCommandsFailed indicates that at least one command reported an error.
	ErrCommandsFailed = errors.New("commands failed")

	// ErrUnknownCommand indicates a command name that the console does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArgs indicates a command called with a wrong number or form of arguments.
	ErrInvalidArgs = errors.New("invalid arguments")
)

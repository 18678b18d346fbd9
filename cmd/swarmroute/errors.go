package main

import "fmt"

// Exit codes.
const (
	exitUsage  = 2 // bad flags, configuration or input files
	exitNoPath = 3 // the strategy finished without a route
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

package shell

import (
	"errors"
	"fmt"
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("shell exited with %d", e.ExitCode)
}

func NewExitError(exitCode int) *ExitError {
	return &ExitError{ExitCode: exitCode}
}

func IsExitError(err error) bool {
	if err == nil {
		return false
	}

	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// ExitCode returns the exit code for err: 0 for nil, the carried code
// for an *ExitError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	return 1
}

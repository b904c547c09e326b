package cli

import "fmt"

// Process exit codes. Findings and failures map to distinct codes so scripts
// and CI can branch on the kind of problem.
const (
	// ExitGeneric covers I/O, argument, and configuration errors.
	ExitGeneric = 1
	// ExitDependency signals a dependency failure: a cycle was detected,
	// or validation failed on dependency grounds.
	ExitDependency = 2
	// ExitNotFound signals a missing reference: a task ID did not resolve.
	ExitNotFound = 3
)

// ExitError carries a process exit code alongside the underlying error.
// main unwraps it to set the exit status; cobra prints the message.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitErrorf builds an ExitError from a formatted message.
func exitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

package app

import "fmt"

// ExitError carries a process exit status out of a cobra RunE.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// invocationError marks a problem with the command line itself. These are
// always reported, quiet or not.
type invocationError struct {
	err error
}

func (e *invocationError) Error() string { return e.err.Error() }
func (e *invocationError) Unwrap() error { return e.err }

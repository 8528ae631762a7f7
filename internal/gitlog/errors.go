package gitlog

import (
	"fmt"
	"strings"
)

// InvocationError reports that git could not be started at all, for
// example because the binary is missing or the repository directory does
// not exist. Callers must treat it as fatal.
type InvocationError struct {
	Err error
}

// Error implements the error interface
func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to run git: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// QueryError reports that git ran but exited non-zero, for example on an
// unknown branch or path. The original diagnostic is surfaced verbatim so
// callers never confuse a failed query with an empty result.
type QueryError struct {
	Args   []string
	Stderr string
	Err    error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *QueryError) Unwrap() error {
	return e.Err
}

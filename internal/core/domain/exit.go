package domain

import "strconv"

// MaxExitCode is the largest status a process can report.
const MaxExitCode = 255

// ExitError asks the entry point to terminate with Code instead of the default failure status.
// A nil Err means the condition has already been reported.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError returns an ExitError carrying code and an optional cause.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + strconv.Itoa(e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

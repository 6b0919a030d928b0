package cli

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrShowHelp asks [Run] to print the command's usage to stderr alongside the error.
	ErrShowHelp ErrorCode = iota + 1
)

func (c ErrorCode) String() string {
	switch c {
	case ErrShowHelp:
		return "show help"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return e.code.String() + ": <nil>"
	}
	return e.err.Error()
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

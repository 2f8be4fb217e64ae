package bufread

import (
	"fmt"
)

// SourceError reports a failed read against the wrapped source. The
// original failure is kept as the cause and stays reachable through
// errors.Is and errors.As.
type SourceError struct {
	message string
	cause   error
}

func (err *SourceError) Error() string {
	if err.hasCause() {
		return fmt.Sprintf("%s (cause: %s)", err.message, err.cause.Error())
	} else {
		return err.message
	}
}

func (err *SourceError) Unwrap() error {
	return err.cause
}

func (err *SourceError) hasCause() bool {
	return err.cause != nil
}

func newSourceError(cause error) *SourceError {
	return &SourceError{
		message: "error reading from source",
		cause:   cause,
	}
}

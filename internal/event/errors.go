package event

import "fmt"

// StreamClosedError indicates the daemon ended the event feed before the
// user asked to stop.
type StreamClosedError struct {
	Err error
}

// NewStreamClosedError creates a new StreamClosedError. err may be nil
// when the feed simply went away without a transport error.
func NewStreamClosedError(err error) *StreamClosedError {
	return &StreamClosedError{Err: err}
}

// Error implements the error interface.
func (e *StreamClosedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("event stream closed: %v", e.Err)
	}
	return "event stream closed by the daemon"
}

func (e *StreamClosedError) Unwrap() error {
	return e.Err
}

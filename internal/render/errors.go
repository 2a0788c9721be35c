package render

import (
	"fmt"

	"github.com/docker/docker/api/types/events"
)

// MalformedRecordError represents a single event record that could not
// be rendered. It is never fatal to the stream.
type MalformedRecordError struct {
	ID string
}

// NewMalformedRecordError creates a new MalformedRecordError.
func NewMalformedRecordError(msg events.Message) *MalformedRecordError {
	return &MalformedRecordError{ID: msg.Actor.ID}
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("malformed event record for actor %s", e.ID)
	}
	return "malformed event record"
}

package llm

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the remote call exceeded its time bound.
var ErrTimeout = errors.New("remote call timed out")

// RemoteCallError is a non-timeout transport or HTTP failure. StatusCode is
// zero when the request never reached the server.
type RemoteCallError struct {
	Message    string
	StatusCode int
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote call failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote call failed: %s", e.Message)
}

// MalformedResponseError indicates the response body could not be parsed into
// the expected structure after all coercion fallbacks.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the directory adapter and the services.
var (
	ErrNetwork           = errors.New("network error")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation error")

	// ErrSuperseded is returned for a catalog load whose result was discarded
	// because a newer load or a different identity took over.
	ErrSuperseded = errors.New("superseded by a newer load")

	// ErrInvalidTransition is returned when a registration action is not allowed
	// from the current phase.
	ErrInvalidTransition = errors.New("invalid registration transition")
)

// RemoteError is a failure reported by the event directory. It unwraps to one
// of the sentinels above and keeps the server message for display.
type RemoteError struct {
	Kind       error
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	}
	return e.Kind.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// DisplayMessage returns the text shown to the user for err.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return err.Error()
}

package service

import (
	"errors"
	"strings"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDraftNotFound    = errors.New("listing draft not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidStep      = errors.New("listing draft is not at a step that allows this")
)

// ValidationError carries every user-facing message for a rejected input
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

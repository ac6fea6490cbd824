package entities

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Wrap them with context and test with errors.Is.
var (
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrIneligible              = errors.New("company ineligible")
	ErrAlreadyAssigned         = errors.New("already assigned")
	ErrInvalidVatConfiguration = errors.New("invalid vat configuration")
	ErrNotFound                = errors.New("not found")
	ErrDependencyUnavailable   = errors.New("dependency unavailable")
	ErrInvalidInput            = errors.New("invalid input")
)

// TransitionError names the offending (from, to) pair of a rejected transition.
type TransitionError struct {
	Entity string
	ID     int64
	From   string
	To     string
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s %d: invalid transition %s -> %s", e.Entity, e.ID, e.From, e.To)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

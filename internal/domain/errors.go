package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Error kinds. Adapters wrap one of these so callers can branch with
// errors.Is regardless of which backend failed.
var (
	// ErrNotFound: the store has no such document.
	ErrNotFound = errors.New("not found")
	// ErrValidation: the input can never succeed as given.
	ErrValidation = errors.New("validation error")
	// ErrUnavailable: a dependency is down or refusing work; redelivery may help.
	ErrUnavailable = errors.New("unavailable")
	// ErrTokenRejected: the push backend will never deliver to this token.
	ErrTokenRejected = errors.New("device token rejected")
)

// MsgRequired is the field message for a missing value.
const MsgRequired = "is required"

// ValidationError lists offending fields with a message each. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

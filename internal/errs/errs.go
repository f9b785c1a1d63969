// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidArgument indicates malformed input (empty name, oversized deck, bad content type).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded indicates a folder, deck or guest-deck limit was reached.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotEmpty indicates an attempt to delete a folder that still has children.
	ErrNotEmpty = errors.New("not empty")

	// ErrQuotaExceeded indicates the admission gate rejected the call for the current window.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransient indicates a storage or network failure; safe to retry.
	ErrTransient = errors.New("transient failure")

	// ErrUnauthenticated indicates no usable identity was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// QuotaExceededError carries the moment the current quota window lapses.
type QuotaExceededError struct {
	ResetsAt time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded, resets at %s", e.ResetsAt.UTC().Format(time.RFC1123))
}

// Unwrap lets errors.Is match ErrQuotaExceeded.
func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// Invalid wraps ErrInvalidArgument with a message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// Transient wraps a lower-level failure as ErrTransient, keeping the cause.
func Transient(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
}

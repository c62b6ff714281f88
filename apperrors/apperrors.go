package apperrors

import (
	"errors"
	"fmt"
)

// The pipeline distinguishes six failure classes. Handlers map them to HTTP
// statuses; fan-out operations fold per-item failures into partial results
// instead of propagating them.

// ValidationError indicates bad input shape or length. The user must correct
// and resubmit; it is never retried automatically.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError indicates a missing or expired credential.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func NewAuth(msg string) *AuthError { return &AuthError{Msg: msg} }

// NotFoundError indicates the referenced video, channel or comment is absent
// upstream or in the store.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NewNotFound(kind, id string) *NotFoundError { return &NotFoundError{Kind: kind, ID: id} }

// QuotaExceededError is the distinguished upstream failure telling the user
// to wait and retry later.
type QuotaExceededError struct {
	Cause error
}

func (e *QuotaExceededError) Error() string {
	return "platform API quota exceeded, try again later"
}

func (e *QuotaExceededError) Unwrap() error { return e.Cause }

// UpstreamError is any other remote failure. Logged, surfaced with a generic
// message, safe to retry manually.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

func NewUpstream(op string, cause error) *UpstreamError {
	return &UpstreamError{Op: op, Cause: cause}
}

// PersistenceError indicates a store write failed. It never unwinds an
// already-successful external action; callers surface it as a soft warning.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

func NewPersistence(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsQuotaExceeded reports whether err is a QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

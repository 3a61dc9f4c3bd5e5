package store

import "errors"

// Every failure a store can report. Operations validate everything up front
// and mutate nothing when they fail, so each of these is a normal, fully
// recoverable outcome for the caller to translate into a user-facing reply.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrEmailInUse        = errors.New("email already in use by another account")
	ErrUnknownEmail      = errors.New("email not registered")
	ErrWrongPassword     = errors.New("incorrect password")
	ErrForbidden         = errors.New("operation not allowed for this user")
	ErrInvalidInput      = errors.New("missing or malformed input")
	ErrMissingRole       = errors.New("role must be selected")
	ErrInvalidTransition = errors.New("order status does not allow this transition")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrEmptyArea         = errors.New("delivery area must not be empty")
	ErrIndexOutOfRange   = errors.New("cart line index out of range")
)

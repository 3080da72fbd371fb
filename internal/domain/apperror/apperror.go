package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the interface layer can map it to a status.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindDuplicateEmail
	KindUserNotFound
	KindInvalidCredentials
	KindInactiveAccount
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindDuplicateEmail:
		return "DuplicateEmail"
	case KindUserNotFound:
		return "UserNotFound"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindInactiveAccount:
		return "InactiveAccount"
	default:
		return "Unexpected"
	}
}

// Error is the typed failure raised by the domain and use-case layers.
// errors.Is matches any two *Error values of the same Kind, so callers can
// compare against the sentinels below regardless of message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail}
	ErrUserNotFound       = &Error{Kind: KindUserNotFound}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrInactiveAccount    = &Error{Kind: KindInactiveAccount}
)

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Validation is shorthand for the most common constructor.
func Validation(msg string) *Error {
	return New(KindValidation, msg)
}

// KindOf reports the kind carried by err, or KindUnexpected for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindExec        ErrorKind = "exec"
	KindParse       ErrorKind = "parse"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindUnreachable ErrorKind = "unreachable"
	KindTimeout     ErrorKind = "timeout"
	KindUnknown     ErrorKind = "unknown"
)

// Error is a classified, user-facing failure. Message is meant to be shown as is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the kind sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

var (
	ErrExec        = &Error{Kind: KindExec}
	ErrParse       = &Error{Kind: KindParse}
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrUnreachable = &Error{Kind: KindUnreachable}
	ErrTimeout     = &Error{Kind: KindTimeout}
	ErrUnknown     = &Error{Kind: KindUnknown}
)

var (
	ErrSavedDeviceNotFound = NewError(KindNotFound, "saved device not found", nil)
	ErrSessionNotFound     = NewError(KindNotFound, "session not found", nil)
)

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

package cart

import (
	"errors"
	"fmt"
)

// Kind classifies cart engine errors so callers can pick a transport status
// without matching on message strings.
type Kind int

const (
	// KindInvalidInput means caller-supplied data failed a shape check.
	// Never worth retrying.
	KindInvalidInput Kind = iota + 1
	// KindNotFound means a delete was requested for a user with no cart.
	KindNotFound
	// KindStoreFailure means the persistence layer could not complete a
	// read or write. Retry policy belongs to the caller.
	KindStoreFailure
)

// Error is the engine's error type. Store failures keep the underlying cause
// for logs but render a generic message so storage internals never leak to
// API clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 if err is not a cart engine error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

func invalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func storeFailure(err error) *Error {
	return &Error{Kind: KindStoreFailure, Msg: "cart storage unavailable", Err: err}
}

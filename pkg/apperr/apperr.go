package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping at the request boundary.
type Kind int

const (
	Validation Kind = iota // bad or missing input -> 400
	Authorization          // role not allowed -> 403
	NotFound               // referenced row does not exist -> 404
	Storage                // backing store failure -> 500
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, defaulting to Storage for errors that
// did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

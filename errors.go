package urlenc

import (
	"errors"
	"strconv"
)

var (
	// ErrControlCharacter is returned when a URL contains an ASCII control
	// byte.
	ErrControlCharacter = errors.New("net/url: invalid control character in URL")

	// ErrInvalidUserinfo is returned when the userinfo part of an authority
	// contains characters RFC 3986 does not allow there.
	ErrInvalidUserinfo = errors.New("net/url: invalid userinfo")

	ErrEmptyURL            = errors.New("empty url")
	ErrMissingScheme       = errors.New("missing protocol scheme")
	ErrColonInFirstSegment = errors.New("first path segment in URL cannot contain colon")
	ErrInvalidRequestURI   = errors.New("invalid URI for request")
	ErrMissingBracket      = errors.New("missing ']' in host")
)

// Error reports an error and the operation and URL that caused it.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	return e.Op + " " + strconv.Quote(e.URL) + ": " + e.Err.Error()
}

// Timeout reports whether the wrapped error is a timeout.
func (e *Error) Timeout() bool {
	t, ok := e.Err.(interface{ Timeout() bool })
	return ok && t.Timeout()
}

// Temporary reports whether the wrapped error is temporary.
func (e *Error) Temporary() bool {
	t, ok := e.Err.(interface{ Temporary() bool })
	return ok && t.Temporary()
}

// EscapeError is returned when a string contains a malformed %-escape. Its
// value is the offending escape.
type EscapeError string

func (e EscapeError) Error() string {
	return "invalid URL escape " + strconv.Quote(string(e))
}

// InvalidHostError is returned when a host contains a byte that is not
// allowed there. Its value is the offending character.
type InvalidHostError string

func (e InvalidHostError) Error() string {
	return "invalid character " + strconv.Quote(string(e)) + " in host name"
}

// invalidPortError builds the error returned for a malformed ":port" suffix.
func invalidPortError(colonPort string) error {
	return errors.New("invalid port " + strconv.Quote(colonPort) + " after host")
}

package http

import "errors"

var (
	// ErrEmptyRequest is returned for a read that produced no bytes.
	ErrEmptyRequest = errors.New("empty request")
	// ErrInvalidUTF8 is returned when the request bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("request is not valid UTF-8")
	// ErrMalformedRequestLine is returned when the first line has fewer
	// than three whitespace-separated tokens.
	ErrMalformedRequestLine = errors.New("malformed request line")
)

package http

import (
	"strings"
	"unicode/utf8"
)

// Request is one HTTP message as read from a connection. Raw keeps the full
// decoded text; the other fields are views derived from its first line.
type Request struct {
	Raw    string
	Method string
	Path   string
	Proto  string
}

// ParseRequest decodes data as UTF-8 and splits the request line into
// method, path and protocol. Tokens after the third are ignored.
func ParseRequest(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	if len(data) == 0 {
		return nil, ErrEmptyRequest
	}

	raw := string(data)
	line, _, _ := strings.Cut(raw, "\n")
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return nil, ErrMalformedRequestLine
	}

	return &Request{
		Raw:    raw,
		Method: parts[0],
		Path:   parts[1],
		Proto:  parts[2],
	}, nil
}

// Header returns the value of the last header line starting with name.
func (r *Request) Header(name string) string {
	return GetHeader(r.Raw, name)
}

// Body returns everything after the last blank-line separator. A request
// without a separator is returned whole.
func (r *Request) Body() string {
	if i := strings.LastIndex(r.Raw, headerBodySep); i >= 0 {
		return r.Raw[i+len(headerBodySep):]
	}
	return r.Raw
}

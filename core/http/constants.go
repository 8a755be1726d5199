package http

// Request header prefixes. Lookups match these literally at the start of a
// header line, so the trailing colon and space are part of the name.
const (
	HeaderUserAgent      = "User-Agent: "
	HeaderAcceptEncoding = "Accept-Encoding: "
)

// Content types produced by the route handlers.
const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
)

// Fixed responses that carry no headers and no body.
const (
	StatusOK       = "HTTP/1.1 200 OK\r\n\r\n"
	StatusCreated  = "HTTP/1.1 201 Created\r\n\r\n"
	StatusNotFound = "HTTP/1.1 404 Not Found\r\n\r\n"
)

// ContentEncodingGzip is the header line emitted when gzip was negotiated.
const ContentEncodingGzip = "Content-Encoding: gzip"

const (
	crlf          = "\r\n"
	headerBodySep = "\r\n\r\n"
)

// ReadBufferSize is the capacity of the single read performed per
// connection. Anything the client sends beyond it is never seen.
const ReadBufferSize = 1024

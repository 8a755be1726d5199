package http

// BuildContent assembles a complete 200 response carrying content with the
// given content type. When the client of req accepts gzip the body is
// compressed and Content-Length counts the compressed bytes; the textual
// headers and the raw body are concatenated as-is.
func BuildContent(req *Request, content, contentType string) ([]byte, error) {
	return AppendContent(nil, req, content, contentType)
}

// AppendContent is BuildContent appending into dst.
func AppendContent(dst []byte, req *Request, content, contentType string) ([]byte, error) {
	encoding := Negotiate(req.Raw)

	dst = append(dst, "HTTP/1.1 200 OK"...)
	dst = append(dst, crlf...)
	dst = append(dst, "Content-Type: "...)
	dst = append(dst, contentType...)
	dst = append(dst, crlf...)

	if encoding != "" {
		body, err := Compress(content)
		if err != nil {
			return nil, err
		}
		dst = append(dst, encoding...)
		dst = append(dst, crlf...)
		dst = append(dst, "Content-Length: "...)
		dst = appendInt(dst, len(body))
		dst = append(dst, headerBodySep...)
		return append(dst, body...), nil
	}

	dst = append(dst, "Content-Length: "...)
	dst = appendInt(dst, len(content))
	dst = append(dst, headerBodySep...)
	return append(dst, content...), nil
}

// appendInt appends the decimal form of a non-negative length to b.
func appendInt(b []byte, i int) []byte {
	if i == 0 {
		return append(b, '0')
	}

	digits := 0
	for tmp := i; tmp > 0; tmp /= 10 {
		digits++
	}

	start := len(b)
	for j := 0; j < digits; j++ {
		b = append(b, '0')
	}
	for j := digits - 1; j >= 0; j-- {
		b[start+j] = byte('0' + i%10)
		i /= 10
	}
	return b
}

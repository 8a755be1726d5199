package http

import "strings"

// Negotiate inspects the Accept-Encoding header of raw and returns
// ContentEncodingGzip when one of its ", "-separated tokens is exactly
// "gzip". Quality values, wildcards and other codings are not recognized.
func Negotiate(raw string) string {
	for _, token := range strings.Split(GetHeader(raw, HeaderAcceptEncoding), ", ") {
		if token == "gzip" {
			return ContentEncodingGzip
		}
	}
	return ""
}

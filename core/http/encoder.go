package http

import (
	"bytes"
	"fmt"
	"io"

	"github.com/searchktools/http-lite/core/pools"
)

// Compress gzip-encodes text at the default compression level. The stream
// is closed before returning, so the result is a complete gzip member.
func Compress(text string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(text)/2 + 32)

	zw := pools.AcquireGzipWriter(&buf)
	defer pools.ReleaseGzipWriter(zw)

	if _, err := io.WriteString(zw, text); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

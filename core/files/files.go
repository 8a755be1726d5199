package files

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned by ReadText for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Root is the serving root: a path prefix that file endpoints concatenate
// requested names onto. It is never mutated after startup.
type Root string

// Resolve concatenates the root and name and collapses every "//" into "/".
// No other normalization is applied.
func (r Root) Resolve(name string) string {
	return strings.ReplaceAll(string(r)+name, "//", "/")
}

// ReadText reads the file resolved from name and returns its contents as
// text.
func (r Root) ReadText(name string) (string, error) {
	data, err := os.ReadFile(r.Resolve(name))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", name, ErrNotText)
	}
	return string(data), nil
}

// WriteText creates or truncates the file resolved from name and writes
// body to it verbatim.
func (r Root) WriteText(name, body string) error {
	f, err := os.Create(r.Resolve(name))
	if err != nil {
		return err
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

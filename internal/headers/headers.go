package headers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// MaxHeaders bounds how many header lines a single request may carry.
const MaxHeaders = 16

var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrTooManyHeaders  = errors.New("too many headers")
)

var crlf = []byte("\r\n")

// Headers is a bounded header list. Names are stored lowercased so lookups
// are case-insensitive.
type Headers struct {
	h map[string]string
}

func NewHeaders() *Headers {
	return &Headers{h: make(map[string]string)}
}

// Get returns the value for a header, matching the name case-insensitively.
func (h *Headers) Get(key string) (string, bool) {
	v, ok := h.h[strings.ToLower(key)]
	return v, ok
}

// Set stores a value, replacing any previous one for the same name.
func (h *Headers) Set(key, value string) {
	h.h[strings.ToLower(key)] = value
}

// Len returns the number of distinct header names stored.
func (h *Headers) Len() int {
	return len(h.h)
}

// Parse scans CRLF-terminated "name: value" lines until the blank line that
// ends the header block. It returns the number of bytes consumed and whether
// the terminating blank line was found inside data. A repeated name keeps the
// last value.
func (h *Headers) Parse(data []byte) (int, bool, error) {
	read := 0
	lines := 0

	for {
		idx := bytes.Index(data[read:], crlf)
		if idx == -1 {
			// Block does not terminate inside data.
			return read, false, nil
		}

		if idx == 0 {
			// Empty line = end of headers
			return read + 2, true, nil
		}

		lines++
		if lines > MaxHeaders {
			return read, false, ErrTooManyHeaders
		}

		name, value, err := parseHeaderLine(data[read : read+idx])
		if err != nil {
			return read, false, err
		}
		h.Set(name, value)

		read += idx + 2
	}
}

func parseHeaderLine(line []byte) (string, string, error) {
	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return "", "", fmt.Errorf("%w: no colon", ErrMalformedHeader)
	}

	name := line[:colonIdx]
	value := line[colonIdx+1:]

	if bytes.ContainsAny(name, " \t") {
		return "", "", fmt.Errorf("%w: whitespace in name", ErrMalformedHeader)
	}

	for _, b := range name {
		if !isValidHeaderChar(b) {
			return "", "", fmt.Errorf("%w: invalid character %q in name", ErrMalformedHeader, b)
		}
	}

	value = bytes.TrimSpace(value)

	return string(name), string(value), nil
}

func isValidHeaderChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9') ||
		b == '!' || b == '#' || b == '$' || b == '%' || b == '&' ||
		b == '\'' || b == '*' || b == '+' || b == '-' || b == '.' ||
		b == '^' || b == '_' || b == '`' || b == '|' || b == '~'
}

package request

import (
	"bytes"
)

var crlf = []byte("\r\n")

// parseRequestLine parses: METHOD PATH VERSION\r\n
// Returns: method, path, version, bytesConsumed, error.
// consumed == 0 with a nil error means the line never terminated.
func parseRequestLine(data []byte) (string, string, string, int, error) {
	idx := bytes.Index(data, crlf)
	if idx == -1 {
		return "", "", "", 0, nil
	}

	line := data[:idx]
	consumed := idx + 2 // +2 for \r\n

	parts := bytes.SplitN(line, []byte(" "), 3)
	if len(parts) != 3 {
		return "", "", "", 0, ErrMalformedRequestLine
	}

	method := string(parts[0])
	path := string(parts[1])
	version := string(parts[2])

	if !isValidMethod(method) {
		return "", "", "", 0, ErrInvalidMethod
	}

	if !isValidPath(path) {
		return "", "", "", 0, ErrInvalidPath
	}

	if !isValidVersion(version) {
		return "", "", "", 0, ErrUnsupportedVersion
	}

	return method, path, version, consumed, nil
}

// isValidMethod checks the method against the fixed supported set. Anything
// outside it, well-formed token or not, rejects the connection.
func isValidMethod(method string) bool {
	switch method {
	case "GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS":
		return true
	default:
		return false
	}
}

// isValidPath requires origin-form: the path must start with /.
func isValidPath(path string) bool {
	return len(path) > 0 && path[0] == '/'
}

func isValidVersion(version string) bool {
	return version == "HTTP/1.0" || version == "HTTP/1.1"
}

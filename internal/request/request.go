package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Brownie44l1/tinyhttp/internal/headers"
)

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrInvalidMethod        = errors.New("invalid HTTP method")
	ErrInvalidPath          = errors.New("invalid request path")
	ErrUnsupportedVersion   = errors.New("unsupported HTTP version")
	ErrIncompleteRequest    = errors.New("request not contained in a single read")
)

// Request is the parsed view of one socket read. It lives for the duration of
// one connection and is discarded once the response is written.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers *headers.Headers

	// Body is the raw unparsed tail after the blank line, verbatim. Bodies
	// that extend beyond the single read are not supported.
	Body []byte

	// Raw is the full request text with invalid UTF-8 replaced. Handlers
	// receive this, never the socket.
	Raw string
}

// Parse consumes the bytes of exactly one socket read. Requests that span
// multiple reads are not supported: if the header block does not terminate
// inside buf, Parse fails with ErrIncompleteRequest and the caller drops the
// connection without a response.
func Parse(buf []byte) (*Request, error) {
	method, path, version, consumed, err := parseRequestLine(buf)
	if err != nil {
		return nil, err
	}
	if consumed == 0 {
		return nil, ErrIncompleteRequest
	}

	h := headers.NewHeaders()
	n, done, err := h.Parse(buf[consumed:])
	if err != nil {
		return nil, fmt.Errorf("parsing headers: %w", err)
	}
	if !done {
		return nil, ErrIncompleteRequest
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: h,
		Body:    buf[consumed+n:],
		Raw:     strings.ToValidUTF8(string(buf), "�"),
	}, nil
}

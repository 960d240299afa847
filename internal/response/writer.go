package response

import (
	"fmt"
	"io"
)

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer emits the fixed-shape wire response over an io.Writer, enforcing
// status -> headers -> body order so a response can never be half-rewritten.
// The full shape is:
//
//	HTTP/1.1 <code>\r\nContent-Length: <bytes>\r\nContent-Type: <mime>\r\n\r\n<body>
//
// There is no reason phrase after the status code and no Connection header;
// clients must not assume keep-alive is honored.
type Writer struct {
	w     io.Writer
	state writerState
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// WriteStatusLine writes the status line, numeric code only.
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return fmt.Errorf("status line already written")
	}

	_, err := fmt.Fprintf(w.w, "HTTP/1.1 %d\r\n", code)
	if err != nil {
		return err
	}

	w.state = stateStatusWritten
	return nil
}

// WriteHeaders writes the two fixed headers and the blank line ending them.
// contentLength must be the exact byte length of the body that follows.
func (w *Writer) WriteHeaders(contentType string, contentLength int) error {
	if w.state != stateStatusWritten {
		return fmt.Errorf("must write status line before headers")
	}

	_, err := fmt.Fprintf(w.w, "Content-Length: %d\r\nContent-Type: %s\r\n\r\n", contentLength, contentType)
	if err != nil {
		return err
	}

	w.state = stateHeadersWritten
	return nil
}

// WriteBody writes the complete response body
func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeadersWritten {
		return fmt.Errorf("must write headers before body")
	}

	if len(data) > 0 {
		if _, err := w.w.Write(data); err != nil {
			return err
		}
	}

	w.state = stateBodyWritten
	return nil
}

// WriteResponse serializes a complete response in one call.
func (w *Writer) WriteResponse(resp Response) error {
	body := []byte(resp.Body)

	if err := w.WriteStatusLine(resp.StatusCode); err != nil {
		return err
	}
	if err := w.WriteHeaders(resp.ContentType, len(body)); err != nil {
		return err
	}
	return w.WriteBody(body)
}

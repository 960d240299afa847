package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleGETRequest(t *testing.T) {
	data := "GET /hello HTTP/1.1\r\nHost: x\r\n\r\n"
	req, err := Parse([]byte(data))

	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/hello", req.Path)
	assert.Equal(t, "HTTP/1.1", req.Version)

	host, ok := req.Headers.Get("host")
	assert.True(t, ok)
	assert.Equal(t, "x", host)
	assert.Len(t, req.Body, 0)
	assert.Equal(t, data, req.Raw)
}

func TestPOSTWithBody(t *testing.T) {
	data := "POST /submit HTTP/1.1\r\n" +
		"Host: x\r\n" +
		"Content-Length: 13\r\n" +
		"\r\n" +
		"Hello, World!"

	req, err := Parse([]byte(data))

	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/submit", req.Path)

	cl, ok := req.Headers.Get("content-length")
	assert.True(t, ok)
	assert.Equal(t, "13", cl)
	assert.Equal(t, "Hello, World!", string(req.Body))
}

func TestPathIsKeptVerbatim(t *testing.T) {
	// No normalization: trailing slashes and case survive parsing untouched.
	req, err := Parse([]byte("GET /Hello/ HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "/Hello/", req.Path)
}

func TestMalformedRequestLine(t *testing.T) {
	_, err := Parse([]byte("GET /hello\r\n\r\n"))
	require.ErrorIs(t, err, ErrMalformedRequestLine)
}

func TestInvalidMethod(t *testing.T) {
	// Garbage where the method should be.
	_, err := Parse([]byte("\x00\x01\x02 /hello HTTP/1.1\r\n\r\n"))
	require.ErrorIs(t, err, ErrInvalidMethod)

	// Well-formed token outside the supported set is rejected too.
	_, err = Parse([]byte("BREW /coffee HTTP/1.1\r\n\r\n"))
	require.ErrorIs(t, err, ErrInvalidMethod)

	// Lowercase methods don't match.
	_, err = Parse([]byte("get /hello HTTP/1.1\r\n\r\n"))
	require.ErrorIs(t, err, ErrInvalidMethod)
}

func TestInvalidPath(t *testing.T) {
	_, err := Parse([]byte("GET hello HTTP/1.1\r\n\r\n"))
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte("GET /hello HTTP/2.0\r\n\r\n"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestIncompleteRequest(t *testing.T) {
	// Request line never terminates.
	_, err := Parse([]byte("GET /hello HT"))
	require.ErrorIs(t, err, ErrIncompleteRequest)

	// Header block never terminates.
	_, err = Parse([]byte("GET /hello HTTP/1.1\r\nHost: x\r\n"))
	require.ErrorIs(t, err, ErrIncompleteRequest)
}

func TestMalformedHeadersFailParse(t *testing.T) {
	_, err := Parse([]byte("GET /hello HTTP/1.1\r\nNotAHeader\r\n\r\n"))
	require.Error(t, err)
}

func TestLossyDecodingOfRawText(t *testing.T) {
	data := []byte("POST /submit HTTP/1.1\r\nHost: x\r\n\r\n")
	data = append(data, 0xff, 0xfe, 0xfd)

	req, err := Parse(data)
	require.NoError(t, err)

	// The raw body bytes survive verbatim.
	assert.Equal(t, []byte{0xff, 0xfe, 0xfd}, req.Body)

	// The text view replaces undecodable bytes instead of faulting.
	assert.True(t, strings.Contains(req.Raw, "�"))
	assert.True(t, strings.HasPrefix(req.Raw, "POST /submit HTTP/1.1\r\n"))
}

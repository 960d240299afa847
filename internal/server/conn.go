package server

import (
	"bufio"
	"errors"
	"io"
	"net"
	"time"

	"github.com/Brownie44l1/tinyhttp/internal/request"
	"github.com/Brownie44l1/tinyhttp/internal/response"
)

// serveConn owns one accepted connection end-to-end: read once, parse,
// dispatch, serialize, flush. Every failure is contained here — converted to
// a log event and a goroutine exit, never propagated to the accept loop or a
// sibling connection.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Interface("panic", r).
				Str("remote", remote).
				Msg("connection handler panicked")
		}
	}()

	s.metrics.ConnOpened()
	defer s.metrics.ConnClosed()

	if s.cfg.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}

	buf := s.bufPool.Get()
	defer s.bufPool.Put(buf)

	n, err := conn.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			// Peer closed before sending anything. A clean no-op, not an
			// error.
			s.log.Debug().Str("remote", remote).Msg("closed before request")
			return
		}
		s.log.Error().Err(err).Str("step", "read").Str("remote", remote).Msg("dropping connection")
		return
	}

	req, err := request.Parse(buf[:n])
	if err != nil {
		// No response for unparseable input; the connection just closes.
		s.metrics.ParseFailed()
		s.log.Error().Err(err).Str("step", "parse").Str("remote", remote).Msg("dropping connection")
		return
	}

	resp := s.table.Dispatch(req.Method, req.Path, req.Raw)
	s.metrics.RecordRequest(resp.StatusCode)

	bw := bufio.NewWriter(conn)
	w := response.NewWriter(bw)

	if err := w.WriteResponse(resp); err != nil {
		s.metrics.WriteFailed()
		s.log.Error().Err(err).Str("step", "write").Str("remote", remote).Msg("dropping connection")
		return
	}

	// Flush before the deferred close; partial writes are not retried.
	if err := bw.Flush(); err != nil {
		s.metrics.WriteFailed()
		s.log.Error().Err(err).Str("step", "flush").Str("remote", remote).Msg("dropping connection")
		return
	}

	s.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", int(resp.StatusCode)).
		Str("remote", remote).
		Msg("request handled")
}

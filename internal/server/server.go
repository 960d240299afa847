package server

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/tinyhttp/internal/router"
)

// Config carries the server knobs. The defaults reproduce the fixed
// reference behavior: loopback:8080, one 1024-byte read per connection,
// no read deadline.
type Config struct {
	Addr           string
	ReadBufferSize int

	// ReadTimeout bounds the single read on each connection. Zero disables
	// the deadline; a silent peer then holds its goroutine open indefinitely,
	// which is the documented behavior of the minimal core.
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		ReadBufferSize: 1024,
	}
}

// Server owns the listening socket and spawns one goroutine per accepted
// connection. The route table it shares with those goroutines is immutable,
// so no synchronization guards it.
type Server struct {
	cfg      Config
	table    *router.Table
	metrics  *Metrics
	log      zerolog.Logger
	bufPool  *bufferPool
	listener net.Listener
	closed   atomic.Bool
}

// New builds a server around a frozen route table. A nil metrics gets a
// fresh instance.
func New(cfg Config, table *router.Table, metrics *Metrics, log zerolog.Logger) *Server {
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = 1024
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &Server{
		cfg:     cfg,
		table:   table,
		metrics: metrics,
		log:     log,
		bufPool: newBufferPool(cfg.ReadBufferSize),
	}
}

// Metrics returns the server's counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start binds the listening socket and launches the accept loop. A bind
// failure is fatal to startup and returned here; every later failure is
// handled inside the loop or inside a connection goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.cfg.Addr, err)
	}

	s.listener = listener
	go s.acceptLoop()
	return nil
}

// Addr returns the bound listen address. Valid only after Start.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			// Transient accept errors never terminate the loop.
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}

		go s.serveConn(conn)
	}
}

// Close stops the accept loop. In-flight connection goroutines finish on
// their own.
func (s *Server) Close() error {
	s.closed.Store(true)
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

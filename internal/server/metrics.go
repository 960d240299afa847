package server

import (
	"sync/atomic"

	"github.com/Brownie44l1/tinyhttp/internal/response"
)

// Metrics holds server runtime counters.
type Metrics struct {
	RequestsTotal     atomic.Int64
	ActiveConnections atomic.Int64
	NotFoundTotal     atomic.Int64
	ParseFailures     atomic.Int64
	WriteFailures     atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) ConnOpened() {
	m.ActiveConnections.Add(1)
}

func (m *Metrics) ConnClosed() {
	m.ActiveConnections.Add(-1)
}

// RecordRequest records a dispatched request by its response status.
func (m *Metrics) RecordRequest(code response.StatusCode) {
	m.RequestsTotal.Add(1)
	if code == response.StatusNotFound {
		m.NotFoundTotal.Add(1)
	}
}

func (m *Metrics) ParseFailed() {
	m.ParseFailures.Add(1)
}

func (m *Metrics) WriteFailed() {
	m.WriteFailures.Add(1)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	RequestsTotal     int64
	ActiveConnections int64
	NotFoundTotal     int64
	ParseFailures     int64
	WriteFailures     int64
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal:     m.RequestsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		NotFoundTotal:     m.NotFoundTotal.Load(),
		ParseFailures:     m.ParseFailures.Load(),
		WriteFailures:     m.WriteFailures.Load(),
	}
}

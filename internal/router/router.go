package router

import (
	"github.com/Brownie44l1/tinyhttp/internal/response"
)

// Handler is a pure function from the raw request text to a response.
// Handlers never see the socket and hold no mutable state.
type Handler func(raw string) response.Response

// routeKey identifies a route by exact method and path. No wildcards and no
// normalization: /hello and /hello/ are distinct keys.
type routeKey struct {
	method string
	path   string
}

// Builder collects route registrations before the server starts. Build
// freezes the set; the builder is single-goroutine, startup-only.
type Builder struct {
	routes map[routeKey]Handler
}

// New creates a new route table builder
func New() *Builder {
	return &Builder{
		routes: make(map[routeKey]Handler),
	}
}

// Handle registers a handler. Registering the same (method, path) twice keeps
// the last handler. Calling Handle after Build panics.
func (b *Builder) Handle(method, path string, h Handler) {
	b.routes[routeKey{method: method, path: path}] = h
}

// GET is a shortcut for Handle("GET", ...)
func (b *Builder) GET(path string, h Handler) {
	b.Handle("GET", path, h)
}

// POST is a shortcut for Handle("POST", ...)
func (b *Builder) POST(path string, h Handler) {
	b.Handle("POST", path, h)
}

// PUT is a shortcut for Handle("PUT", ...)
func (b *Builder) PUT(path string, h Handler) {
	b.Handle("PUT", path, h)
}

// DELETE is a shortcut for Handle("DELETE", ...)
func (b *Builder) DELETE(path string, h Handler) {
	b.Handle("DELETE", path, h)
}

// Build hands the collected routes to an immutable Table and poisons the
// builder, so a registration racing the accept loop fails loudly instead of
// mutating a shared map.
func (b *Builder) Build() *Table {
	t := &Table{routes: b.routes}
	b.routes = nil
	return t
}

// Table is the immutable route table shared by every connection goroutine.
// It is never mutated after Build, so concurrent lookups need no locking.
type Table struct {
	routes map[routeKey]Handler
}

// Lookup resolves an exact, case-sensitive (method, path) match.
func (t *Table) Lookup(method, path string) (Handler, bool) {
	h, ok := t.routes[routeKey{method: method, path: path}]
	return h, ok
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// NotFound is the fixed fallback for unmatched requests.
func NotFound(raw string) response.Response {
	return response.HTML("404 - Not Found", "Not Found", response.StatusNotFound)
}

// Dispatch resolves the handler for (method, path) and invokes it with the
// raw request text, falling back to NotFound when nothing matches. Absence of
// a match is a normal outcome, never an error.
func (t *Table) Dispatch(method, path, raw string) response.Response {
	h, ok := t.Lookup(method, path)
	if !ok {
		h = NotFound
	}
	return h(raw)
}

package server

import "sync"

// bufferPool recycles the per-connection read buffers. Every connection does
// exactly one read of the same configured size, so one pool class is enough.
type bufferPool struct {
	size int
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	return &bufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

func (p *bufferPool) Get() []byte {
	return *(p.pool.Get().(*[]byte))
}

func (p *bufferPool) Put(buf []byte) {
	if cap(buf) != p.size {
		// Non-standard size, let GC handle it.
		return
	}
	buf = buf[:p.size]
	p.pool.Put(&buf)
}

package pool

import (
	"bytes"
	"sync"
)

// BufferPool manages reusable staging buffers for callers assembling
// compressed blocks. The codec itself never pools anything; each call owns
// its buffers for exactly one call.
type BufferPool struct {
	size int       // Expected size of one staged block.
	pool sync.Pool // Thread-safe pool of buffers.
}

// NewBufferPool creates a pool of buffers pre-sized for blocks of the
// given size (typically the worst-case compressed bound of one block).
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Get retrieves a clean buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	// Don't pool buffers that have grown far beyond one block.
	if buf.Cap() > bp.size*2 {
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}

package common

import (
	"bytes"
	"sync"
)

// BufferPool manages a pool of byte buffers to reduce allocations
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a new buffer pool with the specified initial capacity
func NewBufferPool(initialCapacity int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, initialCapacity))
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put returns a buffer to the pool after resetting it. The caller must not
// keep references to the buffer's bytes.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf != nil {
		buf.Reset()
		bp.pool.Put(buf)
	}
}

// DefaultBufferPool holds 64KB buffers used for serialized reports.
var DefaultBufferPool = NewBufferPool(64 * 1024)

package pools

import (
	"sync"
	"sync/atomic"
)

// ReadBufferPool hands out fixed-size read buffers. Every buffer has
// exactly the configured length, so a single Read into it is bounded.
type ReadBufferPool struct {
	size int
	pool sync.Pool

	// Statistics
	gets atomic.Uint64
	puts atomic.Uint64
	news atomic.Uint64
}

// NewReadBufferPool creates a pool of buffers of the given size
func NewReadBufferPool(size int) *ReadBufferPool {
	if size <= 0 {
		size = 1024
	}

	bp := &ReadBufferPool{size: size}
	bp.pool.New = func() any {
		bp.news.Add(1)
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// Size returns the length of every buffer handed out
func (bp *ReadBufferPool) Size() int {
	return bp.size
}

// Get acquires a buffer of exactly Size bytes
func (bp *ReadBufferPool) Get() *[]byte {
	bp.gets.Add(1)
	buf := bp.pool.Get().(*[]byte)
	*buf = (*buf)[:bp.size]
	return buf
}

// Put returns a buffer to the pool. Buffers of a different capacity are
// left to the GC.
func (bp *ReadBufferPool) Put(buf *[]byte) {
	if buf == nil || cap(*buf) != bp.size {
		return
	}
	bp.puts.Add(1)
	bp.pool.Put(buf)
}

// Stats returns pool statistics
func (bp *ReadBufferPool) Stats() ReadBufferStats {
	gets := bp.gets.Load()
	news := bp.news.Load()

	hitRate := 0.0
	if gets > 0 && gets > news {
		hitRate = float64(gets-news) / float64(gets)
	}

	return ReadBufferStats{
		Gets:    gets,
		Puts:    bp.puts.Load(),
		News:    news,
		HitRate: hitRate,
	}
}

// ReadBufferStats contains read buffer pool statistics
type ReadBufferStats struct {
	Gets    uint64
	Puts    uint64
	News    uint64
	HitRate float64
}

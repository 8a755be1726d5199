package pools

import (
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// GzipWriterPool reuses gzip writers of one compression level
type GzipWriterPool struct {
	level int
	pool  sync.Pool
}

// NewGzipWriterPool creates a pool for the given level. Levels gzip does
// not accept fall back to gzip.DefaultCompression.
func NewGzipWriterPool(level int) *GzipWriterPool {
	if _, err := gzip.NewWriterLevel(io.Discard, level); err != nil {
		level = gzip.DefaultCompression
	}

	gp := &GzipWriterPool{level: level}
	gp.pool.New = func() any {
		zw, _ := gzip.NewWriterLevel(io.Discard, gp.level)
		return zw
	}
	return gp
}

// Level returns the compression level of pooled writers
func (gp *GzipWriterPool) Level() int {
	return gp.level
}

// Get returns a writer reset to write into w
func (gp *GzipWriterPool) Get(w io.Writer) *gzip.Writer {
	zw := gp.pool.Get().(*gzip.Writer)
	zw.Reset(w)
	return zw
}

// Put returns a writer to the pool
func (gp *GzipWriterPool) Put(zw *gzip.Writer) {
	if zw == nil {
		return
	}
	zw.Reset(io.Discard)
	gp.pool.Put(zw)
}

var defaultGzipPool = NewGzipWriterPool(gzip.DefaultCompression)

// AcquireGzipWriter gets a default-level writer from the global pool
func AcquireGzipWriter(w io.Writer) *gzip.Writer {
	return defaultGzipPool.Get(w)
}

// ReleaseGzipWriter returns a writer to the global pool
func ReleaseGzipWriter(zw *gzip.Writer) {
	defaultGzipPool.Put(zw)
}

// Package frame provides the single-slot sample buffer shared between the
// capture and playback callbacks.
package frame

import (
	"fmt"
	"sync"
)

// Buffer is a fixed-size exchange cell for one block of samples. The
// capture callback is its only writer and the playback callback its only
// reader; there is no queue between them. If playback runs faster than
// capture the same content is read repeatedly, and if capture runs faster
// some blocks are overwritten before they are ever read. Last write wins.
type Buffer struct {
	mu      sync.Mutex
	samples []float32
}

// New returns a zero-filled buffer holding size samples. The size is fixed
// for the lifetime of the buffer. A non-positive size is an unrecoverable
// programming error and panics.
func New(size int) *Buffer {
	if size <= 0 {
		panic(fmt.Sprintf("frame: buffer size must be positive, got %d", size))
	}
	return &Buffer{samples: make([]float32, size)}
}

// Write copies min(len(block), Size()) samples from block into the front of
// the buffer. Slots beyond len(block) keep whatever the previous write left
// there; short blocks deliberately do not clear the tail. Excess samples in
// an oversized block are discarded.
func (b *Buffer) Write(block []float32) {
	b.mu.Lock()
	n := len(block)
	if n > len(b.samples) {
		n = len(b.samples)
	}
	copy(b.samples[:n], block[:n])
	b.mu.Unlock()
}

// Snapshot copies the current contents into dst and returns the number of
// samples copied. The lock is held only for the copy, so callers can run
// arbitrarily long processing on the snapshot without blocking the writer.
// A snapshot always reflects exactly one completed Write, never a mixture
// of two.
func (b *Buffer) Snapshot(dst []float32) int {
	b.mu.Lock()
	n := copy(dst, b.samples)
	b.mu.Unlock()
	return n
}

// Size returns the fixed capacity of the buffer.
func (b *Buffer) Size() int {
	return len(b.samples)
}

package ui

import (
	"io"
	"sync"
)

// AudioRingBuffer is a byte FIFO between the emulation goroutine and
// oto. Read blocks while empty; Write never blocks and overwrites the
// oldest bytes when full.
type AudioRingBuffer struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []byte
	start  int // index of the oldest byte
	length int // bytes buffered
	closed bool
}

// NewAudioRingBuffer creates a ring buffer holding capacity bytes.
func NewAudioRingBuffer(capacity int) *AudioRingBuffer {
	rb := &AudioRingBuffer{buf: make([]byte, capacity)}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// Write appends p, dropping the oldest data on overflow. Writes after
// Close are ignored.
func (rb *AudioRingBuffer) Write(p []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.closed || len(p) == 0 {
		return
	}

	size := len(rb.buf)
	if len(p) > size {
		p = p[len(p)-size:]
	}
	if drop := rb.length + len(p) - size; drop > 0 {
		rb.start = (rb.start + drop) % size
		rb.length -= drop
	}

	end := (rb.start + rb.length) % size
	n := copy(rb.buf[end:], p)
	copy(rb.buf, p[n:])
	rb.length += len(p)
	rb.cond.Signal()
}

// Read implements io.Reader. It blocks until data is available and
// returns io.EOF once closed and drained.
func (rb *AudioRingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	for rb.length == 0 {
		if rb.closed {
			return 0, io.EOF
		}
		rb.cond.Wait()
	}

	want := min(len(p), rb.length)
	n := copy(p[:want], rb.buf[rb.start:min(rb.start+want, len(rb.buf))])
	n += copy(p[n:want], rb.buf)
	rb.start = (rb.start + n) % len(rb.buf)
	rb.length -= n
	return n, nil
}

// Buffered returns the number of bytes waiting to be read.
func (rb *AudioRingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.length
}

// Clear discards everything buffered.
func (rb *AudioRingBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.start = 0
	rb.length = 0
}

// Close wakes blocked readers; they drain what is left then see io.EOF.
func (rb *AudioRingBuffer) Close() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.cond.Broadcast()
}

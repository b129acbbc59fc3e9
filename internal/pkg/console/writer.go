package console

import (
	"bytes"
	"io"
	"sync"
)

// Writer serializes writes to an underlying writer so that messages printed
// from background goroutines never tear a line written by the main flow.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (c *Writer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

// Buffer is a goroutine-safe in-memory console, handy for capturing output.
type Buffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

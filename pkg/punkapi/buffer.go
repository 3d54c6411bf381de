package punkapi

// Buffer is an append-only byte accumulator fed by streamed network data.
// Bytes already written are never modified and the length never shrinks.
type Buffer struct {
	data []byte
}

// Write appends p to the end of the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the accumulated contents. The caller must not modify them.
func (b *Buffer) Bytes() []byte { return b.data }

package particles

// Usage hints how often a buffer's contents change.
type Usage int

const (
	StaticDraw  Usage = iota // written once
	DynamicDraw              // frequent partial updates
)

// Buffer is the vertex buffer a Store writes into. The OpenGL backend
// implements it with glBufferData / glBufferSubData.
type Buffer interface {
	// Allocate reserves size bytes. Previous contents are discarded.
	Allocate(size int, usage Usage)
	// UpdateData overwrites len(data) bytes starting at offset. Implementations
	// copy data before returning; the caller reuses the slice.
	UpdateData(offset int, data []byte)
}

// MemoryBuffer is a Buffer backed by a byte slice.
type MemoryBuffer struct {
	data  []byte
	usage Usage
}

// NewMemoryBuffer returns an unallocated in-memory buffer.
func NewMemoryBuffer() *MemoryBuffer {
	return &MemoryBuffer{}
}

func (b *MemoryBuffer) Allocate(size int, usage Usage) {
	b.data = make([]byte, size)
	b.usage = usage
}

func (b *MemoryBuffer) UpdateData(offset int, data []byte) {
	copy(b.data[offset:offset+len(data)], data)
}

// Bytes returns the buffer contents. The slice aliases the buffer.
func (b *MemoryBuffer) Bytes() []byte { return b.data }

// Usage returns the hint passed to the last Allocate.
func (b *MemoryBuffer) Usage() Usage { return b.usage }

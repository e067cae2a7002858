package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-exercises/particles"
)

// VertexBuffer is a GL array buffer. It satisfies particles.Buffer: the store
// sizes it once and then rewrites single records in place.
type VertexBuffer struct {
	ID   uint32
	size int
}

func NewVertexBuffer() *VertexBuffer {
	b := &VertexBuffer{}
	gl.GenBuffers(1, &b.ID)
	return b
}

// Allocate reserves size bytes of uninitialized storage.
func (b *VertexBuffer) Allocate(size int, usage particles.Usage) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ID)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, glUsage(usage))
	b.size = size
}

// UpdateData overwrites len(data) bytes at offset. The driver copies data
// before returning.
func (b *VertexBuffer) UpdateData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ID)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
}

func (b *VertexBuffer) Size() int { return b.size }

func (b *VertexBuffer) Bind() { gl.BindBuffer(gl.ARRAY_BUFFER, b.ID) }

func (b *VertexBuffer) Delete() {
	if b.ID != 0 {
		gl.DeleteBuffers(1, &b.ID)
		b.ID = 0
	}
}

func glUsage(u particles.Usage) uint32 {
	switch u {
	case particles.StaticDraw:
		return gl.STATIC_DRAW
	default:
		return gl.DYNAMIC_DRAW
	}
}

// ── VertexArray ──────────────────────────────────────────────────────────────

// VertexArray records how attribute locations read from bound buffers.
type VertexArray struct {
	ID uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.ID)
	return va
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.ID) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

// SetLayout binds attribute i of layout to location i, reading buf with the
// layout's stride and offsets. Byte components are normalized to 0..1.
func (va *VertexArray) SetLayout(buf *VertexBuffer, layout particles.Layout) {
	stride := int32(layout.Stride())
	gl.BindVertexArray(va.ID)
	buf.Bind()
	for i, a := range layout {
		loc := uint32(i)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(a.Components), glType(a.Type),
			a.Type == particles.UnsignedByte, stride, gl.PtrOffset(layout.Offset(i)))
	}
	gl.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	if va.ID != 0 {
		gl.DeleteVertexArrays(1, &va.ID)
		va.ID = 0
	}
}

func glType(t particles.DataType) uint32 {
	switch t {
	case particles.UnsignedByte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/core"
	"render-exercises/scene"
)

// Mesh owns a vertex array, its vertex buffer and an optional index buffer.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	mode  uint32
	count int32
}

// NewQuad uploads q as location 0 = position(2), location 1 = uv(2).
func NewQuad(q scene.Quad) *Mesh {
	m := &Mesh{mode: gl.TRIANGLES, count: int32(len(q.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(q.Vertices)*4, gl.Ptr(&q.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(q.Indices)*4, gl.Ptr(&q.Indices[0]), gl.STATIC_DRAW)

	const stride = int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(8))

	gl.BindVertexArray(0)
	return m
}

// NewFan uploads a triangle fan of 2D points at location 0.
func NewFan(points []mgl32.Vec2) *Mesh {
	m := &Mesh{mode: gl.TRIANGLE_FAN, count: int32(len(points))}
	if len(points) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*8, gl.Ptr(&points[0][0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	return m
}

// NewIndexedMesh uploads core.Vertex data at locations 0..3 (position,
// normal, uv, color) with 32-bit indices.
func NewIndexedMesh(data core.MeshData) *Mesh {
	m := &Mesh{mode: gl.TRIANGLES, count: int32(len(data.Indices))}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		m.count = 0
		return m
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(stride), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Draw() {
	if m.vao == 0 || m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

package core

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved mesh vertex uploaded by the OpenGL backend.
// Field order is the attribute location order.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec4
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of indexed triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

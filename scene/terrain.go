package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/core"
)

// HeightFunc returns the terrain height at (x, z), both in [-0.5, 0.5].
type HeightFunc func(x, z float32) float32

// Flat is the zero height field.
func Flat(x, z float32) float32 { return 0 }

// Waves returns a rolling height field: amplitude·sin(fx)·cos(fz).
func Waves(amplitude, frequency float32) HeightFunc {
	return func(x, z float32) float32 {
		return amplitude * math32.Sin(x*frequency*2*math32.Pi) * math32.Cos(z*frequency*2*math32.Pi)
	}
}

// Height band colors, lowest first.
var (
	waterColor = mgl32.Vec4{0.15, 0.35, 0.75, 1}
	grassColor = mgl32.Vec4{0.25, 0.6, 0.2, 1}
	rockColor  = mgl32.Vec4{0.45, 0.4, 0.35, 1}
	snowColor  = mgl32.Vec4{0.95, 0.95, 0.97, 1}
)

// BandColor colors a vertex by its height.
func BandColor(h float32) mgl32.Vec4 {
	switch {
	case h < 0:
		return waterColor
	case h < 0.05:
		return grassColor
	case h < 0.1:
		return rockColor
	default:
		return snowColor
	}
}

// Terrain is a gridX × gridY cell grid in the XZ plane spanning [-0.5, 0.5].
type Terrain struct {
	GridX, GridY int
	Mesh         core.MeshData
}

// NewTerrain builds the grid mesh. Texture coordinates count cells so a
// texture repeats once per cell; normals come from central differences of
// the height field. A nil height is Flat.
//
// Cell (i, j) is split along its diagonal into two counter-clockwise
// triangles seen from +Y.
func NewTerrain(gridX, gridY int, height HeightFunc) *Terrain {
	if gridX < 1 {
		gridX = 1
	}
	if gridY < 1 {
		gridY = 1
	}
	if height == nil {
		height = Flat
	}

	cols, rows := gridX+1, gridY+1
	stepX := 1 / float32(gridX)
	stepZ := 1 / float32(gridY)

	heights := make([]float32, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			heights[j*cols+i] = height(float32(i)*stepX-0.5, float32(j)*stepZ-0.5)
		}
	}
	at := func(i, j int) float32 { return heights[j*cols+i] }

	vertices := make([]core.Vertex, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			h := at(i, j)
			// One-sided at the borders.
			i0, i1 := max(i-1, 0), min(i+1, cols-1)
			j0, j1 := max(j-1, 0), min(j+1, rows-1)
			dx := (at(i1, j) - at(i0, j)) / (float32(i1-i0) * stepX)
			dz := (at(i, j1) - at(i, j0)) / (float32(j1-j0) * stepZ)
			vertices = append(vertices, core.Vertex{
				Position: mgl32.Vec3{float32(i)*stepX - 0.5, h, float32(j)*stepZ - 0.5},
				Normal:   mgl32.Vec3{-dx, 1, -dz}.Normalize(),
				UV:       mgl32.Vec2{float32(i), float32(j)},
				Color:    BandColor(h),
			})
		}
	}

	indices := make([]uint32, 0, 6*gridX*gridY)
	for j := 0; j < gridY; j++ {
		for i := 0; i < gridX; i++ {
			v00 := uint32(j*cols + i)
			v10 := v00 + 1
			v01 := v00 + uint32(cols)
			v11 := v01 + 1
			indices = append(indices, v00, v01, v11, v00, v11, v10)
		}
	}

	return &Terrain{
		GridX: gridX,
		GridY: gridY,
		Mesh:  core.MeshData{Vertices: vertices, Indices: indices},
	}
}

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// StencilFunc is the comparison a fragment's stencil value is tested with.
type StencilFunc int

const (
	StencilAlways StencilFunc = iota
	StencilEqual
	StencilNotEqual
)

// StencilOp is what happens to the stencil value when both tests pass.
type StencilOp int

const (
	StencilKeep StencilOp = iota
	StencilReplace
)

// DrawTarget names what a compositing step draws.
type DrawTarget int

const (
	DrawPortalMask DrawTarget = iota
	DrawPortal
	DrawBackground
	DrawParticles
)

// CompositeStep is one pass of the portal frame: a render state and a draw.
type CompositeStep struct {
	Name        string
	ColorWrite  bool
	DepthWrite  bool
	StencilTest bool
	Func        StencilFunc
	Ref         int
	Mask        uint32
	Pass        StencilOp
	Draw        DrawTarget
}

// PortalComposite returns the passes of a portal frame in order: write the
// circle into the stencil only, draw the portal image where the stencil is
// set, draw the main background everywhere else, then draw the particles on
// top with stencil testing off.
func PortalComposite() []CompositeStep {
	return []CompositeStep{
		{
			Name:        "mask",
			StencilTest: true,
			Func:        StencilAlways,
			Ref:         1,
			Mask:        0xFF,
			Pass:        StencilReplace,
			Draw:        DrawPortalMask,
		},
		{
			Name:        "portal",
			ColorWrite:  true,
			DepthWrite:  true,
			StencilTest: true,
			Func:        StencilEqual,
			Ref:         1,
			Mask:        0xFF,
			Pass:        StencilKeep,
			Draw:        DrawPortal,
		},
		{
			Name:        "background",
			ColorWrite:  true,
			DepthWrite:  true,
			StencilTest: true,
			Func:        StencilNotEqual,
			Ref:         1,
			Mask:        0xFF,
			Pass:        StencilKeep,
			Draw:        DrawBackground,
		},
		{
			Name:       "particles",
			ColorWrite: true,
			DepthWrite: true,
			Draw:       DrawParticles,
		},
	}
}

// PlainComposite is the frame without a portal: the main background, then
// the particles, with no stencil work.
func PlainComposite() []CompositeStep {
	return []CompositeStep{
		{Name: "background", ColorWrite: true, DepthWrite: true, Draw: DrawBackground},
		{Name: "particles", ColorWrite: true, DepthWrite: true, Draw: DrawParticles},
	}
}

// CircleFan returns the vertices of a triangle fan covering a circle: the
// center followed by segments+1 rim points, the last repeating the first.
func CircleFan(center mgl32.Vec2, radius float32, segments int) []mgl32.Vec2 {
	if segments < 3 {
		segments = 3
	}
	verts := make([]mgl32.Vec2, 0, segments+2)
	verts = append(verts, center)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		verts = append(verts, center.Add(mgl32.Vec2{math32.Cos(a), math32.Sin(a)}.Mul(radius)))
	}
	return verts
}

// Quad is an indexed textured rectangle: four (x, y, u, v) vertices and two triangles.
type Quad struct {
	Vertices [16]float32
	Indices  [6]uint32
}

// InsetQuad returns a screen-aligned quad spanning [-half, half] in both axes
// with texture coordinates covering the full image.
func InsetQuad(half float32) Quad {
	return Quad{
		Vertices: [16]float32{
			-half, half, 0, 1,
			-half, -half, 0, 0,
			half, -half, 1, 0,
			half, half, 1, 1,
		},
		Indices: [6]uint32{0, 1, 2, 2, 3, 0},
	}
}

// FullscreenQuad covers the whole viewport.
func FullscreenQuad() Quad { return InsetQuad(1) }

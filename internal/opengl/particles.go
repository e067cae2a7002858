package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-exercises/particles"
)

// ── ParticleRenderer ─────────────────────────────────────────────────────────

// ParticleRenderer owns the GPU side of a particle store: the vertex buffer the
// store writes into, the vertex array describing its layout, and the sprite
// program. Records are drawn as point sprites; motion and fading are computed
// in the vertex shader from birth time and velocity.
type ParticleRenderer struct {
	Store *particles.Store

	prog   *Program
	buffer *VertexBuffer
	vao    *VertexArray
}

// NewParticleRenderer allocates capacity records of layout on the GPU and
// wires them to prog.
func NewParticleRenderer(prog *Program, layout particles.Layout, capacity int) *ParticleRenderer {
	buf := NewVertexBuffer()
	store := particles.NewStore(buf, layout, capacity)

	vao := NewVertexArray()
	vao.SetLayout(buf, layout)

	return &ParticleRenderer{
		Store:  store,
		prog:   prog,
		buffer: buf,
		vao:    vao,
	}
}

// Draw renders the written slots with additive blending at currentTime.
// Depth is tested but not written so sprites never occlude each other.
func (pr *ParticleRenderer) Draw(currentTime, gravity float32) {
	count := pr.Store.DrawCount()
	if count == 0 || !pr.prog.Valid() {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	pr.prog.Use()
	pr.prog.SetFloat("CurrentTime", currentTime)
	pr.prog.SetFloat("Gravity", gravity)

	pr.vao.Bind()
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	pr.vao.Unbind()

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (pr *ParticleRenderer) Delete() {
	pr.vao.Delete()
	pr.buffer.Delete()
}

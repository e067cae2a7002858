package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-exercises/scene"
)

// ApplyStep sets the color, depth and stencil state of one compositing pass.
func ApplyStep(step scene.CompositeStep) {
	gl.ColorMask(step.ColorWrite, step.ColorWrite, step.ColorWrite, step.ColorWrite)
	gl.DepthMask(step.DepthWrite)

	if !step.StencilTest {
		gl.Disable(gl.STENCIL_TEST)
		return
	}
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(stencilFunc(step.Func), int32(step.Ref), step.Mask)
	gl.StencilOp(gl.KEEP, gl.KEEP, stencilOp(step.Pass))
	if step.Pass == scene.StencilReplace {
		gl.StencilMask(0xFF)
	} else {
		gl.StencilMask(0x00)
	}
}

// ResetComposite restores the default write masks and disables stenciling.
func ResetComposite() {
	gl.ColorMask(true, true, true, true)
	gl.DepthMask(true)
	gl.StencilMask(0xFF)
	gl.Disable(gl.STENCIL_TEST)
}

func stencilFunc(f scene.StencilFunc) uint32 {
	switch f {
	case scene.StencilEqual:
		return gl.EQUAL
	case scene.StencilNotEqual:
		return gl.NOTEQUAL
	default:
		return gl.ALWAYS
	}
}

func stencilOp(op scene.StencilOp) uint32 {
	if op == scene.StencilReplace {
		return gl.REPLACE
	}
	return gl.KEEP
}

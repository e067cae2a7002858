package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/core"
	"render-exercises/platform"
)

// Pointer is the mouse in normalized device coordinates (y up) and the state
// of the left button.
type Pointer struct {
	Position mgl32.Vec2
	Held     bool
}

// Sample reads the cursor and left button from w.
func (p *Pointer) Sample(w *platform.Window) {
	x, y := w.GetCursorPos()
	p.Position = core.ToNDC(x, y, w.Width, w.Height)
	p.Held = w.IsMouseButtonPressed(platform.MouseButtonLeft)
}

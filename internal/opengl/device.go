// Package opengl is the OpenGL 4.1 core backend of the exercises. Every
// function here must run on the thread that owns the current context.
package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device is the initialized GL function table plus the frame-level state the
// exercises touch: viewport, clear and error reporting.
type Device struct {
	Version  string
	Renderer string

	logger    *slog.Logger
	viewportW int32
	viewportH int32
}

// NewDevice loads the GL entry points. The window context must be current.
func NewDevice(logger *slog.Logger) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		logger:   logger,
	}
	logger.Info("opengl ready", "version", d.Version, "renderer", d.Renderer)

	// Particle sprites size themselves in the vertex shader.
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return d, nil
}

// ── Viewport ──────────────────────────────────────────────────────────────────

func (d *Device) SetViewport(width, height int) {
	d.viewportW = int32(width)
	d.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Viewport() (int, int) {
	return int(d.viewportW), int(d.viewportH)
}

// ── Frame ─────────────────────────────────────────────────────────────────────

// Clear resets color, depth and stencil. Writes are re-enabled first so a
// previous frame's masks cannot leave stale buffers behind.
func (d *Device) Clear(color mgl32.Vec4) {
	gl.ColorMask(true, true, true, true)
	gl.DepthMask(true)
	gl.StencilMask(0xFF)
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.ClearStencil(0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// CheckError logs and returns the pending GL error, if any.
func (d *Device) CheckError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	err := fmt.Errorf("%s: gl error 0x%x", op, code)
	d.logger.Error("opengl", "op", op, "code", fmt.Sprintf("0x%x", code))
	return err
}

func (d *Device) Logger() *slog.Logger { return d.logger }

package opengl

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"render-exercises/platform"
)

// ImGui binds an imgui-go context to a window. It feeds window size, time
// and mouse state in NewFrame and draws the result in Render. Its widget
// methods satisfy ui.Widgets.
type ImGui struct {
	context  *imgui.Context
	io       imgui.IO
	renderer *ImGuiRenderer
	window   *platform.Window
}

// NewImGui creates the ImGui context and its GL renderer. The window context
// must be current.
func NewImGui(window *platform.Window) (*ImGui, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	imgui.StyleColorsDark()

	renderer, err := NewImGuiRenderer(io)
	if err != nil {
		context.Destroy()
		return nil, fmt.Errorf("imgui renderer: %w", err)
	}
	return &ImGui{
		context:  context,
		io:       io,
		renderer: renderer,
		window:   window,
	}, nil
}

// NewFrame starts a UI frame dt seconds after the previous one.
func (g *ImGui) NewFrame(dt float32) {
	g.io.SetDisplaySize(imgui.Vec2{X: float32(g.window.Width), Y: float32(g.window.Height)})
	if dt <= 0 {
		dt = 1.0 / 60
	}
	g.io.SetDeltaTime(dt)

	x, y := g.window.GetCursorPos()
	g.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	g.io.SetMouseButtonDown(0, g.window.IsMouseButtonPressed(platform.MouseButtonLeft))
	g.io.SetMouseButtonDown(1, g.window.IsMouseButtonPressed(platform.MouseButtonRight))
	g.io.SetMouseButtonDown(2, g.window.IsMouseButtonPressed(platform.MouseButtonMiddle))

	imgui.NewFrame()
}

// Render finishes the frame and draws it over whatever is in the framebuffer.
func (g *ImGui) Render() {
	imgui.Render()
	fbW, fbH := g.window.GetFramebufferSize()
	g.renderer.Render(
		[2]float32{float32(g.window.Width), float32(g.window.Height)},
		[2]float32{float32(fbW), float32(fbH)},
		imgui.RenderedDrawData(),
	)
}

// WantsMouse reports whether the pointer is over a UI element, in which case
// clicks belong to the UI rather than the scene.
func (g *ImGui) WantsMouse() bool { return g.io.WantCaptureMouse() }

func (g *ImGui) Destroy() {
	g.renderer.Delete()
	g.context.Destroy()
}

// ── Widgets ──────────────────────────────────────────────────────────────────

func (g *ImGui) Begin(title string) bool { return imgui.Begin(title) }
func (g *ImGui) End()                    { imgui.End() }
func (g *ImGui) Text(text string)        { imgui.Text(text) }
func (g *ImGui) Button(label string) bool {
	return imgui.Button(label)
}

func (g *ImGui) Checkbox(label string, value *bool) bool {
	return imgui.Checkbox(label, value)
}

func (g *ImGui) ColorEdit3(label string, color *[3]float32) bool {
	return imgui.ColorEdit3(label, color)
}

func (g *ImGui) SameLine() { imgui.SameLine() }

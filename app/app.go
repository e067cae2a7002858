// Package app runs an exercise: it owns the window and the frame loop and
// hands every callback a Context instead of sharing package state.
package app

import (
	"fmt"
	"log/slog"

	"render-exercises/config"
	"render-exercises/core"
	"render-exercises/internal/opengl"
	"render-exercises/platform"
)

// Application is one exercise. Initialize creates every GPU resource the
// exercise needs; Cleanup releases them. Update runs before Render each frame.
type Application interface {
	Initialize(ctx *Context) error
	Update(ctx *Context)
	Render(ctx *Context)
	Cleanup(ctx *Context)
}

// Context is the state shared by an application's callbacks.
type Context struct {
	Window  *platform.Window
	Device  *opengl.Device
	Config  config.Config
	Logger  *slog.Logger
	Clock   core.Clock
	Pointer Pointer

	quit bool
}

// CurrentTime is seconds since the loop started.
func (c *Context) CurrentTime() float32 { return c.Clock.Current() }

// DeltaTime is seconds since the previous frame.
func (c *Context) DeltaTime() float32 { return c.Clock.Delta() }

// Quit ends the loop after the current frame.
func (c *Context) Quit() { c.quit = true }

// Run opens the window, drives a until the window closes, Escape is pressed
// or a calls Quit, then cleans up.
func Run(cfg config.Config, logger *slog.Logger, a Application) error {
	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	device, err := opengl.NewDevice(logger)
	if err != nil {
		return err
	}

	ctx := &Context{
		Window: window,
		Device: device,
		Config: cfg,
		Logger: logger,
		Clock:  core.NewClock(window.Time()),
	}
	ctx.Pointer.Sample(window)

	if err := a.Initialize(ctx); err != nil {
		a.Cleanup(ctx)
		return fmt.Errorf("initialize: %w", err)
	}
	logger.Info("running", "title", cfg.Window.Title)

	for !window.ShouldClose() && !ctx.quit {
		window.PollEvents()
		if window.IsKeyPressed(platform.KeyEscape) {
			break
		}
		ctx.Clock.Tick(window.Time())
		ctx.Pointer.Sample(window)

		w, h := window.GetFramebufferSize()
		device.SetViewport(w, h)

		a.Update(ctx)
		a.Render(ctx)
		window.SwapBuffers()
	}

	a.Cleanup(ctx)
	logger.Info("exiting", "frames", ctx.Clock.Frames())
	return nil
}

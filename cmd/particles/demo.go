package main

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/app"
	"render-exercises/internal/opengl"
	"render-exercises/particles"
	"render-exercises/scene"
	"render-exercises/ui"
)

// portalDemo owns every resource of the demo. All of them are created in
// Initialize and released in Cleanup.
type portalDemo struct {
	renderer *opengl.ParticleRenderer
	ring     *particles.RingEmitter
	pointer  *particles.PointerEmitter
	rng      *particles.Random
	tint     particles.Tint

	backgroundProg *opengl.Program
	portalProg     *opengl.Program
	stencilProg    *opengl.Program
	particleProg   *opengl.Program

	fullscreen *opengl.Mesh
	inset      *opengl.Mesh
	circle     *opengl.Mesh
	textures   map[scene.Background]*scene.Texture
	steps      []scene.CompositeStep

	gui   *opengl.ImGui
	panel *ui.Panel
	sel   ui.Selection
}

func newPortalDemo() *portalDemo {
	return &portalDemo{
		textures: make(map[scene.Background]*scene.Texture),
		panel:    ui.NewPanel(),
	}
}

// ── Initialize ────────────────────────────────────────────────────────────────

func (d *portalDemo) Initialize(ctx *app.Context) error {
	cfg := ctx.Config
	log := ctx.Logger

	layout, err := particles.LayoutByName(cfg.Particles.Layout)
	if err != nil {
		return err
	}

	shader := func(name string) *opengl.Program {
		dir := cfg.Assets.ShaderDir
		return opengl.LoadProgram(log, filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag"))
	}
	d.particleProg = shader("particles")
	d.backgroundProg = shader("background")
	d.portalProg = shader("portal")
	d.stencilProg = shader("stencil")

	d.renderer = opengl.NewParticleRenderer(d.particleProg, layout, cfg.Particles.Capacity)
	log.Info("particle store",
		"capacity", cfg.Particles.Capacity,
		"layout", cfg.Particles.Layout,
		"stride", layout.Stride())

	d.rng = particles.NewRandom(cfg.Particles.Seed)
	d.ring = particles.NewRingEmitter(cfg.Particles.Ring.Radius)
	d.ring.Count = cfg.Particles.Ring.Count
	d.ring.AngularSpeed = mgl32.DegToRad(cfg.Particles.Ring.AngularSpeedDeg)
	d.pointer = particles.NewPointerEmitter(ctx.Pointer.Position)

	for _, b := range scene.AllBackgrounds() {
		d.textures[b] = loadBackground(ctx, b)
	}

	d.steps = scene.PlainComposite()
	if cfg.Portal.Enabled {
		d.steps = scene.PortalComposite()
	}
	d.fullscreen = opengl.NewQuad(scene.FullscreenQuad())
	d.inset = opengl.NewQuad(scene.InsetQuad(cfg.Portal.Inset))
	d.circle = opengl.NewFan(scene.CircleFan(mgl32.Vec2{}, cfg.Particles.Ring.Radius, cfg.Portal.Segments))

	d.sel = ui.Selection{
		Background: cfg.Portal.Background,
		Portal:     cfg.Portal.View,
		Tint:       cfg.Portal.Tint,
		UseTint:    cfg.Portal.UseTint,
	}

	gui, err := opengl.NewImGui(ctx.Window)
	if err != nil {
		log.Error("ui disabled", "err", err)
	} else {
		d.gui = gui
	}
	return ctx.Device.CheckError("initialize")
}

// loadBackground reads the image of b. A missing or unreadable file is
// logged and replaced by a flat color so the demo keeps running.
func loadBackground(ctx *app.Context, b scene.Background) *scene.Texture {
	path := filepath.Join(ctx.Config.Assets.ImageDir, b.File())
	tex, err := scene.LoadTexture(path)
	if err != nil {
		ctx.Logger.Warn("background image", "background", b, "err", err)
		tex = fallbackTexture(b)
	}
	if err := opengl.UploadTexture(tex, opengl.WrapClamp); err != nil {
		ctx.Logger.Error("background upload", "background", b, "err", err)
	}
	return tex
}

func fallbackTexture(b scene.Background) *scene.Texture {
	switch b {
	case scene.Forest:
		return scene.NewSolidTexture(b.String(), 24, 72, 32, 255)
	case scene.Scary:
		return scene.NewSolidTexture(b.String(), 64, 8, 24, 255)
	default:
		return scene.NewSolidTexture(b.String(), 90, 80, 70, 255)
	}
}

// ── Update ────────────────────────────────────────────────────────────────────

func (d *portalDemo) Update(ctx *app.Context) {
	now, dt := ctx.CurrentTime(), ctx.DeltaTime()
	store := d.renderer.Store
	colors := d.colors()

	if ctx.Config.Particles.Ring.Enabled {
		d.ring.Colors = colors
		d.ring.Advance(dt)
		d.ring.Emit(store, now, d.rng)
	}

	if ctx.Config.Particles.Pointer.Enabled {
		held := ctx.Pointer.Held && (d.gui == nil || !d.gui.WantsMouse())
		d.pointer.Colors = colors
		if d.pointer.Update(store, ctx.Pointer.Position, held, now, dt, d.rng) {
			ctx.Logger.Debug("pointer emit", "slot", store.NewestSlot(), "position", ctx.Pointer.Position)
		}
	}
}

func (d *portalDemo) colors() particles.ColorSource {
	if !d.sel.UseTint {
		return particles.RandomColor{}
	}
	d.tint.RGB = mgl32.Vec3(d.sel.Tint)
	return &d.tint
}

// ── Render ────────────────────────────────────────────────────────────────────

func (d *portalDemo) Render(ctx *app.Context) {
	ctx.Device.Clear(mgl32.Vec4{0, 0, 0, 1})

	for _, step := range d.steps {
		opengl.ApplyStep(step)
		d.draw(ctx, step.Draw)
	}
	opengl.ResetComposite()

	if d.gui != nil {
		d.gui.NewFrame(ctx.DeltaTime())
		if d.panel.Draw(d.gui, &d.sel) {
			ctx.Logger.Info("selection",
				"background", d.sel.Background,
				"portal", d.sel.Portal,
				"tint", d.sel.UseTint)
		}
		d.gui.Render()
	}
}

func (d *portalDemo) draw(ctx *app.Context, target scene.DrawTarget) {
	switch target {
	case scene.DrawPortalMask:
		d.stencilProg.Use()
		d.circle.Draw()
	case scene.DrawPortal:
		d.portalProg.Use()
		d.portalProg.SetInt("BackgroundTexture", 0)
		d.portalProg.SetVec2("Center", mgl32.Vec2{})
		d.portalProg.SetFloat("Radius", ctx.Config.Particles.Ring.Radius)
		opengl.BindTexture(d.textures[d.sel.Portal], 0)
		d.inset.Draw()
	case scene.DrawBackground:
		d.backgroundProg.Use()
		d.backgroundProg.SetInt("BackgroundTexture", 0)
		opengl.BindTexture(d.textures[d.sel.Background], 0)
		d.fullscreen.Draw()
	case scene.DrawParticles:
		opengl.BindTexture(nil, 0)
		d.renderer.Draw(ctx.CurrentTime(), ctx.Config.Particles.Gravity)
	}
}

// ── Cleanup ───────────────────────────────────────────────────────────────────

func (d *portalDemo) Cleanup(ctx *app.Context) {
	if d.gui != nil {
		d.gui.Destroy()
	}
	for _, m := range []*opengl.Mesh{d.fullscreen, d.inset, d.circle} {
		if m != nil {
			m.Delete()
		}
	}
	for _, tex := range d.textures {
		opengl.DeleteTexture(tex)
	}
	if d.renderer != nil {
		d.renderer.Delete()
	}
	for _, p := range []*opengl.Program{d.particleProg, d.backgroundProg, d.portalProg, d.stencilProg} {
		if p != nil {
			p.Delete()
		}
	}
	ctx.Logger.Debug("portal demo released", "written", d.writeCount())
}

func (d *portalDemo) writeCount() uint64 {
	if d.renderer == nil {
		return 0
	}
	return d.renderer.Store.WriteCount()
}

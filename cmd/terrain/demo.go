package main

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/app"
	"render-exercises/internal/opengl"
	"render-exercises/platform"
	"render-exercises/scene"
)

const (
	// orbitSpeed is the camera rotation per second while an arrow key is held.
	orbitSpeed = 1.2
	zoomStep   = 0.1
)

type terrainDemo struct {
	prog     *opengl.Program
	texture  *scene.Texture
	renderer *opengl.TerrainRenderer
	camera   *scene.OrbitCamera
}

func (d *terrainDemo) Initialize(ctx *app.Context) error {
	cfg := ctx.Config
	dir := cfg.Assets.ShaderDir
	d.prog = opengl.LoadProgram(ctx.Logger, filepath.Join(dir, "terrain.vert"), filepath.Join(dir, "terrain.frag"))

	if cfg.Terrain.Texture != "" {
		path := filepath.Join(cfg.Assets.ImageDir, cfg.Terrain.Texture)
		tex, err := scene.LoadTexture(path)
		if err != nil {
			ctx.Logger.Warn("terrain texture", "err", err)
		} else if err := opengl.UploadTexture(tex, opengl.WrapRepeat); err != nil {
			ctx.Logger.Error("terrain texture upload", "err", err)
		} else {
			d.texture = tex
		}
	}

	t := buildTerrain(cfg.Terrain)
	d.renderer = opengl.NewTerrainRenderer(d.prog, t, d.texture)
	ctx.Logger.Info("terrain", "grid_x", t.GridX, "grid_y", t.GridY, "triangles", t.Mesh.TriangleCount())

	d.camera = scene.NewOrbitCamera(mgl32.Vec3{}, 1.5, mgl32.DegToRad(45),
		float32(cfg.Window.Width)/float32(cfg.Window.Height))
	ctx.Window.SetScrollCallback(func(_, yoff float64) {
		d.camera.Zoom(-float32(yoff) * zoomStep * d.camera.Distance)
	})
	return ctx.Device.CheckError("initialize")
}

func (d *terrainDemo) Update(ctx *app.Context) {
	dt := ctx.DeltaTime()
	w := ctx.Window

	var yaw, pitch float32
	if w.IsKeyPressed(platform.KeyLeft) || w.IsKeyPressed(platform.KeyA) {
		yaw -= orbitSpeed * dt
	}
	if w.IsKeyPressed(platform.KeyRight) || w.IsKeyPressed(platform.KeyD) {
		yaw += orbitSpeed * dt
	}
	if w.IsKeyPressed(platform.KeyUp) || w.IsKeyPressed(platform.KeyW) {
		pitch += orbitSpeed * dt
	}
	if w.IsKeyPressed(platform.KeyDown) || w.IsKeyPressed(platform.KeyS) {
		pitch -= orbitSpeed * dt
	}
	if yaw != 0 || pitch != 0 {
		d.camera.Orbit(yaw, pitch)
	}
	if w.IsKeyPressed(platform.KeyR) {
		d.camera.Yaw, d.camera.Pitch = 0, 0.3
		d.camera.Orbit(0, 0)
	}

	fbW, fbH := ctx.Device.Viewport()
	d.camera.UpdateAspectRatio(float32(fbW), float32(fbH))
}

func (d *terrainDemo) Render(ctx *app.Context) {
	ctx.Device.Clear(mgl32.Vec4{0.45, 0.6, 0.8, 1})
	d.renderer.Draw(mgl32.Ident4(), d.camera.ViewProjection(), mgl32.Vec3{-0.4, -1, -0.3})
}

func (d *terrainDemo) Cleanup(ctx *app.Context) {
	if d.renderer != nil {
		d.renderer.Delete()
	}
	opengl.DeleteTexture(d.texture)
	if d.prog != nil {
		d.prog.Delete()
	}
}

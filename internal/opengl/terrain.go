package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"render-exercises/scene"
)

// TerrainRenderer draws an uploaded terrain grid with an optional tiled texture.
type TerrainRenderer struct {
	prog    *Program
	mesh    *Mesh
	texture *scene.Texture
}

// NewTerrainRenderer uploads t. texture may be nil, in which case the shader
// falls back to the per-vertex height band colors.
func NewTerrainRenderer(prog *Program, t *scene.Terrain, texture *scene.Texture) *TerrainRenderer {
	return &TerrainRenderer{
		prog:    prog,
		mesh:    NewIndexedMesh(t.Mesh),
		texture: texture,
	}
}

// Draw renders the grid with the given world and view-projection matrices,
// lit by a single directional light.
func (tr *TerrainRenderer) Draw(world, viewProjection mgl32.Mat4, lightDir mgl32.Vec3) {
	if !tr.prog.Valid() {
		return
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	tr.prog.Use()
	tr.prog.SetMat4("WorldMatrix", world)
	tr.prog.SetMat4("ViewProjMatrix", viewProjection)
	tr.prog.SetVec3("LightDirection", lightDir.Normalize())

	hasTexture := tr.texture != nil && tr.texture.GLID != 0
	tr.prog.SetBool("HasTexture", hasTexture)
	if hasTexture {
		BindTexture(tr.texture, 0)
		tr.prog.SetInt("ColorTexture", 0)
	}
	tr.mesh.Draw()
}

func (tr *TerrainRenderer) Delete() {
	tr.mesh.Delete()
}

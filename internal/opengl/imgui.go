package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// ── ImGui shaders ────────────────────────────────────────────────────────────

const imguiVertSrc = `
#version 410 core
layout(location = 0) in vec2 Position;
layout(location = 1) in vec2 UV;
layout(location = 2) in vec4 Color;

uniform mat4 ProjMtx;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"

const imguiFragSrc = `
#version 410 core
in vec2 Frag_UV;
in vec4 Frag_Color;

uniform sampler2D Texture;

out vec4 Out_Color;

void main() {
    Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
` + "\x00"

// ── ImGuiRenderer ────────────────────────────────────────────────────────────

// ImGuiRenderer turns ImGui draw lists into GL draw calls. It owns the font
// atlas texture of the current ImGui context.
type ImGuiRenderer struct {
	prog        uint32
	projLoc     int32
	texLoc      int32
	vao         uint32
	vbo         uint32
	ebo         uint32
	fontTexture uint32
}

// NewImGuiRenderer compiles the UI program and uploads the font atlas of io.
func NewImGuiRenderer(io imgui.IO) (*ImGuiRenderer, error) {
	prog, err := newProgram(imguiVertSrc, imguiFragSrc)
	if err != nil {
		return nil, fmt.Errorf("imgui shader: %w", err)
	}

	r := &ImGuiRenderer{
		prog:    prog,
		projLoc: gl.GetUniformLocation(prog, gl.Str("ProjMtx\x00")),
		texLoc:  gl.GetUniformLocation(prog, gl.Str("Texture\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(posOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(uvOffset))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(colOffset))
	gl.BindVertexArray(0)

	r.createFontTexture(io)
	return r, nil
}

func (r *ImGuiRenderer) createFontTexture(io imgui.IO) {
	image := io.Fonts().TextureDataRGBA32()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
}

// Render draws drawData. displaySize is in window coordinates and
// framebufferSize in pixels; they differ on high-DPI displays.
func (r *ImGuiRenderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayW, displayH := displaySize[0], displaySize[1]
	fbW, fbH := framebufferSize[0], framebufferSize[1]
	if fbW <= 0 || fbH <= 0 || displayW <= 0 || displayH <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbW / displayW, Y: fbH / displayH})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.STENCIL_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.ColorMask(true, true, true, true)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	ortho := [4][4]float32{
		{2 / displayW, 0, 0, 0},
		{0, 2 / -displayH, 0, 0},
		{0, 0, -1, 0},
		{-1, 1, 0, 1},
	}
	gl.UseProgram(r.prog)
	gl.Uniform1i(r.texLoc, 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &ortho[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		indexOffset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), int32(fbH)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, gl.PtrOffset(indexOffset))
			}
			indexOffset += cmd.ElementCount() * indexSize
		}
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
}

func (r *ImGuiRenderer) Delete() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		imgui.CurrentIO().Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
	gl.DeleteProgram(r.prog)
}

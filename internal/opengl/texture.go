package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-exercises/scene"
)

// Wrap is the texture coordinate wrap mode applied on both axes.
type Wrap int32

const (
	WrapClamp Wrap = gl.CLAMP_TO_EDGE
	// Terrain tiles its texture once per grid cell.
	WrapRepeat Wrap = gl.REPEAT
)

// UploadTexture uploads a scene.Texture with mipmaps and sets its GLID field.
func UploadTexture(tex *scene.Texture, wrap Wrap) error {
	if tex == nil {
		return fmt.Errorf("nil texture")
	}
	if len(tex.Pixels) == 0 {
		return fmt.Errorf("texture %q has no pixel data", tex.Name)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(tex.Width),
		int32(tex.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.GLID = id
	return nil
}

// BindTexture binds tex to texture unit unit. A nil or unuploaded texture
// unbinds the unit.
func BindTexture(tex *scene.Texture, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if tex == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
}

// DeleteTexture frees a previously uploaded GPU texture and zeroes its GLID.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}

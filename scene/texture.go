package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format, row-major, bottom row first (OpenGL's origin).
	Pixels []byte
	GLID   uint32
}

// LoadTexture reads a PNG, JPEG, BMP or WebP file and returns it as bottom-up RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return NewTextureFromImage(path, img), nil
}

// NewTextureFromImage converts img to RGBA8 and flips it vertically.
func NewTextureFromImage(name string, img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipRows(rgba.Pix, rgba.Stride, b.Dy())
	return &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: rgba.Pix,
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

func flipRows(pix []byte, stride, rows int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}

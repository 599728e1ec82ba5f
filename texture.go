package gocaster

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/mathgl/mgl64"
)

// Texture holds decoded RGBA pixel data. Textures are loaded once at
// scene-build time and never mutated, so a *Texture is a shareable
// handle: any number of tiles may sample the same one.
type Texture struct {
	width  int
	height int
	pix    []byte
}

// LoadTexture reads and decodes an image file (PNG or JPEG). A missing
// or undecodable file is a startup error; there is no fallback texture.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return NewTextureFromImage(img), nil
}

// NewTextureFromImage converts any decoded image to RGBA texture data.
func NewTextureFromImage(img image.Image) *Texture {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	b := rgba.Bounds()
	return &Texture{width: b.Dx(), height: b.Dy(), pix: rgba.Pix}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Sample returns the texel at the normalized surface coordinate.
// Coordinates are clamped, so sampling exactly at 1.0 stays in bounds.
func (t *Texture) Sample(pos mgl64.Vec2) Color {
	xi := int(pos.X() * float64(t.width))
	yi := int(pos.Y() * float64(t.height))
	xi = clampInt(xi, 0, t.width-1)
	yi = clampInt(yi, 0, t.height-1)

	i := (yi*t.width + xi) * 4
	return Color{
		R: float64(t.pix[i]) / 255,
		G: float64(t.pix[i+1]) / 255,
		B: float64(t.pix[i+2]) / 255,
		A: float64(t.pix[i+3]) / 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package gocaster

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// Color is a linear RGBA sample with components in [0,1]. Inside the
// renderer's accumulator A is reused as the remaining (unabsorbed) alpha.
type Color struct {
	R, G, B, A float64
}

// RGBA builds an opaque-by-default color.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Surface maps a 2D surface coordinate to a color sample. A wall surface
// is sampled with (u, v) across the face; floor and ceiling surfaces are
// sampled with the position inside the tile. Surfaces are immutable once
// built and may be shared between tiles.
type Surface interface {
	Sample(pos mgl64.Vec2) Color
}

// Solid is a single color everywhere.
type Solid struct {
	Color Color
}

func (s Solid) Sample(pos mgl64.Vec2) Color {
	return s.Color
}

// UVPattern visualizes the sampling coordinates directly: red follows u,
// green follows v. Useful as a placeholder and in tests.
type UVPattern struct{}

func (UVPattern) Sample(pos mgl64.Vec2) Color {
	return Color{R: pos.X(), G: pos.Y(), A: 1}
}

// WindowPattern is a white surface with a translucent blue pane in the
// middle, for exercising alpha blending.
type WindowPattern struct{}

func (WindowPattern) Sample(pos mgl64.Vec2) Color {
	if pos.X() > 0.2 && pos.X() < 0.8 && pos.Y() > 0.2 && pos.Y() < 0.8 {
		return Color{R: 0.5, G: 0.5, B: 1, A: 0.3}
	}
	return Color{R: 1, G: 1, B: 1, A: 1}
}

// NoisePattern mixes two colors by Perlin noise. The same seed always
// produces the same pattern, so tiles sharing a NoisePattern line up.
type NoisePattern struct {
	noise *perlin.Perlin
	scale float64
	base  Color
	tint  Color
}

// NewNoisePattern builds a noise surface. scale stretches the noise
// across the surface; larger values give finer grain.
func NewNoisePattern(seed int64, scale float64, base, tint Color) *NoisePattern {
	return &NoisePattern{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: scale,
		base:  base,
		tint:  tint,
	}
}

func (n *NoisePattern) Sample(pos mgl64.Vec2) Color {
	// Noise2D is roughly [-1,1]; remap to a [0,1] mixing weight.
	w := (n.noise.Noise2D(pos.X()*n.scale, pos.Y()*n.scale) + 1) / 2
	if w < 0 {
		w = 0
	} else if w > 1 {
		w = 1
	}
	return Color{
		R: n.base.R + (n.tint.R-n.base.R)*w,
		G: n.base.G + (n.tint.G-n.base.G)*w,
		B: n.base.B + (n.tint.B-n.base.B)*w,
		A: n.base.A + (n.tint.A-n.base.A)*w,
	}
}

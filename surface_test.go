package gocaster

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSolidSamplesEverywhere(t *testing.T) {
	s := Solid{Color: RGBA(0.2, 0.4, 0.6, 0.8)}
	for _, pos := range []mgl64.Vec2{{0, 0}, {0.5, 0.5}, {1, 1}, {-3, 7}} {
		if got := s.Sample(pos); got != s.Color {
			t.Errorf("pos %v: expected %v, got %v", pos, s.Color, got)
		}
	}
}

func TestUVPatternTracksCoordinates(t *testing.T) {
	got := UVPattern{}.Sample(mgl64.Vec2{0.25, 0.75})
	if !almostEqual(got.R, 0.25) || !almostEqual(got.G, 0.75) {
		t.Errorf("expected red=u green=v, got %v", got)
	}
	if got.A != 1 {
		t.Errorf("expected opaque sample, got alpha %v", got.A)
	}
}

func TestWindowPatternPane(t *testing.T) {
	w := WindowPattern{}

	center := w.Sample(mgl64.Vec2{0.5, 0.5})
	if center.A >= 1 {
		t.Errorf("pane center should be translucent, got alpha %v", center.A)
	}
	edge := w.Sample(mgl64.Vec2{0.1, 0.5})
	if edge.A != 1 {
		t.Errorf("frame should be opaque, got alpha %v", edge.A)
	}
}

func TestNoisePatternDeterministic(t *testing.T) {
	base := RGBA(0, 0, 0, 1)
	tint := RGBA(1, 1, 1, 1)
	a := NewNoisePattern(42, 8, base, tint)
	b := NewNoisePattern(42, 8, base, tint)
	other := NewNoisePattern(43, 8, base, tint)

	positions := []mgl64.Vec2{{0.1, 0.2}, {3.7, 5.1}, {8.25, 0.5}}
	differs := false
	for _, pos := range positions {
		sa, sb := a.Sample(pos), b.Sample(pos)
		if sa != sb {
			t.Errorf("pos %v: same seed produced %v and %v", pos, sa, sb)
		}
		if sa.R < 0 || sa.R > 1 {
			t.Errorf("pos %v: sample outside the base-tint range: %v", pos, sa)
		}
		if sa != other.Sample(pos) {
			differs = true
		}
	}
	if !differs {
		t.Errorf("different seeds produced identical samples everywhere")
	}
}

func TestTextureSampleAndClamp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tex := NewTextureFromImage(img)
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("expected a 2x2 texture, got %dx%d", tex.Width(), tex.Height())
	}

	testCases := []struct {
		name string
		pos  mgl64.Vec2
		want Color
	}{
		{"top left", mgl64.Vec2{0, 0}, RGBA(1, 0, 0, 1)},
		{"top right", mgl64.Vec2{0.75, 0}, RGBA(0, 1, 0, 1)},
		{"bottom left", mgl64.Vec2{0, 0.75}, RGBA(0, 0, 1, 1)},
		{"clamped corner", mgl64.Vec2{1, 1}, RGBA(1, 1, 1, 1)},
		{"clamped past the edge", mgl64.Vec2{1.5, -0.5}, RGBA(0, 1, 0, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tex.Sample(tc.pos)
			if !almostEqual(got.R, tc.want.R) || !almostEqual(got.G, tc.want.G) ||
				!almostEqual(got.B, tc.want.B) || !almostEqual(got.A, tc.want.A) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNewTextureFromNonRGBAImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 255})

	tex := NewTextureFromImage(img)
	got := tex.Sample(mgl64.Vec2{0, 0})
	if !almostEqual(got.R, 1) || !almostEqual(got.G, 1) || !almostEqual(got.B, 1) {
		t.Errorf("expected white after conversion, got %v", got)
	}
}

package gocaster

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// minWallDist keeps the projection division finite when a wall face
// passes through the camera position.
const minWallDist = 1e-9

// eyeHeight converts the camera's z offset to an absolute eye height in
// wall units. Camera z 0 means the eye sits at half wall height, so the
// projection math below works with z + 1/2.
func eyeHeight(c *Camera) float64 {
	return c.Z() + 0.5
}

// Renderer composites ray hits into a pixel buffer. It keeps a
// column-major floating-point accumulator that is cleared every frame;
// there is no other cross-frame state.
type Renderer struct {
	width  int
	height int
	accum  []Color
}

// NewRenderer creates a renderer for a fixed output size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		accum:  make([]Color, width*height),
	}
}

// Width returns the output width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the output height in pixels.
func (r *Renderer) Height() int { return r.height }

// Render draws one frame into dst, which must be a width*height*4 RGBA
// byte buffer. For every column it walks the map along the camera ray,
// blending hits front to back until the column is opaque or the ray
// leaves the grid, then quantizes the accumulator to 8-bit color with
// full output alpha.
func (r *Renderer) Render(dst []byte, camera *Camera, world *Map) {
	if len(dst) != r.width*r.height*4 {
		panic(fmt.Sprintf("gocaster: frame buffer is %d bytes, want %d", len(dst), r.width*r.height*4))
	}

	for i := range r.accum {
		r.accum[i] = Color{A: 1}
	}

	pos := camera.Pos()
	for x, dir := range camera.Rays(r.width) {
		// left counts pixels in this column that can still absorb
		// color; once it reaches zero the remaining hits are invisible.
		left := r.height
		for hit := range world.RayCast(pos, dir) {
			switch h := hit.(type) {
			case WallHit:
				left -= r.renderWall(x, h, camera, world.WallHeight)
			case FloorHit:
				left -= r.renderFloor(x, h, camera)
				left -= r.renderCeiling(x, h, camera)
			}
			if left == 0 {
				break
			}
		}
	}

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.accum[x*r.height+y]
			i := (y*r.width + x) * 4
			dst[i] = quantize(c.R)
			dst[i+1] = quantize(c.G)
			dst[i+2] = quantize(c.B)
			dst[i+3] = 0xff
		}
	}
}

// blend composites a sample under the existing accumulation for one
// pixel and reports whether the pixel just became fully opaque.
func (r *Renderer) blend(x, y int, c Color) bool {
	p := &r.accum[x*r.height+y]
	w := p.A * c.A
	p.R += w * c.R
	p.G += w * c.G
	p.B += w * c.B
	p.A *= 1 - c.A
	return p.A == 0
}

func (r *Renderer) opaque(x, y int) bool {
	return r.accum[x*r.height+y].A == 0
}

// renderWall projects a wall hit to a vertical span and blends the wall
// surface over it. Returns how many pixels became opaque.
func (r *Renderer) renderWall(x int, hit WallHit, camera *Camera, wallHeight float64) int {
	length := hit.Length
	if length < minWallDist {
		length = minWallDist
	}

	h := float64(r.height)
	lineHeight := int(h / length * wallHeight)
	mid := r.height/2 + int((eyeHeight(camera)*2-wallHeight)*h/(2*length))
	start := mid - lineHeight/2
	end := mid + lineHeight/2

	drawn := 0
	for y := clampInt(start, 0, r.height); y < clampInt(end, 0, r.height); y++ {
		if r.opaque(x, y) {
			continue
		}
		v := float64(y-start) / float64(end-start)
		if r.blend(x, y, hit.Surface.Sample(mgl64.Vec2{hit.U, v})) {
			drawn++
		}
	}
	return drawn
}

// renderFloor paints the floor band of one crossed cell. The screen rows
// covering [Dist1, Dist2] come from the floor projection; each row's
// true distance is inverted out of the same projection and used as an
// inverse-distance weight between the entry and exit points, which is
// what makes the texture foreshorten correctly.
func (r *Renderer) renderFloor(x int, hit FloorHit, camera *Camera) int {
	z := -eyeHeight(camera)*2 + 1 + hit.FloorHeight*2
	start := r.yFromFloorDist(hit.Dist2, z)
	end := r.yFromFloorDist(hit.Dist1, z)
	h := float64(r.height)

	drawn := 0
	for y := start; y < end; y++ {
		if r.opaque(x, y) {
			continue
		}
		dist := h * (1 - z) / (2*float64(y) - h)
		weight := (dist - hit.Dist1) / (hit.Dist2 - hit.Dist1)
		pos := Lerp(hit.Pos1, hit.Pos2, weight)
		if r.blend(x, y, hit.Floor.Sample(pos)) {
			drawn++
		}
	}
	return drawn
}

// renderCeiling is the mirror of renderFloor for the cell's ceiling.
func (r *Renderer) renderCeiling(x int, hit FloorHit, camera *Camera) int {
	z := -eyeHeight(camera)*2 - 1 + hit.CeilingHeight*2
	start := r.yFromCeilingDist(hit.Dist1, z)
	end := r.yFromCeilingDist(hit.Dist2, z)
	h := float64(r.height)

	drawn := 0
	for y := start; y < end; y++ {
		if r.opaque(x, y) {
			continue
		}
		dist := h * (z + 1) / (h - 2*float64(y))
		weight := (dist - hit.Dist1) / (hit.Dist2 - hit.Dist1)
		pos := Lerp(hit.Pos1, hit.Pos2, weight)
		if r.blend(x, y, hit.Ceiling.Sample(pos)) {
			drawn++
		}
	}
	return drawn
}

// yFromFloorDist maps a floor distance to a screen row. Monotonically
// decreasing in dist; dist 0 is the bottom edge of the screen.
func (r *Renderer) yFromFloorDist(dist, z float64) int {
	if dist == 0 {
		return r.height
	}
	y := int(float64(r.height) * (dist - z + 1) / (2 * dist))
	return clampInt(y, 0, r.height)
}

// yFromCeilingDist maps a ceiling distance to a screen row.
// Monotonically increasing in dist; dist 0 is the top edge, and no
// ceiling row ever passes the horizon at height/2.
func (r *Renderer) yFromCeilingDist(dist, z float64) int {
	if dist == 0 {
		return 0
	}
	y := int(float64(r.height) * (dist - z - 1) / (2 * dist))
	return clampInt(y, 0, r.height/2)
}

func quantize(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return byte(v * 255)
}

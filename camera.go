package gocaster

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a first-person viewpoint on the map plane. It keeps three
// mutually consistent axes: front (view direction), right (strafe
// direction) and plane (the half-width of the projection plane, scaled
// by the field of view). z is the eye height above the nominal floor
// midline; 0 puts the eye at half wall height.
type Camera struct {
	pos   mgl64.Vec2
	front mgl64.Vec2
	right mgl64.Vec2
	plane mgl64.Vec2
	z     float64
}

// NewCamera creates a camera at pos looking along angle (radians,
// counter-clockwise from +x) with the given horizontal field of view.
func NewCamera(pos mgl64.Vec2, angle, fov float64) *Camera {
	front := VectorFromAngle(angle)
	right := Perp(front)
	return &Camera{
		pos:   pos,
		front: front,
		right: right,
		plane: right.Mul(math.Tan(fov / 2)),
	}
}

// Clone returns an independent copy of the camera, for consumers that
// need their own viewpoint into a shared map.
func (c *Camera) Clone() *Camera {
	dup := *c
	return &dup
}

// Pos returns the camera position in map coordinates.
func (c *Camera) Pos() mgl64.Vec2 { return c.pos }

// Front returns the view direction.
func (c *Camera) Front() mgl64.Vec2 { return c.front }

// Right returns the strafe direction.
func (c *Camera) Right() mgl64.Vec2 { return c.right }

// Plane returns the projection-plane vector.
func (c *Camera) Plane() mgl64.Vec2 { return c.plane }

// Z returns the eye-height offset.
func (c *Camera) Z() float64 { return c.z }

// Rays produces one ray direction per screen column, left to right. The
// sequence is lazy and restartable; directions are unnormalized so that
// parametric distances along them are perpendicular distances.
func (c *Camera) Rays(screenWidth int) iter.Seq2[int, mgl64.Vec2] {
	return func(yield func(int, mgl64.Vec2) bool) {
		for x := 0; x < screenWidth; x++ {
			camX := 2*float64(x)/float64(screenWidth) - 1
			if !yield(x, c.front.Add(c.plane.Mul(camX))) {
				return
			}
		}
	}
}

// Rotate turns the camera by angle radians. All three axes rotate
// together; rotating them independently would skew the projection.
func (c *Camera) Rotate(angle float64) {
	rot := mgl64.Rotate2D(angle)
	c.front = rot.Mul2x1(c.front)
	c.right = rot.Mul2x1(c.right)
	c.plane = rot.Mul2x1(c.plane)
}

// Translate moves the camera in its own frame: delta.X along the right
// axis, delta.Y along the front axis.
func (c *Camera) Translate(delta mgl64.Vec2) {
	c.pos = c.pos.Add(c.right.Mul(delta.X())).Add(c.front.Mul(delta.Y()))
}

// TranslateZ adjusts the eye height. The value is not clamped; rendering
// degrades gracefully when the eye leaves the floor-ceiling band.
func (c *Camera) TranslateZ(delta float64) {
	c.z += delta
}

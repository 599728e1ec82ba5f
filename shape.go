package gocaster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rayEpsilon is the tolerance on the minimum intersection distance. A ray
// that starts exactly on a cell boundary may compute a slightly negative
// distance to the face it is sitting on; without the tolerance it would
// fail to re-enter the next cell.
const rayEpsilon = 1e-3

// ShapeHit describes the first intersection of a ray with a shape.
// Length is the parametric distance along the (unnormalized) ray
// direction, U is the [0,1] coordinate along the struck face, and Side
// selects which of the tile's side surfaces was hit.
type ShapeHit struct {
	Length float64
	U      float64
	Side   int
}

// Shape is the geometry a tile holds within its local unit square.
type Shape interface {
	// Sides reports how many distinct faces the shape has, and therefore
	// how many side surfaces a tile carrying it must supply.
	Sides() int

	// RayCast intersects a ray with the shape. pos is the ray origin in
	// the tile's local (0,0)-(1,1) frame; dir need not be normalized.
	RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool)
}

// Void is the absence of wall geometry; rays pass straight through.
type Void struct{}

func (Void) Sides() int { return 0 }

func (Void) RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool) {
	return ShapeHit{}, false
}

// Box fills the whole tile. Side order: -x, +x, -y, +y.
type Box struct{}

func (Box) Sides() int { return 4 }

func (Box) RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool) {
	return unitBox.RayCast(pos, dir)
}

var unitBox = AxisAlignedBox{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}}

// AxisAlignedBox is a sub-rectangle of the tile. Side indices:
// 0 = -x-facing, 1 = +x-facing, 2 = -y-facing, 3 = +y-facing.
type AxisAlignedBox struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

func (AxisAlignedBox) Sides() int { return 4 }

// RayCast tests the two slabs facing the ray's approach direction: the
// near x face chosen by the sign of dir.X, then the near y face. A hit on
// a face only counts if the perpendicular coordinate lies within the
// box's bounds on the other axis.
func (b AxisAlignedBox) RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool) {
	if dir.X() != 0 {
		face, side := b.Max.X(), 1
		if dir.X() > 0 {
			face, side = b.Min.X(), 0
		}
		t := (face - pos.X()) / dir.X()
		y := pos.Y() + t*dir.Y()
		if t >= -rayEpsilon && y >= b.Min.Y() && y <= b.Max.Y() {
			u := (y - b.Min.Y()) / (b.Max.Y() - b.Min.Y())
			return ShapeHit{Length: t, U: u, Side: side}, true
		}
	}

	if dir.Y() != 0 {
		face, side := b.Max.Y(), 3
		if dir.Y() > 0 {
			face, side = b.Min.Y(), 2
		}
		t := (face - pos.Y()) / dir.Y()
		x := pos.X() + t*dir.X()
		if t >= -rayEpsilon && x >= b.Min.X() && x <= b.Max.X() {
			u := (x - b.Min.X()) / (b.Max.X() - b.Min.X())
			return ShapeHit{Length: t, U: u, Side: side}, true
		}
	}

	return ShapeHit{}, false
}

// Circle is a round pillar inside the tile. It has a single side; U is
// the polar angle of the hit point around the center, normalized to
// [0,1) with 0 on the +x axis, increasing counter-clockwise.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

func (Circle) Sides() int { return 1 }

func (c Circle) RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool) {
	oc := pos.Sub(c.Center)
	a := dir.Dot(dir)
	if a == 0 {
		return ShapeHit{}, false
	}
	b := 2 * oc.Dot(dir)
	cc := oc.Dot(oc) - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return ShapeHit{}, false
	}

	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < -rayEpsilon {
		t = (-b + sq) / (2 * a)
		if t < -rayEpsilon {
			return ShapeHit{}, false
		}
	}

	hit := pos.Add(dir.Mul(t)).Sub(c.Center)
	angle := math.Atan2(hit.Y(), hit.X())
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return ShapeHit{Length: t, U: angle / (2 * math.Pi), Side: 0}, true
}

// Line is an infinitely thin double-sided wall segment inside the tile.
// Side 0 is hit when the segment's direction has a positive dot product
// with the ray direction, side 1 otherwise.
type Line struct {
	Start mgl64.Vec2
	End   mgl64.Vec2
}

func (Line) Sides() int { return 2 }

func (l Line) RayCast(pos, dir mgl64.Vec2) (ShapeHit, bool) {
	seg := l.End.Sub(l.Start)
	den := dir.X()*seg.Y() - dir.Y()*seg.X()
	if den == 0 {
		return ShapeHit{}, false
	}

	diff := l.Start.Sub(pos)
	t := (diff.X()*seg.Y() - diff.Y()*seg.X()) / den
	u := (diff.X()*dir.Y() - diff.Y()*dir.X()) / den
	if t < -rayEpsilon || u < 0 || u > 1 {
		return ShapeHit{}, false
	}

	side := 1
	if seg.Dot(dir) > 0 {
		side = 0
	}
	return ShapeHit{Length: t, U: u, Side: side}, true
}

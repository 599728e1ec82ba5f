package gocaster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VectorFromAngle returns the unit vector pointing at the given angle,
// measured counter-clockwise from the +x axis.
func VectorFromAngle(angle float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
}

// Perp returns v rotated 90 degrees counter-clockwise.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

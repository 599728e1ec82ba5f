package gocaster

import "fmt"

// Tile is one cell of the map: a shape with one surface per shape side,
// plus independent floor and ceiling surfaces. Heights are in camera-eye
// units: floor 0 and ceiling 1 is the plain corridor; values outside
// that range raise or sink the planes.
type Tile struct {
	Shape Shape

	// sides is indexed by ShapeHit.Side. Only the first Shape.Sides()
	// entries are meaningful.
	sides [4]Surface

	Floor         Surface
	FloorHeight   float64
	Ceiling       Surface
	CeilingHeight float64
}

// NewTile builds a tile, validating that exactly one surface is supplied
// per shape side. A mismatch is a configuration bug, not a runtime
// condition, and panics immediately.
func NewTile(shape Shape, sides []Surface, floor Surface, floorHeight float64, ceiling Surface, ceilingHeight float64) Tile {
	if len(sides) != shape.Sides() {
		panic(fmt.Sprintf("gocaster: shape with %d sides given %d side surfaces", shape.Sides(), len(sides)))
	}
	t := Tile{
		Shape:         shape,
		Floor:         floor,
		FloorHeight:   floorHeight,
		Ceiling:       ceiling,
		CeilingHeight: ceilingHeight,
	}
	copy(t.sides[:], sides)
	return t
}

// Side returns the surface for the given shape side index.
func (t Tile) Side(i int) Surface {
	return t.sides[i]
}

package gocaster

import (
	"fmt"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is one event on a ray's path through the map: either a wall
// intersection or the floor/ceiling span of a crossed cell. Hits arrive
// strictly ordered by distance from the ray origin.
type Hit interface {
	isHit()
}

// WallHit reports a ray striking tile geometry. Length is the
// perspective-correct distance along the ray, U the texture coordinate
// across the struck face, Surface the face's surface.
type WallHit struct {
	Length  float64
	U       float64
	Surface Surface
}

func (WallHit) isHit() {}

// FloorHit reports the span of one cell the ray crossed. Pos1/Pos2 are
// the entry and exit points in the cell's local frame, Dist1/Dist2 the
// matching distances from the origin. The renderer interpolates between
// them by inverse distance to paint the cell's floor and ceiling.
type FloorHit struct {
	Pos1          mgl64.Vec2
	Pos2          mgl64.Vec2
	Dist1         float64
	Dist2         float64
	Floor         Surface
	FloorHeight   float64
	Ceiling       Surface
	CeilingHeight float64
}

func (FloorHit) isHit() {}

// Map is a fixed-size grid of tiles. The grid is created once and never
// resized; individual tiles may be swapped between frames.
type Map struct {
	width      int
	height     int
	tiles      []Tile
	WallHeight float64
}

// NewMap creates a width×height grid of empty (Void) tiles. wallHeight
// scales projected wall columns and doubles as the default ceiling
// height of empty tiles.
func NewMap(width, height int, wallHeight float64) *Map {
	tiles := make([]Tile, width*height)
	empty := NewTile(Void{}, nil, UVPattern{}, 0, UVPattern{}, wallHeight)
	for i := range tiles {
		tiles[i] = empty
	}
	return &Map{width: width, height: height, tiles: tiles, WallHeight: wallHeight}
}

// Width returns the grid width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in tiles.
func (m *Map) Height() int { return m.height }

// SetTile replaces the tile at (x, y). Writing outside the grid is a
// configuration bug and panics.
func (m *Map) SetTile(x, y int, tile Tile) {
	if x < 0 || x >= m.width {
		panic(fmt.Sprintf("gocaster: x %d outside the range [0, %d)", x, m.width))
	}
	if y < 0 || y >= m.height {
		panic(fmt.Sprintf("gocaster: y %d outside the range [0, %d)", y, m.height))
	}
	m.tiles[y*m.width+x] = tile
}

// TileAt returns the tile at (x, y), or false when the coordinate lies
// outside the grid.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Tile{}, false
	}
	return m.tiles[y*m.width+x], true
}

// RayCast walks the grid from origin along dir and produces the ordered
// sequence of hits. The sequence is lazy: breaking out of the range stops
// the traversal, and iterating again restarts it from the origin. The
// walk ends silently once it leaves the grid.
//
// dir does not have to be normalized; all reported distances are
// parametric multiples of it, which is exactly the fish-eye-free
// perpendicular distance when dir comes from Camera.Rays.
func (m *Map) RayCast(origin, dir mgl64.Vec2) iter.Seq[Hit] {
	return func(yield func(Hit) bool) {
		mapX := int(math.Floor(origin.X()))
		mapY := int(math.Floor(origin.Y()))

		// 1/|dir| per axis; a zero component becomes +Inf, which keeps
		// that axis from ever being stepped.
		deltaX := math.Abs(1 / dir.X())
		deltaY := math.Abs(1 / dir.Y())

		var sideX, sideY float64
		stepX, stepY := 1, 1
		if dir.X() < 0 {
			stepX = -1
			sideX = (origin.X() - float64(mapX)) * deltaX
		} else {
			sideX = (float64(mapX) + 1 - origin.X()) * deltaX
		}
		if dir.Y() < 0 {
			stepY = -1
			sideY = (origin.Y() - float64(mapY)) * deltaY
		} else {
			sideY = (float64(mapY) + 1 - origin.Y()) * deltaY
		}

		// Geometry embedded in the starting cell is tested before any
		// stepping, or a camera standing inside a shape's tile would see
		// through it.
		tile, ok := m.TileAt(mapX, mapY)
		if !ok {
			return
		}
		local := origin.Sub(mgl64.Vec2{float64(mapX), float64(mapY)})
		if sh, hit := tile.Shape.RayCast(local, dir); hit {
			if !yield(WallHit{Length: sh.Length, U: sh.U, Surface: tile.Side(sh.Side)}) {
				return
			}
		}

		lastPos := origin
		lastDist := 0.0
		for {
			lastX, lastY := mapX, mapY

			// Advance along whichever axis crosses its next cell
			// boundary first; ties step y.
			var dist float64
			if sideX < sideY {
				dist = sideX
				sideX += deltaX
				mapX += stepX
			} else {
				dist = sideY
				sideY += deltaY
				mapY += stepY
			}
			crossing := origin.Add(dir.Mul(dist))

			// Emit the floor/ceiling span of the cell just crossed.
			tile, ok := m.TileAt(lastX, lastY)
			if !ok {
				return
			}
			cell := mgl64.Vec2{float64(lastX), float64(lastY)}
			fh := FloorHit{
				Pos1:          lastPos.Sub(cell),
				Pos2:          crossing.Sub(cell),
				Dist1:         lastDist,
				Dist2:         dist,
				Floor:         tile.Floor,
				FloorHeight:   tile.FloorHeight,
				Ceiling:       tile.Ceiling,
				CeilingHeight: tile.CeilingHeight,
			}
			if !yield(fh) {
				return
			}
			lastPos = crossing
			lastDist = dist

			next, ok := m.TileAt(mapX, mapY)
			if !ok {
				return
			}
			local := crossing.Sub(mgl64.Vec2{float64(mapX), float64(mapY)})
			if sh, hit := next.Shape.RayCast(local, dir); hit {
				// dist is the distance already traveled to reach the
				// cell boundary (the side distance minus one delta, i.e.
				// the corrected perpendicular distance); the local
				// intersection is measured from there.
				if !yield(WallHit{Length: sh.Length + dist, U: sh.U, Surface: next.Side(sh.Side)}) {
					return
				}
			}
		}
	}
}

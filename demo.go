package gocaster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DemoScene builds the scene the viewer falls back to when no scene file
// is given: a 10x10 room walled in with noise-patterned boxes, holding
// one of each remaining shape so every intersection and blending path is
// on screen.
func DemoScene() *Scene {
	world := NewMap(10, 10, 1)

	stone := NewNoisePattern(7, 6, RGBA(0.35, 0.33, 0.3, 1), RGBA(0.6, 0.58, 0.55, 1))
	moss := NewNoisePattern(11, 9, RGBA(0.1, 0.25, 0.1, 1), RGBA(0.3, 0.5, 0.2, 1))
	slate := Solid{Color: RGBA(0.12, 0.12, 0.16, 1)}

	wall := NewTile(Box{},
		[]Surface{stone, stone, moss, moss},
		slate, 0, slate, 1)
	for i := 0; i < 10; i++ {
		world.SetTile(i, 0, wall)
		world.SetTile(i, 9, wall)
		world.SetTile(0, i, wall)
		world.SetTile(9, i, wall)
	}

	open := NewTile(Void{}, nil, moss, 0, slate, 1)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			world.SetTile(x, y, open)
		}
	}

	// A round pillar straight ahead of the camera.
	pillar := NewTile(Circle{Center: mgl64.Vec2{0.5, 0.5}, Radius: 0.35},
		[]Surface{UVPattern{}},
		moss, 0, slate, 1)
	world.SetTile(7, 5, pillar)

	// A glass-like box for the alpha-blending path.
	window := NewTile(Box{},
		[]Surface{WindowPattern{}, WindowPattern{}, WindowPattern{}, WindowPattern{}},
		moss, 0, slate, 1)
	world.SetTile(6, 3, window)

	// A thin diagonal wall with a different surface on each face.
	fin := NewTile(Line{Start: mgl64.Vec2{0.1, 0.1}, End: mgl64.Vec2{0.9, 0.9}},
		[]Surface{Solid{Color: RGBA(0.8, 0.3, 0.2, 1)}, Solid{Color: RGBA(0.2, 0.3, 0.8, 1)}},
		moss, 0, slate, 1)
	world.SetTile(5, 7, fin)

	// A half-size block sunk into its tile.
	crate := NewTile(AxisAlignedBox{Min: mgl64.Vec2{0.25, 0.25}, Max: mgl64.Vec2{0.75, 0.75}},
		[]Surface{stone, stone, stone, stone},
		moss, 0, slate, 1)
	world.SetTile(3, 6, crate)

	camera := NewCamera(mgl64.Vec2{5, 5}, 0, 60*math.Pi/180)

	return &Scene{Name: "demo", Map: world, Camera: camera}
}

package gocaster

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

// SurfaceSpec is the JSON description of one surface.
type SurfaceSpec struct {
	Kind    string    `json:"kind"`    // "solid", "uv", "window", "noise", "texture"
	Color   []float64 `json:"color"`   // solid / noise base, RGBA in [0,1]
	Accent  []float64 `json:"accent"`  // noise tint
	Seed    int64     `json:"seed"`    // noise seed
	Scale   float64   `json:"scale"`   // noise scale (default 8)
	Texture string    `json:"texture"` // texture image path, relative to the scene file
}

// TileSpec is the JSON description of one legend entry.
type TileSpec struct {
	Shape  string    `json:"shape"` // "void", "box", "inset", "circle", "line"
	Min    []float64 `json:"min"`   // inset box corner
	Max    []float64 `json:"max"`
	Center []float64 `json:"center"` // circle
	Radius float64   `json:"radius"`
	Start  []float64 `json:"start"` // line segment
	End    []float64 `json:"end"`

	// Sides must match the shape's side count; a single entry is
	// repeated for every side.
	Sides         []SurfaceSpec `json:"sides"`
	Floor         *SurfaceSpec  `json:"floor"`
	FloorHeight   float64       `json:"floor_height"`
	Ceiling       *SurfaceSpec  `json:"ceiling"`
	CeilingHeight *float64      `json:"ceiling_height"` // default: wall height
}

// CameraSpec is the JSON description of the starting viewpoint.
type CameraSpec struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	AngleDeg   float64 `json:"angle_degrees"`
	FOVDegrees float64 `json:"fov_degrees"`
}

// SceneFile is the on-disk scene format: a legend of tile specs and one
// row string per grid row, each character naming a legend entry.
type SceneFile struct {
	Name       string              `json:"name"`
	WallHeight float64             `json:"wall_height"`
	Legend     map[string]TileSpec `json:"legend"`
	Rows       []string            `json:"rows"`
	Camera     CameraSpec          `json:"camera"`
}

// Scene is a loaded map plus its starting camera.
type Scene struct {
	Name   string
	Map    *Map
	Camera *Camera
}

// LoadScene reads a scene JSON file and builds the map and camera.
// Texture paths resolve relative to the scene file, and each texture is
// decoded once no matter how many tiles reference it.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	scene, err := BuildScene(&file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return scene, nil
}

// BuildScene turns a parsed scene file into a Scene. baseDir anchors
// relative texture paths.
func BuildScene(file *SceneFile, baseDir string) (*Scene, error) {
	if err := validateSceneFile(file); err != nil {
		return nil, err
	}

	wallHeight := file.WallHeight
	if wallHeight == 0 {
		wallHeight = 1
	}

	width := len(file.Rows[0])
	height := len(file.Rows)
	world := NewMap(width, height, wallHeight)

	// One decoded texture per path, shared by every tile that names it.
	textures := make(map[string]*Texture)

	tiles := make(map[rune]Tile)
	for key, spec := range file.Legend {
		tile, err := buildTile(spec, wallHeight, baseDir, textures)
		if err != nil {
			return nil, fmt.Errorf("legend entry %q: %w", key, err)
		}
		tiles[[]rune(key)[0]] = tile
	}

	for y, row := range file.Rows {
		for x, key := range row {
			if key == ' ' {
				continue
			}
			tile, ok := tiles[key]
			if !ok {
				return nil, fmt.Errorf("row %d column %d: no legend entry %q", y, x, string(key))
			}
			world.SetTile(x, y, tile)
		}
	}

	fov := file.Camera.FOVDegrees
	if fov == 0 {
		fov = 60
	}
	camera := NewCamera(
		mgl64.Vec2{file.Camera.X, file.Camera.Y},
		file.Camera.AngleDeg*math.Pi/180,
		fov*math.Pi/180,
	)

	return &Scene{Name: file.Name, Map: world, Camera: camera}, nil
}

func validateSceneFile(file *SceneFile) error {
	if len(file.Rows) == 0 {
		return fmt.Errorf("scene has no rows")
	}
	width := len(file.Rows[0])
	if width == 0 {
		return fmt.Errorf("scene rows are empty")
	}
	for y, row := range file.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has %d tiles, expected %d", y, len(row), width)
		}
	}
	for key := range file.Legend {
		if len([]rune(key)) != 1 {
			return fmt.Errorf("legend key %q must be a single character", key)
		}
	}
	return nil
}

func buildTile(spec TileSpec, wallHeight float64, baseDir string, textures map[string]*Texture) (Tile, error) {
	shape, err := buildShape(spec)
	if err != nil {
		return Tile{}, err
	}

	sideSpecs := spec.Sides
	if len(sideSpecs) == 1 && shape.Sides() > 1 {
		repeated := make([]SurfaceSpec, shape.Sides())
		for i := range repeated {
			repeated[i] = sideSpecs[0]
		}
		sideSpecs = repeated
	}
	if len(sideSpecs) != shape.Sides() {
		return Tile{}, fmt.Errorf("shape %q has %d sides but %d side surfaces are given", spec.Shape, shape.Sides(), len(sideSpecs))
	}

	sides := make([]Surface, len(sideSpecs))
	for i, s := range sideSpecs {
		surface, err := buildSurface(s, baseDir, textures)
		if err != nil {
			return Tile{}, fmt.Errorf("side %d: %w", i, err)
		}
		sides[i] = surface
	}

	floor, err := buildOptionalSurface(spec.Floor, baseDir, textures)
	if err != nil {
		return Tile{}, fmt.Errorf("floor: %w", err)
	}
	ceiling, err := buildOptionalSurface(spec.Ceiling, baseDir, textures)
	if err != nil {
		return Tile{}, fmt.Errorf("ceiling: %w", err)
	}

	ceilingHeight := wallHeight
	if spec.CeilingHeight != nil {
		ceilingHeight = *spec.CeilingHeight
	}

	return NewTile(shape, sides, floor, spec.FloorHeight, ceiling, ceilingHeight), nil
}

func buildShape(spec TileSpec) (Shape, error) {
	switch spec.Shape {
	case "", "void":
		return Void{}, nil
	case "box":
		return Box{}, nil
	case "inset":
		min, err := vec2("min", spec.Min)
		if err != nil {
			return nil, err
		}
		max, err := vec2("max", spec.Max)
		if err != nil {
			return nil, err
		}
		return AxisAlignedBox{Min: min, Max: max}, nil
	case "circle":
		center, err := vec2("center", spec.Center)
		if err != nil {
			return nil, err
		}
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %v", spec.Radius)
		}
		return Circle{Center: center, Radius: spec.Radius}, nil
	case "line":
		start, err := vec2("start", spec.Start)
		if err != nil {
			return nil, err
		}
		end, err := vec2("end", spec.End)
		if err != nil {
			return nil, err
		}
		return Line{Start: start, End: end}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", spec.Shape)
	}
}

func buildOptionalSurface(spec *SurfaceSpec, baseDir string, textures map[string]*Texture) (Surface, error) {
	if spec == nil {
		return UVPattern{}, nil
	}
	return buildSurface(*spec, baseDir, textures)
}

func buildSurface(spec SurfaceSpec, baseDir string, textures map[string]*Texture) (Surface, error) {
	switch spec.Kind {
	case "solid":
		c, err := rgba(spec.Color)
		if err != nil {
			return nil, err
		}
		return Solid{Color: c}, nil
	case "", "uv":
		return UVPattern{}, nil
	case "window":
		return WindowPattern{}, nil
	case "noise":
		base, err := rgba(spec.Color)
		if err != nil {
			return nil, err
		}
		tint, err := rgba(spec.Accent)
		if err != nil {
			return nil, err
		}
		scale := spec.Scale
		if scale == 0 {
			scale = 8
		}
		return NewNoisePattern(spec.Seed, scale, base, tint), nil
	case "texture":
		if spec.Texture == "" {
			return nil, fmt.Errorf("texture surface needs a texture path")
		}
		path := spec.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if tex, ok := textures[path]; ok {
			return tex, nil
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, err
		}
		textures[path] = tex
		return tex, nil
	default:
		return nil, fmt.Errorf("unknown surface kind %q", spec.Kind)
	}
}

func vec2(name string, values []float64) (mgl64.Vec2, error) {
	if len(values) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%s needs exactly 2 values, got %d", name, len(values))
	}
	return mgl64.Vec2{values[0], values[1]}, nil
}

func rgba(values []float64) (Color, error) {
	switch len(values) {
	case 3:
		return Color{R: values[0], G: values[1], B: values[2], A: 1}, nil
	case 4:
		return Color{R: values[0], G: values[1], B: values[2], A: values[3]}, nil
	default:
		return Color{}, fmt.Errorf("color needs 3 or 4 values, got %d", len(values))
	}
}

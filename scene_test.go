package gocaster

import (
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func solidSpec(r, g, b float64) SurfaceSpec {
	return SurfaceSpec{Kind: "solid", Color: []float64{r, g, b}}
}

func simpleSceneFile() *SceneFile {
	return &SceneFile{
		Name:       "test scene",
		WallHeight: 2,
		Legend: map[string]TileSpec{
			"#": {Shape: "box", Sides: []SurfaceSpec{solidSpec(1, 0, 0)}},
			"o": {Shape: "circle", Center: []float64{0.5, 0.5}, Radius: 0.3,
				Sides: []SurfaceSpec{solidSpec(0, 1, 0)}},
		},
		Rows: []string{
			"####",
			"# o#",
			"####",
		},
		Camera: CameraSpec{X: 1.5, Y: 1.5, AngleDeg: 90, FOVDegrees: 66},
	}
}

func TestBuildScene(t *testing.T) {
	scene, err := BuildScene(simpleSceneFile(), ".")
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	if scene.Name != "test scene" {
		t.Errorf("name: got %q", scene.Name)
	}
	if scene.Map.Width() != 4 || scene.Map.Height() != 3 {
		t.Errorf("expected a 4x3 map, got %dx%d", scene.Map.Width(), scene.Map.Height())
	}
	if scene.Map.WallHeight != 2 {
		t.Errorf("wall height: expected 2, got %v", scene.Map.WallHeight)
	}

	wall, _ := scene.Map.TileAt(0, 0)
	if _, ok := wall.Shape.(Box); !ok {
		t.Errorf("expected a box at (0,0), got %T", wall.Shape)
	}
	pillar, _ := scene.Map.TileAt(2, 1)
	if _, ok := pillar.Shape.(Circle); !ok {
		t.Errorf("expected a circle at (2,1), got %T", pillar.Shape)
	}
	gap, _ := scene.Map.TileAt(1, 1)
	if _, ok := gap.Shape.(Void); !ok {
		t.Errorf("a blank row character should stay void, got %T", gap.Shape)
	}

	if !almostEqual(scene.Camera.Pos().X(), 1.5) || !almostEqual(scene.Camera.Pos().Y(), 1.5) {
		t.Errorf("camera position: got %v", scene.Camera.Pos())
	}
	if !almostEqual(scene.Camera.Front().X(), math.Cos(math.Pi/2)) ||
		!almostEqual(scene.Camera.Front().Y(), math.Sin(math.Pi/2)) {
		t.Errorf("camera angle: got front %v", scene.Camera.Front())
	}
}

func TestBuildSceneSingleSideRepeats(t *testing.T) {
	file := simpleSceneFile()
	scene, err := BuildScene(file, ".")
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	wall, _ := scene.Map.TileAt(0, 0)
	red := Surface(Solid{Color: RGBA(1, 0, 0, 1)})
	for i := 0; i < 4; i++ {
		if wall.Side(i) != red {
			t.Errorf("side %d: expected the single spec repeated, got %v", i, wall.Side(i))
		}
	}
}

func TestBuildSceneErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*SceneFile)
	}{
		{"no rows", func(f *SceneFile) { f.Rows = nil }},
		{"ragged rows", func(f *SceneFile) { f.Rows[1] = "##" }},
		{"unknown row character", func(f *SceneFile) { f.Rows[1] = "#?o#" }},
		{"multi-character legend key", func(f *SceneFile) {
			f.Legend["##"] = TileSpec{Shape: "box", Sides: []SurfaceSpec{solidSpec(0, 0, 0)}}
		}},
		{"wrong side count", func(f *SceneFile) {
			f.Legend["#"] = TileSpec{Shape: "box", Sides: []SurfaceSpec{solidSpec(0, 0, 0), solidSpec(0, 0, 0)}}
		}},
		{"bad color length", func(f *SceneFile) {
			f.Legend["#"] = TileSpec{Shape: "box", Sides: []SurfaceSpec{{Kind: "solid", Color: []float64{1, 0}}}}
		}},
		{"unknown shape", func(f *SceneFile) {
			f.Legend["#"] = TileSpec{Shape: "dodecahedron"}
		}},
		{"unknown surface kind", func(f *SceneFile) {
			f.Legend["#"] = TileSpec{Shape: "box", Sides: []SurfaceSpec{{Kind: "plasma"}}}
		}},
		{"non-positive circle radius", func(f *SceneFile) {
			f.Legend["o"] = TileSpec{Shape: "circle", Center: []float64{0.5, 0.5}, Radius: 0,
				Sides: []SurfaceSpec{solidSpec(0, 1, 0)}}
		}},
		{"missing texture path", func(f *SceneFile) {
			f.Legend["#"] = TileSpec{Shape: "box", Sides: []SurfaceSpec{{Kind: "texture"}}}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := simpleSceneFile()
			tc.mutate(file)
			if _, err := BuildScene(file, "."); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestBuildSceneSharesTextures(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "brick.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	texSpec := SurfaceSpec{Kind: "texture", Texture: "brick.png"}
	file := &SceneFile{
		Legend: map[string]TileSpec{
			"a": {Shape: "box", Sides: []SurfaceSpec{texSpec}},
			"b": {Shape: "box", Sides: []SurfaceSpec{texSpec}},
		},
		Rows:   []string{"ab"},
		Camera: CameraSpec{X: 0.5, Y: 0.5},
	}

	scene, err := BuildScene(file, dir)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	a, _ := scene.Map.TileAt(0, 0)
	b, _ := scene.Map.TileAt(1, 0)
	if a.Side(0) != b.Side(0) {
		t.Errorf("both tiles should share one decoded texture")
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	data := `{
		"name": "corridor",
		"legend": {
			"#": {"shape": "box", "sides": [{"kind": "solid", "color": [1, 1, 1]}]}
		},
		"rows": ["###", "# #", "###"],
		"camera": {"x": 1.5, "y": 1.5}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	scene, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "corridor" {
		t.Errorf("name: got %q", scene.Name)
	}
	if scene.Map.WallHeight != 1 {
		t.Errorf("wall height should default to 1, got %v", scene.Map.WallHeight)
	}

	if _, err := LoadScene(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

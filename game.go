package gocaster

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const helpText = "WASD move/turn  Q/E strafe  R/F eye height  H help"

// Game wires the renderer into an ebiten window: it polls input, applies
// it to the camera scaled by the tick time, renders the frame and pushes
// the pixels to the screen. Everything here is glue; the render core
// never sees ebiten.
type Game struct {
	cfg      *Config
	scene    *Scene
	renderer *Renderer
	frame    []byte
	uiFace   *text.GoTextFace
	showHelp bool
}

// NewGame creates the window glue for a scene.
func NewGame(cfg *Config, scene *Scene) *Game {
	log.Printf("scene %q: %dx%d tiles", scene.Name, scene.Map.Width(), scene.Map.Height())

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	return &Game{
		cfg:      cfg,
		scene:    scene,
		renderer: NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		frame:    make([]byte, cfg.ScreenWidth*cfg.ScreenHeight*4),
		uiFace:   &text.GoTextFace{Source: src, Size: 14},
		showHelp: true,
	}
}

// Update applies held keys to the camera. Speeds are per second and
// scaled by the fixed tick duration.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	cam := g.scene.Camera

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Translate(mgl64.Vec2{0, g.cfg.MoveSpeed * dt})
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Translate(mgl64.Vec2{0, -g.cfg.MoveSpeed * dt})
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		cam.Translate(mgl64.Vec2{-g.cfg.MoveSpeed * dt, 0})
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		cam.Translate(mgl64.Vec2{g.cfg.MoveSpeed * dt, 0})
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.Rotate(g.cfg.RotateSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.Rotate(-g.cfg.RotateSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		cam.TranslateZ(g.cfg.ClimbSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		cam.TranslateZ(-g.cfg.ClimbSpeed * dt)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	return nil
}

// Draw renders the frame and copies it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.frame, g.scene.Camera, g.scene.Map)
	screen.WritePixels(g.frame)

	if g.showHelp {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(g.cfg.ScreenHeight)-24)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, helpText, g.uiFace, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

// Layout reports the fixed render size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

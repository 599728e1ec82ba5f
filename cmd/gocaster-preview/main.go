// Command gocaster-preview renders a scene without opening a window and
// serves it over HTTP instead: a one-shot PNG snapshot for quick checks,
// and a websocket frame stream with keyboard control for walking the
// scene from a browser. Useful when iterating on scene files over SSH.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"

	"github.com/smasonuk/gocaster"
)

const streamFPS = 30

type server struct {
	cfg   *gocaster.Config
	scene *gocaster.Scene
}

// controlMsg is one key transition from the browser.
type controlMsg struct {
	Key  string `json:"key"`
	Down bool   `json:"down"`
}

var upgrader = websocket.Upgrader{
	// The preview is a local dev tool; any page may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	configPath := flag.String("config", "", "JSON config file (optional)")
	scenePath := flag.String("scene", "", "JSON scene file (optional, built-in demo otherwise)")
	flag.Parse()

	cfg := gocaster.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = gocaster.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	scene := gocaster.DemoScene()
	if *scenePath != "" {
		var err error
		scene, err = gocaster.LoadScene(*scenePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	s := &server{cfg: cfg, scene: scene}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/frame.png", s.handleSnapshot)
	r.Get("/ws", s.handleStream)

	log.Printf("serving scene %q on http://%s", scene.Name, *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexPage)); err != nil {
		log.Printf("index write failed: %v", err)
	}
}

// handleSnapshot renders one frame from the scene's starting camera.
func (s *server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	width, height := s.cfg.ScreenWidth, s.cfg.ScreenHeight
	frame := make([]byte, width*height*4)
	gocaster.NewRenderer(width, height).Render(frame, s.scene.Camera.Clone(), s.scene.Map)

	img := &image.RGBA{Pix: frame, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("snapshot encode failed: %v", err)
	}
}

// handleStream upgrades to a websocket and streams raw RGBA frames while
// applying the client's held keys to a per-connection camera.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("viewer connected: %s", conn.RemoteAddr())

	var (
		mu   sync.Mutex
		held = map[string]bool{}
		done = make(chan struct{})
	)

	go func() {
		defer close(done)
		for {
			var msg controlMsg
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			mu.Lock()
			if msg.Down {
				held[msg.Key] = true
			} else {
				delete(held, msg.Key)
			}
			mu.Unlock()
		}
	}()

	cam := s.scene.Camera.Clone()
	width, height := s.cfg.ScreenWidth, s.cfg.ScreenHeight
	renderer := gocaster.NewRenderer(width, height)
	frame := make([]byte, width*height*4)

	ticker := time.NewTicker(time.Second / streamFPS)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			log.Printf("viewer disconnected: %s", conn.RemoteAddr())
			return
		case <-ticker.C:
			mu.Lock()
			s.applyInput(cam, held)
			mu.Unlock()

			renderer.Render(frame, cam, s.scene.Map)
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	}
}

func (s *server) applyInput(cam *gocaster.Camera, held map[string]bool) {
	dt := 1.0 / float64(streamFPS)
	if held["w"] {
		cam.Translate(mgl64.Vec2{0, s.cfg.MoveSpeed * dt})
	}
	if held["s"] {
		cam.Translate(mgl64.Vec2{0, -s.cfg.MoveSpeed * dt})
	}
	if held["q"] {
		cam.Translate(mgl64.Vec2{-s.cfg.MoveSpeed * dt, 0})
	}
	if held["e"] {
		cam.Translate(mgl64.Vec2{s.cfg.MoveSpeed * dt, 0})
	}
	if held["d"] {
		cam.Rotate(s.cfg.RotateSpeed * dt)
	}
	if held["a"] {
		cam.Rotate(-s.cfg.RotateSpeed * dt)
	}
	if held["r"] {
		cam.TranslateZ(s.cfg.ClimbSpeed * dt)
	}
	if held["f"] {
		cam.TranslateZ(-s.cfg.ClimbSpeed * dt)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>gocaster preview</title>
<style>body{background:#222;color:#ddd;font-family:monospace;text-align:center}</style>
</head>
<body>
<p>WASD move/turn &middot; Q/E strafe &middot; R/F eye height</p>
<canvas id="view"></canvas>
<script>
const canvas = document.getElementById("view");
const ctx = canvas.getContext("2d");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
let img = null;
ws.onmessage = (ev) => {
  const pix = new Uint8ClampedArray(ev.data);
  if (!img) {
    // The stream is raw RGBA at the configured size; infer it once.
    fetch("/frame.png").then(r => r.blob()).then(b => createImageBitmap(b)).then(bm => {
      canvas.width = bm.width; canvas.height = bm.height;
      img = new ImageData(pix, bm.width, bm.height);
      ctx.putImageData(img, 0, 0);
    });
    return;
  }
  img.data.set(pix);
  ctx.putImageData(img, 0, 0);
};
const send = (key, down) => ws.send(JSON.stringify({key: key, down: down}));
window.addEventListener("keydown", (e) => send(e.key.toLowerCase(), true));
window.addEventListener("keyup", (e) => send(e.key.toLowerCase(), false));
</script>
</body>
</html>
`

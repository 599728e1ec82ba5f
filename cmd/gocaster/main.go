package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/gocaster"
)

func main() {
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

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("gocaster - " + scene.Name)
	if err := ebiten.RunGame(gocaster.NewGame(cfg, scene)); err != nil {
		log.Fatal(err)
	}
}

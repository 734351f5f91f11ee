package main

import (
	"flag"
	"log"

	"github.com/automoto/cyberfx/assets"
	"github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/fonts"
	"github.com/automoto/cyberfx/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts, captions disabled: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using plain glow: %v", err)
	}

	return &Game{
		scene: scenes.NewPageScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one surface pixel per window pixel so sections follow live
// window resizes
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw hit-test boxes and frame stats")
	flag.BoolVar(&config.Debug.ShowCaptions, "captions", config.Debug.ShowCaptions, "draw section captions")
	flag.BoolVar(&config.Debug.LogSessions, "log-sessions", config.Debug.LogSessions, "log session start-up")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed, 0 for time-based")
	flag.Parse()

	ebiten.SetWindowSize(config.Page.Width, config.Page.Height)
	ebiten.SetWindowTitle(config.Page.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Page.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

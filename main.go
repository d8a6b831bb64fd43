package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/fonts"
	"github.com/automoto/kagerun/scenes"
	"github.com/automoto/kagerun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, scenes.RunOptions{
			Slot:      config.Debug.Slot,
			Character: config.Debug.Character,
			Level:     config.Debug.StartLevel,
		})
	} else {
		g.scene = scenes.NewSelectScene(g, config.Debug.Slot)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "Start playing without the title screen")
	flag.IntVar(&config.Debug.StartLevel, "level", config.Debug.StartLevel, "Level to start on with -skip-menu")
	flag.StringVar(&config.Debug.Character, "character", config.Debug.Character, "Character to play with -skip-menu (empty = slot's last)")
	flag.IntVar(&config.Debug.Slot, "slot", config.Debug.Slot, "Save slot")
	flag.StringVar(&config.Debug.ThemesPath, "themes", config.Debug.ThemesPath, "YAML file overriding level themes")
	flag.BoolVar(&config.Debug.ShowBoxes, "debug", config.Debug.ShowBoxes, "Draw collision boxes")
	flag.Parse()

	if err := config.LoadThemeOverridesFile(config.Debug.ThemesPath); err != nil {
		log.Printf("Warning: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width*config.Settings.Scales[0], config.C.Height*config.Settings.Scales[0])
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(nil, saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

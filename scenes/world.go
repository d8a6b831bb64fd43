package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunOptions is what the title screen hands to gameplay.
type RunOptions struct {
	Slot      int
	Character string
	Level     int
	// Save is the slot's progress; nil loads it from disk.
	Save *components.SaveData
}

// WorldScene runs the levels of one session.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         RunOptions
	once         sync.Once
}

// NewWorldScene creates a gameplay scene starting from opts.
func NewWorldScene(sc SceneChanger, opts RunOptions) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.QuitRequested(ws.ecs) {
		systems.StopMusic(ws.ecs)
		ws.sceneChanger.ChangeScene(NewSelectScene(ws.sceneChanger, ws.opts.Slot))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadImages()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateFinish)

	// Game systems wrapped with pause and finish checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSession))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAmbience))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEmitters))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCrumble))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpikes))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSparks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTips))

	// World
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawProps)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawRain)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	// Screen space
	e.AddRenderer(cfg.Overlay, systems.DrawTransition)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawTips)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)
	e.AddRenderer(cfg.Overlay, systems.DrawFinish)

	ws.ecs = e

	names, err := assets.MapNames()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.GetOrCreateLevel(e).MapNames = names

	session := systems.GetOrCreateSession(e)
	session.Slot = ws.opts.Slot
	session.Save = ws.opts.Save
	if session.Save == nil {
		session.Save = systems.LoadSave(ws.opts.Slot)
	}
	session.Character = ws.opts.Character
	if session.Character == "" {
		session.Character = session.Save.Character
	}

	if err := systems.LoadLevel(e, ws.opts.Level); err != nil {
		log.Printf("Warning: %v", err)
	}
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/systems"
	"github.com/automoto/kagerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SelectScene is the title screen: save slot, character and starting level.
type SelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.SelectUI
	selectData   *components.SelectData
	mapNames     []string
	slot         int
	once         sync.Once
	shouldStart  bool
}

// NewSelectScene creates the title screen showing the given save slot.
func NewSelectScene(sc SceneChanger, slot int) *SelectScene {
	return &SelectScene{sceneChanger: sc, slot: slot}
}

func (ss *SelectScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	ss.selectUI.Update()

	if ss.shouldStart {
		ss.start()
	}
}

func (ss *SelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.selectUI.UI.Draw(screen)
}

func (ss *SelectScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	names, err := assets.MapNames()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	ss.mapNames = names

	ss.selectData = systems.GetOrCreateSelect(ss.ecs)
	systems.InitSelect(ss.selectData, ss.slot, len(ss.mapNames))

	ss.selectUI = ui.NewSelectUI(ss.selectData, ss.mapID, func() { ss.shouldStart = true })

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSelect(
		func() { ss.shouldStart = true },
		ss.selectUI.UpdateUI,
	))

	systems.SetLoops(ss.ecs)
	systems.PlayMusic(ss.ecs, cfg.Themes.Resolve(0).Music)
}

func (ss *SelectScene) mapID(level int) string {
	if level < 0 || level >= len(ss.mapNames) {
		return ""
	}
	return systems.MapID(ss.mapNames[level])
}

// start hands the selection to a fresh world scene.
func (ss *SelectScene) start() {
	ss.shouldStart = false
	systems.StopMusic(ss.ecs)
	ss.sceneChanger.ChangeScene(NewWorldScene(ss.sceneChanger, RunOptions{
		Slot:      ss.selectData.Slot,
		Character: ss.selectData.Character,
		Level:     ss.selectData.Level,
		Save:      ss.selectData.Save,
	}))
}

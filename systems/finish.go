package systems

import (
	"fmt"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateFinish waits on the end-of-run overlay for a confirm press, then
// asks the scene to return to the title screen.
func UpdateFinish(e *ecs.ECS) {
	if !GetOrCreateSession(e).Finished {
		return
	}
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		RequestQuit(e)
	}
}

// DrawFinish renders the end-of-run overlay with the slot's best times.
func DrawFinish(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if !session.Finished {
		return
	}
	level := GetOrCreateLevel(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Finish.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Finish.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Finish.TitleY), cfg.Finish.TitleColor) //nolint:staticcheck // TODO: migrate to text/v2

	hudFont := fonts.HUD.Get()
	y := cfg.Finish.StatsY
	for _, line := range finishLines(session, level.MapNames) {
		text.Draw(screen, line, hudFont, centerTextX(line, hudFont, width), int(y), cfg.Finish.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
		y += cfg.Finish.LineHeight
	}

	hint := getFinishHint(getOrCreateInput(e).LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.Finish.HintY), cfg.Finish.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// finishLines lists the best time of every stage, then the total.
func finishLines(session *components.SessionData, mapNames []string) []string {
	if session.Save == nil {
		return nil
	}
	var lines []string
	total := 0.0
	for i, name := range mapNames {
		id := MapID(name)
		best, ok := session.Save.BestTimes[id]
		if !ok {
			lines = append(lines, fmt.Sprintf("STAGE %d  --", i+1))
			continue
		}
		total += best
		lines = append(lines, fmt.Sprintf("STAGE %d  %.2f", i+1, best))
	}
	lines = append(lines, fmt.Sprintf("TOTAL  %.2f", total))
	return lines
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

func getFinishHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to return"
	case components.InputXbox:
		return "Press A to return"
	}
	return "Press Enter to return"
}

// RequestQuit asks the scene to leave gameplay for the title screen.
func RequestQuit(e *ecs.ECS) {
	GetOrCreatePause(e).QuitRequested = true
}

// QuitRequested reports whether gameplay asked to return to the title.
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreatePause(e).QuitRequested
}

// WithFinishCheck wraps a system to skip execution once the run is over.
func WithFinishCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).Finished {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the
// run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithFinishCheck(system))
}

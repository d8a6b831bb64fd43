package systems

import (
	"image/color"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTips fades the level banner and shows queued tips once the level
// timer reaches them. One tip is on screen at a time.
func UpdateTips(e *ecs.ECS) {
	tips, banner := GetOrCreateTips(e)
	timer := GetOrCreateSession(e).Timer

	if banner.Fade != nil {
		alpha, _, done := banner.Fade.Update(1)
		banner.Alpha = alpha
		if done {
			banner.Fade = nil
			banner.Alpha = 0
		}
	}

	if tips.Active != nil {
		tips.Remaining--
		if tips.Remaining <= 0 {
			tips.Active = nil
		}
	}
	if tips.Active == nil && len(tips.Queue) > 0 && tips.Queue[0].At <= timer {
		next := tips.Queue[0].Tip
		tips.Queue = tips.Queue[1:]
		tips.Active = &next
		tips.Remaining = secondsToTicks(next.Seconds)
	}
}

// QueueLevelTips schedules the tutorial tips for a level back to back,
// starting now. Each level's tips are only queued once per run.
func QueueLevelTips(e *ecs.ECS, level int) {
	tips, _ := GetOrCreateTips(e)
	list, ok := cfg.Tutorials.Levels[level]
	if !ok || tips.LevelShown[level] {
		return
	}
	tips.LevelShown[level] = true

	at := GetOrCreateSession(e).Timer
	for _, tip := range list {
		tips.Queue = append(tips.Queue, components.QueuedTip{Tip: tip, At: at})
		at += secondsToTicks(tip.Seconds)
	}
}

// ShowPickupTip queues a pickup hint if it belongs to the current level and
// has not been shown yet.
func ShowPickupTip(e *ecs.ECS, hint cfg.PickupTip) {
	session := GetOrCreateSession(e)
	tips, _ := GetOrCreateTips(e)
	if session.Level != hint.Level || tips.PickupShown[hint.Level] {
		return
	}
	tips.PickupShown[hint.Level] = true
	tips.Queue = append(tips.Queue, components.QueuedTip{Tip: hint.Tip, At: session.Timer})
}

// ClearTips drops queued and visible tips, as on a level load.
func ClearTips(e *ecs.ECS) {
	tips, _ := GetOrCreateTips(e)
	tips.Queue = tips.Queue[:0]
	tips.Active = nil
	tips.Remaining = 0
}

// ShowBanner fades a title card in, holds it and fades it out.
func ShowBanner(e *ecs.ECS, title string) {
	_, banner := GetOrCreateTips(e)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)
	banner.Text = title
	banner.Alpha = 0
	banner.Fade = seq
}

func secondsToTicks(s float64) int {
	return int(s * float64(cfg.C.TPS))
}

// DrawTips renders the active tip in a box at the top of the screen and the
// banner in the middle.
func DrawTips(e *ecs.ECS, screen *ebiten.Image) {
	tips, banner := GetOrCreateTips(e)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	if tips.Active != nil {
		face := fonts.Sized(tips.Active.FontSize)
		bounds := text.BoundString(face, tips.Active.Text) //nolint:staticcheck // TODO: migrate to text/v2
		pad := float32(4)
		boxW := float32(bounds.Dx()) + pad*2
		boxH := float32(bounds.Dy()) + pad*2
		boxX := (w - boxW) / 2
		boxY := float32(20)
		vector.FillRect(screen, boxX, boxY, boxW, boxH, cfg.UI.TipBoxColor, false)
		text.Draw(screen, tips.Active.Text, face, int(boxX+pad), int(boxY+pad)-bounds.Min.Y, cfg.UI.HUDTextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}

	if banner.Alpha > 0 && banner.Text != "" {
		face := fonts.Title.Get()
		bounds := text.BoundString(face, banner.Text) //nolint:staticcheck // TODO: migrate to text/v2
		base := cfg.UI.HUDTextColor
		clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 * banner.Alpha)}
		x := int((w - float32(bounds.Dx())) / 2)
		y := int(h/3) - bounds.Min.Y
		text.Draw(screen, banner.Text, face, x, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

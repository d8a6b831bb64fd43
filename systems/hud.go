package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 24
	hudBarHeight = 3
	hudLine      = 10
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the level timer, best time and stage in the top-left
// corner and the player's buffs and ability cooldown in the top-right.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	margin := cfg.UI.HUDMargin
	face := fonts.HUD.Get()

	y := int(margin) + hudLine
	drawShadowed(screen, fmt.Sprintf("TIME %.2f", session.Seconds()), face, int(margin), y)
	if session.Save != nil {
		if best, ok := session.Save.BestTimes[session.MapID]; ok {
			y += hudLine
			drawShadowed(screen, fmt.Sprintf("BEST %.2f", best), face, int(margin), y)
		}
	}
	y += hudLine
	drawShadowed(screen, fmt.Sprintf("STAGE %d", session.Level+1), face, int(margin), y)

	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	drawBuffs(screen, player, margin)
}

func drawBuffs(screen *ebiten.Image, player *components.PlayerData, margin float64) {
	w := float64(screen.Bounds().Dx())
	x := w - margin - hudBarWidth
	y := margin

	// ability cooldown
	remaining, total := abilityCooldown(player)
	drawIcon(screen, player.Ability, x-10, y)
	drawBar(screen, x, y+2, cfg.UI.CooldownColor, cfg.UI.ReadyColor, remaining, total)
	y += 10

	if player.RamenTimer > 0 {
		drawIcon(screen, "ramen", x-10, y)
		drawBar(screen, x, y+2, cfg.UI.ReadyColor, cfg.UI.CooldownColor, player.RamenTimer, cfg.Abilities.RamenDuration)
		y += 10
	}
	if player.Shield {
		drawIcon(screen, "shield", x-10, y)
		y += 10
	}
	if player.Blessing {
		drawIcon(screen, "blessing", x-10, y)
	}
}

// abilityCooldown returns the ticks left before the ability is ready and the
// full cooldown.
func abilityCooldown(player *components.PlayerData) (int, int) {
	if player.Ability == cfg.AbilityBlowgun {
		return player.ShootCooldown, cfg.Abilities.BlowgunCooldown
	}
	return player.SmokeCooldown, cfg.Abilities.SmokeCooldown
}

// drawBar fills a bar by remaining/total, or shows it full in ready when
// nothing remains.
func drawBar(screen *ebiten.Image, x, y float64, fill, ready color.RGBA, remaining, total int) {
	vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, cfg.UI.HUDShadow, false)
	if remaining <= 0 || total <= 0 {
		vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, ready, false)
		return
	}
	frac := float32(min(remaining, total)) / float32(total)
	vector.FillRect(screen, float32(x), float32(y), hudBarWidth*frac, hudBarHeight, fill, false)
}

func drawIcon(screen *ebiten.Image, name string, x, y float64) {
	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(x, y)
	screen.DrawImage(assets.IconImage(name), hudDrawOp)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x+1, y+1, cfg.UI.HUDShadow) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, x, y, cfg.UI.HUDTextColor)   //nolint:staticcheck // TODO: migrate to text/v2
}

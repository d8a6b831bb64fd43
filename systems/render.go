package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	wipeImg *ebiten.Image
)

// renderOffset is the world position drawn at the screen's top-left corner:
// the camera scroll plus this tick's shake.
func renderOffset(e *ecs.ECS) dmath.Vec2 {
	cam := GetOrCreateCamera(e)
	return dmath.Vec2{X: math.Floor(cam.Position.X + cam.Shake.X), Y: math.Floor(cam.Position.Y + cam.Shake.Y)}
}

// DrawBackground fills the theme's sky and draws the parallax ambience.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	level := GetOrCreateLevel(e)
	amb := GetOrCreateAmbience(e)
	sky := level.Theme.Sky
	screen.Fill(color.RGBA{R: sky[0], G: sky[1], B: sky[2], A: 255})

	scroll := GetOrCreateCamera(e).Position
	w := float64(screen.Bounds().Dx())
	py := cfg.Ambience.ParallaxY

	for _, c := range amb.Clouds {
		img := assets.CloudImage(c.Image)
		iw := float64(img.Bounds().Dx())
		x := math.Mod(c.Pos.X-scroll.X*c.Depth, w+iw)
		if x < 0 {
			x += w + iw
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(x-iw), math.Floor(c.Pos.Y-scroll.Y*c.Depth*py))
		screen.DrawImage(img, drawOp)
	}

	for _, l := range amb.Lanterns {
		x := math.Mod(l.Pos.X-scroll.X*l.Depth, 2*w)
		if x < 0 {
			x += 2 * w
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(x-w/2), math.Floor(l.Pos.Y-scroll.Y*l.Depth*py))
		screen.DrawImage(assets.LanternImage(l.Size), drawOp)
	}

	for _, s := range amb.Sparrows {
		frame := 0
		if s.Flapping && s.Anim != nil {
			frame = s.Anim.Frame()
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if s.Dir < 0 {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(7, 0)
		}
		drawOp.GeoM.Translate(math.Floor(s.Pos.X-scroll.X*s.Depth), math.Floor(s.Pos.Y-scroll.Y*s.Depth*py))
		screen.DrawImage(assets.SparrowImage(frame), drawOp)
	}
}

// DrawRain draws the rain in front of the level.
func DrawRain(e *ecs.ECS, screen *ebiten.Image) {
	amb := GetOrCreateAmbience(e)
	if !amb.RainOn {
		return
	}
	offset := renderOffset(e)
	colors := cfg.Ambience.RainColors
	for _, d := range amb.Rain {
		x := float32(d.Pos.X - offset.X)
		y := float32(d.Pos.Y - offset.Y)
		clr := colors[d.Color%len(colors)]
		vector.StrokeLine(screen, x, y, x+float32(d.Angle*d.Length), y+float32(d.Length), 1, clr, false)
	}
}

// DrawProps draws crumble blocks, spikes and pickups.
func DrawProps(e *ecs.ECS, screen *ebiten.Image) {
	offset := renderOffset(e)

	tags.Crumble.Each(e.World, func(entry *donburi.Entry) {
		block := components.Crumble.Get(entry)
		if block.State == components.CrumbleGone {
			return
		}
		x, y := block.Pos.X, block.Pos.Y
		if block.State == components.CrumbleCrumbling {
			s := cfg.Crumble.ShakeAmount
			x += rand.Float64()*2*s - s
			y += rand.Float64()*2*s - s
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(x-offset.X), math.Floor(y-offset.Y))
		screen.DrawImage(assets.CrumbleImage(block.Variant), drawOp)
	})

	tags.Spike.Each(e.World, func(entry *donburi.Entry) {
		spike := components.Spike.Get(entry)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(spike.Pos.X-offset.X), math.Floor(spike.Pos.Y-offset.Y))
		screen.DrawImage(assets.SpikeImage(spike.Variant, spike.Ceiling), drawOp)
	})

	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pickup.Get(entry)
		r := p.Rect()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(r.X-offset.X), math.Floor(r.Y-offset.Y))
		screen.DrawImage(assets.PickupImage(p.Kind), drawOp)
	})
}

// DrawActors draws enemies and the player as tinted silhouettes.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	offset := renderOffset(e)
	session := GetOrCreateSession(e)
	ms := float64(session.Tick) * 1000 / float64(cfg.C.TPS)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		enemy := components.Enemy.Get(entry)
		health := components.Health.Get(entry)

		clr := cfg.White
		if enemy.TypeConfig != nil {
			clr = enemy.TypeConfig.Color
		}
		if enemy.Enraged {
			clr = cfg.Syojyohi
		}
		alpha := float32(1)
		if enemy.TypeName == cfg.EnemyYurei {
			alpha = float32(140+80*math.Sin(ms/300)) / 255
		}
		if health.Invuln > 0 && health.Invuln%4 < 2 {
			clr = cfg.White
			alpha *= 0.6
		}
		drawBody(screen, body, offset, clr, alpha, 1)

		if enemy.TypeName == cfg.EnemyOni && health.Current < health.Max {
			drawHealthBar(screen, body, offset, health)
		}
	})

	entry, ok := playerEntry(e)
	if !ok || session.Dead > 0 {
		return
	}
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)
	clr := cfg.CharacterByName(player.Character).Color

	alpha := float32(1)
	if player.SmokeActive > 0 {
		alpha = 0.35
	}
	scaleY := 1.0
	if player.Sliding {
		scaleY = 0.6
	}
	drawBody(screen, body, offset, clr, alpha, scaleY)

	cx := float32(body.CenterX() - offset.X)
	cy := float32(body.CenterY() - offset.Y)
	if player.SmokeActive > 0 {
		vector.DrawFilledCircle(screen, cx, cy, 10, cfg.Render.SmokeColor, true)
	}
	if player.Shield {
		vector.StrokeCircle(screen, cx, cy, 11, 1, cfg.Render.ShieldColor, true)
	}
	if player.Blessing {
		vector.StrokeCircle(screen, cx, cy, 13, 1, cfg.Render.BlessingColor, true)
	}
}

// drawBody draws a body's silhouette, flipped to its facing and squashed
// toward its feet by scaleY.
func drawBody(screen *ebiten.Image, body *components.BodyData, offset dmath.Vec2, clr color.RGBA, alpha float32, scaleY float64) {
	img := assets.BodyImage(int(body.W), int(body.H))
	var geom ebiten.GeoM
	if body.Flip {
		geom.Scale(-1, 1)
		geom.Translate(body.W, 0)
	}
	geom.Scale(1, scaleY)
	geom.Translate(0, body.H*(1-scaleY))
	geom.Translate(math.Floor(body.Pos.X-offset.X), math.Floor(body.Pos.Y-offset.Y))
	assets.DrawTinted(screen, img, geom, clr, alpha)
}

func drawHealthBar(screen *ebiten.Image, body *components.BodyData, offset dmath.Vec2, health *components.HealthData) {
	barW := float32(12)
	x := float32(body.CenterX()-offset.X) - barW/2
	y := float32(body.Pos.Y-offset.Y) - 4
	vector.FillRect(screen, x, y, barW, 2, cfg.Kachi, false)
	frac := float32(max(0, health.Current)) / float32(max(1, health.Max))
	vector.FillRect(screen, x, y, barW*frac, 2, cfg.Akane, false)
}

// DrawEffects draws particles, projectiles and sparks.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	offset := renderOffset(e)
	fx := GetOrCreateEffects(e)

	for _, p := range fx.Particles {
		frame := 0
		if p.Anim != nil {
			frame = p.Anim.Frame()
		}
		img := assets.ParticleImage(p.Type, frame)
		half := float64(img.Bounds().Dx()) / 2
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(p.Pos.X-half-offset.X), math.Floor(p.Pos.Y-half-offset.Y))
		screen.DrawImage(img, drawOp)
	}

	for _, p := range fx.Projectiles {
		img := assets.ProjectileImage(p.Sprite)
		b := img.Bounds()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if p.Flip {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(b.Dx()), 0)
		}
		drawOp.GeoM.Translate(math.Floor(p.Pos.X-float64(b.Dx())/2-offset.X), math.Floor(p.Pos.Y-float64(b.Dy())/2-offset.Y))
		screen.DrawImage(img, drawOp)
	}

	for _, s := range fx.Sparks {
		drawSpark(screen, s, offset)
	}
}

// drawSpark draws a spark as a diamond stretched along its heading, sized
// by its remaining speed.
func drawSpark(screen *ebiten.Image, s components.Spark, offset dmath.Vec2) {
	x := s.Pos.X - offset.X
	y := s.Pos.Y - offset.Y
	long := s.Speed * 3
	short := s.Speed / 2
	point := func(angle, dist float64) [2]float32 {
		return [2]float32{float32(x + math.Cos(angle)*dist), float32(y + math.Sin(angle)*dist)}
	}
	assets.FillPolygon(screen, [][2]float32{
		point(s.Angle, long),
		point(s.Angle+math.Pi/2, short),
		point(s.Angle+math.Pi, long),
		point(s.Angle-math.Pi/2, short),
	}, cfg.Render.SparkColor, ebiten.BlendSourceOver)
}

// DrawTransition draws the circular wipe: the screen is covered except for a
// circle whose radius shrinks as the transition counter moves away from 0.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateSession(e).Transition
	if t == 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if wipeImg == nil || wipeImg.Bounds().Dx() != w || wipeImg.Bounds().Dy() != h {
		wipeImg = ebiten.NewImage(w, h)
	}
	wipeImg.Fill(cfg.UI.WipeColor)

	radius := WipeRadius(t)
	if radius > 0 {
		cx, cy := float64(w)/2, float64(h)/2
		const segments = 48
		points := make([][2]float32, segments)
		for i := range points {
			a := float64(i) * 2 * math.Pi / segments
			points[i] = [2]float32{float32(cx + math.Cos(a)*radius), float32(cy + math.Sin(a)*radius)}
		}
		assets.FillPolygon(wipeImg, points, cfg.UI.WipeColor, ebiten.BlendClear)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(wipeImg, drawOp)
}

// WipeRadius is the open circle's radius for a transition value.
func WipeRadius(transition int) float64 {
	t := transition
	if t < 0 {
		t = -t
	}
	return float64(cfg.Session.TransitionMax-t) * cfg.Session.WipeScale
}

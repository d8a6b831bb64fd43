package systems

import (
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/kagerun/assets/animations"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ConfigureAmbience rebuilds the background effects for a theme. Clouds
// always drift; rain, lanterns and birds follow the theme flags.
func ConfigureAmbience(e *ecs.ECS, theme cfg.Theme) {
	amb := GetOrCreateAmbience(e)
	r := rng(e)
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	amb.Clouds = amb.Clouds[:0]
	for i := 0; i < cfg.Ambience.Clouds; i++ {
		amb.Clouds = append(amb.Clouds, components.Cloud{
			Pos:   dmath.Vec2{X: r.Float64() * 99999, Y: randRange(r, 0, math.Max(0, h/8-16))},
			Speed: r.Float64()*0.05 + 0.05,
			Depth: r.Float64()*0.6 + 0.2,
			Image: r.Intn(cfg.Ambience.CloudImages),
		})
	}
	sort.SliceStable(amb.Clouds, func(i, j int) bool { return amb.Clouds[i].Depth < amb.Clouds[j].Depth })

	amb.RainOn = theme.Rain
	amb.Rain = amb.Rain[:0]

	amb.LanternsOn = theme.Lanterns
	amb.Lanterns = amb.Lanterns[:0]
	if theme.Lanterns {
		for i := 0; i < cfg.Ambience.Lanterns; i++ {
			size := randInt(r, 0, 2)
			amb.Lanterns = append(amb.Lanterns, components.Lantern{
				Pos:   dmath.Vec2{X: randRange(r, -w, w), Y: float64(randInt(r, 0, int(h)/2))},
				Depth: cfg.Ambience.LanternDepths[size],
				Phase: r.Float64() * 2 * math.Pi,
				Size:  size,
			})
		}
	}

	amb.Bird = theme.Bird
	amb.Sparrows = amb.Sparrows[:0]
	amb.SparrowTimer = 0
}

// UpdateAmbience moves clouds, rain, lanterns and birds.
func UpdateAmbience(e *ecs.ECS) {
	amb := GetOrCreateAmbience(e)
	session := GetOrCreateSession(e)
	r := session.Rand
	ms := float64(session.Tick) * 1000 / float64(cfg.C.TPS)

	for i := range amb.Clouds {
		amb.Clouds[i].Pos.X += amb.Clouds[i].Speed
	}

	if amb.RainOn {
		updateRain(e, amb, r)
	}

	for i := range amb.Lanterns {
		l := &amb.Lanterns[i]
		l.Pos.Y += math.Sin(ms/1500+l.Phase) * 0.1
	}

	if amb.Bird != "" {
		updateSparrows(e, amb, r, ms)
	}
}

// updateRain keeps the drops falling inside a circle around the player,
// respawning any drop that leaves it.
func updateRain(e *ecs.ECS, amb *components.AmbienceData, r *rand.Rand) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	center := dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}
	radius := cfg.Ambience.RainRadius

	if len(amb.Rain) == 0 {
		for i := 0; i < cfg.Ambience.RainDrops; i++ {
			amb.Rain = append(amb.Rain, newRainDrop(r, center))
		}
	}
	for i := range amb.Rain {
		d := &amb.Rain[i]
		d.Pos.X += d.Angle * d.Speed
		d.Pos.Y += d.Speed
		dx := d.Pos.X - center.X
		dy := d.Pos.Y - center.Y
		if dx*dx+dy*dy > radius*radius {
			*d = newRainDrop(r, center)
		}
	}
}

func newRainDrop(r *rand.Rand, center dmath.Vec2) components.RainDrop {
	depth := randRange(r, 0.6, 1.2)
	x, y := gamemath.Polar(r.Float64()*2*math.Pi, r.Float64()*cfg.Ambience.RainRadius)
	return components.RainDrop{
		Pos:    dmath.Vec2{X: center.X + x, Y: center.Y + y},
		Depth:  depth,
		Speed:  randRange(r, 4, 9) * depth,
		Length: float64(randInt(r, 4, 10)),
		Angle:  randRange(r, -0.25, -0.1),
		Color:  r.Intn(len(cfg.Ambience.RainColors)),
	}
}

// updateSparrows spawns birds at the screen edges now and then and flies
// them across, alternating between flapping and gliding.
func updateSparrows(e *ecs.ECS, amb *components.AmbienceData, r *rand.Rand, ms float64) {
	scroll := GetOrCreateCamera(e).Position
	w := float64(cfg.C.Width)

	amb.SparrowTimer++
	if amb.SparrowTimer >= randInt(r, 60, 240) && len(amb.Sparrows) < cfg.Ambience.MaxSparrows && r.Float64() < cfg.Ambience.SparrowChance {
		amb.Sparrows = append(amb.Sparrows, newSparrow(r, scroll))
		amb.SparrowTimer = 0
	}

	kept := amb.Sparrows[:0]
	for _, s := range amb.Sparrows {
		s.Pos.X += s.Speed * s.Dir
		s.GlideTimer++
		if s.GlideTimer >= s.GlideInterval {
			s.Flapping = !s.Flapping
			s.GlideTimer = 0
			s.GlideInterval = randInt(r, 120, 300)
		}
		if s.Flapping {
			s.Pos.Y = s.BaseY + math.Sin(ms*s.BobSpeed+s.BobPhase)*s.BobAmplitude
			s.Anim.Update()
		} else {
			s.Anim.Restart()
			// gliding lasts half as long as flapping
			s.GlideTimer++
		}

		screenX := s.Pos.X - scroll.X*s.Depth
		margin := cfg.Ambience.SparrowDespawn
		if (s.Dir > 0 && screenX > w+margin) || (s.Dir < 0 && screenX < -margin) {
			continue
		}
		kept = append(kept, s)
	}
	clear(amb.Sparrows[len(kept):])
	amb.Sparrows = kept
}

func newSparrow(r *rand.Rand, scroll dmath.Vec2) components.Sparrow {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	depth := randRange(r, 0.5, 1.0)
	y := randRange(r, h*0.1, h*0.45) + scroll.Y*depth*cfg.Ambience.ParallaxY

	dir := 1.0
	if r.Intn(2) == 0 {
		dir = -1
	}
	margin := cfg.Ambience.SparrowMargin / (1 - depth + 1e-3)
	x := scroll.X*depth - margin
	if dir < 0 {
		x = scroll.X*depth + w + margin
	}

	return components.Sparrow{
		Pos:           dmath.Vec2{X: x, Y: y},
		BaseY:         y,
		Speed:         randRange(r, 0.2, 0.8),
		Depth:         depth,
		Dir:           dir,
		BobAmplitude:  randRange(r, 0.6, 1.6),
		BobSpeed:      randRange(r, 0.0008, 0.0015),
		BobPhase:      r.Float64() * 2 * math.Pi,
		Flapping:      true,
		GlideInterval: randInt(r, 120, 300),
		Anim:          animations.Def{Frames: 4, Duration: randInt(r, 6, 10), Loop: true}.New(),
	}
}

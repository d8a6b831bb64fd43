package systems

import (
	"log"
	"math"

	"github.com/automoto/kagerun/assets/animations"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticle adds a particle of the given type starting frame ticks into
// its sequence. Unknown types are dropped with a warning.
func SpawnParticle(e *ecs.ECS, typ string, pos, vel dmath.Vec2, frame int) {
	def, ok := cfg.Effects.Particles[typ]
	if !ok {
		log.Printf("Warning: unknown particle type %q", typ)
		return
	}
	anim := animations.Def{Frames: def.Frames, Duration: def.Duration}.New()
	anim.SetTick(frame)
	fx := GetOrCreateEffects(e)
	fx.Particles = append(fx.Particles, components.Particle{Type: typ, Pos: pos, Vel: vel, Anim: anim})
}

func SpawnSpark(e *ecs.ECS, pos dmath.Vec2, angle, speed float64) {
	fx := GetOrCreateEffects(e)
	fx.Sparks = append(fx.Sparks, components.Spark{Pos: pos, Angle: angle, Speed: speed})
}

func SpawnProjectile(e *ecs.ECS, p components.Projectile) {
	fx := GetOrCreateEffects(e)
	fx.Projectiles = append(fx.Projectiles, p)
}

// impactBurst throws n sparks from pos, each paired with a debris particle
// flying the opposite way.
func impactBurst(e *ecs.ECS, pos dmath.Vec2, n int) {
	r := rng(e)
	for i := 0; i < n; i++ {
		angle := r.Float64() * 2 * math.Pi
		speed := r.Float64() * 5
		SpawnSpark(e, pos, angle, 2+r.Float64())
		vx, vy := gamemath.Polar(angle+math.Pi, speed*0.5)
		SpawnParticle(e, "particle", pos, dmath.Vec2{X: vx, Y: vy}, randInt(r, 0, 7))
	}
}

// muzzleFlash throws n sparks in a cone facing dir.
func muzzleFlash(e *ecs.ECS, pos dmath.Vec2, dir float64, n int) {
	r := rng(e)
	for i := 0; i < n; i++ {
		angle := r.Float64() - 0.5
		if dir < 0 {
			angle += math.Pi
		}
		SpawnSpark(e, pos, angle, 2+r.Float64())
	}
}

// cloudBurst puffs cloud particles from under a body's feet.
func cloudBurst(e *ecs.ECS, body *components.BodyData) {
	r := rng(e)
	spreadX := cfg.Effects.CloudBurstSpreadX
	for i := 0; i < cfg.Effects.CloudBurstCount; i++ {
		pos := dmath.Vec2{
			X: body.CenterX() + randRange(r, -spreadX, spreadX),
			Y: body.Bottom() + randRange(r, 0, cfg.Effects.CloudBurstSpreadY),
		}
		vel := dmath.Vec2{X: randRange(r, -0.3, 0.3), Y: randRange(r, 0.2, 0.45)}
		SpawnParticle(e, "cloud_jump", pos, vel, randInt(r, 0, 3))
	}
}

// UpdateParticles advances every particle and drops the finished ones.
func UpdateParticles(e *ecs.ECS) {
	fx := GetOrCreateEffects(e)
	kept := fx.Particles[:0]
	for _, p := range fx.Particles {
		if stepParticle(&p) {
			kept = append(kept, p)
		}
	}
	clear(fx.Particles[len(kept):])
	fx.Particles = kept
}

// stepParticle reports whether the particle survives this tick.
func stepParticle(p *components.Particle) bool {
	done := p.Anim.Done()
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.Anim.Update()
	if cfg.Effects.Particles[p.Type].Drift {
		p.Pos.X += math.Sin(float64(p.Anim.Tick())*cfg.Effects.DriftFrequency) * cfg.Effects.DriftAmplitude
	}
	return !done
}

func UpdateSparks(e *ecs.ECS) {
	fx := GetOrCreateEffects(e)
	kept := fx.Sparks[:0]
	for _, s := range fx.Sparks {
		dx, dy := gamemath.Polar(s.Angle, s.Speed)
		s.Pos.X += dx
		s.Pos.Y += dy
		s.Speed = math.Max(0, s.Speed-cfg.Effects.SparkDecay)
		if s.Speed > 0 {
			kept = append(kept, s)
		}
	}
	fx.Sparks = kept
}

// sparkPoints returns the diamond outline of a spark, stretched along its
// heading by its speed.
func sparkPoints(s components.Spark) [4]dmath.Vec2 {
	at := func(angle, length float64) dmath.Vec2 {
		x, y := gamemath.Polar(angle, length)
		return dmath.Vec2{X: s.Pos.X + x, Y: s.Pos.Y + y}
	}
	return [4]dmath.Vec2{
		at(s.Angle, s.Speed*3),
		at(s.Angle+math.Pi/2, s.Speed*0.5),
		at(s.Angle+math.Pi, s.Speed*3),
		at(s.Angle-math.Pi/2, s.Speed*0.5),
	}
}

package components

import (
	"github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyBehavior is the per-variant logic an enemy is built with.
type EnemyBehavior interface {
	// Update advances the enemy one tick and reports whether it died.
	Update(e *ecs.ECS, entry *donburi.Entry) bool
	// TakeDamage applies a hit and reports whether it was lethal.
	TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount int) bool
	// Die plays the death effects. It always reports true.
	Die(e *ecs.ECS, entry *donburi.Entry) bool
}

type EnemyData struct {
	TypeName   string
	TypeConfig *config.EnemyTypeConfig
	Behavior   EnemyBehavior

	Walking         int // Gunner walk ticks left
	ShootTimer      int // Oni ticks since the last volley
	Enraged         bool
	ContactCooldown int // Yurei ticks until it can touch the player again
	Age             int
}

var Enemy = donburi.NewComponentType[EnemyData]()

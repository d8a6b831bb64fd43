package config

import (
	"image/color"

	"github.com/automoto/kagerun/assets/animations"
)

// Abilities a character can carry
const (
	AbilitySmokeBomb = "smoke_bomb"
	AbilityBlowgun   = "blowgun"
)

// Character describes a playable character
type Character struct {
	Name         string
	Ability      string
	DashParticle string // particle type emitted at the ends of a dash burst
	Width        float64
	Height       float64
	Color        color.RGBA
	Anims        map[string]animations.Def
}

// CharacterConfig lists the playable characters and unlock rules
type CharacterConfig struct {
	List            []Character
	DefaultUnlocked []string
	Default         string
	UnlockAt        map[int]string // clearing this level unlocks the character
}

var Characters CharacterConfig

// CharacterByName returns the named character, falling back to the default.
func CharacterByName(name string) Character {
	for _, c := range Characters.List {
		if c.Name == name {
			return c
		}
	}
	for _, c := range Characters.List {
		if c.Name == Characters.Default {
			return c
		}
	}
	return Character{Name: name, Ability: AbilitySmokeBomb, DashParticle: "particle", Width: 8, Height: 15, Anims: PlayerAnimations}
}

func init() {
	Characters = CharacterConfig{
		Default:         "Ninja Hiro",
		DefaultUnlocked: []string{"Ninja Hiro"},
		UnlockAt: map[int]string{
			10: "Ninja Hana",
			20: "Tengu",
		},
		List: []Character{
			{Name: "Ninja Hiro", Ability: AbilitySmokeBomb, DashParticle: "particle", Width: 8, Height: 15, Color: Ai, Anims: PlayerAnimations},
			{Name: "Ninja Hana", Ability: AbilitySmokeBomb, DashParticle: "cherry_blossom_dash", Width: 8, Height: 15, Color: Momo, Anims: PlayerAnimations},
			{Name: "Knight", Ability: AbilitySmokeBomb, DashParticle: "particle", Width: 8, Height: 15, Color: Haizakura, Anims: PlayerAnimations},
			{Name: "Tengu", Ability: AbilityBlowgun, DashParticle: "particle", Width: 8, Height: 15, Color: Syojyohi, Anims: PlayerAnimations},
		},
	}
}

package config

// Tip is a timed on-screen hint
type Tip struct {
	Text     string
	Seconds  float64
	FontSize float64
}

// TutorialConfig holds per-level tip sequences and pickup hints
type TutorialConfig struct {
	Levels     map[int][]Tip
	PickupTips map[string]PickupTip
}

// PickupTip is shown the first time a pickup is collected on its level
type PickupTip struct {
	Level int
	Tip   Tip
}

var Tutorials TutorialConfig

func init() {
	Tutorials = TutorialConfig{
		Levels: map[int][]Tip{
			0: {
				{Text: "A/D to move", Seconds: 3, FontSize: 8},
				{Text: "W to jump/double jump | S to slide", Seconds: 4, FontSize: 8},
				{Text: "SHIFT to dash attack | SPACE to smoke bomb", Seconds: 4, FontSize: 6},
				{Text: "Smoke bomb grants 2 seconds of invulnerability", Seconds: 4, FontSize: 6},
			},
			1: {
				{Text: "Jump early in a slide to boosted jump", Seconds: 4, FontSize: 8},
				{Text: "You can dash through projectiles", Seconds: 4, FontSize: 8},
			},
			2: {
				{Text: "Fall against walls to wall slide", Seconds: 3, FontSize: 8},
				{Text: "Jump during wall slides to wall jump", Seconds: 3, FontSize: 8},
			},
			11: {
				{Text: "You can slide under ceiling spikes", Seconds: 3, FontSize: 8},
			},
			13: {
				{Text: "You can jump through platforms", Seconds: 3, FontSize: 8},
				{Text: "S while still to fall through them", Seconds: 3, FontSize: 8},
			},
		},
		PickupTips: map[string]PickupTip{
			PickupRamen:    {Level: 3, Tip: Tip{Text: "Spicy Ramen lets you dash more often!", Seconds: 4, FontSize: 8}},
			PickupSushi:    {Level: 5, Tip: Tip{Text: "Sushi Shield blocks one hit of damage!", Seconds: 4, FontSize: 8}},
			PickupBlessing: {Level: 15, Tip: Tip{Text: "You can exercise a spirit!", Seconds: 4, FontSize: 8}},
		},
	}
}

// Pickup kinds, matching pickup variants 0..2
const (
	PickupRamen    = "ramen"
	PickupSushi    = "sushi"
	PickupBlessing = "spirit_blessing"
)

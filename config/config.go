package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Title  string
}

// PhysicsConfig contains the values shared by every grid-colliding body
type PhysicsConfig struct {
	Gravity           float64
	MaxFallSpeed      float64
	PlatformTolerance float64 // previous-bottom slack for one-way platforms
	MinNudge          float64 // smallest push out of a platform while dropping
	AirResistance     float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX float64
	SpawnY float64

	// Jumping
	JumpSpeed       float64
	BoostMultiplier float64 // applied while the slide boost window is open
	MaxJumps        int
	GroundGrace     int // ticks a jump stays available after leaving ground
	JumpAirTime     int // air_time forced by any jump
	AirJumpAfter    int // air_time after which the ground jump is spent

	// Wall slide
	WallJumpX       float64
	WallJumpY       float64
	WallSlideSpeed  float64
	WallSlideMinVY  float64
	WallSlideMinAir int

	// Platforms
	DropTime  int
	DropNudge float64
	DropMinVY float64

	// Death
	FallDeathTime int
	DeathShake    int
	DeathSparks   int
}

// DashConfig contains dash attack tuning
type DashConfig struct {
	Duration       int     // starting magnitude of the dash counter
	BurstEnd       int     // counter magnitude below which the burst stops
	Speed          float64 // horizontal speed during the burst
	EndScale       float64 // applied to the speed on the last burst tick
	Cooldown       int
	BurstParticles int
	HitThreshold   int // counter magnitude that deals contact damage
}

// SlideConfig contains slide tuning
type SlideConfig struct {
	MinSpeed    float64
	Decay       float64
	StopSpeed   float64
	Cooldown    int
	BoostWindow int
}

// AbilitiesConfig contains per-ability and buff tuning
type AbilitiesConfig struct {
	SmokeDuration  int
	SmokeCooldown  int
	SmokeParticles int

	BlowgunCooldown int
	BlowgunSpeed    float64
	BlowgunOffset   float64
	BlowgunDamage   int
	MuzzleSparks    int

	RamenMultiplier float64
	RamenDuration   int
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string
	Width        float64
	Height       float64
	Health       int
	InvulnFrames int

	MoveSpeed  float64
	ShotSpeed  float64
	ShotSprite string

	// Gunner
	WalkChance float64
	WalkMin    int
	WalkMax    int
	FireBand   float64 // max vertical distance to fire at the player

	// Oni
	ShootInterval int
	ShootRange    float64
	ChaseRange    float64

	// Yurei
	SightRange      float64
	SightStep       float64
	ContactCooldown int
	BobSpeed        float64
	BobAmplitude    float64

	DeathSound SoundID
	Color      color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	LookAhead   float64 // distance ahead checked for ledges and hazards
	ShotOffset  float64 // horizontal muzzle offset from center
	MuzzleFlash int     // sparks per shot
	HitShake    int
	HitSparks   int
	DeathSparks int
	BigSparkMin float64
}

// EffectsConfig contains transient object configuration
type EffectsConfig struct {
	Particles map[string]ParticleDef

	SparkDecay        float64
	ProjectileLife    int
	ImpactSparks      int
	DriftFrequency    float64
	DriftAmplitude    float64
	EmitterDensity    float64 // spawn chance is w*h/EmitterDensity per tick
	EmitterVelX       float64
	EmitterVelY       float64
	EmitterMaxOffset  int
	CloudBurstCount   int
	CloudBurstSpreadX float64
	CloudBurstSpreadY float64
}

// ParticleDef is a particle type's image sequence
type ParticleDef struct {
	Frames   int
	Duration int
	Drift    bool
	Color    color.RGBA
}

// CrumbleConfig contains crumble block timing
type CrumbleConfig struct {
	Size          float64
	CrumbleTicks  int
	FallTicks     int
	FallGravity   float64
	ShakeAmount   float64
	VariantColors []color.RGBA
}

// PickupConfig contains pickup tuning
type PickupConfig struct {
	Size         float64
	BobSpeed     float64
	BobAmplitude float64
	BobEaseTicks int
}

// SpikeConfig contains spike hitbox and grace configuration
type SpikeConfig struct {
	Size         float64
	HitboxHeight float64
	FloorOffset  float64
	CeilingProbe float64
	FloorProbe   float64
	Grace        int
}

// SessionConfig contains level flow configuration
type SessionConfig struct {
	TransitionStart int // negative, counts up after a level load
	TransitionMax   int
	AdvanceAfter    int // transition value that loads the next level
	DeadWipeStart   int
	ReloadAfter     int
	WipeScale       float64
	MapDir          string
	SaveAppName     string
	Slots           int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadX      float64
	SmoothingX float64
	SmoothingY float64
	AnchorY    float64 // fraction of screen height the player sits at
}

// AmbienceConfig contains background effect counts and ranges
type AmbienceConfig struct {
	Clouds         int
	CloudImages    int
	RainDrops      int
	RainRadius     float64
	RainColors     []color.RGBA
	Lanterns       int
	LanternDepths  [3]float64
	MaxSparrows    int
	SparrowChance  float64
	SparrowMargin  float64
	SparrowDespawn float64
	// ParallaxY scales vertical parallax so background layers stay high
	ParallaxY float64
}

// BannerConfig contains the level banner tween timing
type BannerConfig struct {
	FadeIn  float32
	Hold    float32
	FadeOut float32
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// UIConfig contains HUD colors and sizes
type UIConfig struct {
	HUDTextColor  color.RGBA
	HUDShadow     color.RGBA
	CooldownColor color.RGBA
	ReadyColor    color.RGBA
	TipBoxColor   color.RGBA
	WipeColor     color.RGBA
	HUDMargin     float64

	MenuBackground    color.RGBA
	MenuRowBackground color.RGBA
}

// FinishConfig contains the end-of-run overlay layout
type FinishConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	TitleY       float64
	StatsY       float64
	LineHeight   float64
	HintY        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	ShowBoxes  bool // Draw collision rects
	StartLevel int
	Character  string
	Slot       int
	ThemesPath string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Dash DashConfig
var Slide SlideConfig
var Abilities AbilitiesConfig
var Enemies EnemyConfig
var Effects EffectsConfig
var Crumble CrumbleConfig
var Pickups PickupConfig
var Spikes SpikeConfig
var Session SessionConfig
var Camera CameraConfig
var Ambience AmbienceConfig
var Banner BannerConfig
var Pause PauseConfig
var UI UIConfig
var Finish FinishConfig
var Debug DebugConfig

// Enemy type keys, matching spawner variants 1..3
const (
	EnemyGunner = "gunner"
	EnemyOni    = "oni"
	EnemyYurei  = "yurei"
)

// Palette
var (
	White        = color.RGBA{R: 243, G: 243, B: 243, A: 255}
	Black        = color.RGBA{R: 13, G: 13, B: 13, A: 255}
	Akane        = color.RGBA{R: 183, G: 40, B: 46, A: 255}
	Sakura       = color.RGBA{R: 254, G: 223, B: 225, A: 255}
	Momo         = color.RGBA{R: 245, G: 150, B: 170, A: 255}
	Mizu         = color.RGBA{R: 162, G: 215, B: 221, A: 255}
	Ai           = color.RGBA{R: 22, G: 94, B: 131, A: 255}
	Kon          = color.RGBA{R: 0, G: 56, B: 84, A: 255}
	Kachi        = color.RGBA{R: 27, G: 47, B: 59, A: 255}
	Kikyou       = color.RGBA{R: 86, G: 84, B: 162, A: 255}
	Suoh         = color.RGBA{R: 142, G: 53, B: 74, A: 255}
	Kurotobi     = color.RGBA{R: 85, G: 66, B: 54, A: 255}
	Hiwada       = color.RGBA{R: 133, G: 72, B: 54, A: 255}
	Haizakura    = color.RGBA{R: 215, G: 196, B: 187, A: 255}
	Matcha       = color.RGBA{R: 197, G: 197, B: 106, A: 255}
	Kohaku       = color.RGBA{R: 202, G: 122, B: 44, A: 255}
	Syojyohi     = color.RGBA{R: 232, G: 48, B: 21, A: 255}
	Umenezumi    = color.RGBA{R: 158, G: 122, B: 122, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  320,
		Height: 240,
		Scale:  3,
		TPS:    60,
		Title:  "Kagerun",
	}

	Physics = PhysicsConfig{
		Gravity:           0.1,
		MaxFallSpeed:      5,
		PlatformTolerance: 1.2,
		MinNudge:          0.1,
		AirResistance:     0.1,
	}

	Player = PlayerConfig{
		SpawnX:          50,
		SpawnY:          50,
		JumpSpeed:       3.1,
		BoostMultiplier: 1.3,
		MaxJumps:        2,
		GroundGrace:     4,
		JumpAirTime:     5,
		AirJumpAfter:    4,
		WallJumpX:       3.5,
		WallJumpY:       2.2,
		WallSlideSpeed:  0.5,
		WallSlideMinVY:  0.4,
		WallSlideMinAir: 4,
		DropTime:        4,
		DropNudge:       0.2,
		DropMinVY:       0.05,
		FallDeathTime:   180,
		DeathShake:      16,
		DeathSparks:     30,
	}

	Dash = DashConfig{
		Duration:       60,
		BurstEnd:       50,
		Speed:          8,
		EndScale:       0.1,
		Cooldown:       60,
		BurstParticles: 20,
		HitThreshold:   50,
	}

	Slide = SlideConfig{
		MinSpeed:    2,
		Decay:       0.02,
		StopSpeed:   0.2,
		Cooldown:    60,
		BoostWindow: 30,
	}

	Abilities = AbilitiesConfig{
		SmokeDuration:   120,
		SmokeCooldown:   480,
		SmokeParticles:  25,
		BlowgunCooldown: 30,
		BlowgunSpeed:    3,
		BlowgunOffset:   8,
		BlowgunDamage:   1,
		MuzzleSparks:    4,
		RamenMultiplier: 0.5,
		RamenDuration:   15 * 60,
	}

	Enemies = EnemyConfig{
		LookAhead:   7,
		ShotOffset:  7,
		MuzzleFlash: 4,
		HitShake:    16,
		HitSparks:   15,
		DeathSparks: 30,
		BigSparkMin: 5,
		Types: map[string]EnemyTypeConfig{
			EnemyGunner: {
				Name:       "Gunner",
				Width:      8,
				Height:     15,
				Health:     1,
				MoveSpeed:  0.5,
				ShotSpeed:  1.5,
				ShotSprite: "projectile",
				WalkChance: 0.01,
				WalkMin:    30,
				WalkMax:    120,
				FireBand:   16,
				DeathSound: SoundHit,
				Color:      Kohaku,
			},
			EnemyOni: {
				Name:          "Oni",
				Width:         8,
				Height:        15,
				Health:        5,
				InvulnFrames:  24,
				MoveSpeed:     0.3,
				ShotSpeed:     2.5,
				ShotSprite:    "projectile",
				ShootInterval: 60,
				ShootRange:    450,
				ChaseRange:    300,
				DeathSound:    SoundOniDeath,
				Color:         Akane,
			},
			EnemyYurei: {
				Name:            "Yurei",
				Width:           8,
				Height:          20,
				Health:          3,
				InvulnFrames:    24,
				MoveSpeed:       0.5,
				SightRange:      180,
				SightStep:       8,
				ContactCooldown: 60,
				BobSpeed:        0.002,
				BobAmplitude:    0.05,
				DeathSound:      SoundYureiDeath,
				Color:           Mizu,
			},
		},
	}

	Effects = EffectsConfig{
		Particles: map[string]ParticleDef{
			"leaf":                {Frames: 18, Duration: 20, Drift: true, Color: Matcha},
			"cherry_blossom":      {Frames: 18, Duration: 20, Drift: true, Color: Momo},
			"cherry_blossom_dash": {Frames: 4, Duration: 6, Color: Sakura},
			"particle":            {Frames: 4, Duration: 6, Color: White},
			"cloud_jump":          {Frames: 8, Duration: 2, Color: Haizakura},
			"divine_flame":        {Frames: 8, Duration: 2, Color: Mizu},
		},
		SparkDecay:        0.1,
		ProjectileLife:    180,
		ImpactSparks:      4,
		DriftFrequency:    0.035,
		DriftAmplitude:    0.3,
		EmitterDensity:    49999,
		EmitterVelX:       -0.1,
		EmitterVelY:       0.3,
		EmitterMaxOffset:  20,
		CloudBurstCount:   20,
		CloudBurstSpreadX: 2.5,
		CloudBurstSpreadY: 1.5,
	}

	Crumble = CrumbleConfig{
		Size:         16,
		CrumbleTicks: 40,
		FallTicks:    60,
		FallGravity:  0.6,
		ShakeAmount:  1,
		VariantColors: []color.RGBA{
			Hiwada, Kurotobi, Umenezumi, Suoh,
		},
	}

	Pickups = PickupConfig{
		Size:         16,
		BobSpeed:     0.05,
		BobAmplitude: 2,
		BobEaseTicks: 30,
	}

	Spikes = SpikeConfig{
		Size:         16,
		HitboxHeight: 6,
		FloorOffset:  10,
		CeilingProbe: -4,
		FloorProbe:   18,
		Grace:        60,
	}

	Session = SessionConfig{
		TransitionStart: -30,
		TransitionMax:   30,
		AdvanceAfter:    45,
		DeadWipeStart:   10,
		ReloadAfter:     40,
		WipeScale:       8,
		MapDir:          "maps",
		SaveAppName:     "kagerun",
		Slots:           3,
	}

	Camera = CameraConfig{
		LeadX:      24,
		SmoothingX: 30,
		SmoothingY: 12,
		AnchorY:    2.0 / 3.0,
	}

	Ambience = AmbienceConfig{
		Clouds:         8,
		CloudImages:    3,
		RainDrops:      300,
		RainRadius:     300,
		RainColors:     []color.RGBA{Ai, Kon, Kachi, Kikyou},
		Lanterns:       12,
		LanternDepths:  [3]float64{0.8, 0.6, 0.3},
		MaxSparrows:    6,
		SparrowChance:  0.15,
		SparrowMargin:  20,
		SparrowDespawn: 60,
		ParallaxY:      0.21,
	}

	Banner = BannerConfig{
		FadeIn:  20,
		Hold:    90,
		FadeOut: 30,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   Haizakura,
		TextColorSelected: Momo,
		MenuItemHeight:    14,
		MenuItemGap:       6,
		MenuOptions:       []string{"RESUME", "RESTART LEVEL", "MUSIC", "SFX", "QUIT"},
	}

	Debug = DebugConfig{
		ThemesPath: "themes.yaml",
	}

	Finish = FinishConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Momo,
		TextColor:    White,
		Title:        "THE NIGHT IS QUIET",
		TitleY:       60,
		StatsY:       96,
		LineHeight:   12,
		HintY:        200,
	}

	UI = UIConfig{
		HUDTextColor:  White,
		HUDShadow:     Black,
		CooldownColor: Umenezumi,
		ReadyColor:    Matcha,
		TipBoxColor:   color.RGBA{R: 13, G: 13, B: 13, A: 170},
		WipeColor:     Black,
		HUDMargin:     4,

		MenuBackground:    color.RGBA{R: 20, G: 18, B: 30, A: 255},
		MenuRowBackground: color.RGBA{R: 40, G: 36, B: 54, A: 255},
	}
}

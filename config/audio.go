package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundCloudJump
	SoundSlideJump
	SoundDash
	SoundSlide
	// Abilities
	SoundSmokeBomb
	SoundBlowgun
	// Combat sounds
	SoundHit
	SoundShoot
	SoundOniDeath
	SoundYureiDeath
	// Pickups
	SoundPickupRamen
	SoundPickupSushi
	SoundPickupBlessing
	SoundShieldShatter
	// World
	SoundCrumble
	SoundGong
	SoundAmbience
	SoundCicada
	SoundRain
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveforms for synthesized cues
const (
	WaveSquare   = "square"
	WaveTriangle = "triangle"
	WaveSine     = "sine"
	WaveNoise    = "noise"
)

// Tone is a synthesized cue: a frequency sweep over a duration with a
// linear fade out.
type Tone struct {
	Wave      string
	StartFreq float64
	EndFreq   float64
	Seconds   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	NoteSeconds     float64 // length of one music note
}

// SoundConfig maps sound IDs to their synthesized tones and volumes
type SoundConfig struct {
	Tones   map[SoundID]Tone
	Volumes map[SoundID]float64
	Loops   map[SoundID]bool
	Music   map[string][]float64 // theme music key to note frequencies
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.2,
		DefaultSFXVol:   0.3,
		NoteSeconds:     0.25,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:           {Wave: WaveSquare, StartFreq: 330, EndFreq: 660, Seconds: 0.12},
			SoundCloudJump:      {Wave: WaveNoise, StartFreq: 800, EndFreq: 400, Seconds: 0.15},
			SoundSlideJump:      {Wave: WaveSquare, StartFreq: 440, EndFreq: 990, Seconds: 0.16},
			SoundDash:           {Wave: WaveNoise, StartFreq: 1200, EndFreq: 300, Seconds: 0.2},
			SoundSlide:          {Wave: WaveNoise, StartFreq: 500, EndFreq: 200, Seconds: 0.18},
			SoundSmokeBomb:      {Wave: WaveNoise, StartFreq: 300, EndFreq: 80, Seconds: 0.4},
			SoundBlowgun:        {Wave: WaveTriangle, StartFreq: 1400, EndFreq: 900, Seconds: 0.08},
			SoundHit:            {Wave: WaveSquare, StartFreq: 220, EndFreq: 60, Seconds: 0.15},
			SoundShoot:          {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Seconds: 0.08},
			SoundOniDeath:       {Wave: WaveSquare, StartFreq: 160, EndFreq: 40, Seconds: 0.5},
			SoundYureiDeath:     {Wave: WaveSine, StartFreq: 700, EndFreq: 100, Seconds: 0.6},
			SoundPickupRamen:    {Wave: WaveTriangle, StartFreq: 520, EndFreq: 1040, Seconds: 0.2},
			SoundPickupSushi:    {Wave: WaveTriangle, StartFreq: 660, EndFreq: 1320, Seconds: 0.2},
			SoundPickupBlessing: {Wave: WaveSine, StartFreq: 440, EndFreq: 1760, Seconds: 0.35},
			SoundShieldShatter:  {Wave: WaveNoise, StartFreq: 2000, EndFreq: 600, Seconds: 0.25},
			SoundCrumble:        {Wave: WaveNoise, StartFreq: 250, EndFreq: 120, Seconds: 0.2},
			SoundGong:           {Wave: WaveSine, StartFreq: 110, EndFreq: 104, Seconds: 1.5},
			SoundAmbience:       {Wave: WaveNoise, StartFreq: 180, EndFreq: 180, Seconds: 2},
			SoundCicada:         {Wave: WaveSquare, StartFreq: 4200, EndFreq: 4000, Seconds: 1},
			SoundRain:           {Wave: WaveNoise, StartFreq: 3000, EndFreq: 3000, Seconds: 2},
			SoundMenuNavigate:   {Wave: WaveSquare, StartFreq: 660, EndFreq: 660, Seconds: 0.05},
			SoundMenuSelect:     {Wave: WaveSquare, StartFreq: 660, EndFreq: 990, Seconds: 0.1},
		},
		Volumes: map[SoundID]float64{
			SoundJump:           0.2,
			SoundCloudJump:      0.1,
			SoundSlideJump:      0.2,
			SoundDash:           0.2,
			SoundSlide:          0.1,
			SoundSmokeBomb:      0.3,
			SoundHit:            0.3,
			SoundShoot:          0.1,
			SoundBlowgun:        0.4,
			SoundAmbience:       0.2,
			SoundCicada:         0.04,
			SoundPickupRamen:    0.3,
			SoundPickupSushi:    0.3,
			SoundPickupBlessing: 0.3,
			SoundShieldShatter:  0.4,
			SoundOniDeath:       0.4,
			SoundYureiDeath:     0.4,
			SoundGong:           0.2,
			SoundRain:           0.05,
			SoundCrumble:        0.1,
			SoundMenuNavigate:   0.3,
			SoundMenuSelect:     0.3,
		},
		Loops: map[SoundID]bool{
			SoundAmbience: true,
			SoundCicada:   true,
			SoundRain:     true,
		},
		Music: map[string][]float64{
			"forest_theme":       {293.66, 349.23, 392.00, 440.00, 392.00, 349.23, 293.66, 261.63},
			"forest_night_theme": {220.00, 261.63, 293.66, 261.63, 220.00, 196.00, 220.00, 164.81},
			"pagoda_realm_theme": {329.63, 349.23, 440.00, 493.88, 523.25, 493.88, 440.00, 349.23},
			"beach_theme":        {392.00, 440.00, 523.25, 587.33, 659.25, 587.33, 523.25, 440.00},
			"oni_theme":          {146.83, 155.56, 146.83, 110.00, 146.83, 174.61, 155.56, 110.00},
		},
	}
}

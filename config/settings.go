package config

// SettingsConfig contains the adjustable settings and their steps
type SettingsConfig struct {
	VolumeSteps []float64
	Scales      []int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.1, 0.2, 0.3, 0.5, 0.75, 1.0},
		Scales:      []int{2, 3, 4},
	}
}

// NextVolumeStep returns the step after v, wrapping to the first.
func NextVolumeStep(v float64) float64 {
	for _, s := range Settings.VolumeSteps {
		if s > v+1e-9 {
			return s
		}
	}
	return Settings.VolumeSteps[0]
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVolumeStep(t *testing.T) {
	assert.Equal(t, 0.1, NextVolumeStep(0))
	assert.Equal(t, 0.5, NextVolumeStep(0.3))
	assert.Equal(t, 0.5, NextVolumeStep(0.4), "an off-step volume moves to the next step")
	assert.Equal(t, 0.0, NextVolumeStep(1.0), "wraps to mute")
}

package assets

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/kagerun/config"
)

func TestSynthesizeToneLengthAndFade(t *testing.T) {
	tone := cfg.Tone{Wave: cfg.WaveSquare, StartFreq: 440, EndFreq: 220, Seconds: 0.1}
	pcm := SynthesizeTone(tone, 8000, 1)

	require.Len(t, pcm, 800*4)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Greater(t, abs16(first), abs16(last), "the tone fades out")
	assert.Equal(t, pcm[0:2], pcm[2:4], "left and right match")

	assert.Nil(t, SynthesizeTone(cfg.Tone{}, 8000, 1))
}

func TestSynthesizeNoiseIsSeeded(t *testing.T) {
	tone := cfg.Tone{Wave: cfg.WaveNoise, StartFreq: 2000, EndFreq: 500, Seconds: 0.05}
	assert.Equal(t, SynthesizeTone(tone, 8000, 7), SynthesizeTone(tone, 8000, 7))
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 16)
	wav := EncodeWAV(pcm, 44100)

	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(wav[24:]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:]))
}

func abs16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}

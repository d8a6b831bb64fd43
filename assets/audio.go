package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	cfg "github.com/automoto/kagerun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var ErrUnknownSound = errors.New("unknown sound")

// AudioLoader synthesizes cues once and caches the decoded PCM so each play
// only needs a new player.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX builds and caches a cue without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.decoded(id)
	return err
}

// LoadSFX returns a new player for a one-shot cue.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// LoadLoop returns a player that repeats a cue forever.
func (l *AudioLoader) LoadLoop(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

// LoadMusic returns a looping player for a theme's melody.
func (l *AudioLoader) LoadMusic(key string) (*audio.Player, error) {
	notes, ok := cfg.Sound.Music[key]
	if !ok {
		return nil, fmt.Errorf("music %q: %w", key, ErrUnknownSound)
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(MelodyWAV(notes, l.context.SampleRate())))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music %s: %w", key, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decoded(id cfg.SoundID) ([]byte, error) {
	if pcm, ok := l.sfxCache[id]; ok {
		return pcm, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("sound %d: %w", id, ErrUnknownSound)
	}
	rate := l.context.SampleRate()
	stream, err := wav.DecodeWithSampleRate(rate, bytes.NewReader(EncodeWAV(SynthesizeTone(tone, rate, int64(id)), rate)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %d: %w", id, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound %d: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return pcm, nil
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM. The
// frequency sweeps linearly and the amplitude fades out to zero. Noise is
// seeded so the same cue always sounds the same.
func SynthesizeTone(t cfg.Tone, sampleRate int, seed int64) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	noise := rand.New(rand.NewSource(seed))
	out := make([]byte, n*4)
	phase := 0.0
	held := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartFreq + (t.EndFreq-t.StartFreq)*progress
		prev := phase
		phase = math.Mod(phase+freq/float64(sampleRate), 1)

		var v float64
		switch t.Wave {
		case cfg.WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case cfg.WaveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case cfg.WaveNoise:
			// sample and hold at the sweep frequency
			if phase < prev {
				held = noise.Float64()*2 - 1
			}
			v = held
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		s := int16(v * (1 - progress) * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// MelodyWAV renders a note sequence as one WAV file.
func MelodyWAV(notes []float64, sampleRate int) []byte {
	var pcm []byte
	for i, f := range notes {
		tone := cfg.Tone{Wave: cfg.WaveTriangle, StartFreq: f, EndFreq: f, Seconds: cfg.Audio.NoteSeconds}
		pcm = append(pcm, SynthesizeTone(tone, sampleRate, int64(i))...)
	}
	return EncodeWAV(pcm, sampleRate)
}

// EncodeWAV wraps 16-bit stereo PCM in a RIFF header.
func EncodeWAV(pcm []byte, sampleRate int) []byte {
	const channels, bits = 2, 16
	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	w(uint32(36 + len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(sampleRate))
	w(uint32(sampleRate * channels * bits / 8))
	w(uint16(channels * bits / 8))
	w(uint16(bits))
	buf.WriteString("data")
	w(uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

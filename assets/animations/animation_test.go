package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneShotFinishes(t *testing.T) {
	a := NewAnimation(3, 2, false)
	var frames []int
	for !a.Done() {
		frames = append(frames, a.Frame())
		a.Update()
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2}, frames)
	assert.Equal(t, 2, a.Frame())

	a.Update()
	assert.Equal(t, 5, a.Tick(), "one-shot holds the last tick")
}

func TestLoopWraps(t *testing.T) {
	a := Def{Frames: 2, Duration: 3, Loop: true}.New()
	for i := 0; i < 6; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Tick())
	assert.True(t, a.Looped)
	assert.False(t, a.Done())
}

func TestSetTickClamps(t *testing.T) {
	a := NewAnimation(4, 5, false)
	a.SetTick(12)
	assert.Equal(t, 2, a.Frame())
	a.SetTick(400)
	assert.Equal(t, 19, a.Tick())

	l := NewAnimation(4, 5, true)
	l.SetTick(-1)
	assert.Equal(t, 19, l.Tick())
}

func TestRestartAndCopy(t *testing.T) {
	a := NewAnimation(1, 1, false)
	a.Update()
	assert.True(t, a.Done())

	c := a.Copy()
	assert.False(t, c.Done())
	a.Restart()
	assert.False(t, a.Done())
	assert.Equal(t, 0, a.Tick())
}

func TestEmptySequence(t *testing.T) {
	a := NewAnimation(0, 4, false)
	a.Update()
	assert.True(t, a.Done())
	assert.Equal(t, 0, a.Frame())
}

package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlapsIsHalfOpen(t *testing.T) {
	a := NewRect(0, 0, 16, 16)

	assert.True(t, a.Overlaps(NewRect(15, 15, 16, 16)))
	assert.False(t, a.Overlaps(NewRect(16, 0, 16, 16)), "touching edges do not overlap")
	assert.False(t, a.Overlaps(NewRect(0, 16, 16, 16)))
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 4, 4)

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(13.9, 13.9))
	assert.False(t, r.Contains(14, 12))
	assert.False(t, r.Contains(12, 14))
}

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 0.9, ApplyFriction(1, 0.1), 1e-9)
	assert.InDelta(t, -0.9, ApplyFriction(-1, 0.1), 1e-9)
	assert.Equal(t, 0.0, ApplyFriction(0.05, 0.1))
}

func TestStepToward(t *testing.T) {
	assert.Equal(t, 59, StepToward(60))
	assert.Equal(t, -59, StepToward(-60))
	assert.Equal(t, 0, StepToward(0))
}

func TestFloorDivNegative(t *testing.T) {
	assert.Equal(t, -1, FloorDiv(-0.5, 16))
	assert.Equal(t, 0, FloorDiv(15.99, 16))
	assert.Equal(t, 2, FloorDiv(32, 16))
}

func TestSeekVelocity(t *testing.T) {
	vx, vy := SeekVelocity(0, 0, 3, 4, 0.5)
	assert.InDelta(t, 0.3, vx, 1e-9)
	assert.InDelta(t, 0.4, vy, 1e-9)

	vx, vy = SeekVelocity(1, 1, 1, 1, 0.5)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestSampleLineVisitsInteriorPoints(t *testing.T) {
	var xs []float64
	ok := SampleLine(0, 0, 32, 0, 8, func(x, y float64) bool {
		xs = append(xs, x)
		return true
	})

	assert.True(t, ok)
	assert.Equal(t, []float64{8, 16, 24}, xs)
}

func TestSampleLineStopsOnBlock(t *testing.T) {
	calls := 0
	ok := SampleLine(0, 0, 64, 0, 8, func(x, y float64) bool {
		calls++
		return x < 16
	})

	assert.False(t, ok)
	assert.Equal(t, 2, calls)
}

package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// StepToward moves a signed counter one unit toward zero.
func StepToward(counter int) int {
	if counter > 0 {
		return counter - 1
	}
	if counter < 0 {
		return counter + 1
	}
	return 0
}

// Sign returns -1 when flipped (facing left) and 1 otherwise.
func Sign(flip bool) float64 {
	if flip {
		return -1
	}
	return 1
}

// AbsInt returns the absolute value of v.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FloorDiv converts a pixel coordinate to a cell index, rounding toward
// negative infinity.
func FloorDiv(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

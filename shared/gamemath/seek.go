package gamemath

import "math"

// SeekVelocity returns a velocity of the given speed pointing from (x, y) to
// (targetX, targetY). A zero distance yields a zero velocity.
func SeekVelocity(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Hypot(dirX, dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Polar returns the cartesian offset for an angle in radians and a length.
func Polar(angle, length float64) (x, y float64) {
	return math.Cos(angle) * length, math.Sin(angle) * length
}

// SampleLine calls visit for evenly spaced interior points between two
// positions, stepping roughly every step pixels along the longer axis. It
// stops early and returns false as soon as visit returns false.
func SampleLine(x1, y1, x2, y2, step float64, visit func(x, y float64) bool) bool {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)) / step)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		if !visit(x1+(x2-x1)*t, y1+(y2-y1)*t) {
			return false
		}
	}
	return true
}

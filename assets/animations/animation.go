package animations

// Def describes an image sequence: how many images it has, how many ticks
// each one is shown and whether it wraps around.
type Def struct {
	Frames   int
	Duration int
	Loop     bool
}

// New returns a fresh animation playing d.
func (d Def) New() *Animation {
	return NewAnimation(d.Frames, d.Duration, d.Loop)
}

// Animation is a tick counter over an image sequence.
type Animation struct {
	Frames   int // images in the sequence
	Duration int // ticks per image
	Loop     bool
	Looped   bool // set once a looping animation wraps
	tick     int
	done     bool
}

func (a *Animation) length() int {
	return a.Frames * a.Duration
}

func (a *Animation) Update() {
	n := a.length()
	if n <= 0 {
		a.done = true
		return
	}
	if a.Loop {
		a.tick++
		if a.tick >= n {
			a.tick = 0
			a.Looped = true
		}
		return
	}
	a.tick = min(a.tick+1, n-1)
	if a.tick >= n-1 {
		a.done = true
	}
}

// Frame returns the index of the image to draw.
func (a *Animation) Frame() int {
	if a.Duration <= 0 {
		return 0
	}
	return min(a.tick/a.Duration, max(a.Frames-1, 0))
}

// Done reports whether a non-looping animation has shown its last image.
func (a *Animation) Done() bool {
	return a.done
}

// Tick returns the raw tick counter.
func (a *Animation) Tick() int {
	return a.tick
}

// SetTick jumps to a raw tick, clamped into the sequence. Particles use it
// to start partway through.
func (a *Animation) SetTick(t int) {
	n := a.length()
	if n <= 0 {
		a.tick = 0
		return
	}
	if a.Loop {
		a.tick = ((t % n) + n) % n
		return
	}
	a.tick = max(0, min(t, n-1))
}

func (a *Animation) Restart() {
	a.tick = 0
	a.done = false
	a.Looped = false
}

// Copy returns an independent animation with the same sequence, restarted.
func (a *Animation) Copy() *Animation {
	return NewAnimation(a.Frames, a.Duration, a.Loop)
}

func NewAnimation(frames, duration int, loop bool) *Animation {
	return &Animation{
		Frames:   frames,
		Duration: duration,
		Loop:     loop,
	}
}

package core

import "github.com/go-gl/mathgl/mgl32"

// Clock converts a monotonic seconds source into the per-frame current and
// delta times the exercises read. Particle birth times come from Current.
type Clock struct {
	start   float64
	last    float64
	current float32
	delta   float32
	frames  uint64
}

// NewClock starts a clock at now seconds.
func NewClock(now float64) Clock {
	return Clock{start: now, last: now}
}

// Tick advances to now and returns the delta. A source that steps backwards
// yields a zero delta instead of a negative one.
func (c *Clock) Tick(now float64) float32 {
	d := now - c.last
	if d < 0 {
		d = 0
	}
	c.last = max(now, c.last)
	c.delta = float32(d)
	c.current = float32(c.last - c.start)
	c.frames++
	return c.delta
}

func (c *Clock) Current() float32 { return c.current }
func (c *Clock) Delta() float32   { return c.delta }
func (c *Clock) Frames() uint64   { return c.frames }

// ToNDC maps window pixel coordinates (origin top-left) to [-1, 1] with y up.
func ToNDC(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32(2*x/float64(width) - 1),
		float32(1 - 2*y/float64(height)),
	}
}

package particles

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	got []Particle
}

func (c *collector) Emit(p Particle) { c.got = append(c.got, p) }

func wrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

func TestRingEmitterRotatesAtConstantSpeed(t *testing.T) {
	e := NewRingEmitter(0.4)
	require.Equal(t, 40, e.Count)

	const dt = float32(1.0 / 60.0)
	elapsed := float32(0)
	for frame := 0; frame < 180; frame++ {
		e.Advance(dt)
		elapsed += dt
		for i := 0; i < e.Count; i++ {
			want := 2*math32.Pi*float32(i)/40 + e.AngularSpeed*elapsed
			assert.InDelta(t, want, e.Angle(i), 1e-4, "frame %d particle %d", frame, i)

			pos := e.Position(i)
			got := wrapAngle(math32.Atan2(pos[1], pos[0]))
			assert.InDelta(t, 0, angleDelta(wrapAngle(want), got), 1e-3, "frame %d particle %d", frame, i)
			assert.InDelta(t, 0.4, pos.Len(), 1e-5)
		}
	}
}

func angleDelta(a, b float32) float32 {
	d := math32.Abs(a - b)
	if d > math32.Pi {
		d = 2*math32.Pi - d
	}
	return d
}

func TestRingEmitterEmitsFullRing(t *testing.T) {
	e := NewRingEmitter(0.4)
	e.Center = mgl32.Vec2{0.1, -0.2}
	e.Advance(0.5)
	c := &collector{}

	e.Emit(c, 7.5, NewRandom(1))

	require.Len(t, c.got, e.Count)
	for i, p := range c.got {
		assert.Equal(t, float32(7.5), p.Birth)
		assert.True(t, p.Position.ApproxEqualThreshold(e.Position(i), 1e-6))
		assert.InDelta(t, 0.4, p.Position.Sub(e.Center).Len(), 1e-5)
		assert.GreaterOrEqual(t, p.Size, e.Size.Min)
		assert.LessOrEqual(t, p.Size, e.Size.Max)
		assert.GreaterOrEqual(t, p.Duration, e.Duration.Min)
		assert.LessOrEqual(t, p.Duration, e.Duration.Max)

		// Velocity is tangent to the ring.
		radial := p.Position.Sub(e.Center)
		assert.InDelta(t, 0, radial.Dot(p.Velocity), 1e-5)
		speed := p.Velocity.Len()
		assert.GreaterOrEqual(t, speed, e.Speed.Min-1e-5)
		assert.LessOrEqual(t, speed, e.Speed.Max+1e-5)
		assert.Equal(t, e.Angle(i), p.Orientation)
	}
}

func TestRingEmitterFillsStore(t *testing.T) {
	e := NewRingEmitter(0.4)
	s := NewStore(NewMemoryBuffer(), DefaultLayout, 100)
	r := NewRandom(3)

	e.Emit(s, 0, r)
	assert.Equal(t, 40, s.DrawCount())
	e.Emit(s, 0.016, r)
	e.Emit(s, 0.032, r)
	assert.Equal(t, 100, s.DrawCount())
	assert.Equal(t, uint64(120), s.WriteCount())
	assert.Equal(t, 20, s.NextSlot())
}

func TestPointerEmitterEmitsOnlyWhileHeld(t *testing.T) {
	e := NewPointerEmitter(mgl32.Vec2{0, 0})
	c := &collector{}
	r := NewRandom(2)

	assert.False(t, e.Update(c, mgl32.Vec2{0.2, 0.2}, false, 1, 0.1, r))
	assert.Empty(t, c.got)

	assert.True(t, e.Update(c, mgl32.Vec2{0.3, 0.1}, true, 1.1, 0.1, r))
	require.Len(t, c.got, 1)
	p := c.got[0]
	assert.Equal(t, mgl32.Vec2{0.3, 0.1}, p.Position)
	assert.Equal(t, float32(1.1), p.Birth)
	// Previous position was recorded even though nothing was emitted.
	assert.True(t, p.Velocity.ApproxEqualThreshold(mgl32.Vec2{1, -1}, 1e-5), "velocity %v", p.Velocity)
	// The sprite faces its direction of travel.
	assert.InDelta(t, -math32.Pi/4, p.Orientation, 1e-4)
}

func TestPointerEmitterVelocity(t *testing.T) {
	e := NewPointerEmitter(mgl32.Vec2{0.5, 0.5})
	assert.True(t, e.Velocity(mgl32.Vec2{0.6, 0.3}, 0.05).ApproxEqualThreshold(mgl32.Vec2{2, -4}, 1e-4))
	assert.Equal(t, mgl32.Vec2{}, e.Velocity(mgl32.Vec2{0.6, 0.3}, 0))
	assert.Equal(t, mgl32.Vec2{}, e.Velocity(mgl32.Vec2{0.6, 0.3}, -1))
}

func TestTintColor(t *testing.T) {
	r := NewRandom(9)
	tint := &Tint{RGB: mgl32.Vec3{0.2, 0.9, 0.1}}
	assert.Equal(t, mgl32.Vec4{0.2, 0.9, 0.1, 1}, tint.Color(r))

	tint.Jitter = 0.5
	for i := 0; i < 100; i++ {
		c := tint.Color(r)
		assert.InDelta(t, 0.2, c[0], 0.25+1e-6)
		assert.LessOrEqual(t, c[1], float32(1))
		assert.GreaterOrEqual(t, c[2], float32(0))
		assert.Equal(t, float32(1), c[3])
	}
}

func TestRandomRangeAndDirection(t *testing.T) {
	r := NewRandom(5)
	for i := 0; i < 200; i++ {
		v := r.Range(-3, 4)
		assert.GreaterOrEqual(t, v, float32(-3))
		assert.LessOrEqual(t, v, float32(4))
		assert.InDelta(t, 1, r.Direction().Len(), 1e-5)
		c := RandomColor{}.Color(r)
		assert.Equal(t, float32(1), c[3])
	}

	// Only from and to are representable here, so the upper bound is reached.
	const lo, hi = float32(1 << 24), float32(1<<24 + 2)
	seen := map[float32]bool{}
	for i := 0; i < 64; i++ {
		v := r.Range(lo, hi)
		assert.True(t, v == lo || v == hi, "%v", v)
		seen[v] = true
	}
	assert.True(t, seen[hi], "range is closed at the top")
	assert.Equal(t, float32(3), r.Range(3, 3))
}

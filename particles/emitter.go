package particles

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Emitter is anything a frame can feed particles into. *Store satisfies it.
type Emitter interface {
	Emit(p Particle)
}

// Span is a closed range sampled uniformly per particle.
type Span struct {
	Min, Max float32
}

func (s Span) sample(r *Random) float32 { return r.Range(s.Min, s.Max) }

// ── RingEmitter ──────────────────────────────────────────────────────────────

// RingEmitter emits Count particles per frame evenly spaced on a circle. The
// circle spins at AngularSpeed (radians/s), and each particle leaves along the
// tangent so the whole ring swirls.
type RingEmitter struct {
	Center       mgl32.Vec2
	Radius       float32
	Count        int
	AngularSpeed float32
	Size         Span
	Duration     Span
	Speed        Span
	Colors       ColorSource

	rotation float32
}

// NewRingEmitter returns the 40-particle, 120°/s ring used by the portal demo.
func NewRingEmitter(radius float32) *RingEmitter {
	return &RingEmitter{
		Radius:       radius,
		Count:        40,
		AngularSpeed: mgl32.DegToRad(120),
		Size:         Span{10, 30},
		Duration:     Span{0.5, 0.9},
		Speed:        Span{0.5, 1.0},
		Colors:       RandomColor{},
	}
}

// Advance accumulates dt seconds of rotation.
func (e *RingEmitter) Advance(dt float32) {
	e.rotation += e.AngularSpeed * dt
}

// Rotation is the accumulated ring rotation in radians.
func (e *RingEmitter) Rotation() float32 { return e.rotation }

// Angle returns the current angle of particle i: 2π·i/Count + rotation.
func (e *RingEmitter) Angle(i int) float32 {
	return 2*math32.Pi*float32(i)/float32(e.Count) + e.rotation
}

// Position returns where particle i is emitted this frame.
func (e *RingEmitter) Position(i int) mgl32.Vec2 {
	a := e.Angle(i)
	return e.Center.Add(mgl32.Vec2{math32.Cos(a), math32.Sin(a)}.Mul(e.Radius))
}

// Emit sends one full ring into out, stamped with birth time now.
func (e *RingEmitter) Emit(out Emitter, now float32, r *Random) {
	for i := 0; i < e.Count; i++ {
		a := e.Angle(i)
		tangent := mgl32.Vec2{math32.Cos(a + math32.Pi/2), math32.Sin(a + math32.Pi/2)}
		out.Emit(Particle{
			Position: e.Position(i),
			Size:     e.Size.sample(r),
			Birth:    now,
			Duration: e.Duration.sample(r),
			Color:    e.Colors.Color(r),
			Velocity: tangent.Mul(e.Speed.sample(r)),

			Orientation: a,
		})
	}
}

// ── PointerEmitter ───────────────────────────────────────────────────────────

// PointerEmitter emits one particle per frame while the pointer button is held.
// The particle inherits the pointer's velocity over the last frame.
type PointerEmitter struct {
	Size     Span
	Duration Span
	Colors   ColorSource

	prev mgl32.Vec2
}

// NewPointerEmitter returns an emitter whose previous position starts at start,
// so the first held frame does not see a jump from the origin.
func NewPointerEmitter(start mgl32.Vec2) *PointerEmitter {
	return &PointerEmitter{
		Size:     Span{10, 30},
		Duration: Span{1, 2},
		Colors:   RandomColor{},
		prev:     start,
	}
}

// Velocity is the pointer displacement since the previous frame divided by dt.
// A non-positive dt yields zero.
func (e *PointerEmitter) Velocity(pos mgl32.Vec2, dt float32) mgl32.Vec2 {
	if dt <= 0 {
		return mgl32.Vec2{}
	}
	return pos.Sub(e.prev).Mul(1 / dt)
}

// Update emits at pos if held and then records pos as the previous position.
// It reports whether a particle was emitted.
func (e *PointerEmitter) Update(out Emitter, pos mgl32.Vec2, held bool, now, dt float32, r *Random) bool {
	emitted := false
	if held {
		v := e.Velocity(pos, dt)
		out.Emit(Particle{
			Position: pos,
			Size:     e.Size.sample(r),
			Birth:    now,
			Duration: e.Duration.sample(r),
			Color:    e.Colors.Color(r),
			Velocity: v,

			Orientation: math32.Atan2(v[1], v[0]),
		})
		emitted = true
	}
	e.prev = pos
	return emitted
}

package particles

import "github.com/go-gl/mathgl/mgl32"

// Particle is one emitted point sprite. The vertex shader extrapolates its
// position from Birth and Velocity and hides it once Duration has elapsed;
// nothing on the CPU side tracks expiry.
type Particle struct {
	Position    mgl32.Vec2
	Size        float32
	Birth       float32 // seconds since application start
	Duration    float32 // lifespan in seconds
	Color       mgl32.Vec4
	Velocity    mgl32.Vec2
	Orientation float32 // radians, only stored by layouts that declare it
}

func (p *Particle) component(s Semantic) [4]float32 {
	switch s {
	case SemanticPosition:
		return [4]float32{p.Position[0], p.Position[1]}
	case SemanticSize:
		return [4]float32{p.Size}
	case SemanticBirth:
		return [4]float32{p.Birth}
	case SemanticDuration:
		return [4]float32{p.Duration}
	case SemanticColor:
		return [4]float32(p.Color)
	case SemanticVelocity:
		return [4]float32{p.Velocity[0], p.Velocity[1]}
	case SemanticOrientation:
		return [4]float32{p.Orientation}
	}
	return [4]float32{}
}

func (p *Particle) setComponent(s Semantic, v [4]float32) {
	switch s {
	case SemanticPosition:
		p.Position = mgl32.Vec2{v[0], v[1]}
	case SemanticSize:
		p.Size = v[0]
	case SemanticBirth:
		p.Birth = v[0]
	case SemanticDuration:
		p.Duration = v[0]
	case SemanticColor:
		p.Color = mgl32.Vec4(v)
	case SemanticVelocity:
		p.Velocity = mgl32.Vec2{v[0], v[1]}
	case SemanticOrientation:
		p.Orientation = v[0]
	}
}

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera looks at Target from Distance away, placed by yaw and pitch.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	position mgl32.Vec3
	view     mgl32.Mat4
	proj     mgl32.Mat4
	dirty    bool
}

const maxPitch = 1.5

func NewOrbitCamera(target mgl32.Vec3, distance, fov, aspectRatio float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Pitch:       0.3,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.01,
		FarPlane:    100,
		dirty:       true,
	}
	return c
}

func (c *OrbitCamera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.dirty = true
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = max(c.Distance+delta, 0.1)
	c.dirty = true
}

// Position is the eye point derived from the spherical coordinates.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	c.update()
	return c.position
}

func (c *OrbitCamera) View() mgl32.Mat4 {
	c.update()
	return c.view
}

func (c *OrbitCamera) Projection() mgl32.Mat4 {
	c.update()
	return c.proj
}

func (c *OrbitCamera) ViewProjection() mgl32.Mat4 {
	c.update()
	return c.proj.Mul4(c.view)
}

func (c *OrbitCamera) update() {
	if !c.dirty {
		return
	}
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)

	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)
	offset := mgl32.Vec3{
		c.Distance * cosPitch * sinYaw,
		c.Distance * sinPitch,
		c.Distance * cosPitch * cosYaw,
	}
	c.position = c.Target.Add(offset)
	c.view = mgl32.LookAtV(c.position, c.Target, mgl32.Vec3{0, 1, 0})
	c.proj = mgl32.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.dirty = false
}

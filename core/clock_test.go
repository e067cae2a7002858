package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClockTick(t *testing.T) {
	c := NewClock(10)
	assert.Equal(t, float32(0), c.Current())

	assert.InDelta(t, 0.5, c.Tick(10.5), 1e-6)
	assert.InDelta(t, 0.5, c.Current(), 1e-6)

	assert.InDelta(t, 0.25, c.Tick(10.75), 1e-6)
	assert.InDelta(t, 0.75, c.Current(), 1e-6)
	assert.Equal(t, uint64(2), c.Frames())
}

func TestClockIgnoresBackwardSteps(t *testing.T) {
	c := NewClock(5)
	c.Tick(6)
	assert.Equal(t, float32(0), c.Tick(5.5))
	assert.InDelta(t, 1, c.Current(), 1e-6, "current time never decreases")
	assert.InDelta(t, 0.5, c.Tick(6.5), 1e-6)
}

func TestToNDC(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{-1, 1}, ToNDC(0, 0, 800, 600))
	assert.Equal(t, mgl32.Vec2{1, -1}, ToNDC(800, 600, 800, 600))
	assert.Equal(t, mgl32.Vec2{0, 0}, ToNDC(400, 300, 800, 600))
	assert.Equal(t, mgl32.Vec2{}, ToNDC(10, 10, 0, 600))
}

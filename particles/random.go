package particles

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Random is the emitters' source of variation. It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random with a fixed seed so runs are reproducible.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0,1).
func (r *Random) Float() float32 { return r.rng.Float32() }

// Range returns a value in [from,to]. Float is half-open, but float32
// rounding of the scaled result can land on to.
func (r *Random) Range(from, to float32) float32 {
	return r.Float()*(to-from) + from
}

// Direction returns a random unit vector.
func (r *Random) Direction() mgl32.Vec2 {
	for {
		d := mgl32.Vec2{r.Float() - 0.5, r.Float() - 0.5}
		if l := d.Len(); l > 1e-6 {
			return d.Mul(1 / l)
		}
	}
}

// ColorSource picks the color of each emitted particle.
type ColorSource interface {
	Color(r *Random) mgl32.Vec4
}

// RandomColor gives every particle an independent random opaque RGB color.
type RandomColor struct{}

func (RandomColor) Color(r *Random) mgl32.Vec4 {
	return mgl32.Vec4{r.Float(), r.Float(), r.Float(), 1}
}

// Tint is the user-selected particle color. Jitter spreads each channel by up
// to ±Jitter/2 so a tinted cloud keeps some texture.
type Tint struct {
	RGB    mgl32.Vec3
	Jitter float32
}

func (t *Tint) Color(r *Random) mgl32.Vec4 {
	c := mgl32.Vec4{t.RGB[0], t.RGB[1], t.RGB[2], 1}
	if t.Jitter > 0 {
		for i := 0; i < 3; i++ {
			c[i] = mgl32.Clamp(c[i]+t.Jitter*(r.Float()-0.5), 0, 1)
		}
	}
	return c
}

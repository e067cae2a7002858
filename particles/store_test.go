package particles

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBuffer wraps a MemoryBuffer and remembers every partial update.
type recordingBuffer struct {
	MemoryBuffer
	allocations int
	updates     []update
}

type update struct {
	offset, length int
}

func (b *recordingBuffer) Allocate(size int, usage Usage) {
	b.allocations++
	b.MemoryBuffer.Allocate(size, usage)
}

func (b *recordingBuffer) UpdateData(offset int, data []byte) {
	b.updates = append(b.updates, update{offset, len(data)})
	b.MemoryBuffer.UpdateData(offset, data)
}

func birthAt(t float32) Particle {
	return Particle{
		Position: mgl32.Vec2{t, -t},
		Size:     10 + t,
		Birth:    t,
		Duration: 1,
		Color:    mgl32.Vec4{0.25, 0.5, 0.75, 1},
		Velocity: mgl32.Vec2{1, 2},
	}
}

func slot(s *Store, buf *MemoryBuffer, i int) Particle {
	stride := s.Stride()
	return s.Layout().Decode(buf.Bytes()[i*stride : (i+1)*stride])
}

func TestNewStoreAllocatesOnce(t *testing.T) {
	buf := &recordingBuffer{}
	s := NewStore(buf, DefaultLayout, 16)

	assert.Equal(t, 1, buf.allocations)
	assert.Len(t, buf.Bytes(), 16*DefaultLayout.Stride())
	assert.Equal(t, DynamicDraw, buf.Usage())
	assert.Equal(t, 0, s.DrawCount())
	assert.Equal(t, -1, s.NewestSlot())
	assert.Equal(t, 0, s.NextSlot())

	for i := 0; i < 40; i++ {
		s.Emit(birthAt(float32(i)))
	}
	assert.Equal(t, 1, buf.allocations, "emission must not reallocate")
}

func TestNewStorePanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { NewStore(NewMemoryBuffer(), DefaultLayout, 0) })
	assert.Panics(t, func() { NewStore(NewMemoryBuffer(), DefaultLayout, -3) })
}

func TestStoreWraparound(t *testing.T) {
	const capacity = 5
	buf := NewMemoryBuffer()
	s := NewStore(buf, DefaultLayout, capacity)

	for i := 0; i < capacity; i++ {
		s.Emit(birthAt(float32(i + 1)))
	}
	assert.Equal(t, capacity, s.DrawCount())

	s.Emit(birthAt(float32(capacity + 1)))
	assert.Equal(t, capacity, s.DrawCount())
	assert.Equal(t, float32(capacity+1), slot(s, buf, 0).Birth, "first record is overwritten")
	assert.Equal(t, float32(2), slot(s, buf, 1).Birth)
}

func TestStoreDrawCountIsMonotonicThenCapped(t *testing.T) {
	const capacity = 7
	s := NewStore(NewMemoryBuffer(), DefaultLayout, capacity)

	prev := 0
	for n := 1; n <= 3*capacity; n++ {
		s.Emit(birthAt(float32(n)))
		got := s.DrawCount()
		if n <= capacity {
			require.Equal(t, n, got)
		} else {
			require.Equal(t, capacity, got)
		}
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, uint64(3*capacity), s.WriteCount())
}

func TestStoreSlotAddressing(t *testing.T) {
	const capacity = 6
	buf := &recordingBuffer{}
	s := NewStore(buf, DefaultLayout, capacity)
	stride := DefaultLayout.Stride()

	for n := 0; n < 4*capacity+3; n++ {
		s.Emit(birthAt(float32(n)))
		u := buf.updates[n]
		assert.Equal(t, (n%capacity)*stride, u.offset, "emission %d", n)
		assert.Equal(t, stride, u.length, "emission %d uploads exactly one record", n)
	}
}

func TestStoreNewestAndOldestSlots(t *testing.T) {
	const capacity = 4
	s := NewStore(NewMemoryBuffer(), DefaultLayout, capacity)

	for n := 1; n <= 3*capacity; n++ {
		s.Emit(birthAt(float32(n)))
		assert.Equal(t, (n-1)%capacity, s.NewestSlot())
		assert.Equal(t, n%capacity, s.NextSlot())
	}
}

func TestStorePartialUpdateIsolation(t *testing.T) {
	const capacity = 8
	buf := NewMemoryBuffer()
	s := NewStore(buf, DefaultLayout, capacity)
	stride := s.Stride()

	for n := 0; n < 3*capacity; n++ {
		before := bytes.Clone(buf.Bytes())
		target := n % capacity
		s.Emit(birthAt(float32(n)))
		after := buf.Bytes()
		for j := 0; j < capacity; j++ {
			if j == target {
				continue
			}
			require.Equal(t, before[j*stride:(j+1)*stride], after[j*stride:(j+1)*stride],
				"emission %d touched slot %d", n, j)
		}
	}
}

func TestStoreConcreteScenario(t *testing.T) {
	buf := NewMemoryBuffer()
	s := NewStore(buf, DefaultLayout, 4)

	for _, birth := range []float32{0, 1, 2, 3, 4, 5} {
		s.Emit(birthAt(birth))
	}

	assert.Equal(t, 4, s.DrawCount())
	want := []float32{4, 5, 2, 3}
	for i, b := range want {
		assert.Equal(t, b, slot(s, buf, i).Birth, "slot %d", i)
	}
	assert.Equal(t, 1, s.NewestSlot())
	assert.Equal(t, 2, s.NextSlot())
}

func TestStoreKeepsWholeRecord(t *testing.T) {
	buf := NewMemoryBuffer()
	s := NewStore(buf, RotatedLayout, 3)
	p := birthAt(2.5)
	p.Orientation = 1.25

	s.Emit(p)
	assert.Equal(t, p, slot(s, buf, 0))
}

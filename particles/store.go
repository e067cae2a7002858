package particles

import "fmt"

// Store is a fixed-capacity ring of particle records living in a vertex buffer.
// Emitting into a full store overwrites the oldest record; there is no
// backpressure and no expiry tracking.
//
// A Store is driven from the render thread only: zero or more Emit calls per
// frame, then one draw bounded by DrawCount.
type Store struct {
	buf        Buffer
	layout     Layout
	stride     int
	capacity   int
	writeCount uint64
	scratch    []byte
}

// NewStore allocates capacity records of layout in buf, once, with a dynamic
// usage hint. capacity must be positive.
func NewStore(buf Buffer, layout Layout, capacity int) *Store {
	if capacity <= 0 {
		panic(fmt.Sprintf("particles: store capacity must be positive, got %d", capacity))
	}
	stride := layout.Stride()
	buf.Allocate(capacity*stride, DynamicDraw)
	return &Store{
		buf:      buf,
		layout:   layout,
		stride:   stride,
		capacity: capacity,
		scratch:  make([]byte, stride),
	}
}

// Emit writes p into slot writeCount mod capacity and uploads exactly that slot.
func (s *Store) Emit(p Particle) {
	slot := int(s.writeCount % uint64(s.capacity))
	s.layout.Encode(s.scratch, p)
	s.buf.UpdateData(slot*s.stride, s.scratch)
	s.writeCount++
}

// DrawCount is the number of slots written at least once.
func (s *Store) DrawCount() int {
	if s.writeCount < uint64(s.capacity) {
		return int(s.writeCount)
	}
	return s.capacity
}

func (s *Store) Capacity() int      { return s.capacity }
func (s *Store) WriteCount() uint64 { return s.writeCount }
func (s *Store) Layout() Layout     { return s.layout }
func (s *Store) Stride() int        { return s.stride }

// NewestSlot returns the slot of the most recent emission, or -1 if nothing
// has been emitted yet.
func (s *Store) NewestSlot() int {
	if s.writeCount == 0 {
		return -1
	}
	return int((s.writeCount - 1) % uint64(s.capacity))
}

// NextSlot returns the slot the next Emit overwrites. Once the store has
// wrapped, this is also the oldest surviving record.
func (s *Store) NextSlot() int {
	return int(s.writeCount % uint64(s.capacity))
}

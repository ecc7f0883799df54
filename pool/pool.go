package pool

import "github.com/Timofon/Smart-pointers/shared"

// Pool hands out counted handles to reusable objects.
type Pool[T any] struct {
	ctor  func() *T
	reset func(*T)
	free  *freeRing[T]
	live  int
}

// New creates a pool whose free ring holds up to ringPow2 objects
// (power of two). ctor builds a fresh object when the ring is empty;
// reset, which may be nil, scrubs an object before it is recycled.
func New[T any](ringPow2 uint64, ctor func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		ctor:  ctor,
		reset: reset,
		free:  newFreeRing[T](ringPow2),
	}
}

// Acquire returns a counted handle to a recycled or freshly built
// object. Cloning the handle shares the object; the last release
// retires it back to the pool.
func (p *Pool[T]) Acquire() shared.Ptr[T] {
	obj := p.free.Dequeue()
	if obj == nil {
		obj = p.ctor()
	}
	p.live++
	return shared.FromPointerFunc(obj, p.retire)
}

// retire is the destruction action attached to every handle the pool
// hands out.
func (p *Pool[T]) retire(obj *T) {
	p.live--
	if p.reset != nil {
		p.reset(obj)
	}
	_ = p.free.Enqueue(obj) // full ring: the collector takes it
}

// Live returns the number of objects currently out of the pool.
func (p *Pool[T]) Live() int { return p.live }

// FreeLen returns the number of objects waiting on the free ring.
func (p *Pool[T]) FreeLen() int { return p.free.Len() }

// FreeCap returns the free ring's capacity.
func (p *Pool[T]) FreeCap() int { return p.free.Cap() }

package pool

// freeRing is a fixed-size circular buffer of recycled objects
// (power-of-2 length). Single-owner: the library's single-threaded
// contract keeps head and tail plain integers.
type freeRing[T any] struct {
	head uint64
	tail uint64
	buf  []*T
	mask uint64
}

// newFreeRing allocates a ring with power-of-two capacity.
func newFreeRing[T any](pow2 uint64) *freeRing[T] {
	if pow2 == 0 || pow2&(pow2-1) != 0 {
		panic("pool: ring capacity must be a power of two")
	}
	return &freeRing[T]{buf: make([]*T, pow2), mask: pow2 - 1}
}

// Enqueue pushes an object into the ring.
// Returns false if the buffer is full.
func (q *freeRing[T]) Enqueue(v *T) bool {
	if q.head-q.tail == uint64(len(q.buf)) {
		return false // full
	}
	q.buf[q.head&q.mask] = v
	q.head++
	return true
}

// Dequeue pops the next object from the ring.
// Returns nil if the buffer is empty.
func (q *freeRing[T]) Dequeue() *T {
	if q.tail == q.head {
		return nil
	}
	v := q.buf[q.tail&q.mask]
	q.buf[q.tail&q.mask] = nil
	q.tail++
	return v
}

// ---------------- Diagnostics ---------------- //

// Len returns the number of objects currently stored.
func (q *freeRing[T]) Len() int {
	return int(q.head - q.tail)
}

// Cap returns the total capacity of the ring.
func (q *freeRing[T]) Cap() int {
	return len(q.buf)
}

// IsFull reports whether the ring is full.
func (q *freeRing[T]) IsFull() bool {
	return q.head-q.tail == uint64(len(q.buf))
}

// IsEmpty reports whether the ring is empty.
func (q *freeRing[T]) IsEmpty() bool {
	return q.head == q.tail
}

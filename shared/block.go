package shared

import "github.com/Timofon/Smart-pointers/pair"

// -------------------- Counters --------------------

// refCounts is the dual counter every control block embeds. Plain
// ints: the package is single-threaded by contract.
type refCounts struct {
	strong int
	weak   int
}

func (c *refCounts) incStrong() { c.strong++ }

func (c *refCounts) decStrong() int {
	c.strong--
	if c.strong < 0 {
		panic("shared: strong count below zero")
	}
	return c.strong
}

func (c *refCounts) incWeak() { c.weak++ }

func (c *refCounts) decWeak() int {
	c.weak--
	if c.weak < 0 {
		panic("shared: weak count below zero")
	}
	return c.weak
}

func (c *refCounts) strongCount() int { return c.strong }

func (c *refCounts) weakCount() int { return c.weak }

// -------------------- Block capability --------------------

// controlBlock is the capability both block shapes expose. Exactly two
// implementations exist: pointerBlock adopts a caller-allocated
// object, holderBlock stores the object inline.
type controlBlock interface {
	incStrong()
	decStrong() int
	incWeak()
	decWeak() int
	strongCount() int
	weakCount() int

	// deleteObject destroys the managed object without retiring the
	// block. Runs exactly once, from releaseStrong.
	deleteObject()

	// dispose retires the block itself. Runs exactly once, when both
	// counters are zero.
	dispose()
}

// releaseStrong drops one owning reference. Ptr.Release, Reset,
// CopyFrom and MoveFrom all funnel through here so the dual-counter
// rule lives in one place: strong hitting zero destroys the object,
// both hitting zero retires the block.
func releaseStrong(b controlBlock) {
	if b == nil {
		return
	}
	if b.decStrong() == 0 {
		b.deleteObject()
		if b.weakCount() == 0 {
			b.dispose()
		}
	}
}

// releaseWeak drops one observing reference and retires the block if
// it was the last reference of either kind.
func releaseWeak(b controlBlock) {
	if b == nil {
		return
	}
	if b.decWeak() == 0 && b.strongCount() == 0 {
		b.dispose()
	}
}

// destroyFunc is the optional teardown action a block runs on its
// object. A nil action means the object needs no teardown beyond
// dropping the reference.
type destroyFunc[T any] func(*T)

// -------------------- Adopting block --------------------

// pointerBlock wraps an object the caller allocated separately. The
// pointer and its destruction action live in compressed pair storage.
type pointerBlock[T any] struct {
	refCounts
	pr       pair.Pair[*T, destroyFunc[T]]
	disposed bool
}

func newPointerBlock[T any](p *T, destroy destroyFunc[T]) *pointerBlock[T] {
	b := &pointerBlock[T]{
		refCounts: refCounts{strong: 1},
		pr:        pair.New(p, destroy),
	}
	registerBlock(b, "pointer")
	return b
}

func (b *pointerBlock[T]) get() *T { return *b.pr.First() }

func (b *pointerBlock[T]) deleteObject() {
	p := *b.pr.First()
	if p == nil {
		return
	}
	// Sever the object's own weak handle before teardown; the strong
	// release driving this call makes the dispose decision itself.
	detachIfSelfRef(p)
	if d := *b.pr.Second(); d != nil {
		d(p)
	}
	*b.pr.First() = nil
}

func (b *pointerBlock[T]) dispose() {
	if b.disposed {
		panic("shared: control block disposed twice")
	}
	b.disposed = true
	unregisterBlock(b)
}

// -------------------- Co-allocated block --------------------

// holderBlock owns in-place storage for its object: object and
// bookkeeping share one allocation, which is why the factory path
// allocates once. deleteObject tears the object down and zeroes the
// storage but leaves the allocation to dispose.
type holderBlock[T any] struct {
	refCounts
	value    T
	destroy  destroyFunc[T]
	dead     bool
	disposed bool
}

func newHolderBlock[T any](v T, destroy destroyFunc[T]) *holderBlock[T] {
	b := &holderBlock[T]{
		refCounts: refCounts{strong: 1},
		value:     v,
		destroy:   destroy,
	}
	registerBlock(b, "holder")
	return b
}

func (b *holderBlock[T]) get() *T { return &b.value }

func (b *holderBlock[T]) deleteObject() {
	if b.dead {
		return
	}
	b.dead = true
	detachIfSelfRef(&b.value)
	if b.destroy != nil {
		b.destroy(&b.value)
	}
	// Drop whatever the storage still references. The storage itself
	// stays valid until dispose: expired weak handles may still hold
	// the block.
	var zero T
	b.value = zero
}

func (b *holderBlock[T]) dispose() {
	if b.disposed {
		panic("shared: control block disposed twice")
	}
	b.disposed = true
	unregisterBlock(b)
}

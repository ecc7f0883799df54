package shared

import "errors"

// ErrBadWeakPtr is returned by Promote when the weak handle's object
// is already gone or the handle never observed one.
var ErrBadWeakPtr = errors.New("shared: bad weak pointer")

// Ptr is a counted owning handle. The zero value is the null handle.
//
// Handles are duplicated with Clone and passed along with Move; plain
// struct assignment would give two handles one reference and corrupt
// the count on release.
type Ptr[T any] struct {
	ptr   *T
	block controlBlock
}

// -------------------- Construction --------------------

// New allocates the object and its bookkeeping in one step and returns
// the first owning handle. This is the factory path: one allocation
// for both.
func New[T any](v T) Ptr[T] {
	return NewWithDestructor[T](v, nil)
}

// NewWithDestructor is New with a teardown action that runs when the
// last owning handle releases.
func NewWithDestructor[T any](v T, fn func(*T)) Ptr[T] {
	b := newHolderBlock(v, fn)
	p := Ptr[T]{ptr: b.get(), block: b}
	wireSelfRef(&p)
	return p
}

// FromPointer adopts an object allocated by the caller. A second
// allocation holds the bookkeeping. A nil pointer yields the null
// handle.
func FromPointer[T any](p *T) Ptr[T] {
	return FromPointerFunc[T](p, nil)
}

// FromPointerFunc is FromPointer with a teardown action.
func FromPointerFunc[T any](p *T, fn func(*T)) Ptr[T] {
	if p == nil {
		return Ptr[T]{}
	}
	b := newPointerBlock(p, fn)
	sp := Ptr[T]{ptr: p, block: b}
	wireSelfRef(&sp)
	return sp
}

// Alias returns a handle that borrows owner's block but points at
// target: it owns the whole while pointing at a part. The owner must
// be a non-null handle.
func Alias[T, O any](owner *Ptr[O], target *T) Ptr[T] {
	owner.block.incStrong()
	return Ptr[T]{ptr: target, block: owner.block}
}

// Promote turns a weak handle into an owning one. It fails with
// ErrBadWeakPtr if the object is already gone, leaving the weak handle
// untouched and allocating nothing.
func Promote[T any](w *Weak[T]) (Ptr[T], error) {
	if w.block == nil || w.block.strongCount() == 0 {
		return Ptr[T]{}, ErrBadWeakPtr
	}
	w.block.incStrong()
	return Ptr[T]{ptr: w.ptr, block: w.block}, nil
}

// -------------------- Self-reference wiring --------------------

// weakThisSetter is implemented by EnableSharedFromThis. Every
// adopting construction path probes for it so an object can hand out
// handles to itself from the moment the first owner exists.
type weakThisSetter[T any] interface {
	setWeakThis(*Ptr[T])
}

func wireSelfRef[T any](p *Ptr[T]) {
	if s, ok := any(p.ptr).(weakThisSetter[T]); ok {
		s.setWeakThis(p)
	}
}

// -------------------- Handle operations --------------------

// Clone returns a new owning handle to the same object.
func (p *Ptr[T]) Clone() Ptr[T] {
	if p.block != nil {
		p.block.incStrong()
	}
	return Ptr[T]{ptr: p.ptr, block: p.block}
}

// Move transfers this handle's reference to the returned handle; the
// receiver becomes null.
func (p *Ptr[T]) Move() Ptr[T] {
	moved := Ptr[T]{ptr: p.ptr, block: p.block}
	p.ptr, p.block = nil, nil
	return moved
}

// CopyFrom makes the receiver a new owning handle to other's object,
// releasing whatever it held. Self-assignment is a no-op.
func (p *Ptr[T]) CopyFrom(other *Ptr[T]) {
	if p == other {
		return
	}
	// Acquire before releasing: if the receiver holds the last
	// reference to the same block (through an alias), releasing first
	// would kill the object other still points at.
	if other.block != nil {
		other.block.incStrong()
	}
	old := p.block
	p.ptr, p.block = other.ptr, other.block
	releaseStrong(old)
}

// MoveFrom steals other's reference, releasing whatever the receiver
// held. Moving a handle into itself is a no-op.
func (p *Ptr[T]) MoveFrom(other *Ptr[T]) {
	if p == other {
		return
	}
	old := p.block
	p.ptr, p.block = other.ptr, other.block
	other.ptr, other.block = nil, nil
	releaseStrong(old)
}

// Release drops this handle's reference and nulls it. At the last
// strong reference the object is destroyed; if no weak handles remain
// the block is retired too. Releasing a null handle is a no-op.
func (p *Ptr[T]) Release() {
	b := p.block
	p.ptr, p.block = nil, nil
	releaseStrong(b)
}

// Reset releases the current reference and adopts ptr under a fresh
// block. A nil ptr leaves the handle null.
func (p *Ptr[T]) Reset(ptr *T) {
	old := p.block
	p.ptr, p.block = nil, nil
	releaseStrong(old)
	if ptr != nil {
		p.ptr = ptr
		p.block = newPointerBlock(ptr, destroyFunc[T](nil))
		wireSelfRef(p)
	}
}

// Swap exchanges the contents of two handles without touching counts.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.block, other.block = other.block, p.block
}

// -------------------- Observers --------------------

// Get returns the stored pointer. It stays valid while any owning
// handle lives; dereferencing a null handle's result is the caller's
// bug.
func (p *Ptr[T]) Get() *T { return p.ptr }

// IsNil reports whether the handle points at nothing.
func (p *Ptr[T]) IsNil() bool { return p.ptr == nil }

// UseCount returns the number of owning handles sharing this block, or
// zero for the null handle.
func (p *Ptr[T]) UseCount() int {
	if p.block == nil {
		return 0
	}
	return p.block.strongCount()
}

// Equal reports whether both handles hold the same pointer and the
// same control block. Aliased handles over one block are not equal
// unless they also point at the same address.
func (p *Ptr[T]) Equal(other *Ptr[T]) bool {
	return p.ptr == other.ptr && p.block == other.block
}

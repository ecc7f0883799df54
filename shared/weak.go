package shared

// Weak is a non-owning observer handle. It shares a control block with
// the owning handles but only pins the block, never the object: the
// object can die while weak handles remain, and they will report it
// expired. The zero value is the null handle.
type Weak[T any] struct {
	ptr   *T
	block controlBlock
}

// NewWeak demotes an owning handle to an observer of the same block.
func NewWeak[T any](p *Ptr[T]) Weak[T] {
	if p.block != nil {
		p.block.incWeak()
	}
	return Weak[T]{ptr: p.ptr, block: p.block}
}

// Clone returns a new observer of the same block.
func (w *Weak[T]) Clone() Weak[T] {
	if w.block != nil {
		w.block.incWeak()
	}
	return Weak[T]{ptr: w.ptr, block: w.block}
}

// Move transfers this handle's reference to the returned handle; the
// receiver becomes null.
func (w *Weak[T]) Move() Weak[T] {
	moved := Weak[T]{ptr: w.ptr, block: w.block}
	w.ptr, w.block = nil, nil
	return moved
}

// CopyFrom makes the receiver observe other's block, releasing
// whatever it observed. Self-assignment is a no-op.
func (w *Weak[T]) CopyFrom(other *Weak[T]) {
	if w == other {
		return
	}
	if other.block != nil {
		other.block.incWeak()
	}
	old := w.block
	w.ptr, w.block = other.ptr, other.block
	releaseWeak(old)
}

// MoveFrom steals other's reference, releasing whatever the receiver
// observed. Moving a handle into itself is a no-op.
func (w *Weak[T]) MoveFrom(other *Weak[T]) {
	if w == other {
		return
	}
	old := w.block
	w.ptr, w.block = other.ptr, other.block
	other.ptr, other.block = nil, nil
	releaseWeak(old)
}

// Release drops this handle's reference and nulls it, retiring the
// block if it was the last reference of either kind. Releasing a null
// handle is a no-op.
func (w *Weak[T]) Release() {
	b := w.block
	w.ptr, w.block = nil, nil
	releaseWeak(b)
}

// Reset is Release under its classic name.
func (w *Weak[T]) Reset() { w.Release() }

// Swap exchanges the contents of two handles without touching counts.
func (w *Weak[T]) Swap(other *Weak[T]) {
	w.ptr, other.ptr = other.ptr, w.ptr
	w.block, other.block = other.block, w.block
}

// UseCount returns the number of owning handles still alive on this
// block, or zero for the null handle.
func (w *Weak[T]) UseCount() int {
	if w.block == nil {
		return 0
	}
	return w.block.strongCount()
}

// Expired reports whether the observed object is gone (or was never
// there).
func (w *Weak[T]) Expired() bool { return w.UseCount() == 0 }

// IsNil reports whether the handle observes no block at all.
func (w *Weak[T]) IsNil() bool { return w.block == nil }

// Lock promotes the observer to an owning handle, or returns the null
// handle if the object is gone. This is the only safe way to reach the
// object from a weak handle.
func (w *Weak[T]) Lock() Ptr[T] {
	p, err := Promote(w)
	if err != nil {
		return Ptr[T]{}
	}
	return p
}

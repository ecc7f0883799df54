package shared

// EnableSharedFromThis lets a counted object hand out handles to
// itself. Embed it by value, parameterized by the outer type:
//
//	type Node struct {
//		shared.EnableSharedFromThis[Node]
//		// ...
//	}
//
// The first adopting construction path (New, NewWithDestructor,
// FromPointer, FromPointerFunc, Reset) wires the internal weak handle
// before returning, so SharedFromThis is valid from the moment the
// first owner exists. Before that it yields the null handle — calling
// it on an unadopted object is a caller precondition violation, not a
// recoverable state.
type EnableSharedFromThis[T any] struct {
	weakThis Weak[T]
}

// SharedFromThis returns a new owning handle to the object itself.
func (e *EnableSharedFromThis[T]) SharedFromThis() Ptr[T] {
	return e.weakThis.Lock()
}

// WeakFromThis returns a new observer handle to the object itself.
func (e *EnableSharedFromThis[T]) WeakFromThis() Weak[T] {
	return e.weakThis.Clone()
}

// setWeakThis implements weakThisSetter. Wired exactly once, by the
// first adopting handle; later adoptions of the same object through
// new blocks must not rebind an already-bound object.
func (e *EnableSharedFromThis[T]) setWeakThis(p *Ptr[T]) {
	if e.weakThis.block != nil {
		return
	}
	e.weakThis = NewWeak(p)
}

// weakThisDetacher is probed by deleteObject on both block shapes.
type weakThisDetacher interface {
	detachWeakThis()
}

// detachWeakThis severs the internal weak handle with a bare weak
// decrement, no dispose check: it runs inside deleteObject, while the
// strong release that triggered it still owns the dispose decision.
// Going through releaseWeak here would retire the block under that
// release's feet.
func (e *EnableSharedFromThis[T]) detachWeakThis() {
	if e.weakThis.block == nil {
		return
	}
	e.weakThis.block.decWeak()
	e.weakThis.ptr = nil
	e.weakThis.block = nil
}

func detachIfSelfRef(p any) {
	if d, ok := p.(weakThisDetacher); ok {
		d.detachWeakThis()
	}
}

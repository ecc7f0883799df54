// Package unique provides a single-owner handle: exactly one handle
// owns the pointee at a time, and ownership changes hands only through
// Move, Transfer and Release. The destruction policy is a type
// parameter held in compressed pair storage, so a stateless policy
// costs nothing.
package unique

import "github.com/Timofon/Smart-pointers/pair"

// Ptr is a move-only owning handle. The zero value is the null handle.
//
// Ptr values must not be duplicated by plain assignment: two handles
// over one pointee would each run the destruction policy. Use Move,
// Transfer or Release to pass ownership along.
type Ptr[T any, D Deleter[T]] struct {
	pr pair.Pair[*T, D]
}

// New adopts ptr under the given destruction policy.
func New[T any, D Deleter[T]](ptr *T, del D) Ptr[T, D] {
	return Ptr[T, D]{pr: pair.New(ptr, del)}
}

// NewDefault adopts ptr with the no-op policy.
func NewDefault[T any](ptr *T) Ptr[T, NopDeleter[T]] {
	return New(ptr, NopDeleter[T]{})
}

// Get returns the owned pointer without affecting ownership.
func (u *Ptr[T, D]) Get() *T { return *u.pr.First() }

// IsNil reports whether the handle owns nothing.
func (u *Ptr[T, D]) IsNil() bool { return u.Get() == nil }

// Deleter returns the destruction policy slot.
func (u *Ptr[T, D]) Deleter() *D { return u.pr.Second() }

// Release relinquishes ownership: the raw pointer is returned, the
// handle becomes null, and the policy is not run.
func (u *Ptr[T, D]) Release() *T {
	p := *u.pr.First()
	*u.pr.First() = nil
	return p
}

// Reset destroys the current pointee through the policy and adopts
// ptr, which may be nil.
func (u *Ptr[T, D]) Reset(ptr *T) {
	old := *u.pr.First()
	*u.pr.First() = ptr
	if old != nil {
		(*u.pr.Second()).Delete(old)
	}
}

// Destroy runs the policy on the pointee and leaves the handle null.
// Destroying a null handle is a no-op.
func (u *Ptr[T, D]) Destroy() {
	u.Reset(nil)
}

// Move transfers ownership to the returned handle; the receiver
// becomes null.
func (u *Ptr[T, D]) Move() Ptr[T, D] {
	moved := Ptr[T, D]{pr: pair.New(*u.pr.First(), *u.pr.Second())}
	*u.pr.First() = nil
	return moved
}

// Swap exchanges pointees and policies with another handle.
func (u *Ptr[T, D]) Swap(other *Ptr[T, D]) {
	u.pr, other.pr = other.pr, u.pr
}

// Transfer moves the pointee out of src into a handle governed by a
// different policy type. This is how a handle over a policy for a
// specialized type converts to one for its general counterpart: the
// pointer moves, the replacement policy is supplied explicitly.
func Transfer[T any, D1, D2 Deleter[T]](src *Ptr[T, D1], del D2) Ptr[T, D2] {
	return New(src.Release(), del)
}

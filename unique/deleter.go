package unique

// Deleter is the destruction policy a Ptr applies to its pointee.
type Deleter[T any] interface {
	Delete(*T)
}

// NopDeleter destroys nothing and leaves reclamation to the garbage
// collector. It is zero-sized, so it vanishes inside the handle's
// pair storage.
type NopDeleter[T any] struct{}

// Delete implements Deleter.
func (NopDeleter[T]) Delete(*T) {}

// DeleteFunc adapts a function to the Deleter policy. It carries
// state (the function value) and therefore occupies space.
type DeleteFunc[T any] struct {
	Fn func(*T)
}

// Delete implements Deleter.
func (d DeleteFunc[T]) Delete(p *T) {
	if d.Fn != nil {
		d.Fn(p)
	}
}

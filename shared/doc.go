// Package shared implements counted ownership: a strong handle (Ptr)
// that guarantees a destruction action runs exactly once when the last
// owner releases, a weak handle (Weak) that observes an object without
// extending its life, and the control blocks that keep the books.
//
// Reference counting here is about deterministic destruction, not
// memory: the garbage collector reclaims storage, the counters decide
// when the managed object's teardown runs. An object dies when its
// strong count reaches zero; the control block itself is retired only
// once the weak count is also zero, so expired observers can still ask
// whether the object is alive.
//
// The package is single-threaded by contract. Counters are plain
// integers and all handle operations must be sequenced by one
// goroutine; sharing a control block across goroutines is unsupported.
package shared

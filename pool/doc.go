// Package pool recycles objects through counted handles. A handle's
// destruction action, not the borrowing code, decides when an object
// goes back on the free ring: the last release resets it and
// re-enqueues it, so an object shared across several holders returns
// exactly once, after the final holder lets go.
//
// The free list is a fixed-size ring rather than a GC-coupled pool:
// recycling stays deterministic and ordered, matching the rest of the
// library. A full ring simply drops the object for the collector.
package pool

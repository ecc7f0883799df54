// Package pair provides a space-optimizing two-slot container used to
// store pointer/policy pairs without paying for stateless policies.
package pair

// Pair stores a First and a Second value. The Second slot is meant for
// destruction policies and is laid out first in memory: a zero-sized
// Second type then contributes no bytes, so Sizeof(Pair[*T, Empty])
// equals Sizeof(*T).
type Pair[F, S any] struct {
	// second must not be the last field: Go pads a zero-sized
	// trailing field, which would defeat the elision.
	second S
	first  F
}

// New builds a pair from two values.
func New[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{second: second, first: first}
}

// First returns the address of the first slot.
func (p *Pair[F, S]) First() *F { return &p.first }

// Second returns the address of the second slot.
func (p *Pair[F, S]) Second() *S { return &p.second }

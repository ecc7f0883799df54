package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box checks of the dual-counter rule: the object dies at the
// 1→0 strong transition, the block is retired when both counters are
// zero, whichever reaches zero last.

func TestBlockRetiredStrongLast(t *testing.T) {
	require := require.New(t)

	p := New(1)
	b := p.block.(*holderBlock[int])
	w := NewWeak(&p)

	w.Release()
	require.Equal(0, b.weakCount())
	require.False(b.dead, "weak release must not touch the object")
	require.False(b.disposed)

	p.Release()
	require.True(b.dead)
	require.True(b.disposed)
}

func TestBlockRetiredWeakLast(t *testing.T) {
	require := require.New(t)

	p := New(1)
	b := p.block.(*holderBlock[int])
	w := NewWeak(&p)

	p.Release()
	require.True(b.dead, "object dies with the last owner")
	require.False(b.disposed, "observer still holds the block")

	w.Release()
	require.True(b.disposed)
}

func TestPointerBlockDropsAdoptedPointer(t *testing.T) {
	require := require.New(t)

	v := 5
	p := FromPointer(&v)
	b := p.block.(*pointerBlock[int])
	require.Equal(&v, b.get())

	p.Release()
	require.Nil(b.get(), "teardown must drop the adopted pointer")
	require.True(b.disposed)
}

func TestHolderBlockZeroesStorage(t *testing.T) {
	require := require.New(t)

	type payload struct{ buf []byte }
	p := New(payload{buf: make([]byte, 8)})
	b := p.block.(*holderBlock[payload])
	w := NewWeak(&p)

	p.Release()
	require.Nil(b.value.buf, "dead storage must not pin references")
	require.False(b.disposed)
	w.Release()
}

func TestCounterUnderflowPanics(t *testing.T) {
	require := require.New(t)

	c := &refCounts{}
	require.Panics(func() { c.decStrong() })
	require.Panics(func() { c.decWeak() })
}

func TestDoubleDisposePanics(t *testing.T) {
	require := require.New(t)

	b := newHolderBlock(1, nil)
	b.decStrong()
	b.deleteObject()
	b.dispose()
	require.Panics(func() { b.dispose() })
}

func TestReleaseHelpersSharedPath(t *testing.T) {
	require := require.New(t)

	b := newPointerBlock(new(int), nil)
	b.incWeak()

	releaseStrong(b)
	require.Equal(0, b.strongCount())
	require.False(b.disposed)

	releaseWeak(b)
	require.True(b.disposed)
}

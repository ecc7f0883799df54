package pair_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/Timofon/Smart-pointers/pair"
)

type stateless struct{}

type stateful struct {
	n int
}

func TestCompressedSize(t *testing.T) {
	require := require.New(t)

	var p pair.Pair[*int, stateless]
	require.Equal(unsafe.Sizeof((*int)(nil)), unsafe.Sizeof(p),
		"zero-sized policy slot must add no bytes")

	var both pair.Pair[stateless, stateless]
	require.Equal(uintptr(0), unsafe.Sizeof(both))

	var full pair.Pair[*int, stateful]
	require.Equal(unsafe.Sizeof((*int)(nil))+unsafe.Sizeof(stateful{}), unsafe.Sizeof(full))
}

func TestAccessors(t *testing.T) {
	require := require.New(t)

	p := pair.New(41, "policy")
	require.Equal(41, *p.First())
	require.Equal("policy", *p.Second())

	*p.First() = 42
	*p.Second() = "replaced"
	require.Equal(42, *p.First())
	require.Equal("replaced", *p.Second())
}

func TestZeroValue(t *testing.T) {
	require := require.New(t)

	var p pair.Pair[*int, stateful]
	require.Nil(*p.First())
	require.Equal(0, p.Second().n)
}

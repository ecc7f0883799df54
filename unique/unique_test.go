package unique_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/Timofon/Smart-pointers/unique"
)

func counting(deleted *int) unique.DeleteFunc[int] {
	return unique.DeleteFunc[int]{Fn: func(*int) { *deleted++ }}
}

func TestDestroyRunsPolicyOnce(t *testing.T) {
	require := require.New(t)

	deleted := 0
	v := 42
	u := unique.New(&v, counting(&deleted))
	require.Equal(&v, u.Get())
	require.False(u.IsNil())

	u.Destroy()
	require.Equal(1, deleted)
	require.True(u.IsNil())

	u.Destroy() // null handle: no-op
	require.Equal(1, deleted)
}

func TestReleaseSkipsPolicy(t *testing.T) {
	require := require.New(t)

	deleted := 0
	v := 1
	u := unique.New(&v, counting(&deleted))

	raw := u.Release()
	require.Equal(&v, raw)
	require.True(u.IsNil())
	require.Nil(u.Release())

	u.Destroy()
	require.Equal(0, deleted)
}

func TestResetDestroysOldAdoptsNew(t *testing.T) {
	require := require.New(t)

	deleted := 0
	a, b := 1, 2
	u := unique.New(&a, counting(&deleted))

	u.Reset(&b)
	require.Equal(1, deleted)
	require.Equal(&b, u.Get())

	u.Reset(nil)
	require.Equal(2, deleted)
	require.True(u.IsNil())
}

func TestMoveTransfersOwnership(t *testing.T) {
	require := require.New(t)

	deleted := 0
	v := 7
	u := unique.New(&v, counting(&deleted))

	m := u.Move()
	require.True(u.IsNil())
	require.Equal(&v, m.Get())

	u.Destroy() // moved-from handle owns nothing
	require.Equal(0, deleted)
	m.Destroy()
	require.Equal(1, deleted)
}

func TestSwap(t *testing.T) {
	require := require.New(t)

	a, b := 1, 2
	ua := unique.NewDefault(&a)
	ub := unique.NewDefault(&b)

	ua.Swap(&ub)
	require.Equal(&b, ua.Get())
	require.Equal(&a, ub.Get())
}

func TestTransferChangesPolicy(t *testing.T) {
	require := require.New(t)

	deleted := 0
	v := 3
	u := unique.NewDefault(&v)

	m := unique.Transfer(&u, counting(&deleted))
	require.True(u.IsNil())
	require.Equal(&v, m.Get())

	m.Destroy()
	require.Equal(1, deleted)
}

func TestStatelessPolicyAddsNoBytes(t *testing.T) {
	require := require.New(t)

	var u unique.Ptr[int, unique.NopDeleter[int]]
	require.Equal(unsafe.Sizeof((*int)(nil)), unsafe.Sizeof(u))
}

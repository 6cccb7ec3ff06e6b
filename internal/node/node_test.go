package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbradix/art/internal/node"
)

func TestLeafRefRoundTrip(t *testing.T) {
	r := node.LeafRef(42)
	assert.True(t, r.IsLeaf())
	assert.False(t, r.IsNil())
	assert.EqualValues(t, 42, r.TID())
}

func TestNilRef(t *testing.T) {
	assert.True(t, node.Nil.IsNil())
	assert.False(t, node.Nil.IsLeaf())
}

func TestNode4InsertFindRemove(t *testing.T) {
	n := node.NewNode4()

	for i := byte(0); i < 4; i++ {
		n = node.InsertGrow(n, i, node.LeafRef(node.TID(i)))
	}
	require.Equal(t, node.Tag4, n.Tag())
	require.Equal(t, 4, node.Count(n))

	for i := byte(0); i < 4; i++ {
		child := node.GetChild(n, i)
		require.True(t, child.IsLeaf())
		assert.EqualValues(t, i, child.TID())
	}

	assert.True(t, node.GetChild(n, 200).IsNil())
}

func TestNode4GrowsToNode16OnFifthInsert(t *testing.T) {
	n := node.NewNode4()
	for i := byte(0); i < 4; i++ {
		n = node.InsertGrow(n, i, node.LeafRef(node.TID(i)))
	}

	n = node.InsertGrow(n, 4, node.LeafRef(4))
	assert.Equal(t, node.Tag16, n.Tag())
	assert.Equal(t, 5, node.Count(n))

	for i := byte(0); i <= 4; i++ {
		child := node.GetChild(n, i)
		require.True(t, child.IsLeaf())
		assert.EqualValues(t, i, child.TID())
	}
}

func TestGrowThroughAllVariants(t *testing.T) {
	n := node.NewNode4()
	for i := 0; i < 49; i++ {
		n = node.InsertGrow(n, byte(i), node.LeafRef(node.TID(i)))

		switch {
		case i < 4:
			assert.Equal(t, node.Tag4, n.Tag())
		case i < 16:
			assert.Equal(t, node.Tag16, n.Tag())
		case i < 48:
			assert.Equal(t, node.Tag48, n.Tag())
		default:
			assert.Equal(t, node.Tag256, n.Tag())
		}
	}
	assert.Equal(t, node.Tag256, n.Tag())
	assert.Equal(t, 49, node.Count(n))

	for i := 0; i < 49; i++ {
		child := node.GetChild(n, byte(i))
		require.True(t, child.IsLeaf())
		assert.EqualValues(t, i, child.TID())
	}
}

func TestShrinkThroughAllVariants(t *testing.T) {
	n := node.NewNode4()
	for i := 0; i < 49; i++ {
		n = node.InsertGrow(n, byte(i), node.LeafRef(node.TID(i)))
	}
	require.Equal(t, node.Tag256, n.Tag())

	for i := 48; i >= 13; i-- {
		var removed bool
		n, removed, _ = node.RemoveShrink(n, byte(i), false)
		require.True(t, removed)
	}
	assert.Equal(t, node.Tag48, n.Tag())
	assert.Equal(t, 13, node.Count(n))

	for i := 12; i >= 4; i-- {
		var removed bool
		n, removed, _ = node.RemoveShrink(n, byte(i), false)
		require.True(t, removed)
	}
	assert.Equal(t, node.Tag16, n.Tag())
	assert.Equal(t, 4, node.Count(n))

	for i := 3; i >= 1; i-- {
		var removed bool
		n, removed, _ = node.RemoveShrink(n, byte(i), false)
		require.True(t, removed)
	}
	assert.Equal(t, node.Tag4, n.Tag())
	assert.Equal(t, 1, node.Count(n))

	child := node.GetChild(n, 0)
	require.True(t, child.IsLeaf())
	assert.EqualValues(t, 0, child.TID())
}

func TestRemoveShrinkSuppressedAtRoot(t *testing.T) {
	n := node.NewNode4()
	for i := 0; i < 49; i++ {
		n = node.InsertGrow(n, byte(i), node.LeafRef(node.TID(i)))
	}
	require.Equal(t, node.Tag256, n.Tag())

	// At the root, dropping to 37 children must not shrink node256 to
	// node48 -- the original C++ passes force=true for a null parent
	// specifically to keep the root's variant from shrinking.
	for i := 48; i >= 12; i-- {
		var removed bool
		n, removed, _ = node.RemoveShrink(n, byte(i), true)
		require.True(t, removed)
	}
	assert.Equal(t, node.Tag256, n.Tag())
	assert.Equal(t, 12, node.Count(n))

	// Once replayed with isRoot=false from the same state, the same drop
	// shrinks normally.
	n2 := node.NewNode4()
	for i := 0; i < 49; i++ {
		n2 = node.InsertGrow(n2, byte(i), node.LeafRef(node.TID(i)))
	}
	for i := 48; i >= 13; i-- {
		n2, _, _ = node.RemoveShrink(n2, byte(i), false)
	}
	assert.Equal(t, node.Tag48, n2.Tag())
}

func TestNode4SoleChildCollapseSignal(t *testing.T) {
	n := node.NewNode4()
	n = node.InsertGrow(n, 1, node.LeafRef(1))
	n = node.InsertGrow(n, 2, node.LeafRef(2))

	newRef, removed, soleChild := node.RemoveShrink(n, 1, false)
	require.True(t, removed)
	assert.True(t, soleChild)

	b, child := node.SoleChild(newRef)
	assert.Equal(t, byte(2), b)
	assert.True(t, child.IsLeaf())
	assert.EqualValues(t, 2, child.TID())
}

func TestPrefixRoundTrip(t *testing.T) {
	n := node.NewNode4()
	node.SetPrefix(n, []byte{1, 2, 3})

	assert.EqualValues(t, 3, node.PrefixLen(n))
	assert.Equal(t, []byte{1, 2, 3}, node.Prefix(n))
}

func TestPrefixTruncatesToStorageBoundButKeepsTrueLength(t *testing.T) {
	n := node.NewNode4()
	long := make([]byte, node.MaxStoredPrefixLen+20)
	for i := range long {
		long[i] = byte(i)
	}
	node.SetPrefix(n, long)

	assert.EqualValues(t, len(long), node.PrefixLen(n))
	assert.Len(t, node.Prefix(n), node.MaxStoredPrefixLen)
	assert.Equal(t, long[:node.MaxStoredPrefixLen], node.Prefix(n))
}

func TestAddPrefixBeforeMergesParentAndConnectingByte(t *testing.T) {
	parent := node.NewNode4()
	node.SetPrefix(parent, []byte("ab"))

	child := node.NewNode4()
	node.SetPrefix(child, []byte("yz"))

	node.AddPrefixBefore(child, parent, 'c')

	assert.EqualValues(t, 5, node.PrefixLen(child))
	assert.Equal(t, []byte("abcyz"), node.Prefix(child))
}

func TestGetChildrenOrderedByKeyByte(t *testing.T) {
	n := node.NewNode4()
	n = node.InsertGrow(n, 30, node.LeafRef(30))
	n = node.InsertGrow(n, 10, node.LeafRef(10))
	n = node.InsertGrow(n, 20, node.LeafRef(20))

	kids := node.GetChildren(n, 0, 255)
	require.Len(t, kids, 3)
	assert.Equal(t, byte(10), kids[0].V0)
	assert.Equal(t, byte(20), kids[1].V0)
	assert.Equal(t, byte(30), kids[2].V0)
}

func TestGetAnyChildPrefersNonLeaf(t *testing.T) {
	inner := node.NewNode4()
	inner = node.InsertGrow(inner, 0, node.LeafRef(99))

	n := node.NewNode4()
	n = node.InsertGrow(n, 1, node.LeafRef(1))
	n = node.InsertGrow(n, 2, inner)
	n = node.InsertGrow(n, 3, node.LeafRef(3))

	any := node.GetAnyChild(n)
	assert.False(t, any.IsLeaf())
	assert.Equal(t, node.Tag4, any.Tag())
}

func TestMinMaxChild(t *testing.T) {
	n := node.NewNode4()
	n = node.InsertGrow(n, 30, node.LeafRef(30))
	n = node.InsertGrow(n, 10, node.LeafRef(10))
	n = node.InsertGrow(n, 20, node.LeafRef(20))

	assert.EqualValues(t, 10, node.MinChild(n).TID())
	assert.EqualValues(t, 30, node.MaxChild(n).TID())
}

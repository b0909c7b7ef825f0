package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func key(a, b, c, d byte) uint32 {
	return AddrFromBytes(a, b, c, d).Uint32()
}

func TestDiffIdenticalPrefixes(t *testing.T) {
	k := key(10, 0, 0, 0)
	assert.Equal(t, -1, diff(k, 24, k, 24, 0))
}

func TestDiffOneIsPrefixOfOther(t *testing.T) {
	k := key(10, 0, 0, 0)
	assert.Equal(t, 16, diff(k, 24, k, 16, 0))
	assert.Equal(t, 16, diff(k, 16, k, 24, 0))
}

func TestDiffDisjoint(t *testing.T) {
	a := key(10, 0, 0, 0)
	b := key(11, 0, 0, 0)
	// 10 = 00001010, 11 = 00001011: they diverge at the last bit of the
	// first byte (bit 7, 0-indexed from the top of the word).
	assert.Equal(t, 7, diff(a, 24, b, 24, 0))
}

func TestBitTest(t *testing.T) {
	k := key(0x80, 0, 0, 0x01)
	assert.Equal(t, 1, bitTest(k, 0))
	assert.Equal(t, 0, bitTest(k, 1))
	assert.Equal(t, 1, bitTest(k, 31))
}

func TestMaskedPrefix(t *testing.T) {
	k := key(255, 255, 255, 255)
	assert.Equal(t, uint32(0), maskedPrefix(k, 0))
	assert.Equal(t, k, maskedPrefix(k, 32))
	assert.Equal(t, key(255, 255, 0, 0), maskedPrefix(k, 16))
}

func TestAddFullMatch(t *testing.T) {
	var root *node
	root, err := add(root, key(10, 0, 0, 1), 32, "a", true, false)
	assert.Nil(t, err)
	assert.True(t, root.isLeaf())

	_, _, v, ok := lookup(root, key(10, 0, 0, 1), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, _, _, ok = lookup(root, key(10, 0, 0, 2), SIZE)
	assert.False(t, ok)
}

func TestAddDuplicateRejected(t *testing.T) {
	root, err := add(nil, key(10, 0, 0, 0), 24, "a", true, false)
	assert.Nil(t, err)

	_, err = add(root, key(10, 0, 0, 0), 24, "b", true, false)
	assert.NotNil(t, err)

	_, _, v, _ := lookup(root, key(10, 0, 0, 1), SIZE)
	assert.Equal(t, "a", v)
}

func TestAddCreatesGlueForDisjointPrefixes(t *testing.T) {
	root, err := add(nil, key(10, 0, 0, 0), 25, "a", true, false)
	assert.Nil(t, err)
	root, err = add(root, key(10, 0, 0, 128), 25, "b", true, false)
	assert.Nil(t, err)

	assert.False(t, root.isLeaf())
	assert.False(t, root.hasValue)
	assert.Equal(t, 24, root.bit)

	_, _, v, ok := lookup(root, key(10, 0, 0, 1), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, _, v, ok = lookup(root, key(10, 0, 0, 200), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestAddAncestorOfExistingLeaf(t *testing.T) {
	root, err := add(nil, key(10, 0, 0, 1), 32, "host", true, false)
	assert.Nil(t, err)

	root, err = add(root, key(10, 0, 0, 0), 24, "net", true, false)
	assert.Nil(t, err)

	assert.False(t, root.isLeaf())
	assert.True(t, root.hasValue)
	assert.Equal(t, "net", root.value)

	_, _, v, ok := lookup(root, key(10, 0, 0, 1), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "host", v)

	_, _, v, ok = lookup(root, key(10, 0, 0, 2), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "net", v)
}

func TestLookupLongestPrefixWins(t *testing.T) {
	root, _ := add(nil, key(0, 0, 0, 0), 0, "default", true, false)
	root, _ = add(root, key(10, 0, 0, 0), 8, "ten", true, false)
	root, _ = add(root, key(10, 0, 0, 0), 24, "ten-zero", true, false)

	_, _, v, ok := lookup(root, key(10, 0, 0, 5), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "ten-zero", v)

	_, _, v, ok = lookup(root, key(10, 1, 0, 5), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "ten", v)

	_, _, v, ok = lookup(root, key(192, 168, 0, 1), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "default", v)
}

func TestLookupNoMatch(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 0), 24, "ten", true, false)
	_, _, _, ok := lookup(root, key(192, 168, 0, 1), SIZE)
	assert.False(t, ok)
}

func TestDeleteLeafLeavesSiblingReachableThroughGlue(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 0), 25, "a", true, false)
	root, _ = add(root, key(10, 0, 0, 128), 25, "b", true, false)

	newRoot, v, ok := del(root, key(10, 0, 0, 0), 25)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	// the glue node is left with a single child; this engine only unlinks a
	// glue node once it becomes entirely childless, so "b" stays reachable
	// through it rather than the glue collapsing onto its lone child.
	assert.False(t, newRoot.hasValue)
	_, _, v, ok = lookup(newRoot, key(10, 0, 0, 200), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestDeleteEntireTree(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 1), 32, "a", true, false)
	newRoot, v, ok := del(root, key(10, 0, 0, 1), 32)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Nil(t, newRoot)
}

func TestDeleteNotFound(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 0), 24, "a", true, false)
	newRoot, _, ok := del(root, key(11, 0, 0, 0), 24)
	assert.False(t, ok)
	assert.NotNil(t, newRoot)
}

func TestDeleteInternalValueKeepsGlue(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 1), 32, "host", true, false)
	root, _ = add(root, key(10, 0, 0, 0), 24, "net", true, false)

	newRoot, v, ok := del(root, key(10, 0, 0, 0), 24)
	assert.True(t, ok)
	assert.Equal(t, "net", v)

	// the node survives as glue, still routing to the /32.
	assert.False(t, newRoot.hasValue)
	_, _, v, ok = lookup(newRoot, key(10, 0, 0, 1), SIZE)
	assert.True(t, ok)
	assert.Equal(t, "host", v)
}

func TestAddDeleteInversionRestoresEmptyTrie(t *testing.T) {
	root, _ := add(nil, key(10, 0, 0, 0), 8, "a", true, false)
	root, _ = add(root, key(10, 10, 0, 0), 16, "b", true, false)
	root, _ = add(root, key(10, 10, 10, 0), 24, "c", true, false)

	root, _, ok := del(root, key(10, 10, 10, 0), 24)
	assert.True(t, ok)
	root, _, ok = del(root, key(10, 10, 0, 0), 16)
	assert.True(t, ok)
	root, _, ok = del(root, key(10, 0, 0, 0), 8)
	assert.True(t, ok)

	assert.Nil(t, root)
}

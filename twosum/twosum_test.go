package twosum_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/twosum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind verifies the one-pass lookup on representative inputs.
func TestFind(t *testing.T) {
	i, j, ok := twosum.Find([]int{2, 3, 4, 5, 6, 7}, 10)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 4, j, "4+6 is the first pair completed left to right")

	i, j, ok = twosum.Find([]int{2, 7, 11, 15}, 9)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
}

// TestFind_NoPair verifies the miss path.
func TestFind_NoPair(t *testing.T) {
	_, _, ok := twosum.Find([]int{1, 2, 3}, 100)
	assert.False(t, ok)

	_, _, ok = twosum.Find([]int{}, 0)
	assert.False(t, ok, "empty input has no pairs")

	_, _, ok = twosum.Find([]int{5}, 10)
	assert.False(t, ok, "an element must not pair with itself")
}

// TestFind_EqualValues verifies that equal values at distinct indices do
// pair.
func TestFind_EqualValues(t *testing.T) {
	i, j, ok := twosum.Find([]int{3, 3, 3}, 6)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j, "the earliest completing pair wins")
}

// TestFind_Negatives verifies signed arithmetic.
func TestFind_Negatives(t *testing.T) {
	i, j, ok := twosum.Find([]int{-4, 1, 9, -5}, -9)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, j)

	i, j, ok = twosum.Find([]int{-2, 2}, 0)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
}

// TestFind_NamedType verifies the ~ constraint admits derived integer
// types.
func TestFind_NamedType(t *testing.T) {
	type amount int32

	i, j, ok := twosum.Find([]amount{10, 20, 30}, 50)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, j)
}

// TestFind_UnsignedWrap verifies documented wraparound sums for unsigned
// element types.
func TestFind_UnsignedWrap(t *testing.T) {
	// 200+100 wraps to 44 in uint8 arithmetic.
	i, j, ok := twosum.Find([]uint8{200, 100}, 44)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
}

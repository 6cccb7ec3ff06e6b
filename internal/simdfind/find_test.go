package simdfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbradix/art/internal/simdfind"
)

func TestFind16HitsAndMisses(t *testing.T) {
	var keys [16]byte
	for i := 0; i < 5; i++ {
		keys[i] = byte(i*2 + 1)
	}

	idx, ok := simdfind.Find16(&keys, 5, 5)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = simdfind.Find16(&keys, 5, 4)
	assert.False(t, ok)

	_, ok = simdfind.Find16(&keys, 4, 9)
	assert.False(t, ok, "byte present past n should not count as a hit")
}

func TestInsertPositionMaintainsSortedOrder(t *testing.T) {
	var keys [16]byte
	for i := 0; i < 4; i++ {
		keys[i] = byte(i*2 + 1) // 1, 3, 5, 7
	}

	assert.Equal(t, 0, simdfind.InsertPosition(&keys, 4, 0))
	assert.Equal(t, 1, simdfind.InsertPosition(&keys, 4, 2))
	assert.Equal(t, 2, simdfind.InsertPosition(&keys, 4, 4))
	assert.Equal(t, 4, simdfind.InsertPosition(&keys, 4, 8))
}

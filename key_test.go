package art_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	art "github.com/dbradix/art"
)

func TestKeyInlineRoundTrip(t *testing.T) {
	var k art.Key
	k.Set([]byte("short"))

	assert.Equal(t, 5, k.Len())
	assert.Equal(t, []byte("short"), k.Bytes())
}

func TestKeySpillsToHeapPastInlineCapacity(t *testing.T) {
	var k art.Key
	long := []byte(strings.Repeat("x", 64))
	k.Set(long)

	assert.Equal(t, len(long), k.Len())
	assert.Equal(t, long, k.Bytes())
}

func TestKeyEqualAndLess(t *testing.T) {
	var a, b art.Key
	a.Set([]byte("abc"))
	b.Set([]byte("abd"))

	assert.False(t, a.Equal(&b))
	assert.True(t, a.Less(&b))
	assert.False(t, b.Less(&a))

	var c art.Key
	c.Set([]byte("abc"))
	assert.True(t, a.Equal(&c))
}

func TestKeyZeroLength(t *testing.T) {
	var k art.Key
	k.Set(nil)
	assert.Equal(t, 0, k.Len())
	assert.Empty(t, k.Bytes())
}

func TestKeyReuseOverwritesPreviousContent(t *testing.T) {
	var k art.Key
	k.Set([]byte(strings.Repeat("a", 40)))
	k.Set([]byte("short"))

	assert.Equal(t, "short", string(k.Bytes()))
}

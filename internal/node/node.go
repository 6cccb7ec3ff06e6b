// Package node implements the four adaptive fan-out layouts of an Adaptive
// Radix Tree — node4, node16, node48 and node256 — plus the tagged child
// reference ([Ref]) that lets a single child slot hold either a pointer to
// one of those nodes or an inline leaf TID, with no allocation for the
// leaf case.
//
// Every node variant exposes the same small operation set (find/insert/
// remove a child by key byte, enumerate children in ascending order,
// report its fill), and [Ref] dispatches across variants by reading a tag
// byte stored at a fixed offset on every node — the Go analogue of the
// tagged-union dispatch the original C++ ART implementation performs with
// static_cast, grounded on kellydunn/go-art's embedded nodeType field and
// on flier-goutil's Ref/Node split.
package node

import (
	"github.com/dbradix/art/internal/debug"
)

// MaxStoredPrefixLen is the number of prefix bytes kept inline on every
// node. Spec allows any bound >= 8; 8 is the original ART paper's value.
const MaxStoredPrefixLen = 8

// Tag identifies which of the four node layouts a pointer refers to.
type Tag uint8

const (
	Tag4 Tag = iota
	Tag16
	Tag48
	Tag256
)

func (t Tag) String() string {
	switch t {
	case Tag4:
		return "node4"
	case Tag16:
		return "node16"
	case Tag48:
		return "node48"
	case Tag256:
		return "node256"
	default:
		return "unknown"
	}
}

// Capacity returns the maximum number of children a node of this variant
// may hold.
func (t Tag) Capacity() int {
	switch t {
	case Tag4:
		return 4
	case Tag16:
		return 16
	case Tag48:
		return 48
	case Tag256:
		return 256
	default:
		debug.Assert(false, "unknown node tag %d", t)
		return 0
	}
}

// base holds the fields common to every internal node variant: its type
// tag, live child count and path-compression prefix. It must be the first
// field of node4, node16, node48 and node256 so that a Ref's pointer can be
// reinterpreted as *base to read the tag without knowing the concrete type
// — the struct-prefix aliasing trick documented by the unsafe package.
type base struct {
	tag       Tag
	count     int
	prefixLen uint32 // true logical length; may exceed len(prefix)
	prefix    [MaxStoredPrefixLen]byte
}

// Count returns the number of live children.
func (b *base) Count() int { return b.count }

// PrefixLen returns the true (logical) length of the compressed prefix,
// which may exceed the number of bytes actually stored on the node.
func (b *base) PrefixLen() uint32 { return b.prefixLen }

// Prefix returns the stored portion of the compressed prefix (up to
// MaxStoredPrefixLen bytes; fewer if PrefixLen is smaller).
func (b *base) Prefix() []byte {
	n := b.prefixLen
	if n > MaxStoredPrefixLen {
		n = MaxStoredPrefixLen
	}
	return b.prefix[:n]
}

// SetPrefix installs a fresh compressed prefix, truncating the stored copy
// to MaxStoredPrefixLen while recording the true length.
func (b *base) SetPrefix(p []byte) {
	b.prefixLen = uint32(len(p))
	n := copy(b.prefix[:], p)
	for i := n; i < MaxStoredPrefixLen; i++ {
		b.prefix[i] = 0
	}
}

// addPrefixBefore prepends parent's prefix plus the connecting key byte
// onto b's prefix, for the single-child collapse performed during remove
// (spec §4.4, §4.8). Mirrors N::addPrefixBefore in the reference C++.
func (b *base) addPrefixBefore(parent *base, key byte) {
	var merged [MaxStoredPrefixLen]byte

	parentStored := parent.Prefix()
	copyCount := len(parentStored)
	if copyCount > MaxStoredPrefixLen {
		copyCount = MaxStoredPrefixLen
	}
	n := copy(merged[:], parentStored[:copyCount])

	if parent.prefixLen < MaxStoredPrefixLen && n < MaxStoredPrefixLen {
		merged[n] = key
		n++
	}

	existing := b.Prefix()
	n += copy(merged[n:], existing)

	b.prefixLen = parent.prefixLen + 1 + b.prefixLen
	b.prefix = [MaxStoredPrefixLen]byte{}
	copy(b.prefix[:], merged[:n])
}

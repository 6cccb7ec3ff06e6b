package node

import "github.com/dbradix/art/internal/debug"

// GetChild looks up the child stored under key, returning Nil if absent.
// Dispatches across variants by tag, mirroring N::getChild's switch over
// NTypes in the reference C++.
func GetChild(n Ref, key byte) Ref {
	switch n.Tag() {
	case Tag4:
		if s := n.asNode4().child(key); s != nil {
			return *s
		}
	case Tag16:
		if s := n.asNode16().child(key); s != nil {
			return *s
		}
	case Tag48:
		if s := n.asNode48().child(key); s != nil {
			return *s
		}
	case Tag256:
		if s := n.asNode256().child(key); s != nil {
			return *s
		}
	default:
		debug.Assert(false, "unknown node tag")
	}
	return Nil
}

// FindChildSlot returns a pointer to the child slot for key so the caller
// can overwrite it in place (used while descending for insert/remove, the
// Go analogue of threading a **N through the reference C++/kellydunn's
// **ArtNode). Returns nil if key has no child.
func FindChildSlot(n Ref, key byte) *Ref {
	switch n.Tag() {
	case Tag4:
		return n.asNode4().child(key)
	case Tag16:
		return n.asNode16().child(key)
	case Tag48:
		return n.asNode48().child(key)
	case Tag256:
		return n.asNode256().child(key)
	default:
		debug.Assert(false, "unknown node tag")
		return nil
	}
}

// GetAnyChild returns an arbitrary child of n (a non-leaf if one exists),
// used by the tree's key-restoration descent to reach some leaf below n.
func GetAnyChild(n Ref) Ref {
	switch n.Tag() {
	case Tag4:
		return n.asNode4().anyChild()
	case Tag16:
		return n.asNode16().anyChild()
	case Tag48:
		return n.asNode48().anyChild()
	case Tag256:
		return n.asNode256().anyChild()
	default:
		debug.Assert(false, "unknown node tag")
		return Nil
	}
}

// MinChild returns n's child with the smallest key byte.
func MinChild(n Ref) Ref {
	switch n.Tag() {
	case Tag4:
		return n.asNode4().minChild()
	case Tag16:
		return n.asNode16().minChild()
	case Tag48:
		return n.asNode48().minChild()
	case Tag256:
		return n.asNode256().minChild()
	default:
		debug.Assert(false, "unknown node tag")
		return Nil
	}
}

// MaxChild returns n's child with the largest key byte.
func MaxChild(n Ref) Ref {
	switch n.Tag() {
	case Tag4:
		return n.asNode4().maxChild()
	case Tag16:
		return n.asNode16().maxChild()
	case Tag48:
		return n.asNode48().maxChild()
	case Tag256:
		return n.asNode256().maxChild()
	default:
		debug.Assert(false, "unknown node tag")
		return Nil
	}
}

// GetChildren enumerates n's children whose key byte falls in [start, end]
// in ascending order, mirroring N::getChildren in the reference C++ (used
// by prefix iteration and visit order).
func GetChildren(n Ref, start, end byte) []KeyRef {
	switch n.Tag() {
	case Tag4:
		return n.asNode4().children_(start, end)
	case Tag16:
		return n.asNode16().children_(start, end)
	case Tag48:
		return n.asNode48().children_(start, end)
	case Tag256:
		return n.asNode256().children_(start, end)
	default:
		debug.Assert(false, "unknown node tag")
		return nil
	}
}

// Count returns the number of live children of n.
func Count(n Ref) int {
	return n.basePtr().Count()
}

// PrefixLen returns n's compressed prefix length.
func PrefixLen(n Ref) uint32 {
	return n.basePtr().PrefixLen()
}

// Prefix returns n's stored compressed prefix bytes.
func Prefix(n Ref) []byte {
	return n.basePtr().Prefix()
}

// SetPrefix installs a fresh compressed prefix on n.
func SetPrefix(n Ref, p []byte) {
	n.basePtr().SetPrefix(p)
}

// AddPrefixBefore prepends parent's prefix and the connecting key byte
// onto n's prefix, for the collapse performed when a single-child node is
// removed (spec §4.8).
func AddPrefixBefore(n Ref, parent Ref, key byte) {
	n.basePtr().addPrefixBefore(parent.basePtr(), key)
}

// InsertGrow inserts child under key into n, growing n to the next larger
// variant first if it is full. Returns the Ref the caller must store back
// into n's slot (equal to n if no grow occurred). Mirrors
// N::insertGrow<curN,biggerN> from the reference C++, restructured to
// return the replacement instead of writing through a parent pointer,
// matching kellydunn/go-art's **ArtNode threading.
func InsertGrow(n Ref, key byte, child Ref) Ref {
	switch n.Tag() {
	case Tag4:
		n4 := n.asNode4()
		if n4.insert(key, child) {
			return n
		}
		return growNode4(n4, key, child)
	case Tag16:
		n16 := n.asNode16()
		if n16.insert(key, child) {
			return n
		}
		return growNode16(n16, key, child)
	case Tag48:
		n48 := n.asNode48()
		if n48.insert(key, child) {
			return n
		}
		return growNode48(n48, key, child)
	case Tag256:
		n256 := n.asNode256()
		ok := n256.insert(key, child)
		debug.Assert(ok, "node256 insert never fails")
		return n
	default:
		debug.Assert(false, "unknown node tag")
		return n
	}
}

func growNode4(n4 *Node4, key byte, child Ref) Ref {
	bigger := &Node16{}
	bigger.base = n4.base
	bigger.count = 0
	bigger.tag = Tag16
	n4.copyChildrenTo(func(k byte, c Ref) {
		ok := bigger.insert(k, c)
		debug.Assert(ok, "node16 overflowed while growing from node4")
	})
	ok := bigger.insert(key, child)
	debug.Assert(ok, "node16 overflowed immediately after growing from node4")
	return refOfNode16(bigger)
}

func growNode16(n16 *Node16, key byte, child Ref) Ref {
	bigger := &Node48{}
	bigger.base = n16.base
	bigger.count = 0
	bigger.tag = Tag48
	for i := range bigger.index {
		bigger.index[i] = emptySlot
	}
	n16.copyChildrenTo(func(k byte, c Ref) {
		ok := bigger.insert(k, c)
		debug.Assert(ok, "node48 overflowed while growing from node16")
	})
	ok := bigger.insert(key, child)
	debug.Assert(ok, "node48 overflowed immediately after growing from node16")
	return refOfNode48(bigger)
}

func growNode48(n48 *Node48, key byte, child Ref) Ref {
	bigger := &Node256{}
	bigger.base = n48.base
	bigger.count = 0
	bigger.tag = Tag256
	n48.copyChildrenTo(func(k byte, c Ref) {
		ok := bigger.insert(k, c)
		debug.Assert(ok, "node256 overflowed while growing from node48")
	})
	ok := bigger.insert(key, child)
	debug.Assert(ok, "node256 overflowed immediately after growing from node48")
	return refOfNode256(bigger)
}

// RemoveShrink deletes the child under key from n, shrinking n to the next
// smaller variant if doing so drops it to the shrink threshold. isRoot
// suppresses that variant-shrink when n is the tree root, mirroring the
// reference C++'s `n->remove(key, parentNode == nullptr)` -- N.cpp passes
// force=true for a null parent so the root's variant never shrinks, only
// the node4 sole-child collapse (which has nothing to do with variant
// size) is exempt from this suppression (spec §4.5, §4.8).
//
// Returns the Ref the caller must store back into n's slot (equal to n if
// no shrink occurred), whether key was present at all, and -- for a node4
// that has fallen to a single remaining child -- soleChild reports that
// the caller should collapse n entirely by merging its prefix into that
// child (spec §4.8; a node4 has no smaller variant to shrink into, so
// isRoot does not apply to it).
// Mirrors N::removeAndShrink<curN,smallerN> from the reference C++.
func RemoveShrink(n Ref, key byte, isRoot bool) (result Ref, removed bool, soleChild bool) {
	switch n.Tag() {
	case Tag4:
		n4 := n.asNode4()
		if _, ok := findNode4(n4, key); !ok {
			return n, false, false
		}
		collapse := n4.remove(key)
		return n, true, collapse
	case Tag16:
		n16 := n.asNode16()
		if s := n16.child(key); s == nil {
			return n, false, false
		}
		if n16.remove(key) && !isRoot {
			return shrinkNode16(n16), true, false
		}
		return n, true, false
	case Tag48:
		n48 := n.asNode48()
		if s := n48.child(key); s == nil {
			return n, false, false
		}
		if n48.remove(key) && !isRoot {
			return shrinkNode48(n48), true, false
		}
		return n, true, false
	case Tag256:
		n256 := n.asNode256()
		if s := n256.child(key); s == nil {
			return n, false, false
		}
		if n256.remove(key) && !isRoot {
			return shrinkNode256(n256), true, false
		}
		return n, true, false
	default:
		debug.Assert(false, "unknown node tag")
		return n, false, false
	}
}

// SoleChild returns the single remaining child of a node4 that has
// decayed to count == 1, along with its key byte, for the collapse
// performed by Tree.remove (spec §4.8).
func SoleChild(n Ref) (byte, Ref) {
	debug.Assert(n.Tag() == Tag4, "SoleChild only applies to a collapsing node4, got %s", n.Tag())
	n4 := n.asNode4()
	debug.Assert(n4.count == 1, "SoleChild called on a node4 with count %d", n4.count)
	return n4.keys[0], n4.children[0]
}

func findNode4(n4 *Node4, key byte) (int, bool) {
	for i := 0; i < n4.count; i++ {
		if n4.keys[i] == key {
			return i, true
		}
	}
	return 0, false
}

func shrinkNode16(n16 *Node16) Ref {
	smaller := &Node4{}
	smaller.base = n16.base
	smaller.count = 0
	smaller.tag = Tag4
	n16.copyChildrenTo(func(k byte, c Ref) {
		ok := smaller.insert(k, c)
		debug.Assert(ok, "node4 overflowed while shrinking from node16")
	})
	return refOfNode4(smaller)
}

func shrinkNode48(n48 *Node48) Ref {
	smaller := &Node16{}
	smaller.base = n48.base
	smaller.count = 0
	smaller.tag = Tag16
	n48.copyChildrenTo(func(k byte, c Ref) {
		ok := smaller.insert(k, c)
		debug.Assert(ok, "node16 overflowed while shrinking from node48")
	})
	return refOfNode16(smaller)
}

func shrinkNode256(n256 *Node256) Ref {
	smaller := &Node48{}
	smaller.base = n256.base
	smaller.count = 0
	smaller.tag = Tag48
	for i := range smaller.index {
		smaller.index[i] = emptySlot
	}
	n256.copyChildrenTo(func(k byte, c Ref) {
		ok := smaller.insert(k, c)
		debug.Assert(ok, "node48 overflowed while shrinking from node256")
	})
	return refOfNode48(smaller)
}

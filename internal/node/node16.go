package node

import "github.com/dbradix/art/internal/simdfind"

// Node16 keeps up to sixteen key bytes sorted in a flat array, searched
// and positioned by simdfind.Find16/InsertPosition, a vectorizable scalar
// equivalent of the original ART paper's SSE2 pcmpeqb scan. Grounded on
// flier-goutil's pkg/arena/art node16 + simd package split.
type Node16 struct {
	base
	keys     [16]byte
	children [16]Ref
}

// NewNode16 allocates an empty node16 and returns a Ref to it.
func NewNode16() Ref {
	n := &Node16{}
	n.tag = Tag16
	return refOfNode16(n)
}

func (n *Node16) child(key byte) *Ref {
	if i, ok := simdfind.Find16(&n.keys, n.count, key); ok {
		return &n.children[i]
	}
	return nil
}

func (n *Node16) insert(key byte, child Ref) bool {
	if n.count >= 16 {
		return false
	}
	i := simdfind.InsertPosition(&n.keys, n.count, key)
	copy(n.keys[i+1:n.count+1], n.keys[i:n.count])
	copy(n.children[i+1:n.count+1], n.children[i:n.count])
	n.keys[i] = key
	n.children[i] = child
	n.count++
	return true
}

func (n *Node16) remove(key byte) (shouldShrink bool) {
	for i := 0; i < n.count; i++ {
		if n.keys[i] != key {
			continue
		}
		copy(n.keys[i:], n.keys[i+1:n.count])
		copy(n.children[i:], n.children[i+1:n.count])
		n.count--
		n.children[n.count] = Nil
		n.keys[n.count] = 0
		return n.count == 3
	}
	return false
}

func (n *Node16) minChild() Ref {
	if n.count == 0 {
		return Nil
	}
	return n.children[0]
}

func (n *Node16) maxChild() Ref {
	if n.count == 0 {
		return Nil
	}
	return n.children[n.count-1]
}

// anyChild returns an arbitrary live child, preferring a non-leaf if one
// exists (spec §4.3), since key-restoration descent through a non-leaf
// reaches more of the subtree than stopping at the first leaf found.
func (n *Node16) anyChild() Ref {
	fallback := Nil
	for i := 0; i < n.count; i++ {
		c := n.children[i]
		if c.IsNil() {
			continue
		}
		if !c.IsLeaf() {
			return c
		}
		if fallback.IsNil() {
			fallback = c
		}
	}
	return fallback
}

func (n *Node16) children_(start, end byte) []KeyRef {
	out := make([]KeyRef, 0, n.count)
	for i := 0; i < n.count; i++ {
		if n.keys[i] >= start && n.keys[i] <= end {
			out = append(out, KeyRef{n.keys[i], n.children[i]})
		}
	}
	return out
}

func (n *Node16) copyChildrenTo(dst func(key byte, child Ref)) {
	for i := 0; i < n.count; i++ {
		dst(n.keys[i], n.children[i])
	}
}

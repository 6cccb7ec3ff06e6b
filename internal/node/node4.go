package node

import "github.com/dbradix/art/pkg/tuple"

// KeyRef pairs a key byte with the child reference stored under it,
// returned by each variant's ordered-enumeration method.
type KeyRef = tuple.Tuple2[byte, Ref]

// Node4 is the smallest node variant: a flat, sorted array of up to four
// key bytes and their children, scanned linearly. Grounded on
// kellydunn/go-art's Node4 (parallel keys/children arrays, linear scan)
// and on N4 in the reference C++.
type Node4 struct {
	base
	keys     [4]byte
	children [4]Ref
}

// NewNode4 allocates an empty node4 and returns a Ref to it.
func NewNode4() Ref {
	n := &Node4{}
	n.tag = Tag4
	return refOfNode4(n)
}

func (n *Node4) child(key byte) *Ref {
	for i := 0; i < n.count; i++ {
		if n.keys[i] == key {
			return &n.children[i]
		}
	}
	return nil
}

func (n *Node4) insert(key byte, child Ref) bool {
	if n.count >= 4 {
		return false
	}
	i := 0
	for ; i < n.count; i++ {
		if n.keys[i] > key {
			break
		}
	}
	copy(n.keys[i+1:n.count+1], n.keys[i:n.count])
	copy(n.children[i+1:n.count+1], n.children[i:n.count])
	n.keys[i] = key
	n.children[i] = child
	n.count++
	return true
}

// remove deletes the child for key and reports whether the node has
// fallen to a single remaining child (count == 1) and should be
// collapsed by the caller.
func (n *Node4) remove(key byte) (shouldShrink bool) {
	for i := 0; i < n.count; i++ {
		if n.keys[i] != key {
			continue
		}
		copy(n.keys[i:], n.keys[i+1:n.count])
		copy(n.children[i:], n.children[i+1:n.count])
		n.count--
		n.children[n.count] = Nil
		n.keys[n.count] = 0
		return n.count == 1
	}
	return false
}

func (n *Node4) minChild() Ref {
	if n.count == 0 {
		return Nil
	}
	return n.children[0]
}

func (n *Node4) maxChild() Ref {
	if n.count == 0 {
		return Nil
	}
	return n.children[n.count-1]
}

// anyChild returns an arbitrary live child, preferring a non-leaf if one
// exists (spec §4.3), since key-restoration descent through a non-leaf
// reaches more of the subtree than stopping at the first leaf found.
func (n *Node4) anyChild() Ref {
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

func (n *Node4) children_(start, end byte) []KeyRef {
	out := make([]KeyRef, 0, n.count)
	for i := 0; i < n.count; i++ {
		if n.keys[i] >= start && n.keys[i] <= end {
			out = append(out, KeyRef{n.keys[i], n.children[i]})
		}
	}
	return out
}

func (n *Node4) copyChildrenTo(dst func(key byte, child Ref)) {
	for i := 0; i < n.count; i++ {
		dst(n.keys[i], n.children[i])
	}
}

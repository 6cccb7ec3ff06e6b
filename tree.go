package art

import (
	"github.com/dbradix/art/internal/debug"
	"github.com/dbradix/art/internal/node"
	"github.com/dbradix/art/pkg/opt"
)

// KeyFunc reconstructs the byte-key a TID was inserted under. The tree
// calls it during optimistic prefix verification and whenever a child
// slot holds a leaf whose full key is needed to decide how to split it.
// It must be pure and deterministic: for a given TID it must always
// return the exact original key bytes (spec §6).
type KeyFunc func(tid TID, key *Key)

// Tree is a single-threaded Adaptive Radix Tree mapping byte-string keys
// to TIDs. The zero value is not usable; construct one with [New].
//
// Grounded on the reference C++ Tree (descent/insertA/removeAndShrink
// orchestration in ART/N.cpp) and on kellydunn/go-art's ArtTree, whose
// **ArtNode slot-pointer threading this package's use of *node.Ref mirrors.
type Tree struct {
	root    node.Ref
	size    int
	keyFunc KeyFunc
}

// New constructs an empty tree. keyFunc must not be nil.
func New(keyFunc KeyFunc) *Tree {
	debug.Assert(keyFunc != nil, "art.New: keyFunc must not be nil")
	return &Tree{keyFunc: keyFunc}
}

// Len returns the number of keys currently stored.
func (t *Tree) Len() int { return t.size }

// Lookup returns the TID stored under key, if any.
func (t *Tree) Lookup(key []byte) (TID, bool) {
	if t.root.IsNil() {
		return 0, false
	}
	return t.lookup(t.root, terminate(key), 0)
}

// LookupOption is Lookup expressed through [opt.Option], for callers that
// prefer composing the result via Option's combinators.
func (t *Tree) LookupOption(key []byte) opt.Option[TID] {
	if tid, ok := t.Lookup(key); ok {
		return opt.Some(tid)
	}
	return opt.None[TID]()
}

func (t *Tree) lookup(n node.Ref, key []byte, depth int) (TID, bool) {
	for {
		if n.IsLeaf() {
			tid := n.TID()
			if t.leafKeyEqual(tid, key) {
				return tid, true
			}
			return 0, false
		}

		if prefixLen := int(node.PrefixLen(n)); prefixLen > 0 {
			if !t.matchPrefix(n, key, depth, prefixLen) {
				return 0, false
			}
			depth += prefixLen
		}

		if depth >= len(key) {
			return 0, false
		}

		child := node.GetChild(n, key[depth])
		if child.IsNil() {
			return 0, false
		}
		depth++
		n = child
	}
}

// matchPrefix checks key[depth:] against n's compressed prefix. The
// stored bytes (up to node.MaxStoredPrefixLen) are checked directly; any
// remaining, unstored bytes are assumed to match optimistically and only
// verified against a reconstructed descendant leaf key, per spec §4.6.
func (t *Tree) matchPrefix(n node.Ref, key []byte, depth, prefixLen int) bool {
	stored := node.Prefix(n)
	for i, sb := range stored {
		if depth+i >= len(key) || key[depth+i] != sb {
			return false
		}
	}
	if prefixLen <= len(stored) {
		return true
	}
	tid, ok := t.anyLeafUnder(n)
	if !ok {
		return true
	}
	var full Key
	t.keyFunc(tid, &full)
	fb := terminate(full.Bytes())
	for i := len(stored); i < prefixLen; i++ {
		pos := depth + i
		if pos >= len(key) || pos >= len(fb) || key[pos] != fb[pos] {
			return false
		}
	}
	return true
}

func (t *Tree) anyLeafUnder(n node.Ref) (TID, bool) {
	for !n.IsLeaf() {
		c := node.GetAnyChild(n)
		if c.IsNil() {
			return 0, false
		}
		n = c
	}
	return n.TID(), true
}

func (t *Tree) leafKeyEqual(tid TID, key []byte) bool {
	var k Key
	t.keyFunc(tid, &k)
	return bytesEqual(terminate(k.Bytes()), key)
}

// resolvedPrefix returns the true prefixLen bytes of n's compressed
// prefix, reconstructing the portion beyond node.MaxStoredPrefixLen from
// a descendant leaf's key when necessary. depth is n's absolute offset
// into the full key space.
func (t *Tree) resolvedPrefix(n node.Ref, depth, prefixLen int) []byte {
	stored := node.Prefix(n)
	out := make([]byte, prefixLen)
	if prefixLen <= len(stored) {
		copy(out, stored[:prefixLen])
		return out
	}
	copy(out, stored)
	if tid, ok := t.anyLeafUnder(n); ok {
		var full Key
		t.keyFunc(tid, &full)
		fb := terminate(full.Bytes())
		for i := len(stored); i < prefixLen; i++ {
			pos := depth + i
			if pos < len(fb) {
				out[i] = fb[pos]
			}
		}
	}
	return out
}

// Insert associates key with tid. It reports [ErrTIDOverflow] if tid sets
// the reserved leaf-tag bit, or [ErrKeyExists] if key is already present
// (first-write-wins; see DESIGN.md).
func (t *Tree) Insert(key []byte, tid TID) error {
	if tid > MaxTID {
		return ErrTIDOverflow
	}
	debug.Log(nil, "insert", "%v", debug.Dict(nil, "key", key, "tid", tid))
	k := terminate(key)
	if t.root.IsNil() {
		t.root = node.LeafRef(tid)
		t.size++
		return nil
	}
	inserted, err := t.insert(&t.root, k, 0, tid)
	if err != nil {
		return err
	}
	if inserted {
		t.size++
	}
	return nil
}

func (t *Tree) insert(ref *node.Ref, key []byte, depth int, tid TID) (bool, error) {
	n := *ref

	if n.IsLeaf() {
		existingTID := n.TID()
		var existing Key
		t.keyFunc(existingTID, &existing)
		existingBytes := terminate(existing.Bytes())

		if bytesEqual(existingBytes, key) {
			return false, ErrKeyExists
		}

		common := commonPrefix(existingBytes[min(depth, len(existingBytes)):], key[depth:])
		n4 := node.NewNode4()
		node.SetPrefix(n4, common)

		newDepth := depth + len(common)
		debug.Assert(newDepth < len(existingBytes) && newDepth < len(key),
			"art: insert: keys are not suffix-free at depth %d (see DESIGN.md terminator discipline)", newDepth)

		n4 = node.InsertGrow(n4, existingBytes[newDepth], n)
		n4 = node.InsertGrow(n4, key[newDepth], node.LeafRef(tid))
		*ref = n4
		return true, nil
	}

	prefixLen := int(node.PrefixLen(n))
	if prefixLen > 0 {
		full := t.resolvedPrefix(n, depth, prefixLen)

		matched := 0
		for matched < prefixLen && depth+matched < len(key) && key[depth+matched] == full[matched] {
			matched++
		}

		if matched < prefixLen {
			split := node.NewNode4()
			node.SetPrefix(split, full[:matched])

			existingByte := full[matched]
			node.SetPrefix(n, full[matched+1:])

			split = node.InsertGrow(split, existingByte, n)

			newDepth := depth + matched
			debug.Assert(newDepth < len(key),
				"art: insert: key exhausted inside a node prefix at depth %d (see DESIGN.md terminator discipline)", newDepth)

			split = node.InsertGrow(split, key[newDepth], node.LeafRef(tid))
			*ref = split
			return true, nil
		}

		depth += prefixLen
	}

	debug.Assert(depth < len(key), "art: insert: key exhausted at an internal node")

	b := key[depth]
	slot := node.FindChildSlot(n, b)
	if slot == nil {
		*ref = node.InsertGrow(n, b, node.LeafRef(tid))
		return true, nil
	}
	return t.insert(slot, key, depth+1, tid)
}

// Remove deletes key, if present, and reports whether it was found.
func (t *Tree) Remove(key []byte) bool {
	if t.root.IsNil() {
		return false
	}
	debug.Log(nil, "remove", "%v", debug.Dict(nil, "key", key))
	k := terminate(key)

	if t.root.IsLeaf() {
		if t.leafKeyEqual(t.root.TID(), k) {
			t.root = node.Nil
			t.size--
			return true
		}
		return false
	}

	if t.remove(&t.root, k, 0, true) {
		t.size--
		return true
	}
	return false
}

func (t *Tree) remove(ref *node.Ref, key []byte, depth int, isRoot bool) bool {
	n := *ref

	if prefixLen := int(node.PrefixLen(n)); prefixLen > 0 {
		full := t.resolvedPrefix(n, depth, prefixLen)
		for i := 0; i < prefixLen; i++ {
			if depth+i >= len(key) || key[depth+i] != full[i] {
				return false
			}
		}
		depth += prefixLen
	}

	if depth >= len(key) {
		return false
	}

	b := key[depth]
	child := node.GetChild(n, b)
	if child.IsNil() {
		return false
	}

	if child.IsLeaf() {
		if !t.leafKeyEqual(child.TID(), key) {
			return false
		}
		newRef, removed, soleChild := node.RemoveShrink(n, b, isRoot)
		if !removed {
			return false
		}
		*ref = newRef
		if soleChild && !isRoot {
			t.collapseSoleChild(ref)
		}
		return true
	}

	slot := node.FindChildSlot(n, b)
	debug.Assert(slot != nil, "art: remove: GetChild found a child FindChildSlot could not")
	return t.remove(slot, key, depth+1, false)
}

// collapseSoleChild merges a node4 that has decayed to a single child
// (spec §4.8) into that child, prepending the node's own prefix and
// connecting key byte onto the child's prefix. A leaf-only survivor
// carries no prefix of its own, so it is attached directly to the
// grandparent with no merge.
func (t *Tree) collapseSoleChild(ref *node.Ref) {
	n := *ref
	connectingByte, child := node.SoleChild(n)
	if !child.IsLeaf() {
		node.AddPrefixBefore(child, n, connectingByte)
	}
	*ref = child
}

// Min returns the TID of the smallest key in the tree.
func (t *Tree) Min() (TID, bool) {
	if t.root.IsNil() {
		return 0, false
	}
	n := t.root
	for !n.IsLeaf() {
		n = node.MinChild(n)
		if n.IsNil() {
			return 0, false
		}
	}
	return n.TID(), true
}

// Max returns the TID of the largest key in the tree.
func (t *Tree) Max() (TID, bool) {
	if t.root.IsNil() {
		return 0, false
	}
	n := t.root
	for !n.IsLeaf() {
		n = node.MaxChild(n)
		if n.IsNil() {
			return 0, false
		}
	}
	return n.TID(), true
}

// Visit walks every key in ascending order, calling cb with the
// reconstructed key and its TID. It stops early if cb returns true, and
// Visit itself then returns true.
func (t *Tree) Visit(cb func(key []byte, tid TID) bool) bool {
	return t.visit(t.root, cb)
}

func (t *Tree) visit(n node.Ref, cb func([]byte, TID) bool) bool {
	if n.IsNil() {
		return false
	}
	if n.IsLeaf() {
		tid := n.TID()
		var k Key
		t.keyFunc(tid, &k)
		return cb(k.Bytes(), tid)
	}
	for _, kr := range node.GetChildren(n, 0, 255) {
		if t.visit(kr.V1, cb) {
			return true
		}
	}
	return false
}

// VisitPrefix walks every key that starts with prefix, in ascending
// order. It stops early if cb returns true, and VisitPrefix itself then
// returns true.
func (t *Tree) VisitPrefix(prefix []byte, cb func(key []byte, tid TID) bool) bool {
	return t.visitPrefix(t.root, prefix, 0, cb)
}

func (t *Tree) visitPrefix(n node.Ref, prefix []byte, depth int, cb func([]byte, TID) bool) bool {
	if n.IsNil() {
		return false
	}
	if n.IsLeaf() {
		tid := n.TID()
		var k Key
		t.keyFunc(tid, &k)
		if hasPrefix(k.Bytes(), prefix) {
			return cb(k.Bytes(), tid)
		}
		return false
	}
	if depth == len(prefix) {
		return t.visit(n, cb)
	}

	if prefixLen := int(node.PrefixLen(n)); prefixLen > 0 {
		full := t.resolvedPrefix(n, depth, prefixLen)
		limit := prefixLen
		if len(prefix)-depth < limit {
			limit = len(prefix) - depth
		}
		for i := 0; i < limit; i++ {
			if full[i] != prefix[depth+i] {
				return false
			}
		}
		if depth+prefixLen >= len(prefix) {
			return t.visit(n, cb)
		}
		depth += prefixLen
	}

	child := node.GetChild(n, prefix[depth])
	if child.IsNil() {
		return false
	}
	return t.visitPrefix(child, prefix, depth+1, cb)
}

// CalculateAverageHeight returns the average number of internal nodes
// traversed to reach a leaf (the root itself contributes 0 for a
// leaf-only tree). See DESIGN.md for why this, rather than a key-byte
// count, was chosen as the metric (spec §4.10 leaves the unit open).
func (t *Tree) CalculateAverageHeight() float64 {
	if t.root.IsNil() {
		return 0
	}
	var totalDepth, leaves int
	var walk func(n node.Ref, depth int)
	walk = func(n node.Ref, depth int) {
		if n.IsLeaf() {
			totalDepth += depth
			leaves++
			return
		}
		for _, kr := range node.GetChildren(n, 0, 255) {
			walk(kr.V1, depth+1)
		}
	}
	walk(t.root, 0)
	if leaves == 0 {
		return 0
	}
	return float64(totalDepth) / float64(leaves)
}

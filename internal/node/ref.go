package node

import "unsafe"

// leafBit is the tag bit used to distinguish an inline leaf TID from a
// pointer to an internal node, mirroring N::isLeaf/setLeaf/getLeaf in the
// reference C++ (bit 63 of the tagged child word).
const leafBit = uint64(1) << 63

// TID is the opaque identifier a caller associates with a key. The high
// bit is reserved for the leaf tag and must never be set by a caller.
type TID uint64

// MaxTID is the largest value a caller may use as a TID.
const MaxTID = TID(leafBit - 1)

// Ref is a tagged child reference: the zero value means "no child";
// otherwise it holds either an inline leaf TID or a pointer to a node4,
// node16, node48 or node256.
//
// raw carries the bit-tagged word described by the spec verbatim (high
// bit set => leaf, low 63 bits the TID; high bit clear => raw is the
// pointer's bit pattern). ptr duplicates the pointer case as an actual
// unsafe.Pointer so the garbage collector keeps the referent alive --
// raw alone, being a uint64, is invisible to the collector and storing
// only it would let a live node be collected out from under the tree.
// This is the one deliberate structural deviation from a literal single-
// word tagged pointer: Go's GC-managed heap needs a traced handle that
// C++'s manual allocation does not.
type Ref struct {
	raw uint64
	ptr unsafe.Pointer
}

// Nil is the reference held by an empty child slot.
var Nil = Ref{}

// IsNil reports whether r refers to nothing.
func (r Ref) IsNil() bool { return r.raw == 0 && r.ptr == nil }

// IsLeaf reports whether r is an inline leaf TID rather than a pointer to
// an internal node.
func (r Ref) IsLeaf() bool { return r.raw&leafBit != 0 }

// LeafRef tags tid as an inline leaf reference.
func LeafRef(tid TID) Ref {
	return Ref{raw: uint64(tid) | leafBit}
}

// TID returns the leaf TID held by r. Panics if r is not a leaf.
func (r Ref) TID() TID {
	if r.raw&leafBit == 0 {
		panic("node: TID called on a non-leaf Ref")
	}
	return TID(r.raw &^ leafBit)
}

// nodeRef tags an internal node pointer as a Ref.
func nodeRef(p unsafe.Pointer) Ref {
	return Ref{raw: uint64(uintptr(p)), ptr: p}
}

// basePtr returns the node pointer underlying r reinterpreted as *base,
// from which Tag() and Count() can be read regardless of variant.
func (r Ref) basePtr() *base {
	return (*base)(r.ptr)
}

// Tag reports which node variant r points to. Panics if r is a leaf or nil.
func (r Ref) Tag() Tag {
	if r.IsLeaf() || r.IsNil() {
		panic("node: Tag called on a leaf or nil Ref")
	}
	return r.basePtr().tag
}

func refOfNode4(n *Node4) Ref     { return nodeRef(unsafe.Pointer(n)) }
func refOfNode16(n *Node16) Ref   { return nodeRef(unsafe.Pointer(n)) }
func refOfNode48(n *Node48) Ref   { return nodeRef(unsafe.Pointer(n)) }
func refOfNode256(n *Node256) Ref { return nodeRef(unsafe.Pointer(n)) }

func (r Ref) asNode4() *Node4     { return (*Node4)(r.ptr) }
func (r Ref) asNode16() *Node16   { return (*Node16)(r.ptr) }
func (r Ref) asNode48() *Node48   { return (*Node48)(r.ptr) }
func (r Ref) asNode256() *Node256 { return (*Node256)(r.ptr) }

package art

// inlineKeyLen is the number of key bytes a Key stores without a heap
// allocation, the Go analogue of Key::stackLen in the reference C++ (128
// bytes there; trimmed here since realistic index keys are much shorter
// and a smaller inline array keeps Key itself cheap to copy).
const inlineKeyLen = 32

// Key is a small-buffer-optimized byte string: keys up to inlineKeyLen
// bytes live inline in the struct with no allocation, longer keys spill to
// a heap slice. Keys compare and order lexicographically by byte value.
//
// Grounded on original_source/Key.h's stack/heap split; Go's garbage
// collector removes the need for the C++ type's copy/move/destructor
// machinery, so Key here is a plain value type safe to copy. Compare Keys
// by content via [Key.Equal], not struct equality: two Keys with
// identical bytes may hold distinct heap slices, or different stale bytes
// past Len in the inline array left by an earlier, longer Set.
type Key struct {
	inline [inlineKeyLen]byte
	n      int
	heap   []byte
}

// NewKey copies b into a new Key.
func NewKey(b []byte) Key {
	var k Key
	k.Set(b)
	return k
}

// Set overwrites k's contents with a copy of b.
func (k *Key) Set(b []byte) {
	k.n = len(b)
	if len(b) <= inlineKeyLen {
		copy(k.inline[:], b)
		k.heap = nil
		return
	}
	k.heap = append([]byte(nil), b...)
}

// Len returns the number of bytes in the key.
func (k *Key) Len() int { return k.n }

// Bytes returns the key's contents. The returned slice aliases k's
// backing storage and must not be retained past the next call to Set.
func (k *Key) Bytes() []byte {
	if k.heap != nil {
		return k.heap
	}
	return k.inline[:k.n]
}

// At returns the byte at index i.
func (k *Key) At(i int) byte {
	return k.Bytes()[i]
}

// Equal reports whether k and other hold identical byte content.
func (k *Key) Equal(other *Key) bool {
	a, b := k.Bytes(), other.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Less reports whether k sorts strictly before other under lexicographic
// byte-value ordering, the ordering the tree's traversal methods respect.
func (k *Key) Less(other *Key) bool {
	a, b := k.Bytes(), other.Bytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

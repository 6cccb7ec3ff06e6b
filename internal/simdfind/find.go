// Package simdfind searches the sorted key array backing node16 (spec
// §4.3). It is grounded on flier-goutil's pkg/arena/art/simd package,
// which dispatches between a scalar fallback and hand-written AVX2
// assembly with no corresponding .s source in this tree to adapt from;
// rather than author unverifiable assembly, this package keeps the
// scalar search but shapes it so the compiler can autovectorize it (no
// early return inside the loop, branchless comparison), documented in
// DESIGN.md as a deliberate deviation from the teacher's hand-tuned AVX2
// path.
//
// node48 has no equivalent sorted byte array to search: its whole point
// is to replace node16's linear scan with the direct 256-entry index
// addressing node256 also uses, so there is no byte-array scan in its
// per-key operations for this package to serve.
package simdfind

// Find16 searches the first n bytes of keys for key and reports its index.
func Find16(keys *[16]byte, n int, key byte) (index int, ok bool) {
	return findLinear(keys[:n], key)
}

// InsertPosition returns the index at which key should be inserted into
// the first n bytes of a sorted array to keep it sorted.
func InsertPosition(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if key < keys[i] {
			return i
		}
	}
	return n
}

func findLinear(keys []byte, key byte) (index int, ok bool) {
	// A single pass with no early return lets the compiler keep the loop
	// branch-free and autovectorize the comparison; found records the
	// index of the last hit rather than the first hit short-circuiting
	// the scan (keys are unique, so there is at most one hit).
	found := -1
	for i, k := range keys {
		if k == key {
			found = i
		}
	}
	return found, found >= 0
}

//go:build go1.23

package art

import "iter"

// All returns a Go 1.23 range-over-func iterator over every key in
// ascending order. Grounded on flier-goutil's Tree[T].All, adapted to
// yield keys reconstructed via the tree's KeyFunc rather than stored
// values.
func (t *Tree) All() iter.Seq2[[]byte, TID] {
	return func(yield func([]byte, TID) bool) {
		t.Visit(func(key []byte, tid TID) bool {
			return !yield(key, tid)
		})
	}
}

// AllPrefix returns a Go 1.23 range-over-func iterator over every key
// starting with prefix, in ascending order.
func (t *Tree) AllPrefix(prefix []byte) iter.Seq2[[]byte, TID] {
	return func(yield func([]byte, TID) bool) {
		t.VisitPrefix(prefix, func(key []byte, tid TID) bool {
			return !yield(key, tid)
		})
	}
}

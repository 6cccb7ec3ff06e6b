package art

import "github.com/dbradix/art/internal/node"

// KV is one entry of a [Tree.BulkLoad] batch.
type KV struct {
	Key []byte
	TID TID
}

// BulkLoad replaces the tree's contents with a structure built directly
// from items, which must already be sorted in strictly ascending key
// order with no duplicate keys -- BulkLoad does not re-sort or
// deduplicate. It reports [ErrUnsortedBatch] if that precondition is
// violated, or [ErrTIDOverflow] if any TID sets the reserved leaf-tag bit.
//
// Construction proceeds top-down without per-key descent (spec §4.9):
// at each level the longest common prefix of the current range is
// factored into the new node's compressed prefix, the range is
// partitioned into contiguous runs by next key byte (possible because
// the input is sorted), and the run count picks the node variant.
func (t *Tree) BulkLoad(items []KV) error {
	if len(items) == 0 {
		t.root = node.Nil
		t.size = 0
		return nil
	}

	keys := make([][]byte, len(items))
	tids := make([]TID, len(items))
	for i, it := range items {
		if it.TID > MaxTID {
			return ErrTIDOverflow
		}
		keys[i] = terminate(it.Key)
		tids[i] = it.TID
		if i > 0 && !bytesLess(keys[i-1], keys[i]) {
			return unsortedBatchError(i)
		}
	}

	t.root = t.buildRange(keys, tids, 0, len(items), 0)
	t.size = len(items)
	return nil
}

func (t *Tree) buildRange(keys [][]byte, tids []TID, lo, hi, level int) node.Ref {
	if hi-lo == 1 {
		return node.LeafRef(tids[lo])
	}

	common := longestCommonPrefixRange(keys, lo, hi, level)
	newLevel := level + len(common)

	type run struct {
		b      byte
		lo, hi int
	}
	var runs []run
	for i := lo; i < hi; {
		b := byteAt(keys[i], newLevel)
		j := i + 1
		for j < hi && byteAt(keys[j], newLevel) == b {
			j++
		}
		runs = append(runs, run{b, i, j})
		i = j
	}

	var n node.Ref
	switch {
	case len(runs) <= 4:
		n = node.NewNode4()
	case len(runs) <= 16:
		n = node.NewNode16()
	case len(runs) <= 48:
		n = node.NewNode48()
	default:
		n = node.NewNode256()
	}
	node.SetPrefix(n, common)

	for _, r := range runs {
		var child node.Ref
		if r.hi-r.lo == 1 {
			child = node.LeafRef(tids[r.lo])
		} else {
			child = t.buildRange(keys, tids, r.lo, r.hi, newLevel+1)
		}
		n = node.InsertGrow(n, r.b, child)
	}
	return n
}

func longestCommonPrefixRange(keys [][]byte, lo, hi, level int) []byte {
	first := keys[lo]
	maxLen := len(first) - level
	for i := lo + 1; i < hi; i++ {
		if l := len(keys[i]) - level; l < maxLen {
			maxLen = l
		}
	}
	if maxLen < 0 {
		maxLen = 0
	}
	n := 0
	for n < maxLen {
		c := first[level+n]
		mismatch := false
		for i := lo + 1; i < hi; i++ {
			if keys[i][level+n] != c {
				mismatch = true
				break
			}
		}
		if mismatch {
			break
		}
		n++
	}
	return first[level : level+n]
}

func byteAt(b []byte, i int) byte {
	if i < len(b) {
		return b[i]
	}
	return 0
}

func bytesLess(a, b []byte) bool {
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

package art

// terminate returns key with a trailing 0x00 byte appended, unless key
// already contains a zero byte somewhere. This guarantees no inserted key
// is a strict byte-prefix of another, the discipline spec §4.6-4.8's
// internal-node descent assumes implicitly (internal nodes hold no value
// of their own). Grounded on kellydunn/go-art's
// ensureNullTerminatedKey; see DESIGN.md for the edge case this leaves
// unresolved (a caller key that already embeds a zero byte elsewhere than
// as a terminator).
func terminate(key []byte) []byte {
	for _, b := range key {
		if b == 0 {
			return key
		}
	}
	out := make([]byte, len(key)+1)
	copy(out, key)
	return out
}

func bytesEqual(a, b []byte) bool {
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

func hasPrefix(key, prefix []byte) bool {
	if len(prefix) > len(key) {
		return false
	}
	for i, b := range prefix {
		if key[i] != b {
			return false
		}
	}
	return true
}

// commonPrefix returns the longest common leading run of a and b.
func commonPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

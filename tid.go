package art

import "github.com/dbradix/art/internal/node"

// TID is the caller-supplied identifier stored at a leaf. It is opaque to
// the tree: Insert/Remove/BulkLoad never interpret it except to hand it
// back from Lookup, Visit and the key-reconstruction callback.
//
// The high bit is reserved for the tree's internal leaf tag (spec §3) and
// must never be set by a caller; Insert and BulkLoad report
// [ErrTIDOverflow] if it is.
type TID = node.TID

// MaxTID is the largest value usable as a TID.
const MaxTID = node.MaxTID

// Package tuple provides small heterogeneous pairs used to carry a key byte
// alongside a node reference without a bespoke struct at each call site.
package tuple

import "fmt"

// Tuple2 is a finite heterogeneous pair, (T0, T1).
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// New2 builds a Tuple2 from its two components.
func New2[T0, T1 any](v0 T0, v1 T1) Tuple2[T0, T1] {
	return Tuple2[T0, T1]{v0, v1}
}

// Unpack returns the pair's components.
func (t Tuple2[T0, T1]) Unpack() (T0, T1) { return t.V0, t.V1 }

func (t Tuple2[T0, T1]) String() string { return fmt.Sprintf("(%v, %v)", t.V0, t.V1) }

// Package art implements an Adaptive Radix Tree (ART): an in-memory,
// ordered index mapping byte-string keys to caller-defined identifiers
// (TID), built from four adaptively-sized node layouts (node4, node16,
// node48, node256) with path compression.
//
// The tree is single-threaded: a *Tree must not be shared across
// goroutines without external synchronization, matching the reference
// ARTSynchronized core this package adapts (the "Synchronized" wrapper
// that layers optimistic locking on top is out of scope here).
package art

package notnull

import "hash/maphash"

// Hash returns a seed-keyed hash of the wrapped handle for use in hand-rolled
// hash containers. Wrappers that compare equal hash identically, because the
// hash is defined on the handle itself.
//
// Go's built-in maps already hash NotNil keys correctly (the wrapper is a
// one-field struct), so Hash is only needed when building custom hash-based
// structures.
func Hash[H comparable](seed maphash.Seed, w NotNil[H]) uint64 {
	return maphash.Comparable(seed, w.handle)
}

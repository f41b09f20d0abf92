package notnull

import "fmt"

// Compile-time facts pinned as static assertions: wrappers over comparable
// handles are usable as map keys, and the wrapper prints through fmt.Stringer.
// These fail to compile if a field is ever added that breaks comparability.
var (
	_ map[NotNil[*int]]struct{}
	_ fmt.Stringer = NotNil[*int]{}
)

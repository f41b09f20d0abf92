// Package guard is the umbrella for a small family of pointer-contract
// primitives: non-null handle wrappers, ownership markers, fail-fast
// precondition checks, and checked numeric narrowing.
//
// The library makes pointer/reference contracts explicit and machine-checkable
// instead of living in comments:
//
//	func NewService(repo notnull.NotNil[*Repository]) *Service { ... }
//
// Subpackages:
//
//   - notnull: a zero-overhead wrapper that guarantees a handle is never nil
//   - owner: a documentation-only alias marking the releasing handle
//   - contract: Expects/Ensures precondition primitives with structured
//     violation reporting
//   - pointers: helpers for pointer creation and dereferencing
//   - narrow: numeric conversions that fail instead of silently truncating
//
// This root package is intentionally empty; all behavior lives in the
// subpackages so consumers pull in only what they use.
package guard

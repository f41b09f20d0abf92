// Package notnull provides NotNil, a zero-overhead wrapper that guarantees a
// handle is never nil.
//
// A NotNil value holds exactly one field, the wrapped handle, so it has the
// same memory footprint as the handle itself. The nil check runs once, at the
// point a handle enters the wrapper; every later access is a plain field read.
// The wrapper does not own or manage the lifetime of whatever the handle
// points to (see guard/owner for release-responsibility marking).
//
// Construction is the single enforcement point:
//
//	w, err := notnull.Wrap(ptr)      // runtime-checked, returns error on nil
//	w := notnull.MustWrap(ptr)       // runtime-checked, panics on nil
//	w := notnull.Of(value)           // non-nil by construction, never fails
//
// Because Wrap and MustWrap take a typed pointer, the classic null-literal
// mistakes do not compile at all:
//
//	notnull.Wrap(nil) // compile error: cannot infer T
//	notnull.Wrap(0)   // compile error: int is not a pointer
//
// The zero value of NotNil is invalid, exactly like a nil handle; Go cannot
// forbid zero values, so a zero wrapper's nil handle surfaces at the use site
// the same way a raw nil pointer would. Construct through Wrap, MustWrap, Of,
// or WrapHandle.
//
// NotNil deliberately exposes no arithmetic: a non-nil wrapper denotes
// "points to exactly one object", and Go pointer handles carry no offset
// operations for the wrapper to forward.
package notnull

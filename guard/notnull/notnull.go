package notnull

import (
	"context"
	"fmt"
	"reflect"

	"github.com/LerianStudio/lib-guard/guard/contract"
	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
	"github.com/LerianStudio/lib-guard/guard/pointers"
)

// NotNil wraps a handle of type H and guarantees it is never nil.
//
// H is the handle type itself: *T for pointers, an interface type, a map,
// func, or channel. The struct holds nothing but the handle, so NotNil[H]
// has the same size as H and copies with value semantics.
type NotNil[H any] struct {
	handle H
}

// Wrap validates ptr and returns a non-nil wrapper over it. A nil ptr yields
// a contract violation error and no usable wrapper.
//
// The parameter is a typed pointer on purpose: notnull.Wrap(nil) and
// notnull.Wrap(0) are compile errors, not runtime ones.
func Wrap[T any](ptr *T) (NotNil[*T], error) {
	if err := contract.Check(context.Background(), ptr != nil, "nil handle passed to notnull.Wrap", "type", typeName[*T]()); err != nil {
		return NotNil[*T]{}, err
	}

	return NotNil[*T]{handle: ptr}, nil
}

// MustWrap is Wrap for call sites where a nil handle is a caller bug to fail
// fast on. It panics with a *contract.Violation when ptr is nil.
func MustWrap[T any](ptr *T) NotNil[*T] {
	contract.Expects(ptr != nil, "nil handle passed to notnull.MustWrap", "type", typeName[*T]())

	return NotNil[*T]{handle: ptr}
}

// Of wraps the address of v. The result is non-nil by construction, so Of
// never fails and performs no check.
func Of[T any](v T) NotNil[*T] {
	return NotNil[*T]{handle: pointers.Ptr(v)}
}

// WrapHandle validates an arbitrary nilable handle (interface, map, func,
// chan, or pointer) and returns a non-nil wrapper over it. Instantiating over
// a type that cannot hold nil is itself a contract violation: NotNil adds
// nothing over such a type.
func WrapHandle[H any](h H) (NotNil[H], error) {
	if err := contract.Check(context.Background(), nilcheck.Nilable(h), "NotNil requires a nilable handle type", "type", typeName[H]()); err != nil {
		return NotNil[H]{}, err
	}

	if err := contract.Check(context.Background(), !nilcheck.Interface(h), "nil handle passed to notnull.WrapHandle", "type", typeName[H]()); err != nil {
		return NotNil[H]{}, err
	}

	return NotNil[H]{handle: h}, nil
}

// MustWrapHandle is WrapHandle that panics with a *contract.Violation on a
// nil or non-nilable handle.
func MustWrapHandle[H any](h H) NotNil[H] {
	contract.Expects(nilcheck.Nilable(h), "NotNil requires a nilable handle type", "type", typeName[H]())
	contract.Expects(!nilcheck.Interface(h), "nil handle passed to notnull.MustWrapHandle", "type", typeName[H]())

	return NotNil[H]{handle: h}
}

// Get returns the wrapped handle. It is a plain field read: the invariant was
// established at construction, so no re-check runs here.
func (n NotNil[H]) Get() H {
	return n.handle
}

// Set replaces the wrapped handle, revalidating the non-nil invariant. On a
// nil replacement the wrapper keeps its previous handle and returns a
// contract violation error.
func (n *NotNil[H]) Set(h H) error {
	if err := contract.Check(context.Background(), !nilcheck.Interface(h), "nil handle passed to NotNil.Set", "type", typeName[H]()); err != nil {
		return err
	}

	n.handle = h

	return nil
}

// Equal reports equality on the underlying handles. Comparable handles
// (pointers, channels, interfaces over comparable types) compare with the
// built-in ==, so for those the == on the wrappers themselves is equivalent.
// Handles Go defines no equality for (maps, funcs, slices) compare by
// reference identity: a wrapper equals another wrapper over the same object
// and never one over a distinct object. Equal is total; it never panics.
func (n NotNil[H]) Equal(other NotNil[H]) bool {
	return handlesEqual(n.handle, other.handle)
}

// EqualHandle reports whether the wrapped handle equals a raw handle value,
// with the same semantics as Equal.
func (n NotNil[H]) EqualHandle(h H) bool {
	return handlesEqual(n.handle, h)
}

func handlesEqual[H any](a, b H) bool {
	left, right := any(a), any(b)

	if left == nil || right == nil {
		return left == right
	}

	if reflect.TypeOf(left) != reflect.TypeOf(right) {
		return false
	}

	if reflect.TypeOf(left).Comparable() {
		return left == right
	}

	lv, rv := reflect.ValueOf(left), reflect.ValueOf(right)

	switch lv.Kind() {
	case reflect.Map, reflect.Func, reflect.Slice:
		return lv.Pointer() == rv.Pointer()
	default:
		return false
	}
}

// String renders the wrapper for fmt verbs.
func (n NotNil[H]) String() string {
	return fmt.Sprintf("NotNil(%v)", n.handle)
}

// Value dereferences a pointer-handle wrapper. It is the ergonomic stand-in
// for passing the wrapper where the pointee is wanted.
func Value[T any](w NotNil[*T]) T {
	return *w.handle
}

// typeName names H for violation details, including when H is an interface.
func typeName[H any]() string {
	return reflect.TypeOf((*H)(nil)).Elem().String()
}

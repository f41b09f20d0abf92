// Package nilcheck provides reflective nilability queries shared by the
// guard subpackages.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Nilable reports whether the dynamic type of value can hold nil at all.
// An untyped nil is trivially nilable.
func Nilable(value any) bool {
	if value == nil {
		return true
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

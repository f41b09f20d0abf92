// Package narrow provides numeric conversions that fail instead of silently
// truncating or flipping sign.
package narrow

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/LerianStudio/lib-guard/guard/contract"
)

// ErrNarrowing is returned when a conversion would change the value.
var ErrNarrowing = errors.New("narrowing conversion changes value")

// Number is the constraint for types Cast can convert between.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Cast converts v to type To, returning ErrNarrowing if the conversion does
// not survive a round trip or flips the sign. Float-to-integer conversions
// are range-checked up front (in both the forward and round-trip direction):
// Go leaves the out-of-range case implementation-specific, so it must never
// be evaluated.
//
// Example:
//
//	port, err := narrow.Cast[uint16](cfg.Port)
//	if err != nil {
//	    return fmt.Errorf("port out of range: %w", err)
//	}
func Cast[To, From Number](v From) (To, error) {
	var zero To

	if !fits[To](v) {
		return zero, fmt.Errorf("%w: %v", ErrNarrowing, v)
	}

	out := To(v)

	if !fits[From](out) {
		return zero, fmt.Errorf("%w: %v", ErrNarrowing, v)
	}

	if From(out) != v || (out < 0) != (v < 0) {
		return zero, fmt.Errorf("%w: %v", ErrNarrowing, v)
	}

	return out, nil
}

// MustCast is Cast for conversions the caller asserts are lossless; a
// value-changing conversion panics with a *contract.Violation.
func MustCast[To, From Number](v From) To {
	out, err := Cast[To](v)
	contract.Expects(err == nil, "narrowing conversion changed value", "value", v)

	return out
}

// fits reports whether converting v to Dst is defined by the language. Only
// the float-to-integer direction needs guarding: v must be a whole number
// inside Dst's range before Dst(v) may run. Every other direction is fully
// defined and left to the round-trip check.
func fits[Dst, Src Number](v Src) bool {
	if k := reflect.TypeOf(v).Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return true
	}

	var dst Dst

	dstType := reflect.TypeOf(dst)
	if !isIntegerKind(dstType.Kind()) {
		return true
	}

	return integerRangeHolds(float64(v), dstType)
}

// integerRangeHolds reports whether f is a whole number inside t's range.
// The bounds are exact powers of two, so the float64 comparisons are exact.
func integerRangeHolds(f float64, t reflect.Type) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}

	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f >= 0 && f < math.Ldexp(1, t.Bits())
	default:
		limit := math.Ldexp(1, t.Bits()-1)

		return f >= -limit && f < limit
	}
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

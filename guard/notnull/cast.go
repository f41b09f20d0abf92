package notnull

import (
	"context"

	"github.com/LerianStudio/lib-guard/guard/contract"
	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
)

// Cast converts a wrapper over handle type From into a wrapper over handle
// type To, typically from a concrete pointer to an interface the pointee
// satisfies:
//
//	file := notnull.MustWrap(f)                 // NotNil[*os.File]
//	reader, err := notnull.Cast[io.Reader](file) // NotNil[io.Reader]
//
// Go resolves the satisfaction check dynamically, so an impossible cast is a
// contract violation error rather than a compile error. The converted handle
// is defensively revalidated: the check is idempotent for any wrapper that
// already satisfies the invariant, and it catches zero-value wrappers that
// bypassed construction.
func Cast[To any, From any](w NotNil[From]) (NotNil[To], error) {
	converted, ok := any(w.handle).(To)
	if err := contract.Check(context.Background(), ok, "handle does not satisfy target type", "from", typeName[From](), "to", typeName[To]()); err != nil {
		return NotNil[To]{}, err
	}

	if err := contract.Check(context.Background(), !nilcheck.Interface(converted), "nil handle after conversion", "from", typeName[From](), "to", typeName[To]()); err != nil {
		return NotNil[To]{}, err
	}

	return NotNil[To]{handle: converted}, nil
}

// MustCast is Cast that panics with a *contract.Violation when the handle
// does not satisfy the target type.
func MustCast[To any, From any](w NotNil[From]) NotNil[To] {
	converted, ok := any(w.handle).(To)
	contract.Expects(ok, "handle does not satisfy target type", "from", typeName[From](), "to", typeName[To]())
	contract.Expects(!nilcheck.Interface(converted), "nil handle after conversion", "from", typeName[From](), "to", typeName[To]())

	return NotNil[To]{handle: converted}
}

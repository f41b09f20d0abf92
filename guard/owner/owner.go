// Package owner provides a documentation-only marker for release
// responsibility.
//
// Owner[H] is a transparent alias of H: it has no behavior, no validation,
// and no runtime representation of its own. Declaring a field or parameter as
// Owner[*Conn] states "this handle is the sole responsible releaser of the
// resource it points to", and nothing more. Components may rely on the
// convention when reasoning about who closes, frees, or deletes a resource,
// but the compiler treats the alias and the raw handle identically.
//
//	type Pool struct {
//		// conn is closed by the pool; borrowers receive the raw handle.
//		conn owner.Owner[*Conn]
//	}
package owner

// Owner marks H as the handle responsible for releasing its resource.
// It is a pure alias: values convert freely in both directions.
type Owner[H any] = H

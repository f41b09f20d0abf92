package pointers

// Ptr returns a pointer to v; avoids the need for one-off variables when a
// pointer to a literal is required.
//
// Example:
//
//	limit := pointers.Ptr(100)
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value of T if p is nil.
//
// Example:
//
//	name := pointers.Deref(req.Name)
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}

// DerefOr returns the value p points to, or defaultValue if p is nil.
//
// Example:
//
//	pageSize := pointers.DerefOr(req.PageSize, 50)
func DerefOr[T any](p *T, defaultValue T) T {
	if p == nil {
		return defaultValue
	}

	return *p
}

// Clone returns a pointer to a shallow copy of *p, or nil if p is nil.
// Use it to detach DTO fields from shared backing values.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	copied := *p

	return &copied
}

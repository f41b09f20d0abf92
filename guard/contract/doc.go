// Package contract provides fail-fast precondition and postcondition checks.
//
// Expects and Ensures evaluate a condition and, on failure, panic with a
// *Violation after reporting it through the configured logger, the active
// OpenTelemetry span, the violations counter, and the global error reporter.
// A violation signals a caller bug, not a recoverable runtime condition; it is
// expected to unwind past the immediate caller rather than be handled locally.
//
// Check is the error-returning form for APIs that propagate instead of
// panicking:
//
//	if err := contract.Check(ctx, handle != nil, "handle must not be nil"); err != nil {
//		return err
//	}
//
// All variants accept trailing key/value pairs that are attached to the
// violation details and the structured log entry.
package contract

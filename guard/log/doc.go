// Package log defines the minimal structured logging contract used by the
// guard subpackages.
//
// The package deliberately ships only an interface, a no-op implementation,
// and typed field constructors. Production-grade backends live in their own
// subpackages (see guard/zap) so that importing the contract does not pull in
// a logging framework.
package log

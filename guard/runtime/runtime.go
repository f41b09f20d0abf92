// Package runtime holds process-wide switches consulted by the guard
// subpackages: the production-mode flag that controls stack-trace redaction
// and an optional reporter for forwarding contract violations to external
// error-tracking services.
package runtime

import (
	"context"
	"os"
	"strings"
	"sync"
)

// ErrorReporter defines an interface for external error reporting services.
// This abstraction allows violations to reach an error tracker or alerting
// system without a hard dependency on any specific SDK.
//
// Implementations should:
//   - Handle nil contexts gracefully
//   - Be safe for concurrent use
//   - Not panic themselves
type ErrorReporter interface {
	// CaptureException reports a contract violation to the error tracking
	// service. The tags map carries metadata such as "contract".
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	// errorReporterInstance remains nil unless explicitly configured.
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global error reporter for violation
// forwarding. Pass nil to disable. Call once during application startup.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the currently configured error reporter.
// Returns nil if no reporter has been configured.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	// productionMode controls whether stack traces are redacted from
	// violation reports.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode. In production mode,
// stack traces and potentially sensitive violation details are redacted.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode reports whether production mode has been explicitly
// enabled via SetProductionMode.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// IncludeStackTraces reports whether violation reports should carry stack
// traces. It honors SetProductionMode first and falls back to the ENV/GO_ENV
// environment variables for processes that never configure the flag.
func IncludeStackTraces() bool {
	if IsProductionMode() {
		return false
	}

	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}

package contract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

// ErrViolated is the sentinel error for contract violations.
var ErrViolated = errors.New("contract violated")

// Violation represents a failed precondition or postcondition with context.
type Violation struct {
	Contract string
	Message  string
	Details  string
}

// Error returns the formatted violation message.
func (v *Violation) Error() string {
	if v == nil {
		return ErrViolated.Error()
	}

	if v.Details == "" {
		return "contract violated: " + v.Message
	}

	return "contract violated: " + v.Message + "\n" + v.Details
}

// Unwrap returns the sentinel violation error for errors.Is.
func (v *Violation) Unwrap() error {
	return ErrViolated
}

var (
	loggerInstance log.Logger
	loggerMu       sync.RWMutex
)

// SetLogger configures the logger used to report violations. Pass nil to
// fall back to stderr.
func SetLogger(logger log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	loggerInstance = logger
}

func currentLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return loggerInstance
}

// Expects enforces a precondition. If ok is false it panics with a *Violation
// after reporting it. The panic is deliberate: a failed precondition is a
// programming error and must not be swallowed at the call site.
func Expects(ok bool, msg string, kv ...any) {
	if ok {
		return
	}

	panic(fail(context.Background(), "Expects", msg, kv...))
}

// ExpectsCtx is Expects with span correlation: if ctx carries a recording
// span, the violation is recorded on it before panicking.
func ExpectsCtx(ctx context.Context, ok bool, msg string, kv ...any) {
	if ok {
		return
	}

	panic(fail(ctx, "Expects", msg, kv...))
}

// Ensures enforces a postcondition. Behavior matches Expects.
func Ensures(ok bool, msg string, kv ...any) {
	if ok {
		return
	}

	panic(fail(context.Background(), "Ensures", msg, kv...))
}

// EnsuresCtx is Ensures with span correlation.
func EnsuresCtx(ctx context.Context, ok bool, msg string, kv ...any) {
	if ok {
		return
	}

	panic(fail(ctx, "Ensures", msg, kv...))
}

// Check returns a *Violation as error if ok is false, nil otherwise. Use it
// in constructors and other fallible APIs that propagate errors instead of
// panicking.
func Check(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return fail(ctx, "Check", msg, kv...)
}

func fail(ctx context.Context, contract, msg string, kv ...any) *Violation {
	if ctx == nil {
		ctx = context.Background()
	}

	details := formatKeyValueLines(withContractPair(contract, kv))

	stack := []byte(nil)
	if runtime.IncludeStackTraces() {
		stack = debug.Stack()
	}

	violation := &Violation{
		Contract: contract,
		Message:  msg,
		Details:  details,
	}

	logViolation(currentLogger(), formatLogMessage(msg, details, stack))
	recordViolationObservability(ctx, violation, stack)

	if reporter := runtime.GetErrorReporter(); reporter != nil {
		reporter.CaptureException(ctx, violation, map[string]string{"contract": contract})
	}

	return violation
}

func withContractPair(contract string, kv []any) []any {
	pairs := make([]any, 0, len(kv)+2)
	pairs = append(pairs, "contract", contract)
	pairs = append(pairs, kv...)

	return pairs
}

const maxValueLength = 200 // Truncate values longer than this

// truncateValue truncates long values for logging safety.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

func formatLogMessage(msg, details string, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("CONTRACT VIOLATED: ")
	sb.WriteString(msg)

	if details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(string(stack))
	}

	return sb.String()
}

func logViolation(logger log.Logger, message string) {
	if logger != nil {
		logger.Log(context.Background(), log.LevelError, message)
		return
	}

	fmt.Fprintln(os.Stderr, message)
}

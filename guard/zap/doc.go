// Package zap adapts go.uber.org/zap to the guard/log.Logger contract.
//
// The adapter appends trace_id and span_id fields when the context carries an
// active OpenTelemetry span, so contract violations correlate with distributed
// traces.
package zap

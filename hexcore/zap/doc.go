// Package zap provides the zap-backed implementation of the log.Logger port.
//
// Loggers built here emit JSON, tee entries into the OpenTelemetry log bridge,
// and append trace_id/span_id fields when the context carries an active span.
package zap

// Package hexcore provides the core coordination primitives that hexagonal
// application layers depend on: a transactional change tracker (unitofwork)
// and an in-process event dispatcher (eventbus).
//
// The root package carries only request-scoped facility plumbing. Components
// read a caller-provided logger or tracer from context.Context and fall back
// to no-op implementations when none is attached:
//
//	ctx = hexcore.ContextWithLogger(ctx, logger)
//	ctx = hexcore.ContextWithTracer(ctx, tracer)
//
// Specialized primitives live in subpackages: unitofwork, eventbus, taskset,
// log, and zap.
package hexcore

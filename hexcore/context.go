package hexcore

import (
	"context"

	"github.com/hexforge/lib-hexcore/hexcore/log"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type facilitiesKey string

// FacilitiesKey is the context key under which request-scoped facilities are stored.
var FacilitiesKey = facilitiesKey("hexcore_facilities")

// Facilities holds the request-scoped components attached to a context.
type Facilities struct {
	Logger log.Logger
	Tracer trace.Tracer
}

func facilitiesFrom(ctx context.Context) *Facilities {
	if ctx == nil {
		return nil
	}

	values, _ := ctx.Value(FacilitiesKey).(*Facilities)

	return values
}

func withFacilities(ctx context.Context, mutate func(*Facilities)) context.Context {
	values := facilitiesFrom(ctx)
	if values == nil {
		values = &Facilities{}
	} else {
		clone := *values
		values = &clone
	}

	mutate(values)

	return context.WithValue(ctx, FacilitiesKey, values)
}

// ContextWithLogger returns a context carrying the given structured logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	return withFacilities(ctx, func(values *Facilities) {
		values.Logger = logger
	})
}

// LoggerFromContext extracts the logger attached to ctx, or a no-op logger.
//
//nolint:ireturn
func LoggerFromContext(ctx context.Context) log.Logger {
	if values := facilitiesFrom(ctx); values != nil && values.Logger != nil {
		return values.Logger
	}

	return log.NewNop()
}

// LoggerFromContextOr extracts the logger attached to ctx, preferring it
// over fallback. Returns a no-op logger when neither is available.
//
//nolint:ireturn
func LoggerFromContextOr(ctx context.Context, fallback log.Logger) log.Logger {
	if values := facilitiesFrom(ctx); values != nil && values.Logger != nil {
		return values.Logger
	}

	if fallback != nil {
		return fallback
	}

	return log.NewNop()
}

// ContextWithTracer returns a context carrying the given tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return withFacilities(ctx, func(values *Facilities) {
		values.Tracer = tracer
	})
}

// TracerFromContext extracts the tracer attached to ctx, or a no-op tracer.
//
//nolint:ireturn
func TracerFromContext(ctx context.Context) trace.Tracer {
	if values := facilitiesFrom(ctx); values != nil && values.Tracer != nil {
		return values.Tracer
	}

	return noop.NewTracerProvider().Tracer("hexcore.noop")
}

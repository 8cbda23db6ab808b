package eventbus

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/hexforge/lib-hexcore/hexcore"
	"github.com/hexforge/lib-hexcore/hexcore/internal/nilcheck"
	libLog "github.com/hexforge/lib-hexcore/hexcore/log"
	"github.com/hexforge/lib-hexcore/hexcore/taskset"
)

// Handler processes one published event.
type Handler func(ctx context.Context, event any) error

// EventBus is the in-process publish/subscribe port consumed by application
// use-cases.
type EventBus interface {
	Publish(ctx context.Context, event any) error
	Subscribe(descriptor any, handler Handler)
	Unsubscribe(descriptor any, handler Handler)
	Clear()
}

// registration pairs a handler with its function identity, used for
// idempotent subscribe and first-match unsubscribe.
type registration struct {
	key     uintptr
	handler Handler
}

// InMemoryBus is the in-memory EventBus adapter.
//
// The registry is guarded for concurrent use. Publish dispatches against a
// snapshot of the handler list taken at dispatch start: handlers registered
// or removed while a publish is in flight do not affect that dispatch.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]registration

	logger        libLog.Logger
	tracer        trace.Tracer
	observer      FailureObserver
	meterProvider metric.MeterProvider
	metrics       busMetrics
}

var _ EventBus = (*InMemoryBus)(nil)

// NewInMemoryBus creates an in-memory event bus. A nil logger or tracer
// falls back to no-op implementations.
func NewInMemoryBus(logger libLog.Logger, tracer trace.Tracer, opts ...BusOption) (*InMemoryBus, error) {
	if nilcheck.Interface(logger) {
		logger = libLog.NewNop()
	}

	if nilcheck.Interface(tracer) {
		tracer = noop.NewTracerProvider().Tracer("hexcore.noop")
	}

	bus := &InMemoryBus{
		handlers: make(map[string][]registration),
		logger:   logger,
		tracer:   tracer,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(bus)
		}
	}

	metrics, err := newBusMetrics(bus.meterProvider)
	if err != nil {
		return nil, err
	}

	bus.metrics = metrics

	return bus, nil
}

// Subscribe registers handler for the identifier resolved from descriptor.
// Registering the identical handler function twice for the same identifier
// is a no-op, as is a nil handler.
func (bus *InMemoryBus) Subscribe(descriptor any, handler Handler) {
	if bus == nil || handler == nil {
		return
	}

	name := EventNameOf(descriptor)
	key := handlerKey(handler)

	bus.mu.Lock()
	defer bus.mu.Unlock()

	if bus.handlers == nil {
		bus.handlers = make(map[string][]registration)
	}

	for _, existing := range bus.handlers[name] {
		if existing.key == key {
			return
		}
	}

	bus.handlers[name] = append(bus.handlers[name], registration{key: key, handler: handler})
}

// Unsubscribe removes the first registration of handler for the identifier
// resolved from descriptor. Removing a handler that is not registered is a
// silent no-op. Identifiers left with no handlers are pruned.
func (bus *InMemoryBus) Unsubscribe(descriptor any, handler Handler) {
	if bus == nil || handler == nil {
		return
	}

	name := EventNameOf(descriptor)
	key := handlerKey(handler)

	bus.mu.Lock()
	defer bus.mu.Unlock()

	registrations := bus.handlers[name]
	for i, existing := range registrations {
		if existing.key != key {
			continue
		}

		registrations = append(registrations[:i:i], registrations[i+1:]...)
		if len(registrations) == 0 {
			delete(bus.handlers, name)

			return
		}

		bus.handlers[name] = registrations

		return
	}
}

// Clear removes every registration for every identifier.
func (bus *InMemoryBus) Clear() {
	if bus == nil {
		return
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = make(map[string][]registration)
}

// Publish dispatches event to every handler registered for its resolved
// identifier and waits for all of them to finish. Handler failures are
// isolated and aggregated for observability; they never fail the publish.
// Publishing to an identifier with no handlers succeeds silently.
func (bus *InMemoryBus) Publish(ctx context.Context, event any) error {
	_, err := bus.PublishReport(ctx, event)

	return err
}

// PublishReport is Publish returning the dispatch report, so callers can
// inspect aggregated handler failures as a first-class value. The error
// return covers dispatcher-internal faults only.
func (bus *InMemoryBus) PublishReport(ctx context.Context, event any) (DispatchReport, error) {
	if bus == nil {
		return DispatchReport{}, ErrEventBusRequired
	}

	if nilcheck.Interface(event) {
		return DispatchReport{}, ErrEventRequired
	}

	if ctx == nil {
		ctx = context.Background()
	}

	logger := hexcore.LoggerFromContextOr(ctx, bus.logger)
	name := EventNameOf(event)

	start := time.Now().UTC()

	ctx, span := bus.tracer.Start(ctx, "eventbus.publish")
	defer span.End()

	snapshot := bus.snapshotHandlers(name)

	span.SetAttributes(
		attribute.String("event.name", name),
		attribute.Int("event.handlers", len(snapshot)),
	)

	report := DispatchReport{EventName: name, Handlers: len(snapshot)}

	if len(snapshot) > 0 {
		var grp taskset.Group
		grp.SetLogger(logger)

		for _, reg := range snapshot {
			handler := reg.handler
			grp.Go(func() error {
				return handler(ctx, event)
			})
		}

		report.Failures = grp.Wait()
	}

	bus.recordDispatch(ctx, report, time.Since(start).Seconds())

	if report.Failed() {
		aggregated := report.Err()
		span.RecordError(aggregated)
		span.SetStatus(codes.Error, "handler failures")

		logger.Log(ctx, libLog.LevelError, "event handlers failed",
			libLog.String("event_name", name),
			libLog.Int("handlers", report.Handlers),
			libLog.Int("failed", len(report.Failures)),
			libLog.Err(aggregated),
		)

		if bus.observer != nil {
			bus.observer(ctx, report)
		}
	}

	return report, nil
}

// snapshotHandlers copies the handler list for name under the read lock.
// The copy decouples an in-flight dispatch from concurrent registry changes.
func (bus *InMemoryBus) snapshotHandlers(name string) []registration {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	registrations := bus.handlers[name]
	if len(registrations) == 0 {
		return nil
	}

	copied := make([]registration, len(registrations))
	copy(copied, registrations)

	return copied
}

func (bus *InMemoryBus) recordDispatch(ctx context.Context, report DispatchReport, latencySeconds float64) {
	attrs := metric.WithAttributes(attribute.String("event.name", report.EventName))

	if bus.metrics.eventsPublished != nil {
		bus.metrics.eventsPublished.Add(ctx, 1, attrs)
	}

	if bus.metrics.handlersInvoked != nil && report.Handlers > 0 {
		bus.metrics.handlersInvoked.Add(ctx, int64(report.Handlers), attrs)
	}

	if bus.metrics.handlersFailed != nil && len(report.Failures) > 0 {
		bus.metrics.handlersFailed.Add(ctx, int64(len(report.Failures)), attrs)
	}

	if bus.metrics.publishLatency != nil {
		bus.metrics.publishLatency.Record(ctx, latencySeconds, attrs)
	}
}

// handlerKey returns the function identity used for idempotent subscribe.
// Identity is the function code pointer: the same named function or method
// registers once. Closures built from the same function literal share a code
// pointer and are treated as the same handler; use distinct named functions
// when separate registrations are needed.
func handlerKey(handler Handler) uintptr {
	return reflect.ValueOf(handler).Pointer()
}

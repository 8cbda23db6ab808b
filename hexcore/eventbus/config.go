package eventbus

import (
	"github.com/hexforge/lib-hexcore/hexcore/internal/nilcheck"
	"go.opentelemetry.io/otel/metric"
)

// BusOption mutates bus configuration at construction.
type BusOption func(*InMemoryBus)

// WithMeterProvider injects a custom meter provider for bus metrics.
// Passing nil keeps the default global OpenTelemetry meter provider.
func WithMeterProvider(provider metric.MeterProvider) BusOption {
	return func(bus *InMemoryBus) {
		if nilcheck.Interface(provider) {
			bus.meterProvider = nil

			return
		}

		bus.meterProvider = provider
	}
}

// WithFailureObserver registers a callback invoked with the dispatch report
// whenever at least one handler fails. Use it to make failure observability
// a first-class value in tests or to forward reports to error tracking.
func WithFailureObserver(observer FailureObserver) BusOption {
	return func(bus *InMemoryBus) {
		bus.observer = observer
	}
}

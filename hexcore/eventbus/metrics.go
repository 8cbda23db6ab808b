package eventbus

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type busMetrics struct {
	eventsPublished metric.Int64Counter
	handlersInvoked metric.Int64Counter
	handlersFailed  metric.Int64Counter
	publishLatency  metric.Float64Histogram
}

func newBusMetrics(provider metric.MeterProvider) (busMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter("hexcore.eventbus")

	var (
		metrics busMetrics
		err     error
	)

	metrics.eventsPublished, err = meter.Int64Counter(
		"eventbus.events.published",
		metric.WithDescription("Number of events published"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return busMetrics{}, fmt.Errorf("create eventbus.events.published counter: %w", err)
	}

	metrics.handlersInvoked, err = meter.Int64Counter(
		"eventbus.handlers.invoked",
		metric.WithDescription("Number of handler invocations across all dispatches"),
		metric.WithUnit("{handler}"),
	)
	if err != nil {
		return busMetrics{}, fmt.Errorf("create eventbus.handlers.invoked counter: %w", err)
	}

	metrics.handlersFailed, err = meter.Int64Counter(
		"eventbus.handlers.failed",
		metric.WithDescription("Number of handler invocations that failed or panicked"),
		metric.WithUnit("{handler}"),
	)
	if err != nil {
		return busMetrics{}, fmt.Errorf("create eventbus.handlers.failed counter: %w", err)
	}

	metrics.publishLatency, err = meter.Float64Histogram(
		"eventbus.publish.latency",
		metric.WithDescription("Time from publish start to fan-out join"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return busMetrics{}, fmt.Errorf("create eventbus.publish.latency histogram: %w", err)
	}

	return metrics, nil
}

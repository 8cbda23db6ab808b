package eventbus

import (
	"context"
	"fmt"
)

// DispatchReport captures the outcome of one publish fan-out.
type DispatchReport struct {
	// EventName is the resolved routing identifier of the published event.
	EventName string
	// Handlers is the number of handlers included in the dispatch snapshot.
	Handlers int
	// Failures holds one error per handler that failed or panicked.
	// Ordering follows completion, not registration.
	Failures []error
}

// Failed reports whether any handler failed during the dispatch.
func (report DispatchReport) Failed() bool {
	return len(report.Failures) > 0
}

// Err folds the report into a typed aggregate error, or nil when every
// handler succeeded.
func (report DispatchReport) Err() error {
	if !report.Failed() {
		return nil
	}

	return &DispatchError{
		EventName: report.EventName,
		Handlers:  report.Handlers,
		Failures:  report.Failures,
	}
}

// DispatchError aggregates handler failures from one publish call. It is an
// observability value, not a publish outcome: Publish succeeds even when
// handlers fail.
type DispatchError struct {
	EventName string
	Handlers  int
	Failures  []error
}

// Error returns the formatted aggregate description.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("event %q: %d of %d handlers failed", e.EventName, len(e.Failures), e.Handlers)
}

// Unwrap exposes the individual handler failures to errors.Is and errors.As.
func (e *DispatchError) Unwrap() []error {
	return e.Failures
}

// FailureObserver receives the dispatch report for every publish that had at
// least one handler failure. Observers run synchronously on the publishing
// goroutine after the fan-out has joined.
type FailureObserver func(ctx context.Context, report DispatchReport)

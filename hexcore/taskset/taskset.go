package taskset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	libLog "github.com/hexforge/lib-hexcore/hexcore/log"
)

// ErrPanicRecovered wraps a panic recovered from a task.
var ErrPanicRecovered = errors.New("taskset: panic recovered")

// Group manages a set of goroutines joined by Wait. Every non-nil error and
// every recovered panic is collected; no task cancels another.
//
// The zero value is ready to use. A Group must not be reused after Wait.
type Group struct {
	wg     sync.WaitGroup
	mu     sync.Mutex
	errs   []error
	logger libLog.Logger
}

// SetLogger sets an optional logger for panic observability. When set,
// recovered panics are logged before being folded into the Wait result.
func (grp *Group) SetLogger(logger libLog.Logger) {
	if grp == nil {
		return
	}

	grp.logger = logger
}

// Go starts fn in a new goroutine. A non-nil error or a panic is recorded
// and later returned by Wait; sibling tasks keep running either way.
func (grp *Group) Go(fn func() error) {
	grp.wg.Add(1)

	go func() {
		defer grp.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				if grp.logger != nil {
					grp.logger.Log(
						context.Background(),
						libLog.LevelError,
						"taskset: task panicked",
						libLog.Any("panic", recovered),
					)
				}

				grp.record(fmt.Errorf("%w: %v", ErrPanicRecovered, recovered))
			}
		}()

		if err := fn(); err != nil {
			grp.record(err)
		}
	}()
}

// Wait blocks until every task started with Go has completed and returns all
// recorded errors in completion order, or nil when every task succeeded.
func (grp *Group) Wait() []error {
	grp.wg.Wait()

	grp.mu.Lock()
	defer grp.mu.Unlock()

	if len(grp.errs) == 0 {
		return nil
	}

	collected := make([]error, len(grp.errs))
	copy(collected, grp.errs)

	return collected
}

// WaitJoined is Wait folded into a single error via errors.Join.
func (grp *Group) WaitJoined() error {
	return errors.Join(grp.Wait()...)
}

func (grp *Group) record(err error) {
	grp.mu.Lock()
	defer grp.mu.Unlock()

	grp.errs = append(grp.errs, err)
}

package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/PumPum7/modmail/internal/middleware"
)

// DefaultTimeout bounds a single delivery when none is configured.
const DefaultTimeout = 10 * time.Second

// Dispatcher delivers events in the background so callers never wait on, or
// see errors from, downstream targets. Each event is attempted once.
type Dispatcher struct {
	notifier ThreadNotifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher wraps n. A nil notifier makes every dispatch a no-op.
func NewDispatcher(n ThreadNotifier, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{notifier: n, timeout: timeout}
}

// ThreadClosed schedules delivery of event. The request context only
// contributes its values; its cancellation does not abort delivery.
func (d *Dispatcher) ThreadClosed(ctx context.Context, event ThreadClosedEvent) {
	if d == nil || d.notifier == nil {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.deliver(ctx, event); err != nil {
			middleware.Logger.WarnContext(ctx, "thread close notification failed",
				slog.Uint64("thread_id", uint64(event.Thread.ID)),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (d *Dispatcher) deliver(ctx context.Context, event ThreadClosedEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			middleware.Logger.ErrorContext(ctx, "PANIC in thread notifier",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return d.notifier.NotifyThreadClosed(ctx, event)
}

// Wait blocks until every scheduled delivery has finished.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}

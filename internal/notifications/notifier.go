// Package notifications delivers thread lifecycle events to the bot, the
// guild log channel and Redis subscribers.
package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/observability"
)

// EventThreadClosed is the type tag of ThreadClosedEvent payloads.
const EventThreadClosed = "thread_closed"

// ThreadClosedEvent describes a close operation on a thread.
type ThreadClosedEvent struct {
	Type        string        `json:"type"`
	GuildID     string        `json:"guild_id"`
	Thread      models.Thread `json:"thread"`
	ClosedByID  *string       `json:"closed_by_id"`
	ClosedByTag *string       `json:"closed_by_tag"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// NewThreadClosedEvent builds the event for a thread that was just closed.
func NewThreadClosedEvent(thread models.Thread, closedByID, closedByTag *string) ThreadClosedEvent {
	return ThreadClosedEvent{
		Type:        EventThreadClosed,
		GuildID:     thread.GuildID,
		Thread:      thread,
		ClosedByID:  closedByID,
		ClosedByTag: closedByTag,
		OccurredAt:  time.Now().UTC(),
	}
}

// ThreadNotifier is told about thread lifecycle events.
type ThreadNotifier interface {
	NotifyThreadClosed(ctx context.Context, event ThreadClosedEvent) error
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) NotifyThreadClosed(context.Context, ThreadClosedEvent) error { return nil }

type namedNotifier struct {
	name string
	ThreadNotifier
}

// MultiNotifier fans an event out to every configured notifier. One failing
// target does not stop the others; their errors are joined.
type MultiNotifier struct {
	targets []namedNotifier
}

// NewMultiNotifier returns an empty fan-out notifier.
func NewMultiNotifier() *MultiNotifier {
	return &MultiNotifier{}
}

// Add registers a notifier under name, which labels its metrics. Nil notifiers are ignored.
func (m *MultiNotifier) Add(name string, n ThreadNotifier) *MultiNotifier {
	if n != nil {
		m.targets = append(m.targets, namedNotifier{name: name, ThreadNotifier: n})
	}
	return m
}

// Len returns the number of registered notifiers.
func (m *MultiNotifier) Len() int {
	return len(m.targets)
}

func (m *MultiNotifier) NotifyThreadClosed(ctx context.Context, event ThreadClosedEvent) error {
	var errs []error
	for _, t := range m.targets {
		if err := t.NotifyThreadClosed(ctx, event); err != nil {
			observability.NotificationsSent.WithLabelValues(t.name, "error").Inc()
			errs = append(errs, err)
			continue
		}
		observability.NotificationsSent.WithLabelValues(t.name, "ok").Inc()
	}
	return errors.Join(errs...)
}

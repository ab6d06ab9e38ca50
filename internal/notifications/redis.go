package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/PumPum7/modmail/internal/cache"
	"github.com/PumPum7/modmail/internal/middleware"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes thread events on the guild's pub/sub channel so
// bot replicas and dashboards can react without polling.
type RedisNotifier struct {
	rdb *redis.Client
}

// NewRedisNotifier creates a RedisNotifier. A nil client makes it a no-op.
func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func (n *RedisNotifier) NotifyThreadClosed(ctx context.Context, event ThreadClosedEvent) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return n.rdb.Publish(ctx, cache.ThreadEventsChannel(event.GuildID), payload).Err()
}

// SubscribeThreadEvents calls onMessage for every event published for
// guildID until ctx is cancelled.
func (n *RedisNotifier) SubscribeThreadEvents(
	ctx context.Context, guildID string, onMessage func(payload string),
) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, cache.ThreadEventsChannel(guildID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe: %w", err)
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("PANIC in thread event subscriber",
								slog.Any("panic", r),
								slog.String("stack", string(debug.Stack())),
							)
						}
					}()
					onMessage(msg.Payload)
				}()
			}
		}
	}()

	return nil
}

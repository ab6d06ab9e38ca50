package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy decides what a GuildLimiter does when Redis cannot be reached.
type FailPolicy int

const (
	// FailOpen lets the request through.
	FailOpen FailPolicy = iota
	// FailClosed answers 503.
	FailClosed
)

var errNoLimitStore = errors.New("rate limit store not configured")

// takeScript counts one request in the current window and returns the new
// count with the milliseconds left in the window. The first request of a
// window starts its expiry.
var takeScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// GuildLimitConfig configures a GuildLimiter.
type GuildLimitConfig struct {
	// Scope namespaces the Redis keys of one limiter.
	Scope    string
	Limit    int
	Window   time.Duration
	Policy   FailPolicy
	Disabled bool
}

// Decision is the outcome of counting one request.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// GuildLimiter is a fixed-window request budget per guild. The counters
// live in Redis so every API replica draws from the same budget.
type GuildLimiter struct {
	rdb redis.Scripter
	cfg GuildLimitConfig
}

// NewGuildLimiter returns a limiter backed by rdb. rdb may be nil, in which
// case every check fails and cfg.Policy applies.
func NewGuildLimiter(rdb redis.Scripter, cfg GuildLimitConfig) *GuildLimiter {
	if cfg.Scope == "" {
		cfg.Scope = "guild"
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return &GuildLimiter{rdb: rdb, cfg: cfg}
}

// Take counts one request for id in the current window.
func (l *GuildLimiter) Take(ctx context.Context, id string) (Decision, error) {
	if l.rdb == nil {
		return Decision{}, errNoLimitStore
	}

	key := fmt.Sprintf("modmail:ratelimit:%s:%s", l.cfg.Scope, id)
	res, err := takeScript.Run(ctx, l.rdb, []string{key}, l.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("rate limit %s: unexpected reply %v", key, res)
	}

	count, ttl := res[0], res[1]
	return Decision{
		Allowed:   count <= int64(l.cfg.Limit),
		Remaining: int(max(int64(l.cfg.Limit)-count, 0)),
		ResetIn:   time.Duration(max(ttl, 0)) * time.Millisecond,
	}, nil
}

// Handler enforces the budget of the guild in the guild_id route param,
// falling back to the client IP outside guild routes.
func (l *GuildLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.cfg.Disabled {
			return c.Next()
		}

		id := "ip:" + c.IP()
		if gid := c.Params("guild_id"); gid != "" {
			id = gid
		}

		d, err := l.Take(c.UserContext(), id)
		if err != nil {
			if l.cfg.Policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit store unavailable, failing closed",
					slog.String("scope", l.cfg.Scope),
					slog.String("error", err.Error()),
				)
				return models.RespondWithError(c, fiber.StatusServiceUnavailable, &models.AppError{
					Code:    models.CodeUnavailable,
					Message: "Rate limiting unavailable",
				})
			}
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))
			Logger.InfoContext(c.UserContext(), "guild rate limit exceeded",
				slog.String("scope", l.cfg.Scope),
				slog.String("id", id),
			)
			return models.RespondWithError(c, fiber.StatusTooManyRequests, &models.AppError{
				Code:    models.CodeRateLimited,
				Message: "Rate limit exceeded",
			})
		}
		return c.Next()
	}
}

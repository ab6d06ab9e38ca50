// Package server contains the HTTP handlers and routing for the modmail API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/PumPum7/modmail/docs" // swagger docs
	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/notifications"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	dispatcher     *notifications.Dispatcher

	threads   *service.ThreadService
	messages  *service.MessageService
	notes     *service.NoteService
	macros    *service.MacroService
	blocked   *service.BlockedUserService
	servers   *service.ServerService
	configs   *service.GuildConfigService
	analytics *service.AnalyticsService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil; the analytics cache and distributed rate limits are
// then disabled. dispatcher may be nil to disable close notifications.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dispatcher *notifications.Dispatcher) *Server {
	var rdb redis.Cmdable
	if redisClient != nil {
		rdb = redisClient
	}

	configRepo := repository.NewGuildConfigRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("modmail-api"),
		dispatcher:     dispatcher,

		threads:   service.NewThreadService(repository.NewThreadRepository(db), dispatcher),
		messages:  service.NewMessageService(repository.NewMessageRepository(db)),
		notes:     service.NewNoteService(repository.NewNoteRepository(db)),
		macros:    service.NewMacroService(repository.NewMacroRepository(db)),
		blocked:   service.NewBlockedUserService(repository.NewBlockedUserRepository(db)),
		servers:   service.NewServerService(repository.NewServerRepository(db), configRepo),
		configs:   service.NewGuildConfigService(configRepo),
		analytics: service.NewAnalyticsService(repository.NewAnalyticsRepository(db), rdb, cfg.AnalyticsCacheTTL),
	}
}

// Analytics exposes the analytics service for the background refresher.
func (s *Server) Analytics() *service.AnalyticsService {
	return s.analytics
}

// App returns the Fiber application with middleware and routes installed.
func (s *Server) App() *fiber.App {
	if s.app == nil {
		app := fiber.New(fiber.Config{
			AppName:      "Modmail API",
			BodyLimit:    1 * 1024 * 1024,
			Immutable:    true,
			UnescapePath: true,
			JSONEncoder:  json.Marshal,
			JSONDecoder:  json.Unmarshal,
			ErrorHandler: errorHandler,
		})
		s.SetupMiddleware(app)
		s.SetupRoutes(app)
		s.app = app
	}
	return s.app
}

// errorHandler renders errors that escaped a handler. Fiber errors keep their
// status; anything else is an internal error.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate request and trace IDs
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        s.rateLimit(),
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
		},
	}))
}

func (s *Server) rateLimit() int {
	if s.config.RateLimitPerMinute <= 0 {
		return 300
	}
	return s.config.RateLimitPerMinute
}

// guildLimiter shares the per-guild budget through Redis. It is off in test
// and development.
func (s *Server) guildLimiter() *middleware.GuildLimiter {
	var rdb redis.Scripter
	if s.redis != nil {
		rdb = s.redis
	}
	return middleware.NewGuildLimiter(rdb, middleware.GuildLimitConfig{
		Scope:    "guild",
		Limit:    s.rateLimit(),
		Window:   time.Minute,
		Policy:   middleware.FailOpen,
		Disabled: s.config.Env == "test" || s.config.Env == "development",
	})
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth := middleware.ServiceAuth(s.config.APIJWTSecret)

	servers := app.Group("/servers", auth)
	servers.Get("/", s.ListServers)
	servers.Post("/", s.CreateServer)
	servers.Get("/:guild_id", s.GetServer)
	servers.Put("/:guild_id", s.UpdateServer)
	servers.Delete("/:guild_id", s.DeleteServer)

	app.Post("/validate-guilds", auth, s.ValidateGuilds)
	app.Post("/analytics/refresh", auth, s.RefreshAnalytics)

	guild := app.Group("/guilds/:guild_id", auth, s.GuildRequired(), middleware.GuildContext(),
		s.guildLimiter().Handler())

	threads := guild.Group("/threads")
	threads.Get("/", s.ListThreads)
	threads.Post("/", s.CreateThread)
	// Specific /:id/:resource routes before the generic /:id route
	threads.Post("/:id/close", s.CloseThread)
	threads.Post("/:id/messages", s.AddMessageToThread)
	threads.Put("/:id/urgency", s.UpdateThreadUrgency)
	threads.Get("/:id/notes", s.ListNotes)
	threads.Post("/:id/notes", s.CreateNote)
	threads.Get("/:id", s.GetThread)

	messages := guild.Group("/messages")
	messages.Get("/", s.ListMessages)
	messages.Post("/", s.CreateMessage)

	blocked := guild.Group("/blocked-users")
	blocked.Get("/", s.ListBlockedUsers)
	blocked.Post("/", s.BlockUser)
	blocked.Get("/:user_id", s.GetBlockStatus)
	blocked.Delete("/:user_id", s.UnblockUser)

	macros := guild.Group("/macros")
	macros.Get("/", s.ListMacros)
	macros.Post("/", s.CreateMacro)
	// quick-access is a reserved macro name and must be matched first
	macros.Get("/quick-access", s.ListQuickAccessMacros)
	macros.Get("/:name", s.GetMacro)
	macros.Put("/:name", s.UpdateMacro)
	macros.Delete("/:name", s.DeleteMacro)

	guild.Get("/config", s.GetGuildConfig)
	guild.Post("/config", s.CreateGuildConfig)
	guild.Put("/config", s.UpdateGuildConfig)

	analytics := guild.Group("/analytics")
	analytics.Get("/overview", s.GetOverview)
	analytics.Get("/thread-volume", s.GetThreadVolume)
	analytics.Get("/moderator-activity", s.GetModeratorActivity)
	analytics.Get("/response-times", s.GetResponseTimes)
}

// Serve implements suture.Service: it listens until ctx is canceled and then
// shuts the HTTP server down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	app := s.App()

	errCh := make(chan error, 1)
	go func() {
		middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
		errCh <- app.Listen(":" + s.config.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

func (s *Server) String() string {
	return "http-server"
}

// Shutdown waits for pending notifications and releases the database and
// Redis connections. Call it after Serve has returned.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.dispatcher.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		middleware.Logger.Warn("shutdown deadline reached with notifications in flight")
	}

	var errs []error
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			errs = append(errs, fmt.Errorf("close database: %w", cerr))
		}
	}
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", rerr))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return errors.Join(errs...)
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/notifications"
	"github.com/PumPum7/modmail/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadRepoStub is a stub for repository.ThreadRepository.
type threadRepoStub struct {
	listFn          func(context.Context, string, int, int) ([]models.Thread, int64, error)
	getByIDFn       func(context.Context, string, uint) (*models.Thread, error)
	createFn        func(context.Context, *models.Thread) error
	closeFn         func(context.Context, string, uint, *string, *string) (*models.Thread, error)
	updateUrgencyFn func(context.Context, string, uint, models.Urgency) (*models.Thread, error)
	listMessagesFn  func(context.Context, string, uint, int, int) ([]models.Message, int64, error)
	addMessageFn    func(context.Context, string, uint, *models.Message) error
}

func (s *threadRepoStub) List(ctx context.Context, guildID string, page, limit int) ([]models.Thread, int64, error) {
	return s.listFn(ctx, guildID, page, limit)
}
func (s *threadRepoStub) GetByID(ctx context.Context, guildID string, id uint) (*models.Thread, error) {
	return s.getByIDFn(ctx, guildID, id)
}
func (s *threadRepoStub) Create(ctx context.Context, thread *models.Thread) error {
	return s.createFn(ctx, thread)
}
func (s *threadRepoStub) Close(ctx context.Context, guildID string, id uint, byID, byTag *string) (*models.Thread, error) {
	return s.closeFn(ctx, guildID, id, byID, byTag)
}
func (s *threadRepoStub) UpdateUrgency(ctx context.Context, guildID string, id uint, u models.Urgency) (*models.Thread, error) {
	return s.updateUrgencyFn(ctx, guildID, id, u)
}
func (s *threadRepoStub) ListMessages(ctx context.Context, guildID string, id uint, page, limit int) ([]models.Message, int64, error) {
	return s.listMessagesFn(ctx, guildID, id, page, limit)
}
func (s *threadRepoStub) AddMessage(ctx context.Context, guildID string, id uint, msg *models.Message) error {
	return s.addMessageFn(ctx, guildID, id, msg)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		listFn:    func(_ context.Context, _ string, _, _ int) ([]models.Thread, int64, error) { return nil, 0, nil },
		getByIDFn: func(_ context.Context, g string, id uint) (*models.Thread, error) { return &models.Thread{ID: id, GuildID: g}, nil },
		createFn:  func(_ context.Context, _ *models.Thread) error { return nil },
		closeFn: func(_ context.Context, g string, id uint, byID, byTag *string) (*models.Thread, error) {
			return &models.Thread{ID: id, GuildID: g, ClosedByID: byID, ClosedByTag: byTag}, nil
		},
		updateUrgencyFn: func(_ context.Context, g string, id uint, u models.Urgency) (*models.Thread, error) {
			return &models.Thread{ID: id, GuildID: g, Urgency: u}, nil
		},
		listMessagesFn: func(_ context.Context, _ string, _ uint, _, _ int) ([]models.Message, int64, error) { return nil, 0, nil },
		addMessageFn:   func(_ context.Context, _ string, _ uint, _ *models.Message) error { return nil },
	}
}

// macroRepoStub is a stub for repository.MacroRepository.
type macroRepoStub struct {
	listFn            func(context.Context, string) ([]models.Macro, error)
	listQuickAccessFn func(context.Context, string) ([]models.Macro, error)
	getByNameFn       func(context.Context, string, string) (*models.Macro, error)
	createFn          func(context.Context, *models.Macro) error
	updateFn          func(context.Context, string, string, repository.MacroUpdate) (*models.Macro, error)
	deleteFn          func(context.Context, string, string) error
}

func (s *macroRepoStub) List(ctx context.Context, guildID string) ([]models.Macro, error) {
	return s.listFn(ctx, guildID)
}
func (s *macroRepoStub) ListQuickAccess(ctx context.Context, guildID string) ([]models.Macro, error) {
	return s.listQuickAccessFn(ctx, guildID)
}
func (s *macroRepoStub) GetByName(ctx context.Context, guildID, name string) (*models.Macro, error) {
	return s.getByNameFn(ctx, guildID, name)
}
func (s *macroRepoStub) Create(ctx context.Context, macro *models.Macro) error {
	return s.createFn(ctx, macro)
}
func (s *macroRepoStub) Update(ctx context.Context, guildID, name string, update repository.MacroUpdate) (*models.Macro, error) {
	return s.updateFn(ctx, guildID, name, update)
}
func (s *macroRepoStub) Delete(ctx context.Context, guildID, name string) error {
	return s.deleteFn(ctx, guildID, name)
}

func noopMacroRepo() *macroRepoStub {
	return &macroRepoStub{
		listFn:            func(_ context.Context, _ string) ([]models.Macro, error) { return nil, nil },
		listQuickAccessFn: func(_ context.Context, _ string) ([]models.Macro, error) { return nil, nil },
		getByNameFn: func(_ context.Context, g, name string) (*models.Macro, error) {
			return &models.Macro{GuildID: g, Name: name}, nil
		},
		createFn: func(_ context.Context, _ *models.Macro) error { return nil },
		updateFn: func(_ context.Context, g, name string, _ repository.MacroUpdate) (*models.Macro, error) {
			return &models.Macro{GuildID: g, Name: name}, nil
		},
		deleteFn: func(_ context.Context, _, _ string) error { return nil },
	}
}

// blockedRepoStub is a stub for repository.BlockedUserRepository.
type blockedRepoStub struct {
	listFn        func(context.Context, string) ([]models.BlockedUser, error)
	getByUserIDFn func(context.Context, string, string) (*models.BlockedUser, error)
	createFn      func(context.Context, *models.BlockedUser) error
	deleteFn      func(context.Context, string, string) error
}

func (s *blockedRepoStub) List(ctx context.Context, guildID string) ([]models.BlockedUser, error) {
	return s.listFn(ctx, guildID)
}
func (s *blockedRepoStub) GetByUserID(ctx context.Context, guildID, userID string) (*models.BlockedUser, error) {
	return s.getByUserIDFn(ctx, guildID, userID)
}
func (s *blockedRepoStub) Create(ctx context.Context, user *models.BlockedUser) error {
	return s.createFn(ctx, user)
}
func (s *blockedRepoStub) Delete(ctx context.Context, guildID, userID string) error {
	return s.deleteFn(ctx, guildID, userID)
}

// serverRepoStub is a stub for repository.ServerRepository.
type serverRepoStub struct {
	listFn           func(context.Context) ([]models.Server, error)
	listByGuildIDsFn func(context.Context, []string) ([]models.Server, error)
	getByGuildIDFn   func(context.Context, string) (*models.Server, error)
	createFn         func(context.Context, *models.Server) error
	updateFn         func(context.Context, *models.Server) error
	deleteFn         func(context.Context, string) error
}

func (s *serverRepoStub) List(ctx context.Context) ([]models.Server, error) {
	return s.listFn(ctx)
}
func (s *serverRepoStub) ListByGuildIDs(ctx context.Context, ids []string) ([]models.Server, error) {
	return s.listByGuildIDsFn(ctx, ids)
}
func (s *serverRepoStub) GetByGuildID(ctx context.Context, guildID string) (*models.Server, error) {
	return s.getByGuildIDFn(ctx, guildID)
}
func (s *serverRepoStub) Create(ctx context.Context, server *models.Server) error {
	return s.createFn(ctx, server)
}
func (s *serverRepoStub) Update(ctx context.Context, server *models.Server) error {
	return s.updateFn(ctx, server)
}
func (s *serverRepoStub) Delete(ctx context.Context, guildID string) error {
	return s.deleteFn(ctx, guildID)
}

// configRepoStub is a stub for repository.GuildConfigRepository.
type configRepoStub struct {
	getFn                func(context.Context, string) (*models.GuildConfig, error)
	createFn             func(context.Context, *models.GuildConfig) error
	updateFn             func(context.Context, *models.GuildConfig) error
	configuredGuildIDsFn func(context.Context, []string) (map[string]bool, error)
}

func (s *configRepoStub) Get(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	return s.getFn(ctx, guildID)
}
func (s *configRepoStub) Create(ctx context.Context, cfg *models.GuildConfig) error {
	return s.createFn(ctx, cfg)
}
func (s *configRepoStub) Update(ctx context.Context, cfg *models.GuildConfig) error {
	return s.updateFn(ctx, cfg)
}
func (s *configRepoStub) ConfiguredGuildIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	return s.configuredGuildIDsFn(ctx, ids)
}

// analyticsRepoStub is a stub for repository.AnalyticsRepository.
type analyticsRepoStub struct {
	overviewFn          func(context.Context, string) (*models.AnalyticsOverview, error)
	threadVolumeFn      func(context.Context, string) ([]models.ThreadVolume, error)
	moderatorActivityFn func(context.Context, string) ([]models.ModeratorActivity, error)
	responseTimesFn     func(context.Context, string) (*models.ResponseTimeMetrics, error)
	knownGuildIDsFn     func(context.Context) ([]string, error)
}

func (s *analyticsRepoStub) Overview(ctx context.Context, guildID string) (*models.AnalyticsOverview, error) {
	return s.overviewFn(ctx, guildID)
}
func (s *analyticsRepoStub) ThreadVolume(ctx context.Context, guildID string) ([]models.ThreadVolume, error) {
	return s.threadVolumeFn(ctx, guildID)
}
func (s *analyticsRepoStub) ModeratorActivity(ctx context.Context, guildID string) ([]models.ModeratorActivity, error) {
	return s.moderatorActivityFn(ctx, guildID)
}
func (s *analyticsRepoStub) ResponseTimes(ctx context.Context, guildID string) (*models.ResponseTimeMetrics, error) {
	return s.responseTimesFn(ctx, guildID)
}
func (s *analyticsRepoStub) KnownGuildIDs(ctx context.Context) ([]string, error) {
	return s.knownGuildIDsFn(ctx)
}

func noopAnalyticsRepo() *analyticsRepoStub {
	return &analyticsRepoStub{
		overviewFn: func(_ context.Context, _ string) (*models.AnalyticsOverview, error) {
			return &models.AnalyticsOverview{}, nil
		},
		threadVolumeFn: func(_ context.Context, _ string) ([]models.ThreadVolume, error) {
			return []models.ThreadVolume{}, nil
		},
		moderatorActivityFn: func(_ context.Context, _ string) ([]models.ModeratorActivity, error) {
			return []models.ModeratorActivity{}, nil
		},
		responseTimesFn: func(_ context.Context, _ string) (*models.ResponseTimeMetrics, error) {
			return &models.ResponseTimeMetrics{}, nil
		},
		knownGuildIDsFn: func(_ context.Context) ([]string, error) { return nil, nil },
	}
}

// recordingNotifier captures delivered close events.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifications.ThreadClosedEvent
	err    error
}

func (n *recordingNotifier) NotifyThreadClosed(_ context.Context, event notifications.ThreadClosedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

func (n *recordingNotifier) received() []notifications.ThreadClosedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notifications.ThreadClosedEvent(nil), n.events...)
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }

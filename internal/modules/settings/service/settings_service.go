package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"focuslock/internal/modules/settings/domain"
	settingsout "focuslock/internal/modules/settings/port/out"
	"focuslock/internal/platform/clock"
	"focuslock/internal/platform/logging"
)

type SettingsService struct {
	clock    clock.Clock
	store    settingsout.SettingsStore
	notifier settingsout.ChangeNotifier
	logger   *slog.Logger
	mu       sync.Mutex
}

func NewSettingsService(clock clock.Clock, store settingsout.SettingsStore, notifier settingsout.ChangeNotifier, logger *slog.Logger) *SettingsService {
	return &SettingsService{clock: clock, store: store, notifier: notifier, logger: logging.OrDiscard(logger)}
}

// Current reads the stored settings. Read failures and malformed fields fall
// back to defaults so page evaluation is never blocked.
func (s *SettingsService) Current(ctx context.Context) domain.Settings {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("settings unreadable, using defaults", "error", err)
		return domain.Defaults()
	}
	settings, degraded := doc.Resolve()
	if len(degraded) > 0 {
		s.logger.Warn("settings fields out of range, using defaults", "fields", degraded)
	}
	return settings
}

// Update applies fn to the current settings, then validates, writes and
// broadcasts the result.
func (s *SettingsService) Update(ctx context.Context, reason string, fn func(*domain.Settings) error) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Current(ctx).Clone()
	if err := fn(&next); err != nil {
		return domain.Settings{}, err
	}
	return s.write(ctx, reason, next)
}

func (s *SettingsService) Replace(ctx context.Context, reason string, settings domain.Settings) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, reason, settings.Clone())
}

func (s *SettingsService) write(ctx context.Context, reason string, settings domain.Settings) (domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	if err := s.store.Save(ctx, domain.NewDocument(settings)); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info("settings saved", "reason", reason, "enabled", settings.Enabled, "lock_minutes", settings.LockDurationMinutes)
	if s.notifier != nil {
		event := domain.ChangeEvent{Settings: settings.Clone(), Reason: reason, At: s.clock.Now()}
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.Debug("settings change broadcast failed", "reason", reason, "error", err)
		}
	}
	return settings, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"focuslock/internal/modules/settings/domain"
	"focuslock/internal/modules/settings/service"
	apperrors "focuslock/internal/platform/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type memoryStore struct {
	doc     domain.Document
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryStore) Load(context.Context) (domain.Document, error) {
	if m.loadErr != nil {
		return domain.Document{}, m.loadErr
	}
	return m.doc, nil
}

func (m *memoryStore) Save(_ context.Context, doc domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.doc = doc
	return nil
}

type recordingNotifier struct {
	events []domain.ChangeEvent
	err    error
}

func (r *recordingNotifier) Notify(_ context.Context, event domain.ChangeEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func TestCurrentDegradesToDefaultsOnLoadError(t *testing.T) {
	t.Parallel()
	store := &memoryStore{loadErr: errors.New("disk gone")}
	svc := service.NewSettingsService(fixedClock{}, store, nil, nil)
	got := svc.Current(context.Background())
	if !got.Enabled || got.LockDurationMinutes != domain.DefaultLockDurationMinutes || got.StudyKeywords.Count() == 0 {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestUpdateWritesThenBroadcasts(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	store := &memoryStore{}
	notifier := &recordingNotifier{}
	svc := service.NewSettingsService(fixedClock{at: at}, store, notifier, nil)

	saved, err := svc.Update(context.Background(), "duration", func(s *domain.Settings) error {
		s.LockDurationMinutes = 15
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.LockDurationMinutes != 15 || store.saves != 1 {
		t.Fatalf("expected one save with 15 minutes, got %+v saves=%d", saved, store.saves)
	}
	if len(notifier.events) != 1 || notifier.events[0].Reason != "duration" || !notifier.events[0].At.Equal(at) {
		t.Fatalf("expected one change event, got %+v", notifier.events)
	}
	if svc.Current(context.Background()).LockDurationMinutes != 15 {
		t.Fatalf("expected stored duration to be re-read")
	}
}

func TestBroadcastFailureDoesNotFailSave(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	notifier := &recordingNotifier{err: errors.New("tab closed")}
	svc := service.NewSettingsService(fixedClock{}, store, notifier, nil)
	if _, err := svc.Replace(context.Background(), "restore-defaults", domain.Defaults()); err != nil {
		t.Fatalf("save must succeed despite broadcast failure: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected document to be saved")
	}
}

func TestInvalidUpdateIsNotWrittenOrBroadcast(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	notifier := &recordingNotifier{}
	svc := service.NewSettingsService(fixedClock{}, store, notifier, nil)
	_, err := svc.Update(context.Background(), "duration", func(s *domain.Settings) error {
		s.LockDurationMinutes = 0
		return nil
	})
	if !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected invalid duration, got %v", err)
	}
	if store.saves != 0 || len(notifier.events) != 0 {
		t.Fatalf("invalid settings must not be saved or broadcast")
	}

	store.saveErr = errors.New("read-only")
	if _, err := svc.Replace(context.Background(), "x", domain.Defaults()); err == nil {
		t.Fatalf("expected store error to surface")
	}
	if len(notifier.events) != 0 {
		t.Fatalf("failed save must not broadcast")
	}
}

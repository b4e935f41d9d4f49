package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	settingsout "focuslock/internal/modules/settings/adapter/out"
	"focuslock/internal/modules/settings/domain"
	"focuslock/internal/modules/settings/dto"
	settingsin "focuslock/internal/modules/settings/port/in"
	"focuslock/internal/modules/settings/service"
	"focuslock/internal/modules/settings/usecase"
	"focuslock/internal/platform/clock"
	apperrors "focuslock/internal/platform/errors"
	"focuslock/internal/platform/keywords"
)

func newInteractor(t *testing.T) (settingsin.Usecase, *[]domain.ChangeEvent) {
	t.Helper()
	store := settingsout.NewYAMLSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
	broadcaster := settingsout.NewBroadcaster()
	events := &[]domain.ChangeEvent{}
	broadcaster.Subscribe(func(_ context.Context, ev domain.ChangeEvent) error {
		*events = append(*events, ev)
		return nil
	})
	return usecase.NewInteractor(service.NewSettingsService(clock.SystemClock{}, store, broadcaster, nil)), events
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t)
	out, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !out.Enabled || out.LockDuration != 5 {
		t.Fatalf("unexpected defaults %+v", out)
	}
	if !slices.Equal(out.Categories, []string{"academic", "study", "learning", "course"}) {
		t.Fatalf("unexpected category order %v", out.Categories)
	}
}

func TestKeywordLifecycleBroadcastsEachWrite(t *testing.T) {
	t.Parallel()
	uc, events := newInteractor(t)
	ctx := context.Background()

	added, err := uc.AddKeyword(ctx, dto.KeywordInput{Category: "course", Keyword: " Thesis "})
	if err != nil {
		t.Fatalf("add keyword: %v", err)
	}
	if added.Keyword != "thesis" || !slices.Contains(added.Settings.StudyKeywords["course"], "thesis") {
		t.Fatalf("unexpected add output %+v", added)
	}
	if _, err := uc.AddKeyword(ctx, dto.KeywordInput{Category: "course", Keyword: "thesis"}); !errors.Is(err, apperrors.ErrDuplicateKeyword) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := uc.RemoveKeyword(ctx, dto.KeywordInput{Category: "course", Keyword: "thesis"}); err != nil {
		t.Fatalf("remove keyword: %v", err)
	}
	if _, err := uc.SetLockDuration(ctx, 0); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected invalid duration, got %v", err)
	}
	if _, err := uc.SetEnabled(ctx, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if len(*events) != 3 {
		t.Fatalf("expected 3 broadcasts for 3 successful writes, got %d", len(*events))
	}
	out, _ := uc.Get(ctx)
	if out.Enabled {
		t.Fatalf("expected disabled after toggle")
	}
}

func TestSaveMergesFieldsAndNormalizesLegacyKeywords(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t)
	ctx := context.Background()
	minutes := 20
	out, err := uc.Save(ctx, dto.SaveInput{LockDuration: &minutes, StudyKeywords: keywords.Flat("Exam", "chess")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !out.Enabled || out.LockDuration != 20 {
		t.Fatalf("unset fields must be kept, got %+v", out)
	}
	if !slices.Equal(out.StudyKeywords["study"], []string{"exam", "chess"}) {
		t.Fatalf("unexpected legacy conversion %v", out.StudyKeywords)
	}
	if _, err := uc.Save(ctx, dto.SaveInput{StudyKeywords: keywords.Flat()}); !errors.Is(err, apperrors.ErrNoKeywords) {
		t.Fatalf("expected empty keyword list to be rejected, got %v", err)
	}

	reset, err := uc.RestoreDefaults(ctx)
	if err != nil {
		t.Fatalf("restore defaults: %v", err)
	}
	if reset.LockDuration != 5 || len(reset.StudyKeywords["academic"]) != 7 {
		t.Fatalf("unexpected defaults after reset %+v", reset)
	}
}

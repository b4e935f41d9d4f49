package domain

import (
	"errors"
	"slices"
	"testing"

	apperrors "focuslock/internal/platform/errors"
	"focuslock/internal/platform/keywords"
)

func TestDefaultsMatchExtensionDefaults(t *testing.T) {
	t.Parallel()
	s := Defaults()
	if !s.Enabled || s.LockDurationMinutes != 5 {
		t.Fatalf("unexpected defaults %+v", s)
	}
	want := []string{"course", "project", "lab", "exam", "lecture", "seminar"}
	if !slices.Equal(s.StudyKeywords["course"], want) {
		t.Fatalf("expected course keywords %v, got %v", want, s.StudyKeywords["course"])
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsDurationAndEmptyKeywords(t *testing.T) {
	t.Parallel()
	s := Defaults()
	s.LockDurationMinutes = 61
	if err := s.Validate(); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected invalid duration, got %v", err)
	}
	s.LockDurationMinutes = 0
	if err := s.Validate(); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected invalid duration for 0, got %v", err)
	}
	s.LockDurationMinutes = 60
	s.StudyKeywords = keywords.Categories{"academic": nil}
	if err := s.Validate(); !errors.Is(err, apperrors.ErrNoKeywords) {
		t.Fatalf("expected no keywords error, got %v", err)
	}
}

func TestAddAndRemoveKeyword(t *testing.T) {
	t.Parallel()
	s := Defaults()
	kw, err := s.AddKeyword("Course", "  Thesis ")
	if err != nil {
		t.Fatalf("add keyword: %v", err)
	}
	if kw != "thesis" || s.StudyKeywords["course"][len(s.StudyKeywords["course"])-1] != "thesis" {
		t.Fatalf("expected trimmed lowercase keyword appended, got %q %v", kw, s.StudyKeywords["course"])
	}
	if _, err := s.AddKeyword("course", "THESIS"); !errors.Is(err, apperrors.ErrDuplicateKeyword) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := s.AddKeyword("course", "   "); !errors.Is(err, apperrors.ErrEmptyKeyword) {
		t.Fatalf("expected empty keyword error, got %v", err)
	}
	if _, err := s.AddKeyword("languages", "grammar"); err != nil {
		t.Fatalf("new category should be created: %v", err)
	}
	if err := s.RemoveKeyword("course", "thesis"); err != nil {
		t.Fatalf("remove keyword: %v", err)
	}
	if slices.Contains(s.StudyKeywords["course"], "thesis") {
		t.Fatalf("keyword should be removed")
	}
	if err := s.RemoveKeyword("course", "thesis"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolveFillsDefaultsAndNormalizesLegacy(t *testing.T) {
	t.Parallel()
	disabled := false
	badDuration := 90
	got, degraded := Document{
		Enabled:       &disabled,
		LockDuration:  &badDuration,
		StudyKeywords: keywords.Flat("Lab", "robotics"),
	}.Resolve()
	if got.Enabled {
		t.Fatalf("explicit false must be kept")
	}
	if got.LockDurationMinutes != DefaultLockDurationMinutes || !slices.Equal(degraded, []string{"lockDuration"}) {
		t.Fatalf("expected out-of-range duration to degrade, got %d %v", got.LockDurationMinutes, degraded)
	}
	if !slices.Equal(got.StudyKeywords["course"], []string{"lab"}) || !slices.Equal(got.StudyKeywords["study"], []string{"robotics"}) {
		t.Fatalf("unexpected legacy conversion %v", got.StudyKeywords)
	}

	empty, degraded := Document{}.Resolve()
	if !empty.Enabled || empty.LockDurationMinutes != 5 || empty.StudyKeywords.Count() != 26 || len(degraded) != 0 {
		t.Fatalf("unset document must resolve to defaults, got %+v %v", empty, degraded)
	}
}

func TestNewDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	s := Defaults()
	s.Enabled = false
	s.LockDurationMinutes = 12
	back, _ := NewDocument(s).Resolve()
	if back.Enabled || back.LockDurationMinutes != 12 || back.StudyKeywords.Count() != s.StudyKeywords.Count() {
		t.Fatalf("unexpected round trip %+v", back)
	}
}

package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "focuslock/internal/platform/errors"
	"focuslock/internal/platform/keywords"
)

const (
	DefaultLockDurationMinutes = 5
	MinLockDurationMinutes     = 1
	MaxLockDurationMinutes     = 60
)

type Settings struct {
	Enabled             bool
	LockDurationMinutes int
	StudyKeywords       keywords.Categories
}

func Defaults() Settings {
	return Settings{
		Enabled:             true,
		LockDurationMinutes: DefaultLockDurationMinutes,
		StudyKeywords:       keywords.Defaults(),
	}
}

func (s Settings) Clone() Settings {
	s.StudyKeywords = s.StudyKeywords.Clone()
	return s
}

func ValidateDuration(minutes int) error {
	if minutes < MinLockDurationMinutes || minutes > MaxLockDurationMinutes {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidDuration, minutes)
	}
	return nil
}

// Validate applies the rules the settings surface enforces before a save.
func (s Settings) Validate() error {
	if err := ValidateDuration(s.LockDurationMinutes); err != nil {
		return err
	}
	if s.StudyKeywords.Count() == 0 {
		return apperrors.ErrNoKeywords
	}
	return nil
}

// AddKeyword trims and lowercases kw before filing it under category.
func (s *Settings) AddKeyword(category, kw string) (string, error) {
	category = strings.TrimSpace(strings.ToLower(category))
	if category == "" {
		return "", fmt.Errorf("%w: category is required", apperrors.ErrInvalidInput)
	}
	kw = keywords.Lower(strings.TrimSpace(kw))
	if kw == "" {
		return "", apperrors.ErrEmptyKeyword
	}
	if s.StudyKeywords == nil {
		s.StudyKeywords = keywords.Categories{}
	}
	if slices.Contains(s.StudyKeywords[category], kw) {
		return "", fmt.Errorf("%w: %q in %s", apperrors.ErrDuplicateKeyword, kw, category)
	}
	s.StudyKeywords[category] = append(s.StudyKeywords[category], kw)
	return kw, nil
}

func (s *Settings) RemoveKeyword(category, kw string) error {
	category = strings.TrimSpace(strings.ToLower(category))
	kw = keywords.Lower(strings.TrimSpace(kw))
	words := s.StudyKeywords[category]
	idx := slices.Index(words, kw)
	if idx < 0 {
		return fmt.Errorf("%w: keyword %q in %s", apperrors.ErrNotFound, kw, category)
	}
	s.StudyKeywords[category] = slices.Delete(slices.Clone(words), idx, idx+1)
	return nil
}

// Document is the persisted shape. Pointer fields distinguish "unset" from a
// zero value so defaults only fill what was never written.
type Document struct {
	Enabled       *bool           `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	LockDuration  *int            `json:"lockDuration,omitempty" yaml:"lockDuration,omitempty"`
	StudyKeywords keywords.Config `json:"studyKeywords,omitzero" yaml:"studyKeywords,omitempty"`
}

// Resolve fills unset or malformed fields from Defaults and reports which
// fields were replaced.
func (d Document) Resolve() (Settings, []string) {
	out := Defaults()
	var degraded []string
	if d.Enabled != nil {
		out.Enabled = *d.Enabled
	}
	if d.LockDuration != nil {
		if ValidateDuration(*d.LockDuration) == nil {
			out.LockDurationMinutes = *d.LockDuration
		} else {
			degraded = append(degraded, "lockDuration")
		}
	}
	if d.StudyKeywords.Shape() != keywords.ShapeAbsent {
		out.StudyKeywords = d.StudyKeywords.Categories()
	}
	return out, degraded
}

func NewDocument(s Settings) Document {
	enabled := s.Enabled
	duration := s.LockDurationMinutes
	return Document{
		Enabled:       &enabled,
		LockDuration:  &duration,
		StudyKeywords: keywords.Categorized(s.StudyKeywords),
	}
}

type ChangeEvent struct {
	Settings Settings
	Reason   string
	At       time.Time
}

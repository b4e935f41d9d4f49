package usecase

import (
	"context"

	"focuslock/internal/modules/settings/domain"
	"focuslock/internal/modules/settings/dto"
	settingsin "focuslock/internal/modules/settings/port/in"
	"focuslock/internal/modules/settings/service"
	"focuslock/internal/platform/keywords"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	return toOutput(i.svc.Current(ctx)), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SettingsOutput, error) {
	saved, err := i.svc.Update(ctx, "save", func(s *domain.Settings) error {
		if input.Enabled != nil {
			s.Enabled = *input.Enabled
		}
		if input.LockDuration != nil {
			s.LockDurationMinutes = *input.LockDuration
		}
		if input.StudyKeywords.Shape() != keywords.ShapeAbsent {
			s.StudyKeywords = input.StudyKeywords.Categories()
		}
		return nil
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) SetEnabled(ctx context.Context, enabled bool) (dto.SettingsOutput, error) {
	saved, err := i.svc.Update(ctx, "toggle", func(s *domain.Settings) error {
		s.Enabled = enabled
		return nil
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) SetLockDuration(ctx context.Context, minutes int) (dto.SettingsOutput, error) {
	if err := domain.ValidateDuration(minutes); err != nil {
		return dto.SettingsOutput{}, err
	}
	saved, err := i.svc.Update(ctx, "duration", func(s *domain.Settings) error {
		s.LockDurationMinutes = minutes
		return nil
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) AddKeyword(ctx context.Context, input dto.KeywordInput) (dto.KeywordOutput, error) {
	var added string
	saved, err := i.svc.Update(ctx, "keyword-add", func(s *domain.Settings) error {
		kw, err := s.AddKeyword(input.Category, input.Keyword)
		added = kw
		return err
	})
	if err != nil {
		return dto.KeywordOutput{}, err
	}
	return dto.KeywordOutput{Category: input.Category, Keyword: added, Settings: toOutput(saved)}, nil
}

func (i *Interactor) RemoveKeyword(ctx context.Context, input dto.KeywordInput) (dto.SettingsOutput, error) {
	saved, err := i.svc.Update(ctx, "keyword-remove", func(s *domain.Settings) error {
		return s.RemoveKeyword(input.Category, input.Keyword)
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) RestoreDefaults(ctx context.Context) (dto.SettingsOutput, error) {
	saved, err := i.svc.Replace(ctx, "restore-defaults", domain.Defaults())
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(saved), nil
}

func toOutput(s domain.Settings) dto.SettingsOutput {
	categories := s.StudyKeywords.Names()
	words := make(map[string][]string, len(categories))
	for _, name := range categories {
		words[name] = append(make([]string, 0, len(s.StudyKeywords[name])), s.StudyKeywords[name]...)
	}
	return dto.SettingsOutput{
		Enabled:       s.Enabled,
		LockDuration:  s.LockDurationMinutes,
		StudyKeywords: words,
		Categories:    categories,
	}
}

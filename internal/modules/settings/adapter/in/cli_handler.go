package in

import (
	"context"

	"focuslock/internal/modules/settings/dto"
	settingsin "focuslock/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetEnabled(ctx context.Context, enabled bool) (dto.SettingsOutput, error) {
	return h.usecase.SetEnabled(ctx, enabled)
}

func (h CLIHandler) SetLockDuration(ctx context.Context, minutes int) (dto.SettingsOutput, error) {
	return h.usecase.SetLockDuration(ctx, minutes)
}

func (h CLIHandler) AddKeyword(ctx context.Context, category, keyword string) (dto.KeywordOutput, error) {
	return h.usecase.AddKeyword(ctx, dto.KeywordInput{Category: category, Keyword: keyword})
}

func (h CLIHandler) RemoveKeyword(ctx context.Context, category, keyword string) (dto.SettingsOutput, error) {
	return h.usecase.RemoveKeyword(ctx, dto.KeywordInput{Category: category, Keyword: keyword})
}

func (h CLIHandler) RestoreDefaults(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.RestoreDefaults(ctx)
}

package in

import (
	"context"

	"focuslock/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SettingsOutput, error)
	SetEnabled(ctx context.Context, enabled bool) (dto.SettingsOutput, error)
	SetLockDuration(ctx context.Context, minutes int) (dto.SettingsOutput, error)
	AddKeyword(ctx context.Context, input dto.KeywordInput) (dto.KeywordOutput, error)
	RemoveKeyword(ctx context.Context, input dto.KeywordInput) (dto.SettingsOutput, error)
	RestoreDefaults(ctx context.Context) (dto.SettingsOutput, error)
}

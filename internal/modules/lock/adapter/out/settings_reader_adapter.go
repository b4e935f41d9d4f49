package out

import (
	"context"

	"focuslock/internal/modules/lock/domain"
	lockout "focuslock/internal/modules/lock/port/out"
	settingsin "focuslock/internal/modules/settings/port/in"
	"focuslock/internal/platform/keywords"
)

type SettingsReaderAdapter struct {
	settings settingsin.Usecase
}

func NewSettingsReaderAdapter(settings settingsin.Usecase) lockout.SettingsReader {
	return SettingsReaderAdapter{settings: settings}
}

func (a SettingsReaderAdapter) Current(ctx context.Context) (domain.Config, error) {
	out, err := a.settings.Get(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	return domain.Config{
		Enabled:             out.Enabled,
		LockDurationMinutes: out.LockDuration,
		Keywords:            keywords.Categorized(out.StudyKeywords),
	}, nil
}

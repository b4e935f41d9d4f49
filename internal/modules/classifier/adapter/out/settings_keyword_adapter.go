package out

import (
	"context"

	classifierout "focuslock/internal/modules/classifier/port/out"
	settingsin "focuslock/internal/modules/settings/port/in"
	"focuslock/internal/platform/keywords"
)

type SettingsKeywordAdapter struct {
	settings settingsin.Usecase
}

func NewSettingsKeywordAdapter(settings settingsin.Usecase) classifierout.KeywordSource {
	return SettingsKeywordAdapter{settings: settings}
}

func (a SettingsKeywordAdapter) StudyKeywords(ctx context.Context) (keywords.Config, error) {
	out, err := a.settings.Get(ctx)
	if err != nil {
		return keywords.Config{}, err
	}
	return keywords.Categorized(out.StudyKeywords), nil
}

package out

import (
	"context"

	"focuslock/internal/modules/settings/domain"
)

// SettingsStore persists the raw settings document. Load returns an empty
// document when nothing has been written yet.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Document, error)
	Save(ctx context.Context, doc domain.Document) error
}

// ChangeNotifier tells every open page that settings were written.
type ChangeNotifier interface {
	Notify(ctx context.Context, event domain.ChangeEvent) error
}

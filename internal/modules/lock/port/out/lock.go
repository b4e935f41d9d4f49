package out

import (
	"context"

	"focuslock/internal/modules/lock/domain"
	"focuslock/internal/platform/keywords"
)

type SettingsReader interface {
	Current(ctx context.Context) (domain.Config, error)
}

// Classifier returns the keywords that make a page study related.
type Classifier interface {
	Classify(ctx context.Context, page domain.Page, config keywords.Config) ([]string, error)
}

// Presenter receives every overlay change for a page. It is called without
// any controller lock held.
type Presenter interface {
	Present(pageID string, view domain.OverlayView)
}

package out

import (
	"context"

	"focuslock/internal/modules/classifier/domain"
	"focuslock/internal/platform/keywords"
)

// PageLoader fetches a page by URL or local path.
type PageLoader interface {
	Load(ctx context.Context, target string) (domain.Page, error)
}

// KeywordSource supplies the currently configured study keywords.
type KeywordSource interface {
	StudyKeywords(ctx context.Context) (keywords.Config, error)
}

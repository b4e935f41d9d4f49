package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"focuslock/internal/modules/classifier/domain"
	classifierout "focuslock/internal/modules/classifier/port/out"
	apperrors "focuslock/internal/platform/errors"
	"focuslock/internal/platform/keywords"
	"focuslock/internal/platform/logging"
)

type ClassifierService struct {
	loader   classifierout.PageLoader
	keywords classifierout.KeywordSource
	logger   *slog.Logger
}

func NewClassifierService(loader classifierout.PageLoader, source classifierout.KeywordSource, logger *slog.Logger) *ClassifierService {
	return &ClassifierService{loader: loader, keywords: source, logger: logging.OrDiscard(logger)}
}

// Keywords returns the configured keywords. A failing source yields an
// absent configuration, which classifies every page as not study related.
func (s *ClassifierService) Keywords(ctx context.Context) keywords.Config {
	if s.keywords == nil {
		return keywords.Config{}
	}
	config, err := s.keywords.StudyKeywords(ctx)
	if err != nil {
		s.logger.Warn("study keywords unavailable", "error", err)
		return keywords.Config{}
	}
	return config
}

func (s *ClassifierService) Capture(ctx context.Context, target string) (domain.Snapshot, error) {
	if strings.TrimSpace(target) == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: page target is required", apperrors.ErrInvalidInput)
	}
	if s.loader == nil {
		return domain.Snapshot{}, fmt.Errorf("page loader is not configured")
	}
	page, err := s.loader.Load(ctx, target)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.NewSnapshot(page), nil
}

func (s *ClassifierService) Classify(snapshot domain.Snapshot, config keywords.Config) []string {
	matches := domain.Matches(snapshot, config)
	s.logger.Debug("page classified", "url", snapshot.URL, "study_related", len(matches) > 0, "matches", matches)
	return matches
}

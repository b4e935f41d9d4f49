package usecase

import (
	"context"

	"focuslock/internal/modules/classifier/domain"
	"focuslock/internal/modules/classifier/dto"
	classifierin "focuslock/internal/modules/classifier/port/in"
	"focuslock/internal/modules/classifier/service"
	"focuslock/internal/platform/keywords"
)

type Interactor struct {
	svc *service.ClassifierService
}

func NewInteractor(svc *service.ClassifierService) classifierin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Classify(ctx context.Context, input dto.ClassifyInput) (dto.ClassifyOutput, error) {
	snapshot := domain.NewSnapshot(domain.Page{Title: input.Title, Text: input.BodyText, URL: input.URL})
	var config keywords.Config
	if input.Keywords != nil {
		config = *input.Keywords
	} else {
		config = i.svc.Keywords(ctx)
	}
	return i.classify(snapshot, config), nil
}

func (i *Interactor) Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	snapshot, err := i.svc.Capture(ctx, input.Target)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toSnapshotOutput(snapshot), nil
}

func (i *Interactor) Inspect(ctx context.Context, input dto.SnapshotInput) (dto.ClassifyOutput, error) {
	snapshot, err := i.svc.Capture(ctx, input.Target)
	if err != nil {
		return dto.ClassifyOutput{}, err
	}
	return i.classify(snapshot, i.svc.Keywords(ctx)), nil
}

func (i *Interactor) classify(snapshot domain.Snapshot, config keywords.Config) dto.ClassifyOutput {
	matches := i.svc.Classify(snapshot, config)
	if matches == nil {
		matches = []string{}
	}
	return dto.ClassifyOutput{
		StudyRelated: len(matches) > 0,
		Matches:      matches,
		KeywordCount: len(config.Set()),
		Snapshot:     toSnapshotOutput(snapshot),
	}
}

func toSnapshotOutput(s domain.Snapshot) dto.SnapshotOutput {
	return dto.SnapshotOutput{Title: s.Title, BodyExcerpt: s.BodyExcerpt, URL: s.URL}
}

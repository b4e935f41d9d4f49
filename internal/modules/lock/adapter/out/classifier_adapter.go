package out

import (
	"context"

	classifierdto "focuslock/internal/modules/classifier/dto"
	classifierin "focuslock/internal/modules/classifier/port/in"
	"focuslock/internal/modules/lock/domain"
	lockout "focuslock/internal/modules/lock/port/out"
	"focuslock/internal/platform/keywords"
)

type ClassifierAdapter struct {
	classifier classifierin.Usecase
}

func NewClassifierAdapter(classifier classifierin.Usecase) lockout.Classifier {
	return ClassifierAdapter{classifier: classifier}
}

func (a ClassifierAdapter) Classify(ctx context.Context, page domain.Page, config keywords.Config) ([]string, error) {
	out, err := a.classifier.Classify(ctx, classifierdto.ClassifyInput{
		Title:    page.Title,
		BodyText: page.Text,
		URL:      page.URL,
		Keywords: &config,
	})
	if err != nil {
		return nil, err
	}
	return out.Matches, nil
}

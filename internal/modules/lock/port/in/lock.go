package in

import (
	"context"

	"focuslock/internal/modules/lock/dto"
)

type Usecase interface {
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	State(ctx context.Context, pageID string) (dto.PageStateOutput, error)
	Close(ctx context.Context, pageID string) error
	SettingsChanged(ctx context.Context) error
}

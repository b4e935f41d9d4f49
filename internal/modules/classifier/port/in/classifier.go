package in

import (
	"context"

	"focuslock/internal/modules/classifier/dto"
)

type Usecase interface {
	Classify(ctx context.Context, input dto.ClassifyInput) (dto.ClassifyOutput, error)
	Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error)
	Inspect(ctx context.Context, input dto.SnapshotInput) (dto.ClassifyOutput, error)
}

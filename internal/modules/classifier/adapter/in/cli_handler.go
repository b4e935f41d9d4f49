package in

import (
	"context"

	"focuslock/internal/modules/classifier/dto"
	classifierin "focuslock/internal/modules/classifier/port/in"
)

type CLIHandler struct {
	usecase classifierin.Usecase
}

func NewCLIHandler(usecase classifierin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context, target string) (dto.ClassifyOutput, error) {
	return h.usecase.Inspect(ctx, dto.SnapshotInput{Target: target})
}

func (h CLIHandler) Snapshot(ctx context.Context, target string) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx, dto.SnapshotInput{Target: target})
}

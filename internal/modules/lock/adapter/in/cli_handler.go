package in

import (
	"context"

	"focuslock/internal/modules/lock/dto"
	lockin "focuslock/internal/modules/lock/port/in"
)

type CLIHandler struct {
	usecase lockin.Usecase
}

func NewCLIHandler(usecase lockin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Evaluate(ctx context.Context, pageID, title, bodyText, url string) (dto.EvaluateOutput, error) {
	return h.usecase.Evaluate(ctx, dto.EvaluateInput{PageID: pageID, Title: title, BodyText: bodyText, URL: url})
}

func (h CLIHandler) Submit(ctx context.Context, pageID, text string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{PageID: pageID, Text: text})
}

func (h CLIHandler) State(ctx context.Context, pageID string) (dto.PageStateOutput, error) {
	return h.usecase.State(ctx, pageID)
}

func (h CLIHandler) Close(ctx context.Context, pageID string) error {
	return h.usecase.Close(ctx, pageID)
}

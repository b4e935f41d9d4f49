package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"focuslock/internal/modules/lock/domain"
	"focuslock/internal/modules/lock/dto"
	lockin "focuslock/internal/modules/lock/port/in"
	"focuslock/internal/modules/lock/service"
	apperrors "focuslock/internal/platform/errors"
)

// Interactor keeps one controller per page id.
type Interactor struct {
	deps service.Deps

	mu    sync.Mutex
	pages map[string]*service.Controller
}

func NewInteractor(deps service.Deps) lockin.Usecase {
	return &Interactor{deps: deps, pages: map[string]*service.Controller{}}
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	pageID := strings.TrimSpace(input.PageID)
	if pageID == "" {
		return dto.EvaluateOutput{}, fmt.Errorf("%w: page id is required", apperrors.ErrInvalidInput)
	}
	controller := i.controller(pageID)
	eval, err := controller.Evaluate(ctx, domain.Page{Title: input.Title, Text: input.BodyText, URL: input.URL})
	if err != nil {
		return dto.EvaluateOutput{}, err
	}
	matches := eval.Matches
	if matches == nil {
		matches = []string{}
	}
	return dto.EvaluateOutput{
		Enabled:       eval.Enabled,
		AlreadyLocked: eval.AlreadyLocked,
		StudyRelated:  eval.StudyRelated,
		Matches:       matches,
		Page:          toPageState(pageID, controller.Status()),
	}, nil
}

func (i *Interactor) Submit(_ context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	controller, err := i.lookup(input.PageID)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	accepted, err := controller.Submit(input.Text)
	if err != nil {
		return dto.SubmitOutput{}, fmt.Errorf("submit page %s: %w", input.PageID, err)
	}
	return dto.SubmitOutput{Accepted: accepted, Page: toPageState(input.PageID, controller.Status())}, nil
}

func (i *Interactor) State(_ context.Context, pageID string) (dto.PageStateOutput, error) {
	controller, err := i.lookup(pageID)
	if err != nil {
		return dto.PageStateOutput{}, err
	}
	return toPageState(pageID, controller.Status()), nil
}

func (i *Interactor) Close(_ context.Context, pageID string) error {
	i.mu.Lock()
	controller, ok := i.pages[pageID]
	delete(i.pages, pageID)
	i.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrPageNotFound, pageID)
	}
	controller.Close()
	return nil
}

func (i *Interactor) SettingsChanged(context.Context) error {
	i.mu.Lock()
	controllers := make([]*service.Controller, 0, len(i.pages))
	for _, c := range i.pages {
		controllers = append(controllers, c)
	}
	i.mu.Unlock()
	for _, c := range controllers {
		c.SettingsChanged()
	}
	return nil
}

func (i *Interactor) controller(pageID string) *service.Controller {
	i.mu.Lock()
	defer i.mu.Unlock()
	c, ok := i.pages[pageID]
	if !ok {
		c = service.NewController(pageID, i.deps)
		i.pages[pageID] = c
	}
	return c
}

func (i *Interactor) lookup(pageID string) (*service.Controller, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	c, ok := i.pages[pageID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPageNotFound, pageID)
	}
	return c, nil
}

func toPageState(pageID string, status service.Status) dto.PageStateOutput {
	out := dto.PageStateOutput{
		PageID:     pageID,
		State:      domain.Unlocked.String(),
		LastUnlock: string(status.LastUnlock),
		Overlay:    toOverlay(status.View),
	}
	if s := status.Session; s != nil {
		out.State = s.State.String()
		out.SessionID = s.ID
		out.RemainingSeconds = s.RemainingSeconds
		out.Attempts = s.Attempts
	}
	return out
}

func toOverlay(v domain.OverlayView) dto.OverlayOutput {
	return dto.OverlayOutput{
		Visible:       v.Visible,
		BlocksInput:   v.BlocksInput,
		Heading:       v.Heading,
		Countdown:     v.Countdown,
		TaskHeading:   v.TaskHeading,
		TaskPrompt:    v.TaskPrompt,
		Placeholder:   v.Placeholder,
		InputError:    v.InputError,
		SubmitLabel:   v.SubmitLabel,
		VideoHeading:  v.VideoHeading,
		VideoTitle:    v.VideoTitle,
		VideoEmbedURL: v.VideoEmbedURL,
		Footer:        v.Footer,
		Version:       v.Version,
	}
}

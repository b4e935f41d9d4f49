package out

import (
	"log/slog"
	"sync"

	"focuslock/internal/modules/lock/domain"
	"focuslock/internal/modules/lock/dto"
	lockout "focuslock/internal/modules/lock/port/out"
	"focuslock/internal/platform/logging"
)

// OverlaySink receives overlay updates for one page.
type OverlaySink func(dto.OverlayOutput)

// PresenterHub routes overlay updates to the sink attached to each page. Pages
// without a sink are only logged.
type PresenterHub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	sinks map[string]OverlaySink
}

var _ lockout.Presenter = (*PresenterHub)(nil)

func NewPresenterHub(logger *slog.Logger) *PresenterHub {
	return &PresenterHub{logger: logging.OrDiscard(logger), sinks: map[string]OverlaySink{}}
}

// Attach registers the sink for pageID and returns a func that detaches it.
func (h *PresenterHub) Attach(pageID string, sink OverlaySink) func() {
	h.mu.Lock()
	h.sinks[pageID] = sink
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.sinks, pageID)
		h.mu.Unlock()
	}
}

func (h *PresenterHub) Present(pageID string, view domain.OverlayView) {
	h.mu.RLock()
	sink := h.sinks[pageID]
	h.mu.RUnlock()
	if sink == nil {
		h.logger.Debug("overlay update", "page", pageID, "visible", view.Visible, "countdown", view.Countdown, "input_error", view.InputError)
		return
	}
	sink(dto.OverlayOutput{
		Visible:       view.Visible,
		BlocksInput:   view.BlocksInput,
		Heading:       view.Heading,
		Countdown:     view.Countdown,
		TaskHeading:   view.TaskHeading,
		TaskPrompt:    view.TaskPrompt,
		Placeholder:   view.Placeholder,
		InputError:    view.InputError,
		SubmitLabel:   view.SubmitLabel,
		VideoHeading:  view.VideoHeading,
		VideoTitle:    view.VideoTitle,
		VideoEmbedURL: view.VideoEmbedURL,
		Footer:        view.Footer,
		Version:       view.Version,
	})
}

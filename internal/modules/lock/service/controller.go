package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"focuslock/internal/modules/lock/domain"
	lockout "focuslock/internal/modules/lock/port/out"
	"focuslock/internal/platform/clock"
	apperrors "focuslock/internal/platform/errors"
	"focuslock/internal/platform/id"
	"focuslock/internal/platform/logging"
)

const (
	tickInterval    = time.Second
	inputErrorFlash = 2 * time.Second
)

// Deps are shared by every page controller.
type Deps struct {
	Settings   lockout.SettingsReader
	Classifier lockout.Classifier
	Presenter  lockout.Presenter
	Scheduler  clock.Scheduler
	Clock      clock.Clock
	IDs        id.Generator
	Chooser    domain.Chooser
	Logger     *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Scheduler == nil {
		d.Scheduler = clock.SystemScheduler{}
	}
	if d.Clock == nil {
		d.Clock = clock.SystemClock{}
	}
	if d.IDs == nil {
		d.IDs = id.UUID{}
	}
	if d.Chooser == nil {
		d.Chooser = domain.RandomChooser
	}
	d.Logger = logging.OrDiscard(d.Logger)
	return d
}

// Evaluation is the outcome of a page load.
type Evaluation struct {
	Enabled       bool
	StudyRelated  bool
	Matches       []string
	Started       bool
	// AlreadyLocked means a session was running and the page was not
	// classified again. StudyRelated and Matches are unset.
	AlreadyLocked bool
}

// Status is a point-in-time view of a page.
type Status struct {
	Session    *domain.Session
	LastUnlock domain.UnlockReason
	View       domain.OverlayView
}

// Controller owns the lock session of a single page. The countdown, the input
// error flash and user input all mutate state under mu.
type Controller struct {
	pageID string
	deps   Deps
	logger *slog.Logger

	mu         sync.Mutex
	session    *domain.Session
	lastUnlock domain.UnlockReason
	stopTick   clock.Cancel
	stopFlash  clock.Cancel
	tickGen    int
	flashGen   int
	version    uint64
}

func NewController(pageID string, deps Deps) *Controller {
	deps = deps.withDefaults()
	return &Controller{
		pageID: pageID,
		deps:   deps,
		logger: deps.Logger.With("page", pageID),
	}
}

func (c *Controller) PageID() string {
	return c.pageID
}

// Evaluate classifies a loaded page and starts a lock session when the page is
// not study related. It is a no-op while a session is running.
func (c *Controller) Evaluate(ctx context.Context, page domain.Page) (Evaluation, error) {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return Evaluation{Enabled: true, AlreadyLocked: true}, nil
	}
	c.mu.Unlock()

	cfg := c.configuration(ctx)
	if !cfg.Enabled {
		c.logger.Debug("focus lock disabled")
		return Evaluation{Enabled: false}, nil
	}
	if c.deps.Classifier == nil {
		return Evaluation{}, fmt.Errorf("lock classifier is not configured")
	}
	matches, err := c.deps.Classifier.Classify(ctx, page, cfg.Keywords)
	if err != nil {
		return Evaluation{}, fmt.Errorf("classify page: %w", err)
	}
	eval := Evaluation{Enabled: true, StudyRelated: len(matches) > 0, Matches: matches}
	if eval.StudyRelated {
		c.logger.Debug("page is study related", "matches", matches)
		return eval, nil
	}

	view, started := c.start(cfg.LockDurationMinutes)
	eval.Started = started
	if started {
		c.present(view)
	}
	return eval, nil
}

// configuration reads the settings store for a single evaluation. A failed read
// falls back to defaults for this evaluation only.
func (c *Controller) configuration(ctx context.Context) domain.Config {
	cfg := domain.DefaultConfig()
	if c.deps.Settings != nil {
		loaded, err := c.deps.Settings.Current(ctx)
		if err != nil {
			c.logger.Warn("settings unavailable, using defaults", "error", err)
		} else {
			cfg = loaded
		}
	}
	return cfg.Normalize()
}

func (c *Controller) start(minutes int) (domain.OverlayView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return domain.OverlayView{}, false
	}
	task, video := domain.Pick(c.deps.Chooser)
	c.session = domain.NewSession(c.deps.IDs.New(), task, video, minutes, c.deps.Clock.Now())
	c.lastUnlock = domain.UnlockNone
	c.tickGen++
	gen := c.tickGen
	c.stopTick = c.deps.Scheduler.Every(tickInterval, func() {
		c.tick(gen)
	})
	c.logger.Info("page locked", "session", c.session.ID, "seconds", c.session.RemainingSeconds)
	return c.stamp(domain.RenderOverlay(c.session)), true
}

func (c *Controller) tick(gen int) {
	c.mu.Lock()
	if c.session == nil || gen != c.tickGen {
		c.mu.Unlock()
		return
	}
	c.session.Tick()
	view := c.settle()
	c.mu.Unlock()
	c.present(view)
}

// Submit checks a task answer. A wrong answer keeps the page locked and flags
// the input for a short while.
func (c *Controller) Submit(text string) (bool, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return false, apperrors.ErrNoActiveSession
	}
	accepted := c.session.Submit(text)
	if !accepted {
		c.flashInputError()
		c.logger.Debug("task answer rejected", "attempts", c.session.Attempts)
	}
	view := c.settle()
	c.mu.Unlock()
	c.present(view)
	return accepted, nil
}

func (c *Controller) flashInputError() {
	if c.stopFlash != nil {
		c.stopFlash()
	}
	c.flashGen++
	gen := c.flashGen
	c.stopFlash = c.deps.Scheduler.After(inputErrorFlash, func() {
		c.clearInputError(gen)
	})
}

func (c *Controller) clearInputError(gen int) {
	c.mu.Lock()
	if c.session == nil || gen != c.flashGen {
		c.mu.Unlock()
		return
	}
	c.session.ClearInputError()
	view := c.stamp(domain.RenderOverlay(c.session))
	c.mu.Unlock()
	c.present(view)
}

// Close discards the page's session and stops its timers.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	c.session.Close()
	view := c.settle()
	c.mu.Unlock()
	c.present(view)
}

// SettingsChanged is called when settings are saved. Every evaluation reads
// the store anyway, so a running session simply keeps its countdown.
func (c *Controller) SettingsChanged() {
	c.mu.Lock()
	locked := c.session != nil
	c.mu.Unlock()
	c.logger.Debug("settings changed", "locked", locked)
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := domain.RenderOverlay(c.session)
	view.Version = c.version
	status := Status{LastUnlock: c.lastUnlock, View: view}
	if c.session != nil {
		copied := *c.session
		status.Session = &copied
	}
	return status
}

// settle releases the session once it has unlocked. Callers hold mu.
func (c *Controller) settle() domain.OverlayView {
	if c.session.State == domain.Locked {
		return c.stamp(domain.RenderOverlay(c.session))
	}
	if c.stopTick != nil {
		c.stopTick()
		c.stopTick = nil
	}
	if c.stopFlash != nil {
		c.stopFlash()
		c.stopFlash = nil
	}
	c.tickGen++
	c.flashGen++
	c.lastUnlock = c.session.Reason
	c.logger.Info("page unlocked", "session", c.session.ID, "reason", string(c.session.Reason), "attempts", c.session.Attempts)
	c.session = nil
	return c.stamp(domain.OverlayView{})
}

// stamp orders views so a presenter can drop one that was overtaken while it
// was delivered. Callers hold mu.
func (c *Controller) stamp(view domain.OverlayView) domain.OverlayView {
	c.version++
	view.Version = c.version
	return view
}

func (c *Controller) present(view domain.OverlayView) {
	if c.deps.Presenter != nil {
		c.deps.Presenter.Present(c.pageID, view)
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	classifierinadapter "focuslock/internal/modules/classifier/adapter/in"
	classifieroutadapter "focuslock/internal/modules/classifier/adapter/out"
	classifierservice "focuslock/internal/modules/classifier/service"
	classifierusecase "focuslock/internal/modules/classifier/usecase"
	lockinadapter "focuslock/internal/modules/lock/adapter/in"
	lockoutadapter "focuslock/internal/modules/lock/adapter/out"
	lockservice "focuslock/internal/modules/lock/service"
	lockusecase "focuslock/internal/modules/lock/usecase"
	settingsinadapter "focuslock/internal/modules/settings/adapter/in"
	settingsoutadapter "focuslock/internal/modules/settings/adapter/out"
	settingsdomain "focuslock/internal/modules/settings/domain"
	settingsout "focuslock/internal/modules/settings/port/out"
	settingsservice "focuslock/internal/modules/settings/service"
	settingsusecase "focuslock/internal/modules/settings/usecase"
	"focuslock/internal/platform/clock"
	"focuslock/internal/platform/config"
	"focuslock/internal/platform/id"
	"focuslock/internal/platform/logging"
)

type App struct {
	Config        config.Config
	Logger        *slog.Logger
	SettingsCLI   settingsinadapter.CLIHandler
	ClassifierCLI classifierinadapter.CLIHandler
	LockCLI       lockinadapter.CLIHandler
	Overlays      *lockoutadapter.PresenterHub

	settingsHTTP   settingsinadapter.HTTPHandler
	classifierHTTP classifierinadapter.HTTPHandler
	lockHTTP       lockinadapter.HTTPHandler
	closers        []func() error
}

// Deps overrides the collaborators New would otherwise build.
type Deps struct {
	HTTPClient *http.Client
	Scheduler  clock.Scheduler
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	return NewWithDeps(cfg, logger, Deps{})
}

func NewWithDeps(cfg config.Config, logger *slog.Logger, deps Deps) (*App, error) {
	logger = logging.OrDiscard(logger)
	clk := clock.SystemClock{}
	app := &App{Config: cfg, Logger: logger}

	store, err := app.settingsStore(cfg)
	if err != nil {
		return nil, err
	}
	broadcaster := settingsoutadapter.NewBroadcaster()
	settingsUC := settingsusecase.NewInteractor(
		settingsservice.NewSettingsService(clk, store, broadcaster, logger.With("module", "settings")),
	)

	classifierUC := classifierusecase.NewInteractor(classifierservice.NewClassifierService(
		classifieroutadapter.NewHTMLPageLoader(deps.HTTPClient),
		classifieroutadapter.NewSettingsKeywordAdapter(settingsUC),
		logger.With("module", "classifier"),
	))

	app.Overlays = lockoutadapter.NewPresenterHub(logger.With("module", "overlay"))
	lockUC := lockusecase.NewInteractor(lockservice.Deps{
		Settings:   lockoutadapter.NewSettingsReaderAdapter(settingsUC),
		Classifier: lockoutadapter.NewClassifierAdapter(classifierUC),
		Presenter:  app.Overlays,
		Scheduler:  deps.Scheduler,
		Clock:      clk,
		IDs:        id.UUID{},
		Logger:     logger.With("module", "lock"),
	})
	unsubscribe := broadcaster.Subscribe(func(ctx context.Context, _ settingsdomain.ChangeEvent) error {
		return lockUC.SettingsChanged(ctx)
	})
	app.closers = append(app.closers, func() error {
		unsubscribe()
		return nil
	})

	app.SettingsCLI = settingsinadapter.NewCLIHandler(settingsUC)
	app.ClassifierCLI = classifierinadapter.NewCLIHandler(classifierUC)
	app.LockCLI = lockinadapter.NewCLIHandler(lockUC)
	app.settingsHTTP = settingsinadapter.NewHTTPHandler(settingsUC)
	app.classifierHTTP = classifierinadapter.NewHTTPHandler(classifierUC)
	app.lockHTTP = lockinadapter.NewHTTPHandler(lockUC)
	return app, nil
}

func (a *App) settingsStore(cfg config.Config) (settingsout.SettingsStore, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := settingsoutadapter.NewSQLiteSettingsStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new sqlite settings store: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return settingsoutadapter.NewYAMLSettingsStore(cfg.SettingsPath), nil
	}
}

// Close releases the settings store and detaches listeners.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

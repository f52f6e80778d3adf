package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/workers"
)

// ErrNilUI is returned by [NewApp] without a UI.
var ErrNilUI = errors.New("client: ui is required")

// App runs the UI together with the background workers.
type App struct {
	ui      UI
	workers *workers.Workers
	closers []func() error
	logger  *logger.Logger
}

// NewApp builds the app. The session refresh job is enabled when
// cfg.RefreshInterval is positive. closers run in order when Run returns.
func NewApp(ui UI, cfg config.ClientWorkers, log *logger.Logger, closers ...func() error) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	refresh := workers.NewPeriodicJob("session-refresh", cfg.RefreshInterval, ui.Refresh, log)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(refresh),
		closers: closers,
		logger:  log,
	}, nil
}

// Run starts the workers, blocks in the UI and stops everything once the UI
// exits.
func (a *App) Run(ctx context.Context) (err error) {
	a.workers.Run(ctx)
	defer func() {
		a.workers.Stop()
		err = errors.Join(err, a.close())
	}()

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() error {
	var errs []error
	for _, closeFn := range a.closers {
		if closeFn == nil {
			continue
		}
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

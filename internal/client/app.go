package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/adapter"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
)

// startupProbeTimeout bounds the version request made before the UI opens.
const startupProbeTimeout = 5 * time.Second

// UI is the interactive part of the client.
type UI interface {
	MainLoop(ctx context.Context) error
}

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, errors.New("client app needs an adapter and a ui")
	}
	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

// Run probes the server once, then hands the terminal to the UI until the
// user quits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	info, err := a.adapter.GetServerBuildInfo(probeCtx)
	cancel()
	if err != nil {
		// the UI still opens and reports connection problems itself
		a.logger.Warn().Err(err).Str("func", "*App.run").Msg("registry server not reachable at startup")
	} else {
		a.logger.Info().Str("func", "*App.run").Str("server_version", info.Version).Msg("connected to registry server")
	}

	if err = a.ui.MainLoop(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	writer     config.Writer
	registry   *prometheus.Registry
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Configuration is loaded eagerly so that a broken
// seed file fails before anything runs.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "operations", len(model.Operations))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		writer:   writerFor(cfg.OutputFormat),
		registry: reg,
	}, nil
}

// Registry returns the application's metrics registry. This is primarily for testing.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// historyLimit resolves the effective limit: the CLI value when set, then
// the file setting, then unlimited.
func (a *App) historyLimit() int {
	if a.config.HistoryLimit != nil {
		return *a.config.HistoryLimit
	}
	if a.model.Settings.HistoryLimit != nil {
		return *a.model.Settings.HistoryLimit
	}
	return 0
}

package app

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/forgecfg/internal/ctxlog"
	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
// It resolves the build configuration at most once.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	modules []registry.Module

	once       sync.Once
	resolution *resolver.Resolution
	resolveErr error
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Passing modules replaces the compiled-in plugins.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		modules: modules,
	}
}

// Resolve performs the resolution on first use and returns the same outcome
// on every later call.
func (a *App) Resolve(ctx context.Context) (*resolver.Resolution, error) {
	a.once.Do(func() {
		ctx = ctxlog.WithLogger(ctx, a.logger)
		a.resolution, a.resolveErr = resolver.Resolve(ctx, resolver.Options{
			EnvFile:     a.config.EnvFile,
			ConfigPaths: a.config.ConfigPaths,
			Modules:     a.modules,
		})
	})
	return a.resolution, a.resolveErr
}

// Registry returns the plugin registry of the resolution, or nil before a
// successful Resolve. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	if a.resolution == nil {
		return nil
	}
	return a.resolution.Registry
}

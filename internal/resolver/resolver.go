package resolver

import (
	"context"
	"fmt"

	"github.com/specialistvlad/forgecfg/internal/config"
	"github.com/specialistvlad/forgecfg/internal/ctxlog"
	"github.com/specialistvlad/forgecfg/internal/envfile"
	"github.com/specialistvlad/forgecfg/internal/hcl"
	"github.com/specialistvlad/forgecfg/internal/registry"
)

// Options controls a single resolution.
type Options struct {
	// EnvFile is the environment file to load. Empty means envfile.DefaultPath.
	EnvFile string
	// ConfigPaths are override files or directories; missing ones are skipped.
	ConfigPaths []string
	// Modules replaces CoreModules when non-nil.
	Modules []registry.Module
	// Loader replaces the HCL loader when non-nil.
	Loader config.Loader
	// SkipExport keeps the loaded variables out of the process environment.
	SkipExport bool
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Record   config.Record
	Registry *registry.Registry
	Env      envfile.Env
}

// LoadEnvironment reads the environment file. A missing file yields an empty
// environment; a malformed one fails with envfile.ErrMalformed.
func LoadEnvironment(ctx context.Context, path string) (envfile.Env, error) {
	if path == "" {
		path = envfile.DefaultPath
	}
	return envfile.Load(ctx, path)
}

// RegisterPlugins registers each module into reg in the given order. The
// first failure, typically a duplicate name, aborts registration.
func RegisterPlugins(ctx context.Context, reg *registry.Registry, modules []registry.Module) error {
	logger := ctxlog.FromContext(ctx)
	for _, mod := range modules {
		before := reg.Len()
		if err := mod.Register(reg); err != nil {
			return fmt.Errorf("failed to register plugin module %T: %w", mod, err)
		}
		for _, p := range reg.Plugins()[before:] {
			logger.Debug("Plugin registered.", "name", p.Name, "capabilities", p.Capabilities, "requires", p.Requires)
		}
	}
	logger.Debug("All plugin modules registered.", "count", len(modules), "plugins", reg.Names())
	return nil
}

// ResolveConfig returns the literal configuration record. It cannot fail.
func ResolveConfig() config.Record {
	return config.Defaults()
}

// Resolve runs a complete resolution. Every call builds its own registry, so
// calling it twice neither re-registers into shared state nor changes the
// resulting record.
func Resolve(ctx context.Context, opts Options) (*Resolution, error) {
	logger := ctxlog.FromContext(ctx)

	env, err := LoadEnvironment(ctx, opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	logger.Debug("Environment loaded.", "source", env.Source(), "count", env.Len())

	modules := opts.Modules
	if modules == nil {
		modules = CoreModules()
	}
	reg := registry.New()
	if err := RegisterPlugins(ctx, reg, modules); err != nil {
		return nil, err
	}
	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}

	rec := ResolveConfig()
	if len(opts.ConfigPaths) > 0 {
		loader := opts.Loader
		if loader == nil {
			loader = hcl.NewLoader(env)
		}
		rec, err = loader.Load(ctx, rec, opts.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration overrides: %w", err)
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	// The process environment is only touched once the resolution succeeded.
	if !opts.SkipExport {
		exported, err := env.Export()
		if err != nil {
			return nil, fmt.Errorf("failed to export environment: %w", err)
		}
		logger.Debug("Environment exported to process.", "source", env.Source(), "keys", exported)
	}

	logger.Info("Configuration resolved.",
		"compiler", rec.Solidity.Version,
		"optimizer_runs", rec.Solidity.Settings.Optimizer.Runs,
		"networks", len(rec.Networks),
		"plugins", reg.Len(),
	)
	return &Resolution{Record: rec, Registry: reg, Env: env}, nil
}

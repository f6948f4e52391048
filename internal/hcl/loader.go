package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/forgecfg/internal/config"
	"github.com/specialistvlad/forgecfg/internal/ctxlog"
	"github.com/specialistvlad/forgecfg/internal/envfile"
	"github.com/specialistvlad/forgecfg/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env envfile.Env
}

// NewLoader creates a new HCL loader whose env() function reads from env.
func NewLoader(env envfile.Env) *Loader {
	return &Loader{env: env}
}

// Load layers every .hcl file found under paths over base. Later files
// override earlier ones attribute by attribute; a network name may only be
// defined once across all files.
func (l *Loader) Load(ctx context.Context, base config.Record, paths ...string) (config.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	rec := base.Clone()

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return config.Record{}, err
	}
	if len(files) == 0 {
		logger.Debug("No override files found, keeping base configuration.")
		return rec, nil
	}
	logger.Debug("Discovered HCL files.", "files", files)

	parser := hclparse.NewParser()
	evalCtx := evalContext(l.env)
	networkFiles := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return config.Record{}, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return config.Record{}, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		applySolidity(&rec, root.Solidity)
		applyPaths(&rec, root.Paths)
		for _, nb := range root.Networks {
			if prev, dup := networkFiles[nb.Name]; dup {
				return config.Record{}, fmt.Errorf("network '%s' in %s is already defined in %s", nb.Name, file, prev)
			}
			networkFiles[nb.Name] = file
			rec.Networks[nb.Name] = translateNetwork(nb)
		}
		logger.Debug("Applied override file.", "file", file, "networks", len(root.Networks))
	}

	logger.Debug("HCL loading complete.", "files", len(files), "networks", len(rec.Networks))
	return rec, nil
}

func applySolidity(rec *config.Record, b *solidityBlock) {
	if b == nil {
		return
	}
	if b.Version != nil {
		rec.Solidity.Version = *b.Version
	}
	if b.Optimizer == nil {
		return
	}
	if b.Optimizer.Enabled != nil {
		rec.Solidity.Settings.Optimizer.Enabled = *b.Optimizer.Enabled
	}
	if b.Optimizer.Runs != nil {
		rec.Solidity.Settings.Optimizer.Runs = *b.Optimizer.Runs
	}
}

func applyPaths(rec *config.Record, b *pathsBlock) {
	if b == nil {
		return
	}
	for _, p := range []struct {
		src *string
		dst *string
	}{
		{b.Sources, &rec.Paths.Sources},
		{b.Tests, &rec.Paths.Tests},
		{b.Cache, &rec.Paths.Cache},
		{b.Artifacts, &rec.Paths.Artifacts},
	} {
		if p.src != nil {
			*p.dst = *p.src
		}
	}
}

func translateNetwork(b *networkBlock) config.Network {
	n := config.Network{URL: b.URL}
	if b.ChainID != nil {
		n.ChainID = *b.ChainID
	}
	if b.GasPrice != nil {
		n.GasPrice = *b.GasPrice
	}
	if len(b.Accounts) > 0 {
		n.Accounts = append([]string(nil), b.Accounts...)
	}
	return n
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/specialistvlad/forgecfg/internal/config"
	"github.com/specialistvlad/forgecfg/internal/hcl"
	"github.com/specialistvlad/forgecfg/internal/solc"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Run resolves the configuration and writes it in the configured format.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "format", a.config.Format)

	res, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Plugins registered.", "plugins", res.Registry.Names())

	rec := res.Record
	if !a.config.ShowSecrets {
		rec = rec.Redacted()
	}

	if a.config.Get != "" {
		return a.writeField(rec, a.config.Get)
	}

	switch a.config.Format {
	case FormatHCL:
		_, err = a.outW.Write(hcl.Write(rec))
	case FormatSolcArgs:
		_, err = fmt.Fprintln(a.outW, solc.CompilerOptions(rec))
	case FormatSolcJSON:
		err = a.writeJSON(solc.StandardSettings(rec))
	default:
		err = a.writeJSON(rec)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeField prints one value. Strings are printed bare, everything else as
// JSON.
func (a *App) writeField(rec config.Record, key string) error {
	val, err := rec.Get(key)
	if err != nil {
		return fmt.Errorf("%w; known keys: %s", err, strings.Join(rec.Keys(), ", "))
	}

	if val.Type().Equals(cty.String) && !val.IsNull() {
		_, err = fmt.Fprintln(a.outW, val.AsString())
		return err
	}
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = fmt.Fprintln(a.outW, string(raw))
	return err
}

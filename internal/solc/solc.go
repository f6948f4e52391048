// Package solc derives solc compiler options from a resolved configuration
// record: command-line flags for the legacy combined-json mode and the
// settings object of the standard-json input.
package solc

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/forgecfg/internal/config"
)

// Args returns the optimizer flags for a solc command line. It returns nil
// when the optimizer is disabled.
func Args(rec config.Record) []string {
	opt := rec.Solidity.Settings.Optimizer
	if !opt.Enabled {
		return nil
	}
	return []string{"--optimize", "--optimize-runs", strconv.Itoa(opt.Runs)}
}

// CompilerOptions is the flag string recorded alongside compiled contracts.
func CompilerOptions(rec config.Record) string {
	return strings.Join(Args(rec), " ")
}

// Optimizer is the optimizer section of the standard-json settings.
type Optimizer struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

// Settings is the "settings" object of a standard-json compiler input.
type Settings struct {
	Optimizer       Optimizer                      `json:"optimizer"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// defaultOutputs are the artifacts the build driver writes for every contract.
var defaultOutputs = []string{
	"abi",
	"evm.bytecode",
	"evm.deployedBytecode",
	"metadata",
}

// StandardSettings builds the standard-json settings for the record. Runs
// are passed through even when the optimizer is disabled; solc ignores them.
func StandardSettings(rec config.Record) Settings {
	opt := rec.Solidity.Settings.Optimizer
	return Settings{
		Optimizer: Optimizer{Enabled: opt.Enabled, Runs: opt.Runs},
		OutputSelection: map[string]map[string][]string{
			"*": {
				"*": append([]string(nil), defaultOutputs...),
			},
		},
	}
}

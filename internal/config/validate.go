package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrInvalid classifies records that fail validation.
	ErrInvalid = errors.New("invalid configuration")

	// ErrUnknownField is returned by Get for keys the driver does not read.
	ErrUnknownField = errors.New("unknown configuration field")
)

// Validate checks the record against the rules the build driver relies on.
// All violations are reported together.
func (r Record) Validate() error {
	var errs []string

	if err := checkPinnedVersion(r.Solidity.Version); err != nil {
		errs = append(errs, err.Error())
	}
	if r.Solidity.Settings.Optimizer.Runs < 0 {
		errs = append(errs, fmt.Sprintf("optimizer runs must be a non-negative integer, got %d", r.Solidity.Settings.Optimizer.Runs))
	}

	for _, p := range []struct{ role, path string }{
		{"sources", r.Paths.Sources},
		{"tests", r.Paths.Tests},
		{"cache", r.Paths.Cache},
		{"artifacts", r.Paths.Artifacts},
	} {
		if strings.TrimSpace(p.path) == "" {
			errs = append(errs, fmt.Sprintf("path for '%s' must not be empty", p.role))
		}
	}

	for _, name := range r.NetworkNames() {
		n := r.Networks[name]
		if strings.TrimSpace(n.URL) == "" {
			errs = append(errs, fmt.Sprintf("network '%s': url must not be empty", name))
		}
		if n.ChainID < 0 {
			errs = append(errs, fmt.Sprintf("network '%s': chain id must not be negative", name))
		}
		if n.GasPrice < 0 {
			errs = append(errs, fmt.Sprintf("network '%s': gas price must not be negative", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalid, strings.Join(errs, "\n- "))
	}
	return nil
}

// checkPinnedVersion accepts only an exact release such as "0.6.12".
// Constraints like "^0.6.0" parse as ranges and are rejected with a hint.
func checkPinnedVersion(v string) error {
	if v == "" {
		return errors.New("compiler version must not be empty")
	}
	if _, err := semver.StrictNewVersion(v); err == nil {
		return nil
	}
	if _, err := semver.NewConstraint(v); err == nil {
		return fmt.Errorf("compiler version %q is a range; pin an exact release", v)
	}
	return fmt.Errorf("compiler version %q is not a valid semantic version", v)
}

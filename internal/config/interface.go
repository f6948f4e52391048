package config

import "context"

// Loader is the interface for a format-specific source of configuration
// overrides.
type Loader interface {
	// Load reads every configuration file found under the given paths and
	// layers it over base, returning the combined record. Paths that do not
	// exist are skipped.
	Load(ctx context.Context, base Record, paths ...string) (Record, error)
}

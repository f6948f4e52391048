// Package envfile loads KEY=VALUE secrets from a .env style file into an
// explicit Env value. Nothing is written to the process environment unless
// Export is called.
package envfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/forgecfg/internal/ctxlog"
)

// DefaultPath is the conventional location of the environment file.
const DefaultPath = ".env"

// ErrMalformed is returned when the environment file exists but cannot be
// parsed.
var ErrMalformed = errors.New("malformed environment file")

// keyPattern is the set of names a process environment can hold portably.
var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Env is an immutable set of variables read from an environment source.
type Env struct {
	source string
	vars   map[string]string
}

// Load reads the file at path. A missing file is not an error: it yields an
// empty Env, since the hosting process may already supply the variables.
func Load(ctx context.Context, path string) (Env, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("Environment file not found, continuing without it.", "path", path)
			return Env{source: path, vars: map[string]string{}}, nil
		}
		return Env{}, fmt.Errorf("failed to open environment file %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return Env{}, fmt.Errorf("%w %s: not valid UTF-8", ErrMalformed, path)
	}
	if line := emptyKeyLine(data); line > 0 {
		return Env{}, fmt.Errorf("%w %s: line %d has no variable name", ErrMalformed, path, line)
	}
	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return Env{}, fmt.Errorf("%w %s: %v", ErrMalformed, path, err)
	}
	// godotenv accepts some names no environment can hold, e.g. "A B".
	for _, key := range sortedKeys(vars) {
		if !keyPattern.MatchString(key) {
			return Env{}, fmt.Errorf("%w %s: invalid variable name %q", ErrMalformed, path, key)
		}
	}

	env := Env{source: path, vars: vars}
	// Values are secrets; only the key names are logged.
	logger.Debug("Environment file loaded.", "path", path, "keys", env.Keys())
	return env, nil
}

// FromMap builds an Env from an in-memory map. The map is copied.
func FromMap(vars map[string]string) Env {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Env{source: "memory", vars: cp}
}

// Source describes where the variables came from.
func (e Env) Source() string {
	return e.source
}

// Len returns the number of variables.
func (e Env) Len() int {
	return len(e.vars)
}

// Lookup returns the value of key and whether it was present.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Keys returns the variable names in sorted order.
func (e Env) Keys() []string {
	return sortedKeys(e.vars)
}

func sortedKeys(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// emptyKeyLine returns the 1-based number of the first assignment line with
// no name before "=", which godotenv silently drops, or 0.
func emptyKeyLine(data []byte) int {
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		line = bytes.TrimSpace(bytes.TrimPrefix(line, []byte("export ")))
		if bytes.HasPrefix(line, []byte("=")) {
			return i + 1
		}
	}
	return 0
}

// Export copies the variables into the process environment. Variables the
// hosting process already defines win and are left untouched. It returns
// the keys that were actually set.
func (e Env) Export() ([]string, error) {
	var exported []string
	for _, key := range e.Keys() {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, e.vars[key]); err != nil {
			return exported, fmt.Errorf("failed to export %s: %w", key, err)
		}
		exported = append(exported, key)
	}
	return exported, nil
}

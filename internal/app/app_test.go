package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/forgecfg/internal/config"
	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/internal/testutil"
	"github.com/specialistvlad/forgecfg/modules/ethers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, mutate func(c *Config)) *Config {
	t.Helper()
	c := Config{EnvFile: filepath.Join(t.TempDir(), ".env")}
	if mutate != nil {
		mutate(&c)
	}
	cfg, err := NewConfig(c)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)

	_, err = NewConfig(Config{Format: "yaml"})
	require.Error(t, err)

	_, err = NewConfig(Config{Format: FormatHCL, Get: "paths.cache"})
	require.Error(t, err)
}

func TestRun_JSONMatchesDriverShape(t *testing.T) {
	a, out, logs := SetupAppTest(t, newTestConfig(t, nil))

	require.NoError(t, a.Run(context.Background()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	solidity := got["solidity"].(map[string]any)
	assert.Equal(t, "0.6.12", solidity["version"])
	optimizer := solidity["settings"].(map[string]any)["optimizer"].(map[string]any)
	assert.Equal(t, true, optimizer["enabled"])
	assert.Equal(t, float64(200), optimizer["runs"])
	assert.Equal(t, map[string]any{
		"sources":   "./contracts",
		"tests":     "./test",
		"cache":     "./cache",
		"artifacts": "./artifacts",
	}, got["paths"])
	assert.Equal(t, map[string]any{}, got["networks"])

	assert.Contains(t, logs.String(), "Configuration resolved.")
}

func TestRun_GetField(t *testing.T) {
	testCases := []struct {
		key  string
		want string
	}{
		{"solidity.version", "0.6.12"},
		{"solidity.settings.optimizer.runs", "200"},
		{"solidity.settings.optimizer.enabled", "true"},
		{"paths.artifacts", "./artifacts"},
		{"networks", "{}"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			a, out, _ := SetupAppTest(t, newTestConfig(t, func(c *Config) { c.Get = tc.key }))

			require.NoError(t, a.Run(context.Background()))
			assert.Equal(t, tc.want, strings.TrimSpace(out.String()))
		})
	}
}

func TestRun_GetUnknownField(t *testing.T) {
	a, _, _ := SetupAppTest(t, newTestConfig(t, func(c *Config) { c.Get = "paths.deploy" }))

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownField))
	assert.Contains(t, err.Error(), "paths.artifacts")
}

func TestRun_Formats(t *testing.T) {
	testCases := []struct {
		format string
		want   string
	}{
		{FormatHCL, `version = "0.6.12"`},
		{FormatSolcArgs, "--optimize --optimize-runs 200"},
		{FormatSolcJSON, `"outputSelection"`},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			a, out, _ := SetupAppTest(t, newTestConfig(t, func(c *Config) { c.Format = tc.format }))

			require.NoError(t, a.Run(context.Background()))
			assert.Contains(t, out.String(), tc.want)
		})
	}
}

func TestRun_RedactsAccountsUnlessAsked(t *testing.T) {
	t.Setenv("FORGECFG_APP_KEY", "")
	require.NoError(t, os.Unsetenv("FORGECFG_APP_KEY"))
	dir := testutil.WriteFiles(t, map[string]string{
		".env": "FORGECFG_APP_KEY=0xsecret\n",
		"forge.hcl": `
network "dev" {
  url      = "http://127.0.0.1:8545"
  accounts = [env("FORGECFG_APP_KEY")]
}
`,
	})
	base := func(c *Config) {
		c.EnvFile = filepath.Join(dir, ".env")
		c.ConfigPaths = []string{filepath.Join(dir, "forge.hcl")}
	}

	a, out, _ := SetupAppTest(t, newTestConfig(t, base))
	require.NoError(t, a.Run(context.Background()))
	assert.NotContains(t, out.String(), "0xsecret")
	assert.Contains(t, out.String(), "***")

	a, out, _ = SetupAppTest(t, newTestConfig(t, func(c *Config) {
		base(c)
		c.ShowSecrets = true
	}))
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "0xsecret")
}

func TestResolve_OnlyOnce(t *testing.T) {
	a, _, _ := SetupAppTest(t, newTestConfig(t, nil))

	first, err := a.Resolve(context.Background())
	require.NoError(t, err)
	second, err := a.Resolve(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Registry, a.Registry())
}

func TestResolve_FailureIsSticky(t *testing.T) {
	cfg := newTestConfig(t, nil)
	a, _, _ := SetupAppTest(t, cfg, &ethers.Module{}, &ethers.Module{})

	_, err := a.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrDuplicatePlugin))

	_, again := a.Resolve(context.Background())
	assert.Equal(t, err, again)
	assert.Nil(t, a.Registry())
}

package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDefaults_LiteralValues(t *testing.T) {
	r := Defaults()

	assert.Equal(t, "0.6.12", r.Solidity.Version)
	assert.True(t, r.Solidity.Settings.Optimizer.Enabled)
	assert.Equal(t, 200, r.Solidity.Settings.Optimizer.Runs)
	assert.Equal(t, Paths{
		Sources:   "./contracts",
		Tests:     "./test",
		Cache:     "./cache",
		Artifacts: "./artifacts",
	}, r.Paths)
	require.NotNil(t, r.Networks, "an empty network table is a map, not nil")
	assert.Empty(t, r.Networks)
	require.NoError(t, r.Validate())
}

func TestDefaults_StructurallyEqualAcrossCalls(t *testing.T) {
	if diff := cmp.Diff(Defaults(), Defaults()); diff != "" {
		t.Fatalf("Defaults() differs between calls (-first +second):\n%s", diff)
	}
}

func TestClone_IsDeep(t *testing.T) {
	r := Defaults()
	r.Networks["rinkeby"] = Network{URL: "https://rinkeby.example", Accounts: []string{"0xabc"}}

	c := r.Clone()
	c.Solidity.Version = "0.8.0"
	c.Networks["rinkeby"].Accounts[0] = "0xdef"
	c.Networks["mainnet"] = Network{URL: "https://mainnet.example"}

	assert.Equal(t, "0.6.12", r.Solidity.Version)
	assert.Equal(t, "0xabc", r.Networks["rinkeby"].Accounts[0])
	assert.NotContains(t, r.Networks, "mainnet")
}

func TestRedacted_MasksAccounts(t *testing.T) {
	r := Defaults()
	r.Networks["rinkeby"] = Network{URL: "https://rinkeby.example", Accounts: []string{"0xsecret", "0xother"}}

	red := r.Redacted()

	assert.Equal(t, []string{"***", "***"}, red.Networks["rinkeby"].Accounts)
	assert.Equal(t, "0xsecret", r.Networks["rinkeby"].Accounts[0], "original record must be untouched")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(r *Record)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(r *Record) {}},
		{
			name:    "caret range is rejected",
			mutate:  func(r *Record) { r.Solidity.Version = "^0.6.0" },
			wantErr: `compiler version "^0.6.0" is a range`,
		},
		{
			name:    "comparison range is rejected",
			mutate:  func(r *Record) { r.Solidity.Version = ">=0.6.0 <0.7.0" },
			wantErr: "is a range",
		},
		{
			name:    "garbage version",
			mutate:  func(r *Record) { r.Solidity.Version = "latest!" },
			wantErr: "not a valid semantic version",
		},
		{
			name:    "empty version",
			mutate:  func(r *Record) { r.Solidity.Version = "" },
			wantErr: "compiler version must not be empty",
		},
		{
			name:    "negative runs",
			mutate:  func(r *Record) { r.Solidity.Settings.Optimizer.Runs = -1 },
			wantErr: "optimizer runs must be a non-negative integer, got -1",
		},
		{
			name:   "zero runs is allowed",
			mutate: func(r *Record) { r.Solidity.Settings.Optimizer.Runs = 0 },
		},
		{
			name:    "empty path",
			mutate:  func(r *Record) { r.Paths.Cache = " " },
			wantErr: "path for 'cache' must not be empty",
		},
		{
			name:    "network without url",
			mutate:  func(r *Record) { r.Networks["local"] = Network{ChainID: 31337} },
			wantErr: "network 'local': url must not be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Defaults()
			tc.mutate(&r)

			err := r.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	r := Defaults()
	r.Solidity.Version = "~0.6"
	r.Solidity.Settings.Optimizer.Runs = -5
	r.Paths.Sources = ""

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a range")
	assert.Contains(t, err.Error(), "got -5")
	assert.Contains(t, err.Error(), "'sources'")
}

func TestGet_DriverKeys(t *testing.T) {
	r := Defaults()

	testCases := []struct {
		key  string
		want cty.Value
	}{
		{"solidity.version", cty.StringVal("0.6.12")},
		{"solidity.settings.optimizer.enabled", cty.True},
		{"solidity.settings.optimizer.runs", cty.NumberIntVal(200)},
		{"paths.sources", cty.StringVal("./contracts")},
		{"paths.tests", cty.StringVal("./test")},
		{"paths.cache", cty.StringVal("./cache")},
		{"paths.artifacts", cty.StringVal("./artifacts")},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got, err := r.Get(tc.key)
			require.NoError(t, err)
			assert.True(t, got.RawEquals(tc.want), "got %#v, want %#v", got, tc.want)
		})
	}
}

func TestGet_EmptyNetworks(t *testing.T) {
	got, err := Defaults().Get("networks")
	require.NoError(t, err)

	require.True(t, got.Type().IsMapType())
	assert.True(t, got.IsKnown())
	assert.False(t, got.IsNull())
	assert.Equal(t, 0, got.LengthInt())
}

func TestGet_NetworkFields(t *testing.T) {
	r := Defaults()
	r.Networks["mainnet"] = Network{URL: "https://eth.example", ChainID: 1, Accounts: []string{"0x01"}}

	url, err := r.Get("networks.mainnet.url")
	require.NoError(t, err)
	assert.Equal(t, "https://eth.example", url.AsString())

	chainID, err := r.Get("networks.mainnet.chainId")
	require.NoError(t, err)
	assert.True(t, chainID.RawEquals(cty.NumberIntVal(1)))

	assert.Contains(t, r.Keys(), "networks.mainnet")
}

func TestGet_DottedNetworkNames(t *testing.T) {
	r := Defaults()
	r.Networks["bsc"] = Network{URL: "https://bsc.example"}
	r.Networks["bsc.testnet"] = Network{URL: "https://testnet.bsc.example", ChainID: 97}

	for _, key := range r.Keys() {
		_, err := r.Get(key)
		require.NoError(t, err, "listed key %q must resolve", key)
	}

	url, err := r.Get("networks.bsc.testnet.url")
	require.NoError(t, err)
	assert.Equal(t, "https://testnet.bsc.example", url.AsString())

	url, err = r.Get("networks.bsc.url")
	require.NoError(t, err)
	assert.Equal(t, "https://bsc.example", url.AsString())

	net, err := r.Get("networks.bsc.testnet")
	require.NoError(t, err)
	assert.True(t, net.Type().IsObjectType())

	_, err = r.Get("networks.bsc.testnet.rpc")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestGet_UnknownKey(t *testing.T) {
	for _, key := range []string{"", "solidity.compiler", "paths.deploy", "networks.missing", "paths.sources.extra"} {
		_, err := Defaults().Get(key)
		require.Error(t, err, "key %q", key)
		assert.True(t, errors.Is(err, ErrUnknownField), "key %q", key)
	}
}

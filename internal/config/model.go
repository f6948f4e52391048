package config

import "sort"

// Record is the resolved build configuration. It mirrors the shape the build
// driver reads: solidity compiler settings, directory layout and the network
// table.
type Record struct {
	Solidity Solidity           `json:"solidity" cty:"solidity"`
	Paths    Paths              `json:"paths" cty:"paths"`
	Networks map[string]Network `json:"networks" cty:"networks"`
}

// Solidity pins the compiler release and its settings.
type Solidity struct {
	Version  string   `json:"version" cty:"version"`
	Settings Settings `json:"settings" cty:"settings"`
}

// Settings holds the compiler settings passed through to solc.
type Settings struct {
	Optimizer Optimizer `json:"optimizer" cty:"optimizer"`
}

// Optimizer controls the solc optimizer. Runs estimates how often the
// deployed code will execute and must not be negative.
type Optimizer struct {
	Enabled bool `json:"enabled" cty:"enabled"`
	Runs    int  `json:"runs" cty:"runs"`
}

// Paths maps the four fixed directory roles to filesystem paths. The paths
// are not checked for existence.
type Paths struct {
	Sources   string `json:"sources" cty:"sources"`
	Tests     string `json:"tests" cty:"tests"`
	Cache     string `json:"cache" cty:"cache"`
	Artifacts string `json:"artifacts" cty:"artifacts"`
}

// Network describes a remote execution environment the driver may deploy to.
type Network struct {
	URL      string   `json:"url" cty:"url"`
	ChainID  int64    `json:"chainId,omitempty" cty:"chainId"`
	Accounts []string `json:"accounts,omitempty" cty:"accounts"`
	GasPrice int64    `json:"gasPrice,omitempty" cty:"gasPrice"`
}

// Clone returns a deep copy of the record. Records handed to consumers are
// always clones so the resolved values cannot be changed behind the
// resolver's back.
func (r Record) Clone() Record {
	out := r
	out.Networks = make(map[string]Network, len(r.Networks))
	for name, n := range r.Networks {
		if n.Accounts != nil {
			n.Accounts = append([]string(nil), n.Accounts...)
		}
		out.Networks[name] = n
	}
	return out
}

// NetworkNames returns the configured network names in sorted order.
func (r Record) NetworkNames() []string {
	names := make([]string, 0, len(r.Networks))
	for name := range r.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Redacted returns a clone with every network account replaced by a fixed
// mask, suitable for printing or logging.
func (r Record) Redacted() Record {
	out := r.Clone()
	for name, n := range out.Networks {
		for i := range n.Accounts {
			n.Accounts[i] = redactedMask
		}
		out.Networks[name] = n
	}
	return out
}

const redactedMask = "***"

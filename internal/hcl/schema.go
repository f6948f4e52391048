package hcl

// fileRoot is the top-level structure of an override file. It has no remain
// body, so unknown blocks and attributes are rejected by the decoder.
type fileRoot struct {
	Solidity *solidityBlock  `hcl:"solidity,block"`
	Paths    *pathsBlock     `hcl:"paths,block"`
	Networks []*networkBlock `hcl:"network,block"`
}

// solidityBlock overrides compiler settings. Nil fields keep the base value.
type solidityBlock struct {
	Version   *string         `hcl:"version,optional"`
	Optimizer *optimizerBlock `hcl:"optimizer,block"`
}

type optimizerBlock struct {
	Enabled *bool `hcl:"enabled,optional"`
	Runs    *int  `hcl:"runs,optional"`
}

// pathsBlock accepts exactly the four directory roles.
type pathsBlock struct {
	Sources   *string `hcl:"sources,optional"`
	Tests     *string `hcl:"tests,optional"`
	Cache     *string `hcl:"cache,optional"`
	Artifacts *string `hcl:"artifacts,optional"`
}

// networkBlock defines one entry of the network table.
type networkBlock struct {
	Name     string   `hcl:"name,label"`
	URL      string   `hcl:"url"`
	ChainID  *int64   `hcl:"chain_id,optional"`
	Accounts []string `hcl:"accounts,optional"`
	GasPrice *int64   `hcl:"gas_price,optional"`
}

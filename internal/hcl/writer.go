package hcl

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/forgecfg/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Write renders the record as an override file. Loading the output over any
// base record reproduces rec, except that zero-valued optional network
// fields are omitted.
func Write(rec config.Record) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	sol := root.AppendNewBlock("solidity", nil).Body()
	sol.SetAttributeValue("version", cty.StringVal(rec.Solidity.Version))
	opt := sol.AppendNewBlock("optimizer", nil).Body()
	opt.SetAttributeValue("enabled", cty.BoolVal(rec.Solidity.Settings.Optimizer.Enabled))
	opt.SetAttributeValue("runs", cty.NumberIntVal(int64(rec.Solidity.Settings.Optimizer.Runs)))

	root.AppendNewline()
	paths := root.AppendNewBlock("paths", nil).Body()
	paths.SetAttributeValue("sources", cty.StringVal(rec.Paths.Sources))
	paths.SetAttributeValue("tests", cty.StringVal(rec.Paths.Tests))
	paths.SetAttributeValue("cache", cty.StringVal(rec.Paths.Cache))
	paths.SetAttributeValue("artifacts", cty.StringVal(rec.Paths.Artifacts))

	for _, name := range rec.NetworkNames() {
		n := rec.Networks[name]

		root.AppendNewline()
		nb := root.AppendNewBlock("network", []string{name}).Body()
		nb.SetAttributeValue("url", cty.StringVal(n.URL))
		if n.ChainID != 0 {
			nb.SetAttributeValue("chain_id", cty.NumberIntVal(n.ChainID))
		}
		if len(n.Accounts) > 0 {
			accounts := make([]cty.Value, len(n.Accounts))
			for i, a := range n.Accounts {
				accounts[i] = cty.StringVal(a)
			}
			nb.SetAttributeValue("accounts", cty.ListVal(accounts))
		}
		if n.GasPrice != 0 {
			nb.SetAttributeValue("gas_price", cty.NumberIntVal(n.GasPrice))
		}
	}

	return hclwrite.Format(f.Bytes())
}

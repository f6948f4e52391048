package config

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fieldKeys are the dotted names the build driver queries.
var fieldKeys = []string{
	"solidity.version",
	"solidity.settings.optimizer.enabled",
	"solidity.settings.optimizer.runs",
	"paths.sources",
	"paths.tests",
	"paths.cache",
	"paths.artifacts",
	"networks",
}

// Keys lists every key accepted by Get, including one "networks.<name>"
// entry per configured network.
func (r Record) Keys() []string {
	keys := append([]string(nil), fieldKeys...)
	for _, name := range r.NetworkNames() {
		keys = append(keys, "networks."+name)
	}
	return keys
}

// Value converts the record into a cty object using the driver's field
// names as attribute names.
func (r Record) Value() (cty.Value, error) {
	if r.Networks == nil {
		r.Networks = map[string]Network{}
	}
	ty, err := gocty.ImpliedType(r)
	if err != nil {
		return cty.NilVal, fmt.Errorf("could not imply cty type for record: %w", err)
	}
	val, err := gocty.ToCtyValue(r, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("could not convert record: %w", err)
	}
	return val, nil
}

// Get returns the value stored under a dotted driver key such as
// "paths.artifacts" or "networks.mainnet.url". Network names may themselves
// contain dots; the longest configured name that fits the key wins.
func (r Record) Get(key string) (cty.Value, error) {
	val, err := r.Value()
	if err != nil {
		return cty.NilVal, err
	}
	if key == "" {
		return cty.NilVal, fmt.Errorf("%w: empty key", ErrUnknownField)
	}

	parts := strings.Split(key, ".")
	if rest, ok := strings.CutPrefix(key, "networks."); ok {
		name := r.matchNetwork(rest)
		if name == "" {
			return cty.NilVal, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		val = val.GetAttr("networks").Index(cty.StringVal(name))
		parts = nil
		if fields := strings.TrimPrefix(rest, name); fields != "" {
			parts = strings.Split(strings.TrimPrefix(fields, "."), ".")
		}
	}

	for _, part := range parts {
		ty := val.Type()
		switch {
		case ty.IsObjectType() && ty.HasAttribute(part):
			val = val.GetAttr(part)
		case ty.IsMapType() && !val.IsNull() && val.HasIndex(cty.StringVal(part)).True():
			val = val.Index(cty.StringVal(part))
		default:
			return cty.NilVal, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}
	return val, nil
}

// matchNetwork returns the longest network name that equals rest or is
// followed by "." in it.
func (r Record) matchNetwork(rest string) string {
	var best string
	for name := range r.Networks {
		if len(name) <= len(best) {
			continue
		}
		if rest == name || strings.HasPrefix(rest, name+".") {
			best = name
		}
	}
	return best
}

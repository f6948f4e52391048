package waffle

import (
	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/modules/ethers"
)

// Name is the identifier the build driver knows this plugin by.
const Name = "@nomiclabs/hardhat-waffle"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register announces the local test network and waffle-style assertions.
// Waffle drives contracts through the ethers bindings.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(registry.Plugin{
		Name: Name,
		Capabilities: []registry.Capability{
			registry.CapTestNetwork,
			registry.CapAssertions,
		},
		Requires: []string{ethers.Name},
	})
}

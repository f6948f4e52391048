package ethers

import "github.com/specialistvlad/forgecfg/internal/registry"

// Name is the identifier the build driver knows this plugin by.
const Name = "@nomiclabs/hardhat-ethers"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register announces ethers-compatible contract binding generation.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(registry.Plugin{
		Name:         Name,
		Capabilities: []registry.Capability{registry.CapContractBindings},
	})
}

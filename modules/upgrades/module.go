package upgrades

import (
	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/modules/ethers"
)

// Name is the identifier the build driver knows this plugin by.
const Name = "@openzeppelin/hardhat-upgrades"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register announces upgradeable-proxy deployment helpers.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(registry.Plugin{
		Name:         Name,
		Capabilities: []registry.Capability{registry.CapUpgradeableProxy},
		Requires:     []string{ethers.Name},
	})
}

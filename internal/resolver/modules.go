package resolver

import (
	"github.com/specialistvlad/forgecfg/internal/registry"
	"github.com/specialistvlad/forgecfg/modules/ethers"
	"github.com/specialistvlad/forgecfg/modules/upgrades"
	"github.com/specialistvlad/forgecfg/modules/waffle"
)

// CoreModules returns the plugin modules compiled into the binary, in the
// order they are registered: contract bindings, then the test network, then
// upgradeable-proxy deployment.
func CoreModules() []registry.Module {
	return []registry.Module{
		&ethers.Module{},
		&waffle.Module{},
		&upgrades.Module{},
	}
}

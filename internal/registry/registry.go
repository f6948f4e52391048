package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePlugin is returned when a plugin name is registered twice.
	ErrDuplicatePlugin = errors.New("plugin already registered")

	// ErrMissingDependency is returned by Validate when a plugin requires
	// another plugin that was not registered before it.
	ErrMissingDependency = errors.New("plugin dependency not registered")
)

// Module is the interface that all plugin modules must implement to be registered.
type Module interface {
	Register(r *Registry) error
}

// Capability names a feature a plugin makes available to the build driver.
type Capability string

const (
	CapContractBindings Capability = "contract-bindings"
	CapTestNetwork      Capability = "test-network"
	CapAssertions       Capability = "assertions"
	CapUpgradeableProxy Capability = "upgradeable-proxy"
)

// Plugin describes one registered toolchain extension.
type Plugin struct {
	Name         string
	Capabilities []Capability
	// Requires lists plugin names that must be registered earlier.
	Requires []string
}

func (p Plugin) clone() Plugin {
	p.Capabilities = append([]Capability(nil), p.Capabilities...)
	p.Requires = append([]string(nil), p.Requires...)
	return p
}

// Registry holds the plugins registered for a single resolution, in
// registration order.
type Registry struct {
	plugins []Plugin
	index   map[string]int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a plugin. Registering a name that is already present
// fails with ErrDuplicatePlugin and leaves the registry unchanged.
func (r *Registry) Register(p Plugin) error {
	if p.Name == "" {
		return errors.New("plugin name must not be empty")
	}
	if _, exists := r.index[p.Name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicatePlugin, p.Name)
	}
	r.index[p.Name] = len(r.plugins)
	r.plugins = append(r.plugins, p.clone())
	return nil
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.plugins)
}

// Plugins returns a copy of the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	out := make([]Plugin, len(r.plugins))
	for i, p := range r.plugins {
		out[i] = p.clone()
	}
	return out
}

// Names returns the registered plugin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.plugins))
	for i, p := range r.plugins {
		names[i] = p.Name
	}
	return names
}

// Has reports whether a plugin with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Providers returns, in registration order, the names of the plugins that
// offer the capability.
func (r *Registry) Providers(c Capability) []string {
	var names []string
	for _, p := range r.plugins {
		for _, pc := range p.Capabilities {
			if pc == c {
				names = append(names, p.Name)
				break
			}
		}
	}
	return names
}

package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/forgecfg/internal/ctxlog"
)

// Validate checks that every plugin's prerequisites were registered before
// it. A prerequisite registered later counts as missing: the driver applies
// plugins in registration order.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for pos, p := range r.plugins {
		if len(p.Capabilities) == 0 {
			logger.Warn("Plugin registered without capabilities.", "plugin", p.Name)
		}
		for _, dep := range p.Requires {
			switch {
			case !r.Has(dep):
				errs = append(errs, fmt.Sprintf("plugin '%s' requires '%s', which is not registered", p.Name, dep))
			case r.index[dep] > pos:
				errs = append(errs, fmt.Sprintf("plugin '%s' requires '%s', which is registered after it", p.Name, dep))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrMissingDependency, strings.Join(errs, "\n- "))
	}
	return nil
}

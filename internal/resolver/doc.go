// Package resolver produces the build configuration record for a single
// build or test run.
//
// Resolution loads the environment file, registers the plugin modules into a
// fresh registry in their fixed order, validates the registry, starts from
// the literal defaults, layers any override files on top, and validates the
// result. Nothing here is process-global: the registry and the environment
// are returned to the caller as part of the Resolution.
package resolver

// Package registry records which toolchain plugins are enabled for a build.
//
// Each compiled-in plugin module announces itself by calling Register on a
// Registry that the caller owns and passes in explicitly. The registry keeps
// registration order, since the build driver may use it for precedence, and
// rejects duplicate names. After all modules have registered, Validate checks
// that every plugin's prerequisites were registered before it.
package registry

// Package hcl provides the HCL implementation of config.Loader. Override
// files are layered over a base record in the order they are found, and
// Write renders a record back into the same schema.
//
// Expressions may call env("NAME") and env_or("NAME", "fallback") to pull
// secrets from the loaded environment file, plus the cty stdlib functions
// lower, upper and coalesce.
package hcl

// Package config defines the build configuration record handed to the
// external compile/test driver, its literal defaults, validation rules, and
// lookup of individual fields by their dotted driver names
// (e.g. "solidity.settings.optimizer.runs").
//
// A Record is a plain value. Format-specific sources such as HCL override
// files are implemented in separate packages behind the Loader interface.
package config

package config

// Literal build settings. They do not depend on the environment.
const (
	DefaultCompilerVersion  = "0.6.12"
	DefaultOptimizerEnabled = true
	DefaultOptimizerRuns    = 200

	DefaultSourcesPath   = "./contracts"
	DefaultTestsPath     = "./test"
	DefaultCachePath     = "./cache"
	DefaultArtifactsPath = "./artifacts"
)

// Defaults assembles the literal configuration record. The network table is
// empty but non-nil: no remote targets are configured.
func Defaults() Record {
	return Record{
		Solidity: Solidity{
			Version: DefaultCompilerVersion,
			Settings: Settings{
				Optimizer: Optimizer{
					Enabled: DefaultOptimizerEnabled,
					Runs:    DefaultOptimizerRuns,
				},
			},
		},
		Paths: Paths{
			Sources:   DefaultSourcesPath,
			Tests:     DefaultTestsPath,
			Cache:     DefaultCachePath,
			Artifacts: DefaultArtifactsPath,
		},
		Networks: map[string]Network{},
	}
}

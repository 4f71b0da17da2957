package params

// E2ETestConfig retrieves the configuration used by local end-to-end runs of
// the rewards tooling: the minimal preset with short epochs and a quick
// inactivity leak.
func E2ETestConfig() *BeaconChainConfig {
	e2eConfig := MinimalSpecConfig()

	// Time parameters.
	e2eConfig.SecondsPerSlot = 10
	e2eConfig.SlotsPerEpoch = 6
	e2eConfig.MinEpochsToInactivityPenalty = 2

	// Prysm constants.
	e2eConfig.ConfigName = ConfigNames[EndToEnd]
	e2eConfig.GenesisForkVersion = []byte{0, 0, 0, 253}
	e2eConfig.AltairForkVersion = []byte{1, 0, 0, 253}

	return e2eConfig
}

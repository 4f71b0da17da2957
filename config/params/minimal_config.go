package params

// MinimalSpecConfig retrieves the minimal config used in spec tests.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := MainnetConfig()

	// Time parameters
	minimalConfig.SecondsPerSlot = 6
	minimalConfig.SlotsPerEpoch = 8

	// Reward and penalty quotients
	minimalConfig.InactivityPenaltyQuotient = 1 << 25
	minimalConfig.MinSlashingPenaltyQuotient = 64
	minimalConfig.ProportionalSlashingMultiplier = 2

	// Fork related values.
	minimalConfig.PresetBase = "minimal"
	minimalConfig.ConfigName = ConfigNames[Minimal]
	minimalConfig.GenesisForkVersion = []byte{0, 0, 0, 1}
	minimalConfig.AltairForkVersion = []byte{1, 0, 0, 1}
	minimalConfig.AltairForkEpoch = 1<<64 - 1

	return minimalConfig
}

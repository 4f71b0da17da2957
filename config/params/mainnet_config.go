package params

// MainnetConfig returns a fresh copy of the configuration used on the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (Non-configurable)
	GenesisSlot:         0,
	GenesisEpoch:        0,
	FarFutureEpoch:      1<<64 - 1,
	BaseRewardsPerEpoch: 4,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EjectionBalance:           16 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	// Time parameter constants.
	SecondsPerSlot:               12,
	SlotsPerEpoch:                32,
	MinAttestationInclusionDelay: 1,
	MinEpochsToInactivityPenalty: 4,

	// Reward and penalty quotients constants.
	BaseRewardFactor:               64,
	WhistleBlowerRewardQuotient:    512,
	ProposerRewardQuotient:         8,
	InactivityPenaltyQuotient:      1 << 26,
	MinSlashingPenaltyQuotient:     128,
	ProportionalSlashingMultiplier: 1,

	// Fork related values.
	PresetBase:         "mainnet",
	ConfigName:         ConfigNames[Mainnet],
	GenesisForkVersion: []byte{0, 0, 0, 0},
	AltairForkVersion:  []byte{1, 0, 0, 0},
	AltairForkEpoch:    74240,

	GweiPerEth: 1000000000,
}

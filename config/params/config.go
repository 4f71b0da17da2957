// Package params defines important constants that are essential to the
// rewards and penalties computation of the beacon chain.
package params

import (
	"github.com/mohae/deepcopy"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable).
	GenesisSlot         types.Slot  `yaml:"GENESIS_SLOT"`
	GenesisEpoch        types.Epoch `yaml:"GENESIS_EPOCH"`
	FarFutureEpoch      types.Epoch `yaml:"FAR_FUTURE_EPOCH"`
	BaseRewardsPerEpoch uint64      `yaml:"BASE_REWARDS_PER_EPOCH"`

	// Gwei value constants.
	MinDepositAmount          uint64 `yaml:"MIN_DEPOSIT_AMOUNT" spec:"true"`
	MaxEffectiveBalance       uint64 `yaml:"MAX_EFFECTIVE_BALANCE" spec:"true"`
	EjectionBalance           uint64 `yaml:"EJECTION_BALANCE" spec:"true"`
	EffectiveBalanceIncrement uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT" spec:"true"`

	// Time parameters.
	SecondsPerSlot               uint64      `yaml:"SECONDS_PER_SLOT" spec:"true"`
	SlotsPerEpoch                types.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`
	MinAttestationInclusionDelay types.Slot  `yaml:"MIN_ATTESTATION_INCLUSION_DELAY" spec:"true"`
	MinEpochsToInactivityPenalty types.Epoch `yaml:"MIN_EPOCHS_TO_INACTIVITY_PENALTY" spec:"true"`

	// Reward and penalty quotients.
	BaseRewardFactor               uint64 `yaml:"BASE_REWARD_FACTOR" spec:"true"`
	WhistleBlowerRewardQuotient    uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT" spec:"true"`
	ProposerRewardQuotient         uint64 `yaml:"PROPOSER_REWARD_QUOTIENT" spec:"true"`
	InactivityPenaltyQuotient      uint64 `yaml:"INACTIVITY_PENALTY_QUOTIENT" spec:"true"`
	MinSlashingPenaltyQuotient     uint64 `yaml:"MIN_SLASHING_PENALTY_QUOTIENT" spec:"true"`
	ProportionalSlashingMultiplier uint64 `yaml:"PROPORTIONAL_SLASHING_MULTIPLIER" spec:"true"`

	// Fork and naming.
	PresetBase         string      `yaml:"PRESET_BASE" spec:"true"`
	ConfigName         string      `yaml:"CONFIG_NAME" spec:"true"`
	GenesisForkVersion []byte      `yaml:"GENESIS_FORK_VERSION" spec:"true"`
	AltairForkVersion  []byte      `yaml:"ALTAIR_FORK_VERSION" spec:"true"`
	AltairForkEpoch    types.Epoch `yaml:"ALTAIR_FORK_EPOCH" spec:"true"`

	// Prysm constants.
	GweiPerEth uint64
}

// Copy returns a copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config, ok := deepcopy.Copy(*b).(BeaconChainConfig)
	if !ok {
		c := *b
		return &c
	}
	return &config
}

// IsInactivityLeak reports whether the given finality delay puts the chain in
// an inactivity leak.
//
// Phase 0 definition:
//
//	def is_in_inactivity_leak(state: BeaconState) -> bool:
//	    return get_finality_delay(state) > MIN_EPOCHS_TO_INACTIVITY_PENALTY
func (b *BeaconChainConfig) IsInactivityLeak(finalityDelay uint64) bool {
	return finalityDelay > uint64(b.MinEpochsToInactivityPenalty)
}

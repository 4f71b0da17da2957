// Package util provides builders for beacon states and precomputed validator
// records used across the rewards tests.
package util

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
	"github.com/prysmaticlabs/prysm-rewards/time/slots"
)

// NewBeaconState creates a phase0 beacon state with an empty registry at slot 0.
// Options are applied in order.
func NewBeaconState(options ...func(f *statenative.Fields) error) (state.BeaconState, error) {
	seed := &statenative.Fields{
		Version:             version.Phase0,
		FinalizedCheckpoint: &state.Checkpoint{Root: make([]byte, 32)},
		Validators:          make([]*state.Validator, 0),
		Balances:            make([]uint64, 0),
	}
	for _, opt := range options {
		if err := opt(seed); err != nil {
			return nil, err
		}
	}
	return statenative.InitializeFromFields(*seed)
}

// WithEpoch moves the state to the first slot of the given epoch.
func WithEpoch(epoch types.Epoch, cfg *params.BeaconChainConfig) func(f *statenative.Fields) error {
	return func(f *statenative.Fields) error {
		slot, err := slots.EpochStart(epoch, cfg)
		if err != nil {
			return err
		}
		f.Slot = slot
		return nil
	}
}

// WithFinalizedEpoch sets the epoch of the finalized checkpoint.
func WithFinalizedEpoch(epoch types.Epoch) func(f *statenative.Fields) error {
	return func(f *statenative.Fields) error {
		f.FinalizedCheckpoint.Epoch = epoch
		return nil
	}
}

// WithValidatorBalances fills the registry with one always-active validator per balance.
// Effective balances follow the balance, rounded down to the increment and capped at the
// maximum effective balance.
func WithValidatorBalances(balances []uint64, cfg *params.BeaconChainConfig) func(f *statenative.Fields) error {
	return func(f *statenative.Fields) error {
		if cfg.EffectiveBalanceIncrement == 0 {
			return errors.New("effective balance increment is zero")
		}
		f.Validators = make([]*state.Validator, len(balances))
		f.Balances = make([]uint64, len(balances))
		for i, bal := range balances {
			eb := bal - bal%cfg.EffectiveBalanceIncrement
			if eb > cfg.MaxEffectiveBalance {
				eb = cfg.MaxEffectiveBalance
			}
			f.Validators[i] = &state.Validator{
				EffectiveBalance:           eb,
				ActivationEligibilityEpoch: 0,
				ActivationEpoch:            0,
				ExitEpoch:                  cfg.FarFutureEpoch,
				WithdrawableEpoch:          cfg.FarFutureEpoch,
			}
			f.Balances[i] = bal
		}
		return nil
	}
}

// WithSlashed marks the validators at the given indices as slashed.
func WithSlashed(indices ...types.ValidatorIndex) func(f *statenative.Fields) error {
	return func(f *statenative.Fields) error {
		for _, idx := range indices {
			if uint64(idx) >= uint64(len(f.Validators)) {
				return errors.Errorf("no validator at index %d", idx)
			}
			f.Validators[idx].Slashed = true
		}
		return nil
	}
}

// WithVersion overrides the state fork version.
func WithVersion(v int) func(f *statenative.Fields) error {
	return func(f *statenative.Fields) error {
		f.Version = v
		return nil
	}
}

// MaxBalances returns n copies of the maximum effective balance.
func MaxBalances(n int, cfg *params.BeaconChainConfig) []uint64 {
	bals := make([]uint64, n)
	for i := range bals {
		bals[i] = cfg.MaxEffectiveBalance
	}
	return bals
}

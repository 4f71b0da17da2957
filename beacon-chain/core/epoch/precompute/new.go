// Package precompute provides gathering of nicely-structured
// data important to feed into epoch processing, such as attesting
// records and balances, and the phase0 attestation rewards and
// penalties computed from them.
package precompute

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/time"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
	"go.opencensus.io/trace"
)

// New gets called at the beginning of process epoch cycle to return
// pre computed instances of validators attesting records and total
// balances attested in an epoch. Only the registry derived fields are
// filled; attestation participation is left to the caller.
func New(ctx context.Context, s state.ReadOnlyBeaconState, cfg *params.BeaconChainConfig) ([]*Validator, *Balance, error) {
	_, span := trace.StartSpan(ctx, "precomputeEpoch.New")
	defer span.End()

	pValidators := make([]*Validator, s.NumValidators())
	pBal := &Balance{}

	currentEpoch := time.CurrentEpoch(s, cfg)
	prevEpoch := time.PrevEpoch(s, cfg)

	if err := s.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		// Was validator withdrawable or slashed
		withdrawable := uint64(prevEpoch)+1 >= uint64(val.WithdrawableEpoch())
		pVal := &Validator{
			IsSlashed:                    val.Slashed(),
			IsWithdrawableCurrentEpoch:   withdrawable,
			IsEligible:                   helpers.IsEligibleForRewards(val, prevEpoch),
			CurrentEpochEffectiveBalance: val.EffectiveBalance(),
		}
		var err error
		// Was validator active current epoch
		if helpers.IsActiveValidator(val, currentEpoch) {
			pVal.IsActiveCurrentEpoch = true
			if pBal.ActiveCurrentEpoch, err = mathutil.Add64(pBal.ActiveCurrentEpoch, val.EffectiveBalance()); err != nil {
				return err
			}
		}
		// Was validator active previous epoch
		if helpers.IsActiveValidator(val, prevEpoch) {
			pVal.IsActivePrevEpoch = true
			if pBal.ActivePrevEpoch, err = mathutil.Add64(pBal.ActivePrevEpoch, val.EffectiveBalance()); err != nil {
				return err
			}
		}
		pValidators[idx] = pVal
		return nil
	}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to initialize precompute")
	}
	return pValidators, pBal, nil
}

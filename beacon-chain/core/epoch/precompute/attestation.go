package precompute

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
)

// UpdateBalance updates pre computed balance store from the participation
// flags of the validator records. Slashed validators never count towards the
// attested totals.
func UpdateBalance(vp []*Validator, bBal *Balance, cfg *params.BeaconChainConfig) (*Balance, error) {
	add := func(total *uint64, amount uint64) error {
		sum, err := mathutil.Add64(*total, amount)
		if err != nil {
			return errors.Wrap(err, "could not accumulate attested balance")
		}
		*total = sum
		return nil
	}
	for _, v := range vp {
		if v.IsSlashed {
			continue
		}
		eb := v.CurrentEpochEffectiveBalance
		if v.IsCurrentEpochAttester {
			if err := add(&bBal.CurrentEpochAttested, eb); err != nil {
				return nil, err
			}
		}
		if v.IsCurrentEpochTargetAttester {
			if err := add(&bBal.CurrentEpochTargetAttested, eb); err != nil {
				return nil, err
			}
		}
		if v.IsPrevEpochAttester {
			if err := add(&bBal.PrevEpochAttested, eb); err != nil {
				return nil, err
			}
		}
		if v.IsPrevEpochTargetAttester {
			if err := add(&bBal.PrevEpochTargetAttested, eb); err != nil {
				return nil, err
			}
		}
		if v.IsPrevEpochHeadAttester {
			if err := add(&bBal.PrevEpochHeadAttested, eb); err != nil {
				return nil, err
			}
		}
	}

	return EnsureBalancesLowerBound(bBal, cfg), nil
}

// EnsureBalancesLowerBound ensures all the balances such as active current epoch, active previous epoch and more
// have EffectiveBalanceIncrement(1 eth) as a lower bound.
func EnsureBalancesLowerBound(bBal *Balance, cfg *params.BeaconChainConfig) *Balance {
	ebi := cfg.EffectiveBalanceIncrement
	bBal.ActiveCurrentEpoch = mathutil.Max(ebi, bBal.ActiveCurrentEpoch)
	bBal.ActivePrevEpoch = mathutil.Max(ebi, bBal.ActivePrevEpoch)
	bBal.CurrentEpochAttested = mathutil.Max(ebi, bBal.CurrentEpochAttested)
	bBal.CurrentEpochTargetAttested = mathutil.Max(ebi, bBal.CurrentEpochTargetAttested)
	bBal.PrevEpochAttested = mathutil.Max(ebi, bBal.PrevEpochAttested)
	bBal.PrevEpochTargetAttested = mathutil.Max(ebi, bBal.PrevEpochTargetAttested)
	bBal.PrevEpochHeadAttested = mathutil.Max(ebi, bBal.PrevEpochHeadAttested)
	return bBal
}

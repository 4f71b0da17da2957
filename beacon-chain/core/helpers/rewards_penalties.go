package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
)

// SqrtTotalActiveBalance returns the integer square root of the total active
// balance. It is derived once per epoch and handed to BaseReward.
func SqrtTotalActiveBalance(totalActiveBalance uint64) uint64 {
	return mathutil.IntegerSquareRoot(totalActiveBalance)
}

// BaseReward takes a validator's effective balance and the square root of the
// total active balance and returns the phase0 base reward.
//
// Spec pseudocode definition:
//
//	def get_base_reward(state: BeaconState, index: ValidatorIndex) -> Gwei:
//	  total_balance = get_total_active_balance(state)
//	  effective_balance = state.validators[index].effective_balance
//	  return Gwei(effective_balance * BASE_REWARD_FACTOR // integer_squareroot(total_balance) // BASE_REWARDS_PER_EPOCH)
func BaseReward(effectiveBalance, sqrtTotalActiveBalance uint64, cfg *params.BeaconChainConfig) (uint64, error) {
	scaled, err := mathutil.Mul64(effectiveBalance, cfg.BaseRewardFactor)
	if err != nil {
		return 0, errors.Wrap(err, "could not scale effective balance")
	}
	perSqrt, err := mathutil.Div64(scaled, sqrtTotalActiveBalance)
	if err != nil {
		return 0, errors.Wrap(err, "could not divide by total active balance root")
	}
	br, err := mathutil.Div64(perSqrt, cfg.BaseRewardsPerEpoch)
	if err != nil {
		return 0, errors.Wrap(err, "could not divide by base rewards per epoch")
	}
	return br, nil
}

// IncreaseBalanceWithVal increases a validator balance by 'delta' in Gwei.
//
// Spec pseudocode definition:
//
//	def increase_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//	  """
//	  Increase the validator balance at index ``index`` by ``delta``.
//	  """
//	  state.balances[index] += delta
//
// This is a flattened version of the spec method, taking in the raw balance and returning
// the post balance. An overflowing balance is an error.
func IncreaseBalanceWithVal(currBalance, delta uint64) (uint64, error) {
	return mathutil.Add64(currBalance, delta)
}

// DecreaseBalanceWithVal decreases a validator balance by 'delta' in Gwei, flooring at zero.
//
// Spec pseudocode definition:
//
//	def decrease_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//	  """
//	  Decrease the validator balance at index ``index`` by ``delta``, with underflow protection.
//	  """
//	  state.balances[index] = 0 if delta > state.balances[index] else state.balances[index] - delta
//
// This is a flattened version of the spec method, taking in the raw balance and returning
// the post balance.
func DecreaseBalanceWithVal(currBalance, delta uint64) uint64 {
	if delta > currBalance {
		balanceFloorHitCount.Inc()
	}
	return mathutil.SaturatingSub(currBalance, delta)
}

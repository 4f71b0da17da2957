package helpers

import (
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// IsActiveValidator returns the boolean value on whether the validator
// is active or not.
//
// Spec pseudocode definition:
//
//	def is_active_validator(validator: Validator, epoch: Epoch) -> bool:
//	  """
//	  Check if ``validator`` is active.
//	  """
//	  return validator.activation_epoch <= epoch < validator.exit_epoch
func IsActiveValidator(validator state.ReadOnlyValidator, epoch types.Epoch) bool {
	return validator.ActivationEpoch() <= epoch && epoch < validator.ExitEpoch()
}

// IsEligibleForRewards reports whether the validator takes part in the
// rewards and penalties of the given previous epoch.
//
// Spec pseudocode definition:
//
//	eligible_validator_indices = [
//	    ValidatorIndex(index) for index, v in enumerate(state.validators)
//	    if is_active_validator(v, previous_epoch) or (v.slashed and previous_epoch + 1 < v.withdrawable_epoch)
//	]
func IsEligibleForRewards(validator state.ReadOnlyValidator, prevEpoch types.Epoch) bool {
	if IsActiveValidator(validator, prevEpoch) {
		return true
	}
	return validator.Slashed() && uint64(prevEpoch)+1 < uint64(validator.WithdrawableEpoch())
}

// Package time contains functions for deriving the current and previous epoch
// of a beacon state.
package time

import (
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/time/slots"
)

// CurrentEpoch returns the current epoch number calculated from
// the slot number stored in beacon state.
//
// Spec pseudocode definition:
//
//	def get_current_epoch(state: BeaconState) -> Epoch:
//	  """
//	  Return the current epoch.
//	  """
//	  return compute_epoch_at_slot(state.slot)
func CurrentEpoch(st state.ReadOnlyBeaconState, cfg *params.BeaconChainConfig) types.Epoch {
	return slots.ToEpoch(st.Slot(), cfg)
}

// PrevEpoch returns the previous epoch number calculated from
// the slot number stored in beacon state. It also checks for
// underflow condition.
//
// Spec pseudocode definition:
//
//	def get_previous_epoch(state: BeaconState) -> Epoch:
//	  """
//	  Return the previous epoch (unless the current epoch is ``GENESIS_EPOCH``).
//	  """
//	  current_epoch = get_current_epoch(state)
//	  return GENESIS_EPOCH if current_epoch == GENESIS_EPOCH else Epoch(current_epoch - 1)
func PrevEpoch(st state.ReadOnlyBeaconState, cfg *params.BeaconChainConfig) types.Epoch {
	currentEpoch := CurrentEpoch(st, cfg)
	if currentEpoch == cfg.GenesisEpoch {
		return cfg.GenesisEpoch
	}
	return currentEpoch - 1
}

// Package slots converts between slots and epochs for a given chain config.
package slots

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
)

// ToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//
//	def compute_epoch_at_slot(slot: Slot) -> Epoch:
//	  """
//	  Return the epoch number at ``slot``.
//	  """
//	  return Epoch(slot // SLOTS_PER_EPOCH)
func ToEpoch(slot types.Slot, cfg *params.BeaconChainConfig) types.Epoch {
	return types.Epoch(slot / cfg.SlotsPerEpoch)
}

// EpochStart returns the first slot number of the given epoch.
//
// Spec pseudocode definition:
//
//	def compute_start_slot_at_epoch(epoch: Epoch) -> Slot:
//	  """
//	  Return the start slot of ``epoch``.
//	  """
//	  return Slot(epoch * SLOTS_PER_EPOCH)
func EpochStart(epoch types.Epoch, cfg *params.BeaconChainConfig) (types.Slot, error) {
	slot, err := mathutil.Mul64(uint64(epoch), uint64(cfg.SlotsPerEpoch))
	if err != nil {
		return 0, errors.Errorf("start slot calculation overflows: %v", err)
	}
	return types.Slot(slot), nil
}

package state_native

import (
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// Slot of the current beacon chain state.
func (b *BeaconState) Slot() types.Slot {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.slot
}

// FinalizedCheckpoint denoting an epoch and block root.
func (b *BeaconState) FinalizedCheckpoint() *state.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.finalizedCheckpoint.Copy()
}

// FinalizedCheckpointEpoch returns the epoch value of the finalized checkpoint.
func (b *BeaconState) FinalizedCheckpointEpoch() types.Epoch {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.finalizedCheckpoint == nil {
		return 0
	}
	return b.finalizedCheckpoint.Epoch
}

// SetSlot for the beacon state.
func (b *BeaconState) SetSlot(val types.Slot) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.slot = val
	return nil
}

// SetFinalizedCheckpoint for the beacon state.
func (b *BeaconState) SetFinalizedCheckpoint(val *state.Checkpoint) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.finalizedCheckpoint = val.Copy()
	return nil
}

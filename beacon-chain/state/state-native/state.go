// Package state_native holds an in-memory beacon state guarded by a
// read-write mutex. Getters hand out copies so callers never alias the
// registry the state owns.
package state_native

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
)

// BeaconState defines a struct containing the fields epoch rewards
// processing reads and writes.
type BeaconState struct {
	version             int
	slot                types.Slot
	finalizedCheckpoint *state.Checkpoint
	validators          []*state.Validator
	balances            []uint64

	lock sync.RWMutex
}

// Fields is the input to InitializeFromFields. Slices are copied.
type Fields struct {
	Version             int
	Slot                types.Slot
	FinalizedCheckpoint *state.Checkpoint
	Validators          []*state.Validator
	Balances            []uint64
}

var _ state.BeaconState = (*BeaconState)(nil)

// InitializeFromFields builds a beacon state from the given fields.
func InitializeFromFields(f Fields) (*BeaconState, error) {
	if f.Validators == nil {
		return nil, state.ErrNilValidatorsInState
	}
	if version.String(f.Version) == "unknown version" {
		return nil, errors.Errorf("unknown state version %d", f.Version)
	}
	b := &BeaconState{
		version:             f.Version,
		slot:                f.Slot,
		finalizedCheckpoint: f.FinalizedCheckpoint.Copy(),
		validators:          copyValidators(f.Validators),
		balances:            copyBalances(f.Balances),
	}
	if b.finalizedCheckpoint == nil {
		b.finalizedCheckpoint = &state.Checkpoint{}
	}
	return b, nil
}

// Copy returns a deep copy of the beacon state.
func (b *BeaconState) Copy() state.BeaconState {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return &BeaconState{
		version:             b.version,
		slot:                b.slot,
		finalizedCheckpoint: b.finalizedCheckpoint.Copy(),
		validators:          copyValidators(b.validators),
		balances:            copyBalances(b.balances),
	}
}

// Version of the beacon state.
func (b *BeaconState) Version() int {
	return b.version
}

func copyValidators(vals []*state.Validator) []*state.Validator {
	if vals == nil {
		return nil
	}
	res := make([]*state.Validator, len(vals))
	for i, v := range vals {
		res[i] = v.Copy()
	}
	return res
}

func copyBalances(bals []uint64) []uint64 {
	if bals == nil {
		return nil
	}
	res := make([]uint64, len(bals))
	copy(res, bals)
	return res
}

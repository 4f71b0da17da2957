package state_native

import (
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// SetBalances for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetBalances(val []uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.balances = copyBalances(val)
	return nil
}

// UpdateBalancesAtIndex for the beacon state. This method updates the balance
// at a specific index to a new value.
func (b *BeaconState) UpdateBalancesAtIndex(idx types.ValidatorIndex, val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.balances)) <= uint64(idx) {
		e := NewValidatorIndexOutOfRangeError(idx)
		return &e
	}
	b.balances[idx] = val
	return nil
}

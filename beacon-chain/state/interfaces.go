// Package state defines the beacon state views consumed by epoch processing:
// a read-only view of the fields the rewards engine needs, and a writer for
// the balance registry it mutates.
package state

import (
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// BeaconState has read and write access to beacon state methods.
type BeaconState interface {
	ReadOnlyBeaconState
	WriteOnlyBeaconState
	Copy() BeaconState
}

// ReadOnlyBeaconState defines a struct which only has read access to beacon state methods.
type ReadOnlyBeaconState interface {
	Version() int
	Slot() types.Slot
	FinalizedCheckpoint() *Checkpoint
	FinalizedCheckpointEpoch() types.Epoch
	Validators() []*Validator
	ValidatorAtIndexReadOnly(idx types.ValidatorIndex) (ReadOnlyValidator, error)
	ReadFromEveryValidator(f func(idx int, val ReadOnlyValidator) error) error
	NumValidators() int
	Balances() []uint64
	BalanceAtIndex(idx types.ValidatorIndex) (uint64, error)
	BalancesLength() int
}

// WriteOnlyBeaconState defines a struct which only has write access to beacon state methods.
type WriteOnlyBeaconState interface {
	SetSlot(val types.Slot) error
	SetFinalizedCheckpoint(val *Checkpoint) error
	SetBalances(val []uint64) error
	UpdateBalancesAtIndex(idx types.ValidatorIndex, val uint64) error
}

// ReadOnlyValidator defines a struct which only has read access to validator methods.
type ReadOnlyValidator interface {
	EffectiveBalance() uint64
	ActivationEligibilityEpoch() types.Epoch
	ActivationEpoch() types.Epoch
	WithdrawableEpoch() types.Epoch
	ExitEpoch() types.Epoch
	Slashed() bool
	IsNil() bool
}

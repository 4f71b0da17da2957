package state_native_test

import (
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func testFields() statenative.Fields {
	return statenative.Fields{
		Version:             version.Phase0,
		Slot:                64,
		FinalizedCheckpoint: &state.Checkpoint{Epoch: 1, Root: []byte{'a'}},
		Validators: []*state.Validator{
			{EffectiveBalance: 32e9, ExitEpoch: 10},
			{EffectiveBalance: 31e9, Slashed: true},
		},
		Balances: []uint64{32e9, 31e9},
	}
}

func TestInitializeFromFields(t *testing.T) {
	f := testFields()
	st, err := statenative.InitializeFromFields(f)
	require.NoError(t, err)

	// Mutating the input must not leak into the state.
	f.Balances[0] = 1
	f.Validators[0].EffectiveBalance = 1
	f.FinalizedCheckpoint.Root[0] = 'b'

	assert.Equal(t, version.Phase0, st.Version())
	assert.Equal(t, types.Slot(64), st.Slot())
	assert.Equal(t, types.Epoch(1), st.FinalizedCheckpointEpoch())
	assert.DeepEqual(t, []byte{'a'}, st.FinalizedCheckpoint().Root)
	assert.Equal(t, 2, st.NumValidators())
	assert.Equal(t, 2, st.BalancesLength())
	assert.DeepEqual(t, []uint64{32e9, 31e9}, st.Balances())
	assert.Equal(t, uint64(32e9), st.Validators()[0].EffectiveBalance)
}

func TestInitializeFromFields_Errors(t *testing.T) {
	_, err := statenative.InitializeFromFields(statenative.Fields{})
	assert.ErrorIs(t, err, state.ErrNilValidatorsInState)

	f := testFields()
	f.Version = 42
	_, err = statenative.InitializeFromFields(f)
	assert.ErrorContains(t, "unknown state version 42", err)
}

func TestInitializeFromFields_NilCheckpoint(t *testing.T) {
	f := testFields()
	f.FinalizedCheckpoint = nil
	st, err := statenative.InitializeFromFields(f)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(0), st.FinalizedCheckpointEpoch())
}

func TestBalanceAtIndex(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	bal, err := st.BalanceAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(31e9), bal)

	_, err = st.BalanceAtIndex(2)
	assert.ErrorContains(t, "index 2 out of range", err)
}

func TestUpdateBalancesAtIndex(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	require.NoError(t, st.UpdateBalancesAtIndex(0, 5))
	bal, err := st.BalanceAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), bal)

	err = st.UpdateBalancesAtIndex(7, 5)
	assert.ErrorContains(t, "index 7 out of range", err)
}

func TestSetters(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	require.NoError(t, st.SetSlot(96))
	require.NoError(t, st.SetFinalizedCheckpoint(&state.Checkpoint{Epoch: 2}))
	require.NoError(t, st.SetBalances([]uint64{1, 2}))
	assert.Equal(t, types.Slot(96), st.Slot())
	assert.Equal(t, types.Epoch(2), st.FinalizedCheckpointEpoch())
	assert.DeepEqual(t, []uint64{1, 2}, st.Balances())
}

func TestCopy_Independent(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	cp := st.Copy()
	require.NoError(t, cp.UpdateBalancesAtIndex(0, 0))
	require.NoError(t, cp.SetSlot(1))

	assert.DeepEqual(t, []uint64{32e9, 31e9}, st.Balances())
	assert.Equal(t, types.Slot(64), st.Slot())
	assert.DeepEqual(t, []uint64{0, 31e9}, cp.Balances())
}

func TestReadFromEveryValidator(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	var slashed []int
	require.NoError(t, st.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		if val.Slashed() {
			slashed = append(slashed, idx)
		}
		return nil
	}))
	assert.DeepEqual(t, []int{1}, slashed)
}

func TestReadFromEveryValidator_NilEntry(t *testing.T) {
	f := testFields()
	f.Validators = append(f.Validators, nil)
	st, err := statenative.InitializeFromFields(f)
	require.NoError(t, err)

	err = st.ReadFromEveryValidator(func(int, state.ReadOnlyValidator) error { return nil })
	assert.ErrorIs(t, err, state.ErrNilWrappedValidator)
}

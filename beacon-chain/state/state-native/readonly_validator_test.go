package state_native_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func TestReadOnlyValidator_ReturnsErrorOnNil(t *testing.T) {
	if _, err := statenative.NewValidator(nil); err != state.ErrNilWrappedValidator {
		t.Errorf("Wrong error returned. Got %v, wanted %v", err, state.ErrNilWrappedValidator)
	}
}

func TestReadOnlyValidator_Fields(t *testing.T) {
	v, err := statenative.NewValidator(&state.Validator{
		EffectiveBalance:           234,
		Slashed:                    true,
		ActivationEligibilityEpoch: 1,
		ActivationEpoch:            2,
		ExitEpoch:                  3,
		WithdrawableEpoch:          4,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(234), v.EffectiveBalance())
	assert.Equal(t, true, v.Slashed())
	assert.Equal(t, types.Epoch(1), v.ActivationEligibilityEpoch())
	assert.Equal(t, types.Epoch(2), v.ActivationEpoch())
	assert.Equal(t, types.Epoch(3), v.ExitEpoch())
	assert.Equal(t, types.Epoch(4), v.WithdrawableEpoch())
	assert.Equal(t, false, v.IsNil())
}

func TestValidatorAtIndexReadOnly(t *testing.T) {
	st, err := statenative.InitializeFromFields(testFields())
	require.NoError(t, err)

	v, err := st.ValidatorAtIndexReadOnly(1)
	require.NoError(t, err)
	assert.Equal(t, true, v.Slashed())

	_, err = st.ValidatorAtIndexReadOnly(5)
	var outOfRange *statenative.ValidatorIndexOutOfRangeError
	require.NotNil(t, err)
	assert.Equal(t, true, errors.As(err, &outOfRange))
}

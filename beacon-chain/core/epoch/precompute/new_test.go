package precompute_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func TestNew(t *testing.T) {
	cfg := params.MainnetConfig()
	ffe := cfg.FarFutureEpoch
	s, err := statenative.InitializeFromFields(statenative.Fields{
		Slot: cfg.SlotsPerEpoch,
		// Validator 0 is slashed
		// Validator 1 is withdrawable
		// Validator 2 is active prev epoch and current epoch
		// Validator 3 is active prev epoch
		Validators: []*state.Validator{
			{Slashed: true, WithdrawableEpoch: ffe, EffectiveBalance: 100},
			{EffectiveBalance: 100},
			{WithdrawableEpoch: ffe, ExitEpoch: ffe, EffectiveBalance: 100},
			{WithdrawableEpoch: ffe, ExitEpoch: 1, EffectiveBalance: 100},
		},
	})
	require.NoError(t, err)
	v, b, err := precompute.New(context.Background(), s, cfg)
	require.NoError(t, err)
	assert.DeepEqual(t, &precompute.Validator{
		IsSlashed:                    true,
		IsEligible:                   true,
		CurrentEpochEffectiveBalance: 100,
	}, v[0], "Incorrect validator 0 status")
	assert.DeepEqual(t, &precompute.Validator{
		IsWithdrawableCurrentEpoch:   true,
		CurrentEpochEffectiveBalance: 100,
	}, v[1], "Incorrect validator 1 status")
	assert.DeepEqual(t, &precompute.Validator{
		IsActivePrevEpoch:            true,
		IsActiveCurrentEpoch:         true,
		IsEligible:                   true,
		CurrentEpochEffectiveBalance: 100,
	}, v[2], "Incorrect validator 2 status")
	assert.DeepEqual(t, &precompute.Validator{
		IsActivePrevEpoch:            true,
		IsEligible:                   true,
		CurrentEpochEffectiveBalance: 100,
	}, v[3], "Incorrect validator 3 status")

	wantedBalances := &precompute.Balance{
		ActiveCurrentEpoch: 100,
		ActivePrevEpoch:    200,
	}
	assert.DeepEqual(t, wantedBalances, b, "Incorrect wanted balance")
}

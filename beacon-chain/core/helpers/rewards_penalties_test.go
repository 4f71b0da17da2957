package helpers

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func TestIsEligibleForRewards(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		name string
		val  *state.Validator
		want bool
	}{
		{name: "active", val: &state.Validator{ExitEpoch: cfg.FarFutureEpoch}, want: true},
		{name: "exited", val: &state.Validator{ExitEpoch: 3, WithdrawableEpoch: cfg.FarFutureEpoch}, want: false},
		{name: "not yet active", val: &state.Validator{ActivationEpoch: 9, ExitEpoch: cfg.FarFutureEpoch}, want: false},
		{name: "slashed before withdrawable", val: &state.Validator{ExitEpoch: 3, Slashed: true, WithdrawableEpoch: 7}, want: true},
		{name: "slashed at withdrawable", val: &state.Validator{ExitEpoch: 3, Slashed: true, WithdrawableEpoch: 6}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rov, err := statenative.NewValidator(tt.val)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsEligibleForRewards(rov, 5))
		})
	}
}

func TestBaseReward(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		effectiveBalance uint64
		totalBalance     uint64
		want             uint64
	}{
		// 32e9*64 / isqrt(32e9) / 4 = 2048e9 / 178885 / 4
		{effectiveBalance: 32e9, totalBalance: 32e9, want: 2862174},
		{effectiveBalance: 32e9, totalBalance: 64e9, want: 2023859},
		{effectiveBalance: 0, totalBalance: 64e9, want: 0},
	}
	for _, tt := range tests {
		got, err := BaseReward(tt.effectiveBalance, SqrtTotalActiveBalance(tt.totalBalance), cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "BaseReward(%d, %d)", tt.effectiveBalance, tt.totalBalance)
	}
}

func TestBaseReward_Errors(t *testing.T) {
	cfg := params.MainnetConfig()
	_, err := BaseReward(32e9, 0, cfg)
	assert.ErrorIs(t, err, mathutil.ErrDivByZero)

	_, err = BaseReward(1<<63, 1, cfg)
	assert.ErrorIs(t, err, mathutil.ErrMulOverflow)

	cfg.BaseRewardsPerEpoch = 0
	_, err = BaseReward(32e9, 1, cfg)
	assert.ErrorIs(t, err, mathutil.ErrDivByZero)
}

func TestIncreaseBalanceWithVal(t *testing.T) {
	tests := []struct {
		b  uint64
		nb uint64
		eb uint64
	}{
		{b: 27 * 1e9, nb: 1, eb: 27*1e9 + 1},
		{b: 28 * 1e9, nb: 0, eb: 28 * 1e9},
		{b: 32 * 1e9, nb: 33 * 1e9, eb: 65 * 1e9},
	}
	for _, test := range tests {
		bal, err := IncreaseBalanceWithVal(test.b, test.nb)
		require.NoError(t, err)
		assert.Equal(t, test.eb, bal, "Incorrect Validator balance")
	}

	_, err := IncreaseBalanceWithVal(^uint64(0), 1)
	assert.ErrorIs(t, err, mathutil.ErrAddOverflow)
}

func TestDecreaseBalanceWithVal(t *testing.T) {
	tests := []struct {
		b  uint64
		nb uint64
		eb uint64
	}{
		{b: 2, nb: 1, eb: 1},
		{b: 28 * 1e9, nb: 0, eb: 28 * 1e9},
		{b: 1, nb: 2, eb: 0},
		{b: 28 * 1e9, nb: 28 * 1e9, eb: 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.eb, DecreaseBalanceWithVal(test.b, test.nb), "Incorrect Validator balance")
	}
}

func TestDecreaseBalanceWithVal_CountsFloor(t *testing.T) {
	before := testutil.ToFloat64(balanceFloorHitCount)
	assert.Equal(t, uint64(0), DecreaseBalanceWithVal(1, 2))
	assert.Equal(t, uint64(1), DecreaseBalanceWithVal(2, 1))
	assert.Equal(t, before+1, testutil.ToFloat64(balanceFloorHitCount))
}

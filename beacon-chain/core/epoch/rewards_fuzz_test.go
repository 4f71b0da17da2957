package epoch_test

import (
	"context"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
	"github.com/prysmaticlabs/prysm-rewards/testing/util"
)

type fuzzVote struct {
	Source, Target, Head bool
	Delay                uint8
	Proposer             uint8
}

func TestFuzzProcessRewardsAndPenalties_10000(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	fuzzer := fuzz.NewWithSeed(0)
	var balances [8]uint32
	var votes [8]fuzzVote
	var finalized uint8
	for i := 0; i < 10000; i++ {
		fuzzer.Fuzz(&balances)
		fuzzer.Fuzz(&votes)
		fuzzer.Fuzz(&finalized)

		bals := make([]uint64, len(balances))
		for j, b := range balances {
			// Keep at least one increment so the active total is never zero.
			bals[j] = uint64(b)*16 + cfg.EffectiveBalanceIncrement
		}
		st, err := util.NewBeaconState(
			util.WithEpoch(types.Epoch(300), cfg),
			util.WithFinalizedEpoch(types.Epoch(finalized)),
			util.WithValidatorBalances(bals, cfg),
		)
		require.NoError(t, err)
		participation := make([]*util.Participation, len(votes))
		for j, v := range votes {
			participation[j] = &util.Participation{
				Source:   v.Source,
				Target:   v.Target,
				Head:     v.Head,
				Delay:    types.Slot(v.Delay%32) + 1,
				Proposer: types.ValidatorIndex(v.Proposer % uint8(len(votes))),
			}
		}
		vp, bal, err := util.PrecomputeRecords(st, participation, cfg)
		require.NoError(t, err)

		estimates, err := epoch.EstimateAttestationRewards(context.Background(), st, bal, vp, cfg, nil, precompute.IncludeProposerReward)
		require.NoError(t, err)
		st, err = epoch.ProcessRewardsAndPenalties(context.Background(), st, bal, vp, cfg)
		require.NoError(t, err)
		for _, e := range estimates {
			got, err := st.BalanceAtIndex(e.Index)
			require.NoError(t, err)
			require.Equal(t, uint64(e.ProjectedBalance), got)
		}
	}
}

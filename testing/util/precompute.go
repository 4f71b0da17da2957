package util

import (
	"context"

	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// Participation describes what a validator did in the previous epoch.
type Participation struct {
	Source, Target, Head bool
	Delay                types.Slot
	Proposer             types.ValidatorIndex
}

// FullParticipation is a timely vote for source, target and head included by proposer.
func FullParticipation(proposer types.ValidatorIndex) *Participation {
	return &Participation{Source: true, Target: true, Head: true, Delay: 1, Proposer: proposer}
}

// PrecomputeRecords derives the validator records and balance totals of st, then applies the
// participation of each validator. A nil entry, or a missing one, means the validator did not
// attest.
func PrecomputeRecords(
	st state.ReadOnlyBeaconState,
	participation []*Participation,
	cfg *params.BeaconChainConfig,
) ([]*precompute.Validator, *precompute.Balance, error) {
	vp, bal, err := precompute.New(context.Background(), st, cfg)
	if err != nil {
		return nil, nil, err
	}
	for i, p := range participation {
		if p == nil || i >= len(vp) {
			continue
		}
		v := vp[i]
		v.IsPrevEpochAttester = p.Source
		v.IsPrevEpochTargetAttester = p.Target
		v.IsPrevEpochHeadAttester = p.Head
		if p.Source {
			v.InclusionInfo = &precompute.InclusionInfo{Delay: p.Delay, ProposerIndex: p.Proposer}
		}
	}
	bal, err = precompute.UpdateBalance(vp, bal, cfg)
	if err != nil {
		return nil, nil, err
	}
	return vp, bal, nil
}

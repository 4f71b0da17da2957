package main

import (
	"context"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	statenative "github.com/prysmaticlabs/prysm-rewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
)

// snapshot is the on-disk form of a beacon state together with the previous epoch
// participation of its validators. Both YAML and JSON are accepted.
type snapshot struct {
	Fork                string                  `json:"fork"`
	Slot                types.Slot              `json:"slot"`
	FinalizedCheckpoint *state.Checkpoint       `json:"finalized_checkpoint"`
	Validators          []*snapshotValidator    `json:"validators"`
	Balances            []uint64                `json:"balances"`
	Participation       []*participation        `json:"participation"`
	Statuses            []*precompute.Validator `json:"statuses"`
	TotalBalances       *precompute.Balance     `json:"total_balances"`
}

// snapshotValidator leaves the exit and withdrawable epochs optional. Missing values
// mean the validator never exits.
type snapshotValidator struct {
	EffectiveBalance           uint64       `json:"effective_balance"`
	Slashed                    bool         `json:"slashed"`
	ActivationEligibilityEpoch types.Epoch  `json:"activation_eligibility_epoch"`
	ActivationEpoch            types.Epoch  `json:"activation_epoch"`
	ExitEpoch                  *types.Epoch `json:"exit_epoch"`
	WithdrawableEpoch          *types.Epoch `json:"withdrawable_epoch"`
}

// participation is the previous epoch record of one validator.
type participation struct {
	Index          types.ValidatorIndex `json:"index"`
	Source         bool                 `json:"source"`
	Target         bool                 `json:"target"`
	Head           bool                 `json:"head"`
	InclusionDelay types.Slot           `json:"inclusion_delay"`
	ProposerIndex  types.ValidatorIndex `json:"proposer_index"`
}

// epochInputs is everything the rewards pass needs, decoded from a snapshot.
type epochInputs struct {
	state    state.BeaconState
	statuses []*precompute.Validator
	balance  *precompute.Balance
}

func readSnapshot(path string) (*snapshot, error) {
	enc, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read snapshot")
	}
	return decodeSnapshot(enc)
}

func decodeSnapshot(enc []byte) (*snapshot, error) {
	snap := &snapshot{}
	if err := yaml.Unmarshal(enc, snap); err != nil {
		return nil, errors.Wrap(err, "could not decode snapshot")
	}
	if len(snap.Validators) != len(snap.Balances) {
		return nil, errors.Errorf("snapshot has %d validators but %d balances", len(snap.Validators), len(snap.Balances))
	}
	return snap, nil
}

// inputs builds the beacon state and derives the validator records and balance totals.
// Explicit statuses replace the derived records; explicit totals replace the derived totals.
func (s *snapshot) inputs(ctx context.Context, cfg *params.BeaconChainConfig) (*epochInputs, error) {
	fork, ok := version.FromString(s.Fork)
	if !ok {
		return nil, errors.Errorf("unknown fork %q", s.Fork)
	}
	checkpoint := s.FinalizedCheckpoint
	if checkpoint == nil {
		checkpoint = &state.Checkpoint{Epoch: cfg.GenesisEpoch}
	}
	vals := make([]*state.Validator, len(s.Validators))
	for i, v := range s.Validators {
		if v == nil {
			return nil, errors.Errorf("validator %d is empty", i)
		}
		vals[i] = v.toState(cfg)
	}
	st, err := statenative.InitializeFromFields(statenative.Fields{
		Version:             fork,
		Slot:                s.Slot,
		FinalizedCheckpoint: checkpoint,
		Validators:          vals,
		Balances:            s.Balances,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize state")
	}

	vp, bal, err := precompute.New(ctx, st, cfg)
	if err != nil {
		return nil, err
	}
	if s.Statuses != nil {
		for i, v := range s.Statuses {
			if v == nil {
				return nil, errors.Wrapf(precompute.ErrValidatorStatusesInconsistent, "status %d is empty", i)
			}
		}
		vp = s.Statuses
	}
	for _, p := range s.Participation {
		if p == nil {
			continue
		}
		if uint64(p.Index) >= uint64(len(vp)) {
			return nil, errors.Errorf("participation for unknown validator %d", p.Index)
		}
		p.apply(vp[p.Index])
	}
	if s.TotalBalances != nil {
		bal = precompute.EnsureBalancesLowerBound(s.TotalBalances, cfg)
	} else if bal, err = precompute.UpdateBalance(vp, bal, cfg); err != nil {
		return nil, err
	}
	return &epochInputs{state: st, statuses: vp, balance: bal}, nil
}

func (v *snapshotValidator) toState(cfg *params.BeaconChainConfig) *state.Validator {
	val := &state.Validator{
		EffectiveBalance:           v.EffectiveBalance,
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: v.ActivationEligibilityEpoch,
		ActivationEpoch:            v.ActivationEpoch,
		ExitEpoch:                  cfg.FarFutureEpoch,
		WithdrawableEpoch:          cfg.FarFutureEpoch,
	}
	if v.ExitEpoch != nil {
		val.ExitEpoch = *v.ExitEpoch
	}
	if v.WithdrawableEpoch != nil {
		val.WithdrawableEpoch = *v.WithdrawableEpoch
	}
	return val
}

func (p *participation) apply(v *precompute.Validator) {
	v.IsPrevEpochAttester = p.Source
	v.IsPrevEpochTargetAttester = p.Target
	v.IsPrevEpochHeadAttester = p.Head
	v.InclusionInfo = nil
	if p.Source {
		v.InclusionInfo = &precompute.InclusionInfo{Delay: p.InclusionDelay, ProposerIndex: p.ProposerIndex}
	}
}

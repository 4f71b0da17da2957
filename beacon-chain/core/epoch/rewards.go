// Package epoch contains the phase0 epoch processing entry points for attestation
// rewards and penalties. Callers hand in the validator records and balance totals
// computed by the precompute package.
package epoch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/cache"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	coretime "github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/time"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
	"github.com/prysmaticlabs/prysm-rewards/monitoring/tracing"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var (
	// ErrNilState is returned when no beacon state is handed in.
	ErrNilState = errors.New("nil beacon state")
	// ErrUnsupportedVersion is returned for states of any fork other than phase0.
	ErrUnsupportedVersion = errors.New("attestation rewards are only defined for phase0 states")
)


// AttestationReward is the estimated outcome of the rewards and penalties pass for one validator.
type AttestationReward struct {
	Index            types.ValidatorIndex         `json:"index"`
	Deltas           *precompute.AttestationDelta `json:"deltas"`
	Net              precompute.Delta             `json:"net"`
	Balance          types.Gwei                   `json:"balance"`
	ProjectedBalance types.Gwei                   `json:"projected_balance"`
}

// ProcessRewardsAndPenalties applies the attestation rewards and penalties of the previous
// epoch to the balances of st. The state is left untouched when an error is returned.
func ProcessRewardsAndPenalties(
	ctx context.Context,
	st state.BeaconState,
	pBal *precompute.Balance,
	vp []*precompute.Validator,
	cfg *params.BeaconChainConfig,
) (state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.epoch.ProcessRewardsAndPenalties")
	defer span.End()

	if err := checkState(st); err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	epoch := coretime.CurrentEpoch(st, cfg)
	span.AddAttributes(trace.Int64Attribute("epoch", int64(epoch)))
	if err := ctx.Err(); err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	if pBal == nil {
		err := errors.New("nil balance totals")
		tracing.AnnotateError(span, err)
		return nil, err
	}

	baseRewards, err := epochBaseRewards()
	if err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	start := time.Now()
	st, err = precompute.ProcessRewardsAndPenaltiesPrecompute(st, pBal, vp, cfg, baseRewards.BaseReward)
	if err != nil {
		rewardsAbortedCount.Inc()
		tracing.AnnotateError(span, err)
		return nil, errors.Wrap(err, "could not process rewards and penalties")
	}
	elapsed := time.Since(start)
	rewardsProcessingTime.Observe(float64(elapsed.Milliseconds()))

	log.WithFields(logrus.Fields{
		"epoch":      epoch,
		"validators": len(vp),
		"elapsed":    elapsed,
	}).Info("Processed attestation rewards and penalties")
	return st, nil
}

// EstimateAttestationRewards previews the attestation deltas of the validators at indices
// without mutating st. A nil indices slice covers the whole registry. Results are returned
// in ascending index order with the projected balance each validator would end the epoch
// transition with.
func EstimateAttestationRewards(
	ctx context.Context,
	st state.ReadOnlyBeaconState,
	pBal *precompute.Balance,
	vp []*precompute.Validator,
	cfg *params.BeaconChainConfig,
	indices []types.ValidatorIndex,
	proposerReward precompute.ProposerRewardCalculation,
) ([]*AttestationReward, error) {
	ctx, span := trace.StartSpan(ctx, "core.epoch.EstimateAttestationRewards")
	defer span.End()

	if err := checkState(st); err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	baseRewards, err := epochBaseRewards()
	if err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	var indexed []*precompute.IndexedAttestationDelta
	if indices == nil {
		deltas, err := precompute.AttestationDeltasAll(st, pBal, vp, proposerReward, cfg, baseRewards.BaseReward)
		if err != nil {
			tracing.AnnotateError(span, err)
			return nil, errors.Wrap(err, "could not compute attestation deltas")
		}
		indexed = indexDeltas(deltas)
	} else {
		indexed, err = precompute.AttestationDeltasSubset(st, pBal, vp, proposerReward, indices, cfg, baseRewards.BaseReward)
		if err != nil {
			tracing.AnnotateError(span, err)
			return nil, errors.Wrap(err, "could not compute attestation deltas")
		}
	}
	span.AddAttributes(trace.Int64Attribute("validators", int64(len(indexed))))
	return attestationRewards(st, indexed)
}

// EstimateAttestationRewardsConcurrent previews the attestation deltas of every validator
// using up to workers goroutines. The result matches EstimateAttestationRewards with nil
// indices.
func EstimateAttestationRewardsConcurrent(
	ctx context.Context,
	st state.ReadOnlyBeaconState,
	pBal *precompute.Balance,
	vp []*precompute.Validator,
	cfg *params.BeaconChainConfig,
	proposerReward precompute.ProposerRewardCalculation,
	workers int,
) ([]*AttestationReward, error) {
	ctx, span := trace.StartSpan(ctx, "core.epoch.EstimateAttestationRewardsConcurrent")
	defer span.End()

	if err := checkState(st); err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	span.AddAttributes(trace.Int64Attribute("workers", int64(workers)))
	baseRewards, err := epochBaseRewards()
	if err != nil {
		tracing.AnnotateError(span, err)
		return nil, err
	}
	deltas, err := precompute.AttestationDeltasConcurrent(ctx, st, pBal, vp, proposerReward, cfg, baseRewards.BaseReward, workers)
	if err != nil {
		tracing.AnnotateError(span, err)
		return nil, errors.Wrap(err, "could not compute attestation deltas")
	}
	return attestationRewards(st, indexDeltas(deltas))
}

// epochBaseRewards returns a base reward cache scoped to a single epoch pass. Most
// validators share an effective balance, so base rewards repeat across the registry.
func epochBaseRewards() (*cache.BaseRewardCache, error) {
	c, err := cache.NewBaseRewardCache(0)
	if err != nil {
		return nil, errors.Wrap(err, "could not create base reward cache")
	}
	return c, nil
}

func checkState(st state.ReadOnlyBeaconState) error {
	if st == nil {
		return ErrNilState
	}
	if st.Version() != version.Phase0 {
		return errors.Wrapf(ErrUnsupportedVersion, "got %s", version.String(st.Version()))
	}
	return nil
}

func indexDeltas(deltas []*precompute.AttestationDelta) []*precompute.IndexedAttestationDelta {
	indexed := make([]*precompute.IndexedAttestationDelta, len(deltas))
	for i, d := range deltas {
		indexed[i] = &precompute.IndexedAttestationDelta{Index: types.ValidatorIndex(i), Delta: d}
	}
	return indexed
}

func attestationRewards(
	st state.ReadOnlyBeaconState,
	indexed []*precompute.IndexedAttestationDelta,
) ([]*AttestationReward, error) {
	res := make([]*AttestationReward, len(indexed))
	for i, d := range indexed {
		net, err := d.Delta.Flatten()
		if err != nil {
			return nil, errors.Wrapf(err, "could not flatten delta of validator %d", d.Index)
		}
		bal, err := st.BalanceAtIndex(d.Index)
		if err != nil {
			return nil, err
		}
		projected, err := mathutil.Add64(bal, net.Rewards)
		if err != nil {
			return nil, errors.Wrapf(err, "balance of validator %d overflows", d.Index)
		}
		res[i] = &AttestationReward{
			Index:            d.Index,
			Deltas:           d.Delta,
			Net:              net,
			Balance:          types.Gwei(bal),
			ProjectedBalance: types.Gwei(mathutil.SaturatingSub(projected, net.Penalties)),
		}
	}
	rewardsEstimatedCount.Add(float64(len(res)))
	return res, nil
}

package precompute

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/time"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
	"golang.org/x/sync/errgroup"
)

// AttestationDeltasConcurrent returns the same deltas as AttestationDeltasAll, splitting the
// validator records into contiguous chunks processed by up to workers goroutines. Each chunk
// writes only its own validators' deltas; proposer credits are buffered per chunk and folded
// serially, chunk by chunk, once every worker is done. The first error cancels the remaining
// workers and no deltas are returned.
func AttestationDeltasConcurrent(
	ctx context.Context,
	st state.ReadOnlyBeaconState,
	pBal *Balance,
	vp []*Validator,
	proposerReward ProposerRewardCalculation,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
	workers int,
) ([]*AttestationDelta, error) {
	ctx, span := trace.StartSpan(ctx, "precomputeEpoch.AttestationDeltasConcurrent")
	defer span.End()

	if err := checkRegistries(st, vp); err != nil {
		return nil, err
	}
	deltas := make([]*AttestationDelta, st.NumValidators())
	for i := range deltas {
		deltas[i] = &AttestationDelta{}
	}
	if time.CurrentEpoch(st, cfg) == cfg.GenesisEpoch {
		return deltas, nil
	}
	c, err := newEpochRewardContext(st, pBal, cfg, baseReward)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(vp) + workers - 1) / workers
	if chunkSize == 0 {
		chunkSize = 1
	}
	numChunks := (len(vp) + chunkSize - 1) / chunkSize
	own := make([]*AttestationDelta, len(vp))
	credits := make([][]*ProposerDelta, numChunks)

	g, ctx := errgroup.WithContext(ctx)
	for chunk := 0; chunk < numChunks; chunk++ {
		chunk := chunk
		start := chunk * chunkSize
		end := start + chunkSize
		if end > len(vp) {
			end = len(vp)
		}
		g.Go(func() error {
			var local []*ProposerDelta
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, p, err := c.validatorDelta(vp[i], true)
				if err != nil {
					return errors.Wrapf(err, "validator %d", i)
				}
				own[i] = d
				if p != nil {
					local = append(local, p)
				}
			}
			credits[chunk] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, d := range own {
		if d == nil {
			continue
		}
		if err := deltas[i].combine(d); err != nil {
			return nil, errors.Wrapf(err, "validator %d", i)
		}
	}
	if proposerReward == IncludeProposerReward {
		all := func(types.ValidatorIndex) bool { return true }
		for _, local := range credits {
			for _, p := range local {
				if err := foldProposerDelta(deltas, p, all); err != nil {
					return nil, err
				}
			}
		}
	}
	log.WithFields(logrus.Fields{
		"validators": len(vp),
		"chunks":     numChunks,
	}).Debug("Computed attestation deltas concurrently")
	return deltas, nil
}

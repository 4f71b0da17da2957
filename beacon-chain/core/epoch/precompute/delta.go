package precompute

import (
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
)

// Delta is a pair of reward and penalty magnitudes in Gwei.
type Delta struct {
	Rewards   uint64 `json:"rewards"`
	Penalties uint64 `json:"penalties"`
}

// Reward adds amount to the rewards of the delta.
func (d *Delta) Reward(amount uint64) error {
	r, err := mathutil.Add64(d.Rewards, amount)
	if err != nil {
		return errors.Wrap(err, "could not add reward")
	}
	d.Rewards = r
	return nil
}

// Penalize adds amount to the penalties of the delta.
func (d *Delta) Penalize(amount uint64) error {
	p, err := mathutil.Add64(d.Penalties, amount)
	if err != nil {
		return errors.Wrap(err, "could not add penalty")
	}
	d.Penalties = p
	return nil
}

// Combine adds the rewards and penalties of other to the delta.
func (d *Delta) Combine(other Delta) error {
	if err := d.Reward(other.Rewards); err != nil {
		return err
	}
	return d.Penalize(other.Penalties)
}

// AttestationDelta holds the per component deltas of a validator's attestation duties.
type AttestationDelta struct {
	SourceDelta            Delta `json:"source"`
	TargetDelta            Delta `json:"target"`
	HeadDelta              Delta `json:"head"`
	InclusionDelayDelta    Delta `json:"inclusion_delay"`
	InactivityPenaltyDelta Delta `json:"inactivity_penalty"`
}

// Flatten sums the components into a single delta.
func (a *AttestationDelta) Flatten() (Delta, error) {
	var res Delta
	for _, d := range []Delta{
		a.SourceDelta,
		a.TargetDelta,
		a.HeadDelta,
		a.InclusionDelayDelta,
		a.InactivityPenaltyDelta,
	} {
		if err := res.Combine(d); err != nil {
			return Delta{}, errors.Wrap(err, "could not flatten attestation delta")
		}
	}
	return res, nil
}

func (a *AttestationDelta) combine(other *AttestationDelta) error {
	if err := a.SourceDelta.Combine(other.SourceDelta); err != nil {
		return err
	}
	if err := a.TargetDelta.Combine(other.TargetDelta); err != nil {
		return err
	}
	if err := a.HeadDelta.Combine(other.HeadDelta); err != nil {
		return err
	}
	if err := a.InclusionDelayDelta.Combine(other.InclusionDelayDelta); err != nil {
		return err
	}
	return a.InactivityPenaltyDelta.Combine(other.InactivityPenaltyDelta)
}

// IndexedAttestationDelta pairs a validator index with its attestation delta.
type IndexedAttestationDelta struct {
	Index types.ValidatorIndex `json:"index"`
	Delta *AttestationDelta    `json:"delta"`
}

// ProposerDelta is the credit owed to the proposer that included an attestation.
type ProposerDelta struct {
	ProposerIndex types.ValidatorIndex
	Delta         Delta
}

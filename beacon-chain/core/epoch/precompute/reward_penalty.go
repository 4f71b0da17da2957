package precompute

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/time"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/state"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
	"github.com/sirupsen/logrus"
)

// BaseRewardFunc computes the base reward of a validator from its effective balance and the
// square root of the total active balance.
type BaseRewardFunc func(effectiveBalance, sqrtTotalActiveBalance uint64, cfg *params.BeaconChainConfig) (uint64, error)

// ProposerRewardCalculation selects whether proposer inclusion credits are folded into the
// deltas returned by the attestation delta queries.
type ProposerRewardCalculation int

const (
	// IncludeProposerReward folds proposer credits into the proposer's inclusion delay delta.
	IncludeProposerReward ProposerRewardCalculation = iota
	// ExcludeProposerReward drops proposer credits, leaving only each validator's own attestation deltas.
	ExcludeProposerReward
)

func (c ProposerRewardCalculation) String() string {
	switch c {
	case IncludeProposerReward:
		return "include"
	case ExcludeProposerReward:
		return "exclude"
	default:
		return "unknown"
	}
}

// ProcessRewardsAndPenaltiesPrecompute processes the rewards and penalties of individual validator.
// This is an optimized version by passing in precomputed validator attesting records and and total epoch balances.
// Rewards that overflow a balance abort the whole transition; penalties clamp the balance at zero.
// Balances are written back in a single pass once every delta is known.
func ProcessRewardsAndPenaltiesPrecompute(
	st state.BeaconState,
	pBal *Balance,
	vp []*Validator,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
) (state.BeaconState, error) {
	numOfVals := st.NumValidators()
	if err := checkRegistries(st, vp); err != nil {
		return st, err
	}
	// Can't process rewards and penalties in genesis epoch.
	if time.CurrentEpoch(st, cfg) == cfg.GenesisEpoch {
		for i, b := range st.Balances() {
			vp[i].BeforeEpochTransitionBalance = b
			vp[i].AfterEpochTransitionBalance = b
		}
		return st, nil
	}

	deltas, err := attestationDeltas(st, pBal, vp, IncludeProposerReward, nil, cfg, baseReward)
	if err != nil {
		return nil, errors.Wrap(err, "could not get attestation delta")
	}

	balances := st.Balances()
	newBalances := make([]uint64, len(balances))
	var rewarded, penalized, totalRewards, totalPenalties uint64
	for i, d := range deltas {
		flat, err := d.Flatten()
		if err != nil {
			return nil, errors.Wrapf(err, "could not flatten delta of validator %d", i)
		}
		bal, err := helpers.IncreaseBalanceWithVal(balances[i], flat.Rewards)
		if err != nil {
			return nil, errors.Wrapf(err, "could not increase balance of validator %d", i)
		}
		newBalances[i] = helpers.DecreaseBalanceWithVal(bal, flat.Penalties)

		switch {
		case newBalances[i] > balances[i]:
			rewarded++
		case newBalances[i] < balances[i]:
			penalized++
		}
		// Sums are for reporting only and saturate rather than fail.
		if totalRewards, err = mathutil.Add64(totalRewards, flat.Rewards); err != nil {
			totalRewards = ^uint64(0)
		}
		if totalPenalties, err = mathutil.Add64(totalPenalties, flat.Penalties); err != nil {
			totalPenalties = ^uint64(0)
		}
	}
	if err := st.SetBalances(newBalances); err != nil {
		return nil, errors.Wrap(err, "could not set balances")
	}
	for i := range vp {
		vp[i].BeforeEpochTransitionBalance = balances[i]
		vp[i].AfterEpochTransitionBalance = newBalances[i]
	}

	validatorsRewardedCount.Add(float64(rewarded))
	validatorsPenalizedCount.Add(float64(penalized))
	gweiRewardedCount.Add(float64(totalRewards))
	gweiPenalizedCount.Add(float64(totalPenalties))
	log.WithFields(logrus.Fields{
		"validators": numOfVals,
		"rewarded":   rewarded,
		"penalized":  penalized,
	}).Debug("Applied attestation rewards and penalties")

	return st, nil
}

// AttestationDeltasAll returns the attestation deltas of every validator in the registry,
// in index order, without touching the state.
func AttestationDeltasAll(
	st state.ReadOnlyBeaconState,
	pBal *Balance,
	vp []*Validator,
	proposerReward ProposerRewardCalculation,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
) ([]*AttestationDelta, error) {
	return attestationDeltas(st, pBal, vp, proposerReward, nil, cfg, baseReward)
}

// AttestationDeltasSubset returns the attestation deltas of the requested validators only, in
// ascending index order. Every validator record is still visited, so that proposer credits
// earned from validators outside the subset reach the subset's proposers. Duplicate indices
// and indices beyond the registry are ignored.
func AttestationDeltasSubset(
	st state.ReadOnlyBeaconState,
	pBal *Balance,
	vp []*Validator,
	proposerReward ProposerRewardCalculation,
	subset []types.ValidatorIndex,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
) ([]*IndexedAttestationDelta, error) {
	members := SubsetBitlist(subset, st.NumValidators())
	deltas, err := attestationDeltas(st, pBal, vp, proposerReward, &members, cfg, baseReward)
	if err != nil {
		return nil, err
	}
	res := make([]*IndexedAttestationDelta, 0, members.Count())
	for i, d := range deltas {
		if members.BitAt(uint64(i)) {
			res = append(res, &IndexedAttestationDelta{Index: types.ValidatorIndex(i), Delta: d})
		}
	}
	return res, nil
}

// SubsetBitlist marks the given indices in a bitlist sized to the validator registry.
func SubsetBitlist(subset []types.ValidatorIndex, numValidators int) bitfield.Bitlist {
	members := bitfield.NewBitlist(uint64(numValidators))
	for _, idx := range subset {
		if uint64(idx) < members.Len() {
			members.SetBitAt(uint64(idx), true)
		}
	}
	return members
}

// FinalityDelay returns the finality delay using the beacon state.
//
// Spec code:
//
//	def get_finality_delay(state: BeaconState) -> uint64:
//	    return get_previous_epoch(state) - state.finalized_checkpoint.epoch
func FinalityDelay(st state.ReadOnlyBeaconState, cfg *params.BeaconChainConfig) (uint64, error) {
	delay, err := time.PrevEpoch(st, cfg).SafeSub(uint64(st.FinalizedCheckpointEpoch()))
	if err != nil {
		return 0, errors.Wrap(err, "finalized epoch is ahead of previous epoch")
	}
	return uint64(delay), nil
}

// checkRegistries guards against out-of-bounds access: the validator records, the validator
// registry and the balances must line up one to one.
func checkRegistries(st state.ReadOnlyBeaconState, vp []*Validator) error {
	numOfVals := st.NumValidators()
	if len(vp) > numOfVals {
		return &DeltaOutOfBoundsError{Index: types.ValidatorIndex(numOfVals)}
	}
	if len(vp) != numOfVals || numOfVals != st.BalancesLength() {
		return errors.Wrapf(ErrValidatorStatusesInconsistent,
			"%d records, %d validators, %d balances", len(vp), numOfVals, st.BalancesLength())
	}
	for i, v := range vp {
		if v == nil {
			return errors.Wrapf(ErrValidatorStatusesInconsistent, "nil record at index %d", i)
		}
	}
	return nil
}

// epochRewardContext carries the per epoch inputs shared by every validator's delta.
type epochRewardContext struct {
	pBal                   *Balance
	finalityDelay          uint64
	sqrtTotalActiveBalance uint64
	cfg                    *params.BeaconChainConfig
	baseReward             BaseRewardFunc
}

func newEpochRewardContext(
	st state.ReadOnlyBeaconState,
	pBal *Balance,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
) (*epochRewardContext, error) {
	if pBal == nil {
		return nil, errors.New("nil balance totals")
	}
	if baseReward == nil {
		baseReward = helpers.BaseReward
	}
	finalityDelay, err := FinalityDelay(st, cfg)
	if err != nil {
		return nil, err
	}
	return &epochRewardContext{
		pBal:                   pBal,
		finalityDelay:          finalityDelay,
		sqrtTotalActiveBalance: helpers.SqrtTotalActiveBalance(pBal.ActiveCurrentEpoch),
		cfg:                    cfg,
		baseReward:             baseReward,
	}, nil
}

// validatorDelta computes the deltas owed by a single validator record. The own delta is nil
// when the validator is ineligible or not wanted; the proposer credit is nil when the
// validator earned its includer nothing.
func (c *epochRewardContext) validatorDelta(v *Validator, wantOwn bool) (*AttestationDelta, *ProposerDelta, error) {
	// Ineligible validators are skipped entirely. Any unslashed previous epoch
	// attester is active, so no inclusion credit is lost by doing so.
	if !v.IsEligible {
		return nil, nil, nil
	}
	br, err := c.baseReward(v.CurrentEpochEffectiveBalance, c.sqrtTotalActiveBalance, c.cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not compute base reward")
	}
	inclusion, proposer, err := InclusionDelayDelta(v, br, c.cfg)
	if err != nil {
		return nil, nil, err
	}
	if !wantOwn {
		return nil, proposer, nil
	}

	own := &AttestationDelta{InclusionDelayDelta: inclusion}
	if own.SourceDelta, err = AttestationComponentDelta(
		v.IsPrevEpochAttester && !v.IsSlashed, c.pBal.PrevEpochAttested, c.pBal, br, c.finalityDelay, c.cfg,
	); err != nil {
		return nil, nil, errors.Wrap(err, "could not compute source delta")
	}
	if own.TargetDelta, err = AttestationComponentDelta(
		v.IsPrevEpochTargetAttester && !v.IsSlashed, c.pBal.PrevEpochTargetAttested, c.pBal, br, c.finalityDelay, c.cfg,
	); err != nil {
		return nil, nil, errors.Wrap(err, "could not compute target delta")
	}
	if own.HeadDelta, err = AttestationComponentDelta(
		v.IsPrevEpochHeadAttester && !v.IsSlashed, c.pBal.PrevEpochHeadAttested, c.pBal, br, c.finalityDelay, c.cfg,
	); err != nil {
		return nil, nil, errors.Wrap(err, "could not compute head delta")
	}
	if own.InactivityPenaltyDelta, err = InactivityPenaltyDelta(v, br, c.finalityDelay, c.cfg); err != nil {
		return nil, nil, err
	}
	return own, proposer, nil
}

func attestationDeltas(
	st state.ReadOnlyBeaconState,
	pBal *Balance,
	vp []*Validator,
	proposerReward ProposerRewardCalculation,
	subset *bitfield.Bitlist,
	cfg *params.BeaconChainConfig,
	baseReward BaseRewardFunc,
) ([]*AttestationDelta, error) {
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
	include := func(idx types.ValidatorIndex) bool {
		return subset == nil || subset.BitAt(uint64(idx))
	}

	for i, v := range vp {
		own, proposer, err := c.validatorDelta(v, include(types.ValidatorIndex(i)))
		if err != nil {
			return nil, errors.Wrapf(err, "validator %d", i)
		}
		if own != nil {
			if i >= len(deltas) {
				return nil, &DeltaOutOfBoundsError{Index: types.ValidatorIndex(i)}
			}
			if err := deltas[i].combine(own); err != nil {
				return nil, errors.Wrapf(err, "validator %d", i)
			}
		}
		if proposerReward == IncludeProposerReward && proposer != nil {
			if err := foldProposerDelta(deltas, proposer, include); err != nil {
				return nil, err
			}
		}
	}
	return deltas, nil
}

func foldProposerDelta(deltas []*AttestationDelta, p *ProposerDelta, include func(types.ValidatorIndex) bool) error {
	if !include(p.ProposerIndex) {
		return nil
	}
	if uint64(p.ProposerIndex) >= uint64(len(deltas)) {
		return errors.Wrapf(ErrValidatorStatusesInconsistent, "proposer index %d out of range", p.ProposerIndex)
	}
	if err := deltas[p.ProposerIndex].InclusionDelayDelta.Combine(p.Delta); err != nil {
		return errors.Wrapf(err, "could not credit proposer %d", p.ProposerIndex)
	}
	return nil
}

// AttestationComponentDelta computes the source, target or head delta of a validator.
//
// Spec code:
//
//	def get_attestation_component_deltas(state: BeaconState,
//	                                     attestations: Sequence[PendingAttestation]
//	                                     ) -> Tuple[Sequence[Gwei], Sequence[Gwei]]:
//	    ...
//	    for index in get_eligible_validator_indices(state):
//	        if index in unslashed_attesting_indices:
//	            increment = EFFECTIVE_BALANCE_INCREMENT  # Factored out from balance totals to avoid uint64 overflow
//	            if is_in_inactivity_leak(state):
//	                # Since full base reward will be canceled out by inactivity penalty deltas,
//	                # optimal participation receives full base reward compensation here.
//	                rewards[index] += get_base_reward(state, index)
//	            else:
//	                reward_numerator = get_base_reward(state, index) * (attesting_balance // increment)
//	                rewards[index] += reward_numerator // (total_balance // increment)
//	        else:
//	            penalties[index] += get_base_reward(state, index)
func AttestationComponentDelta(
	isMember bool,
	attestingBalance uint64,
	pBal *Balance,
	baseReward, finalityDelay uint64,
	cfg *params.BeaconChainConfig,
) (Delta, error) {
	var d Delta
	if !isMember {
		if err := d.Penalize(baseReward); err != nil {
			return Delta{}, err
		}
		return d, nil
	}
	if cfg.IsInactivityLeak(finalityDelay) {
		if err := d.Reward(baseReward); err != nil {
			return Delta{}, err
		}
		return d, nil
	}
	increment := cfg.EffectiveBalanceIncrement
	attestingIncrements, err := mathutil.Div64(attestingBalance, increment)
	if err != nil {
		return Delta{}, err
	}
	rewardNumerator, err := mathutil.Mul64(baseReward, attestingIncrements)
	if err != nil {
		return Delta{}, err
	}
	totalIncrements, err := mathutil.Div64(pBal.ActiveCurrentEpoch, increment)
	if err != nil {
		return Delta{}, err
	}
	reward, err := mathutil.Div64(rewardNumerator, totalIncrements)
	if err != nil {
		return Delta{}, err
	}
	if err := d.Reward(reward); err != nil {
		return Delta{}, err
	}
	return d, nil
}

// InclusionDelayDelta computes the inclusion delay reward of an unslashed previous epoch
// attester, together with the credit owed to the proposer that included the attestation.
//
// Spec code:
//
//	def get_inclusion_delay_deltas(state: BeaconState) -> Tuple[Sequence[Gwei], Sequence[Gwei]]:
//	    ...
//	    for index in get_unslashed_attesting_indices(state, matching_source_attestations):
//	        attestation = min([
//	            a for a in matching_source_attestations
//	            if index in get_attesting_indices(state, a.data, a.aggregation_bits)
//	        ], key=lambda a: a.inclusion_delay)
//	        rewards[attestation.proposer_index] += get_proposer_reward(state, index)
//	        max_attester_reward = Gwei(get_base_reward(state, index) - get_proposer_reward(state, index))
//	        rewards[index] += Gwei(max_attester_reward // attestation.inclusion_delay)
func InclusionDelayDelta(v *Validator, baseReward uint64, cfg *params.BeaconChainConfig) (Delta, *ProposerDelta, error) {
	var d Delta
	if !v.IsPrevEpochAttester || v.IsSlashed {
		return d, nil, nil
	}
	if v.InclusionInfo == nil {
		return Delta{}, nil, errors.Wrap(ErrValidatorStatusesInconsistent, "attester has no inclusion info")
	}
	pr, err := proposerReward(baseReward, cfg)
	if err != nil {
		return Delta{}, nil, err
	}
	maxAttesterReward, err := mathutil.Sub64(baseReward, pr)
	if err != nil {
		return Delta{}, nil, err
	}
	reward, err := mathutil.Div64(maxAttesterReward, uint64(v.InclusionInfo.Delay))
	if err != nil {
		return Delta{}, nil, errors.Wrap(err, "could not divide by inclusion delay")
	}
	if err := d.Reward(reward); err != nil {
		return Delta{}, nil, err
	}
	return d, &ProposerDelta{
		ProposerIndex: v.InclusionInfo.ProposerIndex,
		Delta:         Delta{Rewards: pr},
	}, nil
}

// InactivityPenaltyDelta computes the inactivity penalty of a validator while the chain is in
// an inactivity leak.
//
// Spec code:
//
//	def get_inactivity_penalty_deltas(state: BeaconState) -> Tuple[Sequence[Gwei], Sequence[Gwei]]:
//	    ...
//	    if is_in_inactivity_leak(state):
//	        matching_target_attestations = get_matching_target_attestations(state, get_previous_epoch(state))
//	        matching_target_attesting_indices = get_unslashed_attesting_indices(state, matching_target_attestations)
//	        for index in get_eligible_validator_indices(state):
//	            # If validator is performing optimally this cancels all rewards for a neutral balance
//	            base_reward = get_base_reward(state, index)
//	            penalties[index] += Gwei(BASE_REWARDS_PER_EPOCH * base_reward - get_proposer_reward(state, index))
//	            if index not in matching_target_attesting_indices:
//	                effective_balance = state.validators[index].effective_balance
//	                penalties[index] += Gwei(effective_balance * get_finality_delay(state) // INACTIVITY_PENALTY_QUOTIENT)
func InactivityPenaltyDelta(v *Validator, baseReward, finalityDelay uint64, cfg *params.BeaconChainConfig) (Delta, error) {
	var d Delta
	if !cfg.IsInactivityLeak(finalityDelay) {
		return d, nil
	}
	pr, err := proposerReward(baseReward, cfg)
	if err != nil {
		return Delta{}, err
	}
	perEpoch, err := mathutil.Mul64(cfg.BaseRewardsPerEpoch, baseReward)
	if err != nil {
		return Delta{}, err
	}
	neutral, err := mathutil.Sub64(perEpoch, pr)
	if err != nil {
		return Delta{}, err
	}
	if err := d.Penalize(neutral); err != nil {
		return Delta{}, err
	}
	if v.IsSlashed || !v.IsPrevEpochTargetAttester {
		scaled, err := mathutil.Mul64(v.CurrentEpochEffectiveBalance, finalityDelay)
		if err != nil {
			return Delta{}, err
		}
		extra, err := mathutil.Div64(scaled, cfg.InactivityPenaltyQuotient)
		if err != nil {
			return Delta{}, err
		}
		if err := d.Penalize(extra); err != nil {
			return Delta{}, err
		}
	}
	return d, nil
}

// proposerReward is the share of an attester's base reward owed to the proposer that included it.
func proposerReward(baseReward uint64, cfg *params.BeaconChainConfig) (uint64, error) {
	return mathutil.Div64(baseReward, cfg.ProposerRewardQuotient)
}

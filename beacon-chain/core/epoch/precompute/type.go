package precompute

import types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"

// Validator stores the pre computation of individual validator's attesting records these records
// consist of attestation votes, block inclusion record. Pre computing and storing such record
// is essential for process epoch optimizations.
type Validator struct {
	// IsSlashed is true if the validator has been slashed.
	IsSlashed bool `json:"is_slashed"`
	// IsWithdrawableCurrentEpoch is true if the validator can withdraw current epoch.
	IsWithdrawableCurrentEpoch bool `json:"is_withdrawable_current_epoch,omitempty"`
	// IsActiveCurrentEpoch is true if the validator was active current epoch.
	IsActiveCurrentEpoch bool `json:"is_active_current_epoch,omitempty"`
	// IsActivePrevEpoch is true if the validator was active prev epoch.
	IsActivePrevEpoch bool `json:"is_active_prev_epoch,omitempty"`
	// IsEligible is true if the validator takes part in rewards and penalties for the previous
	// epoch: active in it, or slashed and not yet withdrawable.
	IsEligible bool `json:"is_eligible"`
	// IsCurrentEpochAttester is true if the validator attested current epoch.
	IsCurrentEpochAttester bool `json:"is_current_epoch_attester,omitempty"`
	// IsCurrentEpochTargetAttester is true if the validator attested current epoch target.
	IsCurrentEpochTargetAttester bool `json:"is_current_epoch_target_attester,omitempty"`
	// IsPrevEpochAttester is true if the validator attested previous epoch.
	IsPrevEpochAttester bool `json:"is_prev_epoch_attester"`
	// IsPrevEpochTargetAttester is true if the validator attested previous epoch target.
	IsPrevEpochTargetAttester bool `json:"is_prev_epoch_target_attester"`
	// IsHeadAttester is true if the validator attested head.
	IsPrevEpochHeadAttester bool `json:"is_prev_epoch_head_attester"`

	// CurrentEpochEffectiveBalance is how much effective balance this validator has current epoch.
	CurrentEpochEffectiveBalance uint64 `json:"current_epoch_effective_balance"`
	// InclusionInfo describes the earliest inclusion of this validator's previous epoch
	// attestation. It is set if and only if IsPrevEpochAttester is.
	InclusionInfo *InclusionInfo `json:"inclusion_info,omitempty"`
	// BeforeEpochTransitionBalance is the validator balance prior to epoch transition.
	BeforeEpochTransitionBalance uint64 `json:"before_epoch_transition_balance,omitempty"`
	// AfterEpochTransitionBalance is the validator balance after epoch transition.
	AfterEpochTransitionBalance uint64 `json:"after_epoch_transition_balance,omitempty"`
}

// InclusionInfo is the inclusion record of an attestation.
type InclusionInfo struct {
	// Delay is the distance between the attestation slot and the slot of the block including it.
	Delay types.Slot `json:"delay"`
	// ProposerIndex is the index of proposer at slot where this validator's attestation was included.
	ProposerIndex types.ValidatorIndex `json:"proposer_index"`
}

// Balance stores the pre computation of the total participated balances for a given epoch
// Pre computing and storing such record is essential for process epoch optimizations.
type Balance struct {
	// ActiveCurrentEpoch is the total effective balance of all active validators during current epoch.
	ActiveCurrentEpoch uint64 `json:"active_current_epoch"`
	// ActivePrevEpoch is the total effective balance of all active validators during prev epoch.
	ActivePrevEpoch uint64 `json:"active_prev_epoch,omitempty"`
	// CurrentEpochAttested is the total effective balance of all validators who attested during current epoch.
	CurrentEpochAttested uint64 `json:"current_epoch_attested,omitempty"`
	// CurrentEpochTargetAttested is the total effective balance of all validators who attested
	// for epoch boundary block during current epoch.
	CurrentEpochTargetAttested uint64 `json:"current_epoch_target_attested,omitempty"`
	// PrevEpochAttested is the total effective balance of all validators who attested during prev epoch.
	PrevEpochAttested uint64 `json:"prev_epoch_attested"`
	// PrevEpochTargetAttested is the total effective balance of all validators who attested
	// for epoch boundary block during prev epoch.
	PrevEpochTargetAttested uint64 `json:"prev_epoch_target_attested"`
	// PrevEpochHeadAttested is the total effective balance of all validators who attested
	// correctly for head block during prev epoch.
	PrevEpochHeadAttested uint64 `json:"prev_epoch_head_attested"`
}

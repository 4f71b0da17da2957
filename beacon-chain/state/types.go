package state

import (
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// Validator is the registry entry of a single validator, restricted to the
// fields epoch rewards processing reads.
type Validator struct {
	EffectiveBalance           uint64      `json:"effective_balance"`
	Slashed                    bool        `json:"slashed"`
	ActivationEligibilityEpoch types.Epoch `json:"activation_eligibility_epoch"`
	ActivationEpoch            types.Epoch `json:"activation_epoch"`
	ExitEpoch                  types.Epoch `json:"exit_epoch"`
	WithdrawableEpoch          types.Epoch `json:"withdrawable_epoch"`
}

// Copy returns a copy of the validator, or nil for a nil receiver.
func (v *Validator) Copy() *Validator {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// Checkpoint is an epoch together with the block root it committed to.
type Checkpoint struct {
	Epoch types.Epoch `json:"epoch"`
	Root  []byte      `json:"root,omitempty"`
}

// Copy returns a copy of the checkpoint, or nil for a nil receiver.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	cp := &Checkpoint{Epoch: c.Epoch}
	if c.Root != nil {
		cp.Root = make([]byte, len(c.Root))
		copy(cp.Root, c.Root)
	}
	return cp
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/prysm-rewards/cmd/flags"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

type textRenderer interface {
	renderText(w io.Writer, au aurora.Aurora) error
}

type deltasReport struct {
	Epoch          types.Epoch                `json:"epoch"`
	ProposerReward string                     `json:"proposer_reward"`
	Rewards        []*epoch.AttestationReward `json:"rewards"`
}

type balanceChange struct {
	Index  types.ValidatorIndex `json:"index"`
	Before types.Gwei           `json:"before"`
	After  types.Gwei           `json:"after"`
}

type processReport struct {
	Epoch     types.Epoch      `json:"epoch"`
	Rewarded  int              `json:"rewarded"`
	Penalized int              `json:"penalized"`
	Changes   []*balanceChange `json:"changes"`
}

func newProcessReport(e types.Epoch, vp []*precompute.Validator) *processReport {
	r := &processReport{Epoch: e, Changes: make([]*balanceChange, len(vp))}
	for i, v := range vp {
		r.Changes[i] = &balanceChange{
			Index:  types.ValidatorIndex(i),
			Before: types.Gwei(v.BeforeEpochTransitionBalance),
			After:  types.Gwei(v.AfterEpochTransitionBalance),
		}
		switch {
		case v.AfterEpochTransitionBalance > v.BeforeEpochTransitionBalance:
			r.Rewarded++
		case v.AfterEpochTransitionBalance < v.BeforeEpochTransitionBalance:
			r.Penalized++
		}
	}
	return r
}

// render writes v to w in the named output format.
func render(w io.Writer, format string, colors bool, v textRenderer) error {
	switch format {
	case flags.JSONOutput:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case flags.PrettyOutput:
		_, err := pretty.Fprintf(w, "%# v\n", v)
		return err
	default:
		return v.renderText(w, aurora.NewAurora(colors))
	}
}

func (r *deltasReport) renderText(w io.Writer, au aurora.Aurora) error {
	if _, err := fmt.Fprintf(w, "%s %d (proposer reward: %s)\n",
		au.Bold("Attestation deltas for epoch"), r.Epoch, r.ProposerReward); err != nil {
		return err
	}
	for _, reward := range r.Rewards {
		d := reward.Deltas
		if _, err := fmt.Fprintf(w,
			"validator %d: net %s Gwei (source %s, target %s, head %s, inclusion %s, inactivity %s) balance %s -> %s\n",
			reward.Index,
			signed(au, reward.Net),
			signed(au, d.SourceDelta),
			signed(au, d.TargetDelta),
			signed(au, d.HeadDelta),
			signed(au, d.InclusionDelayDelta),
			signed(au, d.InactivityPenaltyDelta),
			gwei(uint64(reward.Balance)),
			gwei(uint64(reward.ProjectedBalance)),
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *processReport) renderText(w io.Writer, au aurora.Aurora) error {
	if _, err := fmt.Fprintf(w, "%s %d: %s rewarded, %s penalized\n",
		au.Bold("Processed rewards and penalties for epoch"), r.Epoch,
		au.Green(r.Rewarded), au.Red(r.Penalized)); err != nil {
		return err
	}
	for _, c := range r.Changes {
		change := precompute.Delta{}
		if c.After >= c.Before {
			change.Rewards = uint64(c.After - c.Before)
		} else {
			change.Penalties = uint64(c.Before - c.After)
		}
		if _, err := fmt.Fprintf(w, "validator %d: %s -> %s (%s)\n",
			c.Index, gwei(uint64(c.Before)), gwei(uint64(c.After)), signed(au, change)); err != nil {
			return err
		}
	}
	return nil
}

// signed renders the net of a delta with its sign, green when positive and red when negative.
func signed(au aurora.Aurora, d precompute.Delta) string {
	switch {
	case d.Rewards > d.Penalties:
		return au.Green("+" + gwei(d.Rewards-d.Penalties)).String()
	case d.Rewards < d.Penalties:
		return au.Red("-" + gwei(d.Penalties-d.Rewards)).String()
	default:
		return "0"
	}
}

func gwei(amount uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(amount))
}

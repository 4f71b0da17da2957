// Package main defines the rewards tool, which computes phase0 attestation rewards and
// penalties over a beacon state snapshot, either as a read-only preview of the deltas or by
// applying them to the balances.
package main

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/epoch/precompute"
	coretime "github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/time"
	"github.com/prysmaticlabs/prysm-rewards/cmd/flags"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-rewards/io/logs"
	"github.com/prysmaticlabs/prysm-rewards/monitoring/prometheus"
	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

var appFlags = flags.WrapFlags(flags.AppFlags)

var addLogCollector sync.Once

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rewards"
	app.Usage = "computes phase0 attestation rewards and penalties of a beacon state snapshot"
	app.Version = version.Version()
	app.Flags = appFlags
	app.Before = before
	app.Commands = []*cli.Command{
		{
			Name:  "deltas",
			Usage: "Preview the attestation deltas of each validator without changing balances",
			Flags: []cli.Flag{
				flags.SnapshotFlag,
				flags.SubsetFlag,
				flags.ExcludeProposerRewardFlag,
				flags.WorkersFlag,
			},
			Action: deltasAction,
		},
		{
			Name:  "process",
			Usage: "Apply the attestation rewards and penalties and report the balance changes",
			Flags: []cli.Flag{
				flags.SnapshotFlag,
			},
			Action: processAction,
		},
		{
			Name:   "show-config",
			Usage:  "Print the chain config in use as YAML",
			Action: showConfigAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func before(ctx *cli.Context) error {
	// Load any flags from file, if specified.
	if ctx.IsSet(flags.ConfigFileFlag.Name) {
		if err := altsrc.InitInputSourceWithContext(
			appFlags,
			altsrc.NewYamlSourceFromFlagFunc(flags.ConfigFileFlag.Name))(ctx); err != nil {
			return err
		}
	}

	level, err := logrus.ParseLevel(ctx.String(flags.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	addLogCollector.Do(func() {
		logrus.AddHook(prometheus.NewLogrusCollector())
	})

	logFileName := ctx.String(flags.LogFileName.Name)
	// If persistent log files are written, disable coloring: the ANSI codes are gibberish in files.
	formatter, err := logs.Formatter(ctx.String(flags.LogFormat.Name), logFileName == "")
	if err != nil {
		return err
	}
	logrus.SetFormatter(formatter)
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName, ctx.String(flags.LogFormat.Name)); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	return nil
}

// chainConfig picks the chain config file if given, else the minimal preset if asked for,
// else the named preset.
func chainConfig(ctx *cli.Context) (*params.BeaconChainConfig, error) {
	if path := ctx.String(flags.ChainConfigFileFlag.Name); path != "" {
		cfg, err := params.LoadChainConfigFile(path)
		if err != nil {
			return nil, err
		}
		log.WithField("configName", cfg.ConfigName).Debug("Loaded chain config file")
		return cfg, nil
	}
	if ctx.Bool(flags.MinimalConfigFlag.Name) {
		return params.MinimalSpecConfig(), nil
	}
	name := ctx.String(flags.ConfigNameFlag.Name)
	cfg, ok := params.ByName(name)
	if !ok {
		return nil, errors.Errorf("unknown chain config %q", name)
	}
	return cfg, nil
}

func loadInputs(ctx *cli.Context) (*epochInputs, *params.BeaconChainConfig, error) {
	cfg, err := chainConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	snap, err := readSnapshot(ctx.String(flags.SnapshotFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	in, err := snap.inputs(ctx.Context, cfg)
	if err != nil {
		return nil, nil, err
	}
	return in, cfg, nil
}

func deltasAction(ctx *cli.Context) error {
	in, cfg, err := loadInputs(ctx)
	if err != nil {
		return err
	}
	proposerReward := precompute.IncludeProposerReward
	if ctx.Bool(flags.ExcludeProposerRewardFlag.Name) {
		proposerReward = precompute.ExcludeProposerReward
	}
	subset, err := parseSubset(ctx.StringSlice(flags.SubsetFlag.Name))
	if err != nil {
		return err
	}
	workers := ctx.Int(flags.WorkersFlag.Name)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var rewards []*epoch.AttestationReward
	if subset == nil && workers > 1 {
		log.WithField("workers", workers).Debug("Computing deltas concurrently")
		rewards, err = epoch.EstimateAttestationRewardsConcurrent(
			ctx.Context, in.state, in.balance, in.statuses, cfg, proposerReward, workers)
	} else {
		rewards, err = epoch.EstimateAttestationRewards(
			ctx.Context, in.state, in.balance, in.statuses, cfg, subset, proposerReward)
	}
	if err != nil {
		return err
	}
	return render(ctx.App.Writer, ctx.String(flags.OutputFlag.Name), !ctx.Bool(flags.NoColorFlag.Name), &deltasReport{
		Epoch:          coretime.CurrentEpoch(in.state, cfg),
		ProposerReward: proposerReward.String(),
		Rewards:        rewards,
	})
}

func processAction(ctx *cli.Context) error {
	in, cfg, err := loadInputs(ctx)
	if err != nil {
		return err
	}
	st, err := epoch.ProcessRewardsAndPenalties(ctx.Context, in.state, in.balance, in.statuses, cfg)
	if err != nil {
		return err
	}
	report := newProcessReport(coretime.CurrentEpoch(st, cfg), in.statuses)
	return render(ctx.App.Writer, ctx.String(flags.OutputFlag.Name), !ctx.Bool(flags.NoColorFlag.Name), report)
}

func showConfigAction(ctx *cli.Context) error {
	cfg, err := chainConfig(ctx)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(params.ConfigToYaml(cfg))
	return err
}

// parseSubset parses validator indices. Each value may hold a comma separated list.
// No values means no subset.
func parseSubset(values []string) ([]types.ValidatorIndex, error) {
	if len(values) == 0 {
		return nil, nil
	}
	subset := make([]types.ValidatorIndex, 0, len(values))
	for _, v := range values {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			idx, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid validator index %q", field)
			}
			subset = append(subset, types.ValidatorIndex(idx))
		}
	}
	return subset, nil
}

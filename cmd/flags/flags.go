// Package flags defines the command line flags of the rewards tool.
package flags

import (
	"github.com/prysmaticlabs/prysm-rewards/config/params"
	"github.com/prysmaticlabs/prysm-rewards/io/logs"
	"github.com/urfave/cli/v2"
)

// Output format names.
const (
	TextOutput   = "text"
	JSONOutput   = "json"
	PrettyOutput = "pretty"
)

var (
	logFormat    string
	outputFormat string
	configName   string
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output format.
	LogFormat = EnumValue{
		Name:        "log-format",
		Usage:       "Specify log formatting",
		Destination: &logFormat,
		Enum:        []string{logs.TextFormat, logs.JSONFormat, logs.FluentdFormat},
		Value:       logs.TextFormat,
	}.GenericFlag()
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}
	// ChainConfigFileFlag specifies the filepath to load chain config values.
	ChainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "The path to a YAML file with chain config values",
	}
	// MinimalConfigFlag selects the minimal preset when no chain config file is given.
	MinimalConfigFlag = &cli.BoolFlag{
		Name:  "minimal-config",
		Usage: "Use minimal config with parameters as defined in the spec.",
	}
	// ConfigNameFlag selects a named chain config preset.
	ConfigNameFlag = EnumValue{
		Name:        "config-name",
		Usage:       "Named chain config to use when no chain config file is given",
		Destination: &configName,
		Enum: []string{
			params.ConfigNames[params.Mainnet],
			params.ConfigNames[params.Minimal],
			params.ConfigNames[params.EndToEnd],
		},
		Value: params.ConfigNames[params.Mainnet],
	}.GenericFlag()
	// OutputFlag selects how results are rendered on stdout.
	OutputFlag = EnumValue{
		Name:        "output",
		Usage:       "Result rendering",
		Destination: &outputFormat,
		Enum:        []string{TextOutput, JSONOutput, PrettyOutput},
		Value:       TextOutput,
	}.GenericFlag()
	// NoColorFlag disables ANSI colors in text output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored text output",
	}
	// SnapshotFlag is the path of the YAML or JSON state snapshot to read.
	SnapshotFlag = &cli.StringFlag{
		Name:     "snapshot",
		Usage:    "Path to a YAML or JSON beacon state snapshot",
		Required: true,
	}
	// SubsetFlag restricts delta output to the given validator indices.
	SubsetFlag = &cli.StringSliceFlag{
		Name:  "subset",
		Usage: "Only report deltas of these validator indices",
	}
	// ExcludeProposerRewardFlag drops proposer inclusion credits from the reported deltas.
	ExcludeProposerRewardFlag = &cli.BoolFlag{
		Name:  "exclude-proposer-reward",
		Usage: "Report each validator's own attestation deltas without proposer credits",
	}
	// WorkersFlag sets the number of goroutines computing deltas. Zero uses GOMAXPROCS.
	WorkersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of goroutines computing deltas, 0 for GOMAXPROCS, 1 for serial",
		Value: 1,
	}
)

// AppFlags are the flags shared by every subcommand.
var AppFlags = []cli.Flag{
	VerbosityFlag,
	LogFormat,
	LogFileName,
	ConfigFileFlag,
	ChainConfigFileFlag,
	MinimalConfigFlag,
	ConfigNameFlag,
	OutputFlag,
	NoColorFlag,
}

package params

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var log = logrus.WithField("prefix", "params")

// LoadChainConfigFile reads a chain config yaml file and returns the resulting
// config. Values absent from the file keep their preset defaults: mainnet,
// unless the file declares the minimal preset base.
func LoadChainConfigFile(chainConfigFileName string) (*BeaconChainConfig, error) {
	yamlFile, err := ioutil.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read chain config file")
	}
	return UnmarshalConfig(yamlFile)
}

// UnmarshalConfig applies the yaml document on top of the preset it names.
// Unknown keys are reported and skipped so that full network configs from
// other clients can be loaded. Malformed values are an error.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	conf := MainnetConfig()
	hasConfigName := false
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if isMinimalPresetLine(line) {
			conf = MinimalSpecConfig()
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			replaced, err := replaceHexWithSequence(line)
			if err != nil {
				return nil, err
			}
			lines[i] = replaced
		}
	}
	if err := yaml.UnmarshalStrict([]byte(strings.Join(lines, "\n")), conf); err != nil {
		unknown, ok := unknownFields(err)
		if !ok {
			return nil, errors.Wrap(err, "could not parse chain config yaml")
		}
		log.WithField("entries", unknown).Warn("Ignoring unknown chain config entries")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	if conf.SlotsPerEpoch == 0 {
		return nil, errors.New("SLOTS_PER_EPOCH must be positive")
	}
	if conf.EffectiveBalanceIncrement == 0 {
		return nil, errors.New("EFFECTIVE_BALANCE_INCREMENT must be positive")
	}
	log.WithFields(logrus.Fields{
		"configName":    conf.ConfigName,
		"presetBase":    conf.PresetBase,
		"slotsPerEpoch": conf.SlotsPerEpoch,
	}).Debug("Loaded chain config")
	return conf, nil
}

// unknownFields reports whether every problem in err is an unknown key. Values of the
// wrong type must fail the load rather than leave the preset default in place.
func unknownFields(err error) ([]string, bool) {
	typeErr, ok := err.(*yaml.TypeError)
	if !ok {
		return nil, false
	}
	for _, msg := range typeErr.Errors {
		if !strings.Contains(msg, "not found in type") {
			return nil, false
		}
	}
	return typeErr.Errors, true
}

func isMinimalPresetLine(line string) bool {
	return strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
		strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
		strings.HasPrefix(line, "PRESET_BASE: minimal") ||
		strings.HasPrefix(line, "# Minimal preset")
}

// replaceHexWithSequence rewrites `KEY: 0xabcd` as `KEY: [171, 205]` so the
// yaml decoder can fill byte slices.
func replaceHexWithSequence(line string) (string, error) {
	parts := strings.SplitN(line, "0x", 2)
	raw := strings.TrimSpace(parts[1])
	if idx := strings.IndexAny(raw, " #"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.Trim(raw, `'"`)
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return "", errors.Wrapf(err, "could not decode hex value in %q", line)
	}
	items := make([]string, len(decoded))
	for i, b := range decoded {
		items[i] = fmt.Sprintf("%d", b)
	}
	prefix := strings.TrimRight(parts[0], `'" `)
	return prefix + " [" + strings.Join(items, ", ") + "]", nil
}

// ConfigToYaml takes a provided config and outputs the reward-relevant part of
// its contents in yaml, in the same layout LoadChainConfigFile accepts.
func ConfigToYaml(cfg *BeaconChainConfig) []byte {
	lines := []string{
		fmt.Sprintf("PRESET_BASE: '%s'", cfg.PresetBase),
		fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName),
		fmt.Sprintf("GENESIS_FORK_VERSION: %#x", cfg.GenesisForkVersion),
		fmt.Sprintf("ALTAIR_FORK_VERSION: %#x", cfg.AltairForkVersion),
		fmt.Sprintf("ALTAIR_FORK_EPOCH: %d", cfg.AltairForkEpoch),
		fmt.Sprintf("SECONDS_PER_SLOT: %d", cfg.SecondsPerSlot),
		fmt.Sprintf("SLOTS_PER_EPOCH: %d", cfg.SlotsPerEpoch),
		fmt.Sprintf("MIN_ATTESTATION_INCLUSION_DELAY: %d", cfg.MinAttestationInclusionDelay),
		fmt.Sprintf("MIN_EPOCHS_TO_INACTIVITY_PENALTY: %d", cfg.MinEpochsToInactivityPenalty),
		fmt.Sprintf("MIN_DEPOSIT_AMOUNT: %d", cfg.MinDepositAmount),
		fmt.Sprintf("MAX_EFFECTIVE_BALANCE: %d", cfg.MaxEffectiveBalance),
		fmt.Sprintf("EJECTION_BALANCE: %d", cfg.EjectionBalance),
		fmt.Sprintf("EFFECTIVE_BALANCE_INCREMENT: %d", cfg.EffectiveBalanceIncrement),
		fmt.Sprintf("BASE_REWARD_FACTOR: %d", cfg.BaseRewardFactor),
		fmt.Sprintf("WHISTLEBLOWER_REWARD_QUOTIENT: %d", cfg.WhistleBlowerRewardQuotient),
		fmt.Sprintf("PROPOSER_REWARD_QUOTIENT: %d", cfg.ProposerRewardQuotient),
		fmt.Sprintf("INACTIVITY_PENALTY_QUOTIENT: %d", cfg.InactivityPenaltyQuotient),
		fmt.Sprintf("MIN_SLASHING_PENALTY_QUOTIENT: %d", cfg.MinSlashingPenaltyQuotient),
		fmt.Sprintf("PROPORTIONAL_SLASHING_MULTIPLIER: %d", cfg.ProportionalSlashingMultiplier),
	}
	return []byte(strings.Join(lines, "\n"))
}

package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
	"github.com/sirupsen/logrus"
)

func TestFormatter(t *testing.T) {
	for _, name := range []string{TextFormat, FluentdFormat, JSONFormat} {
		f, err := Formatter(name, false)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}
	_, err := Formatter("yaml", false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestConfigurePersistentLogging(t *testing.T) {
	// The parent directory does not exist yet.
	logFileName := filepath.Join(t.TempDir(), "non-existing-dir", "rewards.log")
	require.NoError(t, ConfigurePersistentLogging(logFileName, JSONFormat))
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	logrus.WithField("prefix", "test").Warn("persisted line")
	content, err := os.ReadFile(logFileName)
	require.NoError(t, err)
	assert.Equal(t, true, strings.Contains(string(content), "persisted line"), "log file content: %s", content)
}

func TestConfigurePersistentLogging_UnknownFormat(t *testing.T) {
	logFileName := filepath.Join(t.TempDir(), "rewards.log")
	err := ConfigurePersistentLogging(logFileName, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, statErr := os.Stat(logFileName)
	assert.Equal(t, true, os.IsNotExist(statErr))
}

package prometheus

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
	"github.com/sirupsen/logrus"
)

func TestLogrusCollector(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(NewLogrusCollector())

	warnBefore := testutil.ToFloat64(counterVec.WithLabelValues("warning", "epoch"))
	infoBefore := testutil.ToFloat64(counterVec.WithLabelValues("info", defaultPrefix))

	logger.WithField("prefix", "epoch").Warn("warn")
	logger.WithField("prefix", "epoch").Warn("warn")
	logger.Info("info")
	logger.Debug("not counted")

	assert.Equal(t, warnBefore+2, testutil.ToFloat64(counterVec.WithLabelValues("warning", "epoch")))
	assert.Equal(t, infoBefore+1, testutil.ToFloat64(counterVec.WithLabelValues("info", defaultPrefix)))
}

func TestLogrusCollector_Levels(t *testing.T) {
	assert.DeepEqual(t, defaultLevels, NewLogrusCollector().Levels())
	assert.DeepEqual(t, []logrus.Level{logrus.DebugLevel}, NewLogrusCollector(logrus.DebugLevel).Levels())
}

func TestLogrusCollector_NonStringPrefix(t *testing.T) {
	hook := NewLogrusCollector()
	entry := logrus.NewEntry(logrus.New()).WithField("prefix", 7)
	entry.Level = logrus.InfoLevel
	require.NotNil(t, hook.Fire(entry))
}

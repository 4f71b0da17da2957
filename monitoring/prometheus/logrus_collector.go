// Package prometheus holds the log entry counters shared by every package that logs through logrus.
package prometheus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// LogrusCollector is a logrus hook to collect log counters.
type LogrusCollector struct {
	counterVec *prometheus.CounterVec
	levels     []logrus.Level
}

var (
	defaultLevels = []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	counterVec    = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "log_entries_total",
		Help: "Total number of log messages.",
	}, []string{"level", "prefix"})
)

const prefixKey = "prefix"
const defaultPrefix = "global"

// NewLogrusCollector returns a logrus hook counting entries of the given levels per level and
// prefix. No levels means info, warn and error. All collectors share one counter vector.
func NewLogrusCollector(levels ...logrus.Level) *LogrusCollector {
	if len(levels) == 0 {
		levels = defaultLevels
	}
	return &LogrusCollector{
		counterVec: counterVec,
		levels:     levels,
	}
}

// Fire is called on every log call.
func (hook *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultPrefix
	if prefixValue, ok := entry.Data[prefixKey]; ok {
		prefix, ok = prefixValue.(string)
		if !ok {
			return errors.New("prefix is not a string")
		}
	}
	hook.counterVec.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels return a slice of levels supported by this hook.
func (hook *LogrusCollector) Levels() []logrus.Level {
	return hook.levels
}

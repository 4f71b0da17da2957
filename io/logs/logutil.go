// Package logs configures logrus output formats and creates a file logger
// instance that mirrors every log written to stdout.
package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Supported log format names.
const (
	TextFormat    = "text"
	FluentdFormat = "fluentd"
	JSONFormat    = "json"
)

// ErrUnknownFormat is returned for a log format name outside of text, fluentd and json.
var ErrUnknownFormat = errors.New("unknown log format")

var _ = logrus.Hook(&WriterHook{})

// WriterHook is a hook that writes logs of specified LogLevels to specified Writer.
type WriterHook struct {
	LogLevels []logrus.Level
	Formatter logrus.Formatter
	Writer    io.Writer

	lock sync.Mutex
}

// Fire will be called when some logging function is called with current hook.
// It formats the entry with the hook's own formatter and writes it out.
func (hook *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := hook.Formatter.Format(entry)
	if err != nil {
		return err
	}
	hook.lock.Lock()
	defer hook.lock.Unlock()
	_, err = hook.Writer.Write(line)
	return err
}

// Levels defines on which log levels this hook would trigger.
func (hook *WriterHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// Formatter returns the logrus formatter for the named format. Colors are
// disabled when the output is not a terminal.
func Formatter(format string, colors bool) (logrus.Formatter, error) {
	switch format {
	case TextFormat:
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = !colors
		return formatter, nil
	case FluentdFormat:
		return joonix.NewFormatter(), nil
	case JSONFormat:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// ConfigurePersistentLogging adds a log-to-file writer hook to the logrus logger. The writer hook
// appends new logs to the specified log file, creating its parent directory when missing.
func ConfigurePersistentLogging(logFileName, format string) error {
	formatter, err := Formatter(format, false)
	if err != nil {
		return err
	}
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	if err := os.MkdirAll(filepath.Dir(logFileName), 0700); err != nil {
		return errors.Wrap(err, "could not create log directory")
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304
	if err != nil {
		return err
	}
	logrus.AddHook(&WriterHook{
		LogLevels: logrus.AllLevels,
		Formatter: formatter,
		Writer:    f,
	})
	logrus.Info("File logger initialized")
	return nil
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements Logger on top of a logrus entry. Derived
// loggers share the underlying logrus.Logger, so SetLevel affects all of
// them.
type LogrusAdapter struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

// NewLogrusAdapter returns a logger writing to stderr, keeping stdout free
// for command output. level is one of debug, info, warn or error; format is
// "json" or "text".
func NewLogrusAdapter(level, format string) Logger {
	return NewLogrusAdapterWithOutput(level, format, os.Stderr)
}

// NewLogrusAdapterWithOutput is NewLogrusAdapter writing to out.
func NewLogrusAdapterWithOutput(level, format string, out io.Writer) Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(formatterFor(format))

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		base.Warnf("Invalid log level '%s', using 'info'", level)
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	return wrap(base)
}

// NewLogrusAdapterFromLogger wraps an existing logrus.Logger.
func NewLogrusAdapterFromLogger(base *logrus.Logger) Logger {
	if base == nil {
		base = logrus.New()
	}
	return wrap(base)
}

// NewDiscardLogger returns a logger that writes nowhere.
func NewDiscardLogger() Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return wrap(base)
}

func wrap(base *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{base: base, entry: logrus.NewEntry(base)}
}

func formatterFor(format string) logrus.Formatter {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func (l *LogrusAdapter) derive(entry *logrus.Entry) Logger {
	return &LogrusAdapter{base: l.base, entry: entry}
}

func (l *LogrusAdapter) log(level logrus.Level, msg string, fields []Field) {
	if !l.base.IsLevelEnabled(level) {
		return
	}
	l.entry.WithFields(toLogrusFields(fields)).Log(level, msg)
}

// Debug logs at debug level.
func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.log(logrus.DebugLevel, msg, fields) }

// Info logs at info level.
func (l *LogrusAdapter) Info(msg string, fields ...Field) { l.log(logrus.InfoLevel, msg, fields) }

// Warn logs at warning level.
func (l *LogrusAdapter) Warn(msg string, fields ...Field) { l.log(logrus.WarnLevel, msg, fields) }

// Error logs at error level.
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.log(logrus.ErrorLevel, msg, fields) }

// WithError attaches err under the "error" key.
func (l *LogrusAdapter) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

// WithField attaches one field to every subsequent entry.
func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.derive(l.entry.WithField(key, value))
}

// WithFields attaches several fields to every subsequent entry.
func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.derive(l.entry.WithFields(toLogrusFields(fields)))
}

// SetLevel changes the level of the shared logrus logger.
func (l *LogrusAdapter) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return err
	}
	l.base.SetLevel(lvl)
	return nil
}

// toLogrusFields flattens fields; a repeated key keeps the last value.
func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

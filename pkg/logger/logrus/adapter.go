// Package logrus adapts github.com/sirupsen/logrus to the logger contract.
package logrus

import (
	"github.com/astrogrind/crunch/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Adapter wraps a *logrus.Entry behind the logger.Logger interface. The
// entry form keeps fields attached by WithField and friends.
type Adapter struct {
	*logrus.Entry
}

// New builds a logrus backed logger with the given level and a full
// timestamp text formatter.
func New(level string) (*Adapter, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return NewAdapter(log), nil
}

func NewAdapter(log *logrus.Logger) *Adapter {
	return &Adapter{logrus.NewEntry(log)}
}

// GetLevel implements logger.Logger.
func (l *Adapter) GetLevel() logger.Level {
	return toLevel(l.Entry.Logger.GetLevel())
}

// SetLevel implements logger.Logger.
func (l *Adapter) SetLevel(level logger.Level) {
	l.Entry.Logger.SetLevel(toLogrusLevel(level))
}

// WithError implements logger.Logger.
func (l *Adapter) WithError(err error) logger.Logger {
	return &Adapter{l.Entry.WithError(err)}
}

// WithField implements logger.Logger.
func (l *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{l.Entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (l *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{l.Entry.WithFields(logrus.Fields(fields))}
}

// toLevel converts logrus.Level to logger.Level.
func toLevel(level logrus.Level) logger.Level {
	levelMap := map[logrus.Level]logger.Level{
		logrus.TraceLevel: logger.TraceLevel,
		logrus.DebugLevel: logger.DebugLevel,
		logrus.InfoLevel:  logger.InfoLevel,
		logrus.WarnLevel:  logger.WarnLevel,
		logrus.ErrorLevel: logger.ErrorLevel,
		logrus.FatalLevel: logger.FatalLevel,
		logrus.PanicLevel: logger.PanicLevel,
	}

	if level, ok := levelMap[level]; ok {
		return level
	}

	return logger.NoLevel
}

// toLogrusLevel converts logger.Level to logrus.Level. logrus has no
// disabled or unleveled state, so those collapse to the nearest level.
func toLogrusLevel(level logger.Level) logrus.Level {
	levelMap := map[logger.Level]logrus.Level{
		logger.Disabled:   logrus.PanicLevel,
		logger.NoLevel:    logrus.InfoLevel,
		logger.TraceLevel: logrus.TraceLevel,
		logger.DebugLevel: logrus.DebugLevel,
		logger.InfoLevel:  logrus.InfoLevel,
		logger.WarnLevel:  logrus.WarnLevel,
		logger.ErrorLevel: logrus.ErrorLevel,
		logger.FatalLevel: logrus.FatalLevel,
		logger.PanicLevel: logrus.PanicLevel,
	}

	if level, ok := levelMap[level]; ok {
		return level
	}

	return logrus.InfoLevel
}

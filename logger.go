package ssat

import "github.com/sirupsen/logrus"

// Logger receives progress lines from an Engine's Solve loop. It mirrors
// operator-lifecycle-manager's solver.Tracer/DefaultTracer/LoggingTracer
// trio: a narrow interface, a silent default, and an adapter over a real
// logging library — here *logrus.Logger, via LogrusLogger.
type Logger interface {
	Infof(format string, args ...interface{})
}

// noopLogger discards every line, the Logger analogue of
// solver.DefaultTracer.
type noopLogger struct{}

func (noopLogger) Infof(string, ...interface{}) {}

// LogrusLogger adapts a *logrus.Logger to Logger.
type LogrusLogger struct {
	Log *logrus.Logger
}

// NewLogrusLogger returns a Logger backed by a fresh *logrus.Logger with
// the given level.
func NewLogrusLogger(level logrus.Level) LogrusLogger {
	l := logrus.New()
	l.SetLevel(level)
	return LogrusLogger{Log: l}
}

func (l LogrusLogger) Infof(format string, args ...interface{}) {
	l.Log.Infof(format, args...)
}

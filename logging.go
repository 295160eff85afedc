package dynasql

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingIntercept logs every call's SQL, params, and latency, replacing
// the teacher's DebugMiddleware (middleware.go), which wrapped
// QueryHandler/ExecHandler with the same before/after timing around a
// package-level *log.Logger. This module uses logrus instead (spec.md
// §9: "the logger is a side-channel the intercept chain may own"),
// and implements the Before/After hook shape directly rather than
// wrapping a handler closure.
type LoggingIntercept struct {
	Logger *logrus.Logger

	start map[string]time.Time
}

// NewLoggingIntercept builds a LoggingIntercept logging through logger,
// or logrus.StandardLogger() if logger is nil.
func NewLoggingIntercept(logger *logrus.Logger) *LoggingIntercept {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingIntercept{Logger: logger, start: map[string]time.Time{}}
}

func (l *LoggingIntercept) Before(ctx context.Context, task *Task) (skip bool, err error) {
	l.start[task.ID] = time.Now()
	l.Logger.WithFields(logrus.Fields{
		"task":   task.ID,
		"sql":    task.SQL,
		"params": task.Params,
	}).Debug("dynasql: executing")
	return false, nil
}

func (l *LoggingIntercept) After(ctx context.Context, task *Task) error {
	spent := time.Since(l.start[task.ID])
	delete(l.start, task.ID)
	l.Logger.WithFields(logrus.Fields{
		"task":  task.ID,
		"sql":   task.SQL,
		"spent": spent,
	}).Debug("dynasql: completed")
	return nil
}

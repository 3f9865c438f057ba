package observability

import (
	"context"
	"log/slog"

	"github.com/jkinley/turing/pkg/machine"
)

// LogObserver emits one structured log record per executed step.
type LogObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogObserver creates an observer logging at the given level.
func NewLogObserver(logger *slog.Logger, level slog.Level) *LogObserver {
	return &LogObserver{logger: logger, level: level}
}

// OnStep logs the snapshot's configuration.
func (l *LogObserver) OnStep(s machine.Snapshot) {
	l.logger.Log(context.Background(), l.level, "machine step",
		"step", s.Step,
		"state", s.State,
		"role", s.Role.String(),
		"head", s.HeadPos,
		"status", s.Status.String(),
	)
}

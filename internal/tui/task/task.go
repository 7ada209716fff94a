// Package task runs store-touching work off the Bubble Tea update loop.
//
// Each task is a tea.Cmd: Bubble Tea runs it on its own goroutine and
// delivers the returned message back to Update. Tasks cannot be cancelled
// and have no timeout.
package task

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asteroid-belt/nexus/internal/log"
)

// Failure is implemented by completion messages that can carry an error.
type Failure interface {
	Failed() error
}

// Run wraps fn as a background task. Start, finish and duration are
// logged under a per-task id; a completion message implementing Failure
// also has its error logged.
func Run(name string, fn func() tea.Msg) tea.Cmd {
	return func() tea.Msg {
		logger := log.L().With(zap.String("task", name), zap.String("task_id", uuid.NewString()))
		start := time.Now()
		logger.Debug("task started")

		msg := fn()

		fields := []zap.Field{zap.Duration("elapsed", time.Since(start))}
		if f, ok := msg.(Failure); ok {
			if err := f.Failed(); err != nil {
				logger.Warn("task failed", append(fields, zap.Error(err))...)
				return msg
			}
		}
		logger.Debug("task finished", fields...)
		return msg
	}
}

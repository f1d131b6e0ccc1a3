package engine

import "log/slog"

// Observer receives the outcome of every engine operation along with the
// history shape after it. Implementations must be fast and must not call
// back into the engine.
type Observer interface {
	ObserveMove(MoveOutcome)
	ObserveUndo(UndoOutcome)
	ObserveRedo(RedoOutcome)
	ObserveHistory(entries, cursor int)
}

type nopObserver struct{}

func (nopObserver) ObserveMove(MoveOutcome) {}
func (nopObserver) ObserveUndo(UndoOutcome) {}
func (nopObserver) ObserveRedo(RedoOutcome) {}
func (nopObserver) ObserveHistory(_, _ int) {}

// Option configures an Engine.
type Option func(*options)

type options struct {
	historyLimit int
	observer     Observer
	logger       *slog.Logger
}

// WithHistoryLimit caps the number of retained history entries. Zero, the
// default, keeps every entry.
func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

// WithObserver registers an observer for operation outcomes.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger overrides the logger taken from the context passed to New.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

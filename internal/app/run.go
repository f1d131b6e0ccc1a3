package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/ctxlog"
	"github.com/specialistvlad/orgchart/internal/engine"
	"github.com/specialistvlad/orgchart/internal/metrics"
	"github.com/specialistvlad/orgchart/internal/nodeid"
)

// Summary counts how the replayed operations ended.
type Summary struct {
	Applied int
	Refused int
}

// Run replays the loaded operation script against the seed hierarchy and
// writes the final hierarchy to the output writer.
func (a *App) Run(ctx context.Context) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.startHealthcheckServer(ctx); err != nil {
		return Summary{}, err
	}
	defer a.closeHealthcheckServer(ctx)

	eng, err := engine.New(ctx, a.model.Root.ToNode(),
		engine.WithHistoryLimit(a.historyLimit()),
		engine.WithObserver(metrics.New(a.registry)),
	)
	if err != nil {
		return Summary{}, err
	}
	defer eng.Close()

	var sum Summary
	for _, op := range a.model.Operations {
		applied, err := a.replay(ctx, eng, op)
		if err != nil {
			return sum, fmt.Errorf("%s: %w", op.Source, err)
		}
		if applied {
			sum.Applied++
		} else {
			sum.Refused++
		}
	}
	a.logger.Info("Operation script replayed.", "applied", sum.Applied, "refused", sum.Refused, "can_undo", eng.CanUndo(), "can_redo", eng.CanRedo())

	if err := a.writer.WriteHierarchy(a.outW, eng.Snapshot()); err != nil {
		return sum, fmt.Errorf("failed to write hierarchy: %w", err)
	}

	if a.config.Serve {
		a.logger.Info("Serving health and metrics until interrupted.")
		<-ctx.Done()
	}

	a.logger.Debug("App.Run method finished.")
	return sum, nil
}

// replay runs one scripted operation. It reports whether the hierarchy
// changed; domain refusals are logged, not returned.
func (a *App) replay(ctx context.Context, eng *engine.Engine, op *config.Operation) (bool, error) {
	logger := a.logger.With("source", op.Source, "op", string(op.Kind))

	switch op.Kind {
	case config.OpMove:
		outcome := eng.Move(ctx, nodeid.ID(op.Employee), nodeid.ID(op.Supervisor))
		logger = logger.With("employee", op.Employee, "supervisor", op.Supervisor, "outcome", outcome.String())
		if outcome != engine.Moved {
			logger.Warn("Move refused.")
			return false, nil
		}
		logger.Info("Move applied.")
		return true, nil

	case config.OpUndo:
		outcome, err := eng.Undo(ctx)
		if err != nil {
			return false, fmt.Errorf("undo failed: %w", err)
		}
		logger.Info("Undo finished.", "outcome", outcome.String())
		return outcome == engine.Reverted, nil

	case config.OpRedo:
		outcome, err := eng.Redo(ctx)
		if err != nil {
			return false, fmt.Errorf("redo failed: %w", err)
		}
		logger.Info("Redo finished.", "outcome", outcome.String())
		return outcome == engine.Reapplied, nil
	}
	return false, fmt.Errorf("unknown operation %q", op.Kind)
}

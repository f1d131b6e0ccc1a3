package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/specialistvlad/orgchart/internal/ctxlog"
	"github.com/specialistvlad/orgchart/internal/history"
	"github.com/specialistvlad/orgchart/internal/inmemorytree"
	"github.com/specialistvlad/orgchart/internal/move"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
	"github.com/specialistvlad/orgchart/internal/nodestore"
)

// ErrClosed is returned by operations on an engine after Close.
var ErrClosed = errors.New("engine is closed")

// Engine owns one hierarchy and its undo/redo history. It is safe for
// concurrent use: mutators are serialized by a write lock and readers share
// a read lock, so no caller ever observes a half-applied move.
type Engine struct {
	mu       sync.RWMutex
	store    nodestore.Store
	op       *move.Operator
	log      *history.Log
	observer Observer
	logger   *slog.Logger
	closed   bool
}

// HistoryView is a copy of the history log at one point in time.
type HistoryView struct {
	Entries []history.Entry
	// Cursor is the number of entries currently applied to the tree.
	Cursor int
}

// New builds an engine over a deep copy of root. The logger defaults to the
// one carried by ctx.
func New(ctx context.Context, root *node.Node, opts ...Option) (*Engine, error) {
	o := options{observer: nopObserver{}, logger: ctxlog.FromContext(ctx)}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := inmemorytree.New(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build hierarchy: %w", err)
	}

	e := &Engine{
		store:    store,
		op:       move.New(store),
		log:      history.New(o.historyLimit),
		observer: o.observer,
		logger:   o.logger,
	}
	e.logger.Debug("Hierarchy engine created.", "nodes", store.Len(), "root", store.Root().ID, "history_limit", e.log.Limit())
	e.observer.ObserveHistory(0, 0)
	return e, nil
}

// Move reparents employeeID under supervisorID, promoting the employee's
// current subordinates to its former supervisor. Only a Moved outcome
// changes the tree and records history.
func (e *Engine) Move(ctx context.Context, employeeID, supervisorID nodeid.ID) MoveOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := e.loggerFor(ctx).With("op", "move", "employee", employeeID, "supervisor", supervisorID)
	if e.closed {
		logger.Warn("Move rejected: engine is closed.")
		return MoveUnknown
	}

	entry, err := e.op.Apply(employeeID, supervisorID)
	outcome := moveOutcomeOf(err)
	switch outcome {
	case Moved:
		e.log.Record(entry)
		logger.Debug("Move applied.", "previous_supervisor", entry.PreviousParentID, "promoted", len(entry.RelocatedChildIDs), "history", e.log.Len())
	case MoveUnknown:
		logger.Error("Move failed on an inconsistent hierarchy.", "error", err)
	default:
		logger.Debug("Move refused.", "outcome", outcome.String(), "reason", err)
	}

	e.observer.ObserveMove(outcome)
	e.observer.ObserveHistory(e.log.Len(), e.log.Cursor())
	return outcome
}

// Undo reverts the most recently applied move. The error is non-nil only
// when the history no longer matches the tree; the tree and history are
// left untouched in that case.
func (e *Engine) Undo(ctx context.Context) (UndoOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := e.loggerFor(ctx).With("op", "undo")
	if e.closed {
		return UndoUnknown, ErrClosed
	}

	entry, ok := e.log.EntryToUndo()
	if !ok {
		logger.Debug("Nothing to undo.")
		e.observer.ObserveUndo(NothingToUndo)
		return NothingToUndo, nil
	}

	if err := e.op.Invert(entry); err != nil {
		logger.Error("Undo failed.", "employee", entry.NodeID, "error", err)
		return UndoUnknown, fmt.Errorf("undo move of %s: %w", entry.NodeID, err)
	}
	e.log.AdvanceAfterUndo()
	logger.Debug("Move reverted.", "employee", entry.NodeID, "supervisor", entry.PreviousParentID, "cursor", e.log.Cursor())

	e.observer.ObserveUndo(Reverted)
	e.observer.ObserveHistory(e.log.Len(), e.log.Cursor())
	return Reverted, nil
}

// Redo reapplies the earliest undone move. The error is non-nil only when
// the history no longer matches the tree.
func (e *Engine) Redo(ctx context.Context) (RedoOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := e.loggerFor(ctx).With("op", "redo")
	if e.closed {
		return RedoUnknown, ErrClosed
	}

	entry, ok := e.log.EntryToRedo()
	if !ok {
		logger.Debug("Nothing to redo.")
		e.observer.ObserveRedo(NothingToRedo)
		return NothingToRedo, nil
	}

	if err := e.op.Reapply(entry); err != nil {
		logger.Error("Redo failed.", "employee", entry.NodeID, "error", err)
		return RedoUnknown, fmt.Errorf("redo move of %s: %w", entry.NodeID, err)
	}
	e.log.AdvanceAfterRedo()
	logger.Debug("Move reapplied.", "employee", entry.NodeID, "supervisor", entry.NewParentID, "cursor", e.log.Cursor())

	e.observer.ObserveRedo(Reapplied)
	e.observer.ObserveHistory(e.log.Len(), e.log.Cursor())
	return Reapplied, nil
}

// Snapshot returns a deep copy of the current hierarchy. It returns nil
// after Close.
func (e *Engine) Snapshot() *node.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil
	}
	return e.store.Root().Clone()
}

// FindNode returns a deep copy of the subtree rooted at id.
func (e *Engine) FindNode(id nodeid.ID) (*node.Node, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil, false
	}
	n, ok := e.store.FindNode(id)
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// SupervisorOf returns the identifier of id's current supervisor. It
// returns false for the root and for unknown identifiers.
func (e *Engine) SupervisorOf(id nodeid.ID) (nodeid.ID, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return 0, false
	}
	p, ok := e.store.FindParent(id)
	if !ok {
		return 0, false
	}
	return p.ID, true
}

// History returns a copy of the undo/redo log.
func (e *Engine) History() HistoryView {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return HistoryView{Entries: e.log.Entries(), Cursor: e.log.Cursor()}
}

// CanUndo reports whether Undo would revert a move.
func (e *Engine) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.log.EntryToUndo()
	return ok && !e.closed
}

// CanRedo reports whether Redo would reapply a move.
func (e *Engine) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.log.EntryToRedo()
	return ok && !e.closed
}

// Close releases the hierarchy and history. Closing twice is an error.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.closed = true
	e.log = history.New(0)
	e.logger.Debug("Hierarchy engine closed.")
	return nil
}

// loggerFor prefers a logger carried by the call's context over the one the
// engine was created with.
func (e *Engine) loggerFor(ctx context.Context) *slog.Logger {
	if l, ok := ctxlog.Lookup(ctx); ok {
		return l
	}
	return e.logger
}

// moveOutcomeOf maps an operator error to the public outcome. Integrity
// faults map to MoveUnknown.
func moveOutcomeOf(err error) MoveOutcome {
	switch {
	case err == nil:
		return Moved
	case errors.Is(err, move.ErrAlreadyUnderSupervisor):
		return AlreadyUnderSupervisor
	case errors.Is(err, move.ErrNodeNotFound):
		return NodeNotFound
	case errors.Is(err, move.ErrSupervisorNotFound):
		return SupervisorNotFound
	case errors.Is(err, move.ErrCannotMoveRoot):
		return CannotMoveRoot
	case errors.Is(err, move.ErrCycleWouldForm):
		return CycleWouldForm
	default:
		return MoveUnknown
	}
}

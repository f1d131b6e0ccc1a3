package move

import "errors"

// Lookup errors: the caller named an identifier that is not in the tree.
var (
	ErrNodeNotFound       = errors.New("employee not found")
	ErrSupervisorNotFound = errors.New("supervisor not found")
)

// Policy violations: the move is structurally invalid.
var (
	ErrCannotMoveRoot = errors.New("the root of the hierarchy cannot be moved")
	ErrCycleWouldForm = errors.New("supervisor is the employee or one of its indirect subordinates")
)

// ErrAlreadyUnderSupervisor signals a refused no-op rather than a failure.
var ErrAlreadyUnderSupervisor = errors.New("employee already reports to this supervisor")

// ErrHistoryMismatch means a history entry no longer describes the tree.
// It cannot happen while the tree is only edited through the engine.
var ErrHistoryMismatch = errors.New("history entry does not match the hierarchy")

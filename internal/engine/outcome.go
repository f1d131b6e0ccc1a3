package engine

// MoveOutcome is the result of a Move request.
type MoveOutcome int

const (
	// MoveUnknown is returned only by a closed engine.
	MoveUnknown MoveOutcome = iota
	// Moved means the move was applied and recorded.
	Moved
	// AlreadyUnderSupervisor means the employee already reports to the
	// requested supervisor; nothing was changed or recorded.
	AlreadyUnderSupervisor
	// NodeNotFound means the employee identifier is not in the hierarchy.
	NodeNotFound
	// SupervisorNotFound means the supervisor identifier is not in the hierarchy.
	SupervisorNotFound
	// CannotMoveRoot means the employee is the root of the hierarchy.
	CannotMoveRoot
	// CycleWouldForm means the supervisor is the employee itself or one of
	// its indirect subordinates.
	CycleWouldForm
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case AlreadyUnderSupervisor:
		return "already_under_supervisor"
	case NodeNotFound:
		return "node_not_found"
	case SupervisorNotFound:
		return "supervisor_not_found"
	case CannotMoveRoot:
		return "cannot_move_root"
	case CycleWouldForm:
		return "cycle_would_form"
	default:
		return "unknown"
	}
}

// IsError reports whether the outcome is a lookup error or a policy
// violation, as opposed to success or a neutral refusal.
func (o MoveOutcome) IsError() bool {
	switch o {
	case NodeNotFound, SupervisorNotFound, CannotMoveRoot, CycleWouldForm:
		return true
	}
	return false
}

// IsNoOp reports whether the request was refused without being an error.
func (o MoveOutcome) IsNoOp() bool {
	return o == AlreadyUnderSupervisor
}

// UndoOutcome is the result of an Undo request.
type UndoOutcome int

const (
	UndoUnknown UndoOutcome = iota
	// Reverted means the most recent applied move was undone.
	Reverted
	// NothingToUndo means no applied move remains in the history.
	NothingToUndo
)

func (o UndoOutcome) String() string {
	switch o {
	case Reverted:
		return "reverted"
	case NothingToUndo:
		return "nothing_to_undo"
	default:
		return "unknown"
	}
}

// IsNoOp reports whether the request was refused without being an error.
func (o UndoOutcome) IsNoOp() bool {
	return o == NothingToUndo
}

// RedoOutcome is the result of a Redo request.
type RedoOutcome int

const (
	RedoUnknown RedoOutcome = iota
	// Reapplied means the earliest undone move was applied again.
	Reapplied
	// NothingToRedo means there is no undone move left on the timeline.
	NothingToRedo
)

func (o RedoOutcome) String() string {
	switch o {
	case Reapplied:
		return "reapplied"
	case NothingToRedo:
		return "nothing_to_redo"
	default:
		return "unknown"
	}
}

// IsNoOp reports whether the request was refused without being an error.
func (o RedoOutcome) IsNoOp() bool {
	return o == NothingToRedo
}

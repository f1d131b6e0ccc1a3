package history

import (
	"slices"

	"github.com/specialistvlad/orgchart/internal/nodeid"
)

// Entry is an immutable record of one applied move. It stores identifiers
// only; nodes are re-resolved through the node store at undo/redo time.
type Entry struct {
	// NodeID is the node that was moved.
	NodeID nodeid.ID
	// PreviousParentID is the supervisor the node had before the move.
	PreviousParentID nodeid.ID
	// NewParentID is the supervisor the node was moved under.
	NewParentID nodeid.ID
	// PreviousIndex is the node's position among PreviousParentID's children
	// before the move.
	PreviousIndex int
	// RelocatedChildIDs are the node's children at move time, in order. The
	// move promoted them to PreviousParentID.
	RelocatedChildIDs []nodeid.ID
}

// Clone returns a copy of e that shares no memory with it.
func (e Entry) Clone() Entry {
	e.RelocatedChildIDs = slices.Clone(e.RelocatedChildIDs)
	return e
}

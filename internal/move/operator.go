// Package move validates and executes a single reparenting step and its
// inverse.
//
// The relocation policy is fixed: when node N moves from parent P to new
// parent Q, every child of N is promoted to P (appended in order), N is left
// without children, then N is detached from P and appended to Q. Invert and
// Reapply reverse and replay exactly these edits from a history.Entry.
package move

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/orgchart/internal/history"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
	"github.com/specialistvlad/orgchart/internal/nodestore"
)

// Operator applies moves against a node store. It keeps no state of its own.
type Operator struct {
	store nodestore.Store
}

// New creates an operator bound to the given store.
func New(store nodestore.Store) *Operator {
	return &Operator{store: store}
}

// Apply validates and performs the move of nodeID under newParentID,
// returning the entry needed to undo it. On any error the tree is untouched.
//
// Validation order: node exists, node is not the root, new parent exists,
// no cycle, not already under the new parent.
func (o *Operator) Apply(nodeID, newParentID nodeid.ID) (history.Entry, error) {
	n, ok := o.store.FindNode(nodeID)
	if !ok {
		return history.Entry{}, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if n == o.store.Root() {
		return history.Entry{}, fmt.Errorf("%w: %s", ErrCannotMoveRoot, nodeID)
	}
	q, ok := o.store.FindNode(newParentID)
	if !ok {
		return history.Entry{}, fmt.Errorf("%w: %s", ErrSupervisorNotFound, newParentID)
	}
	if err := o.checkCycle(n, q); err != nil {
		return history.Entry{}, err
	}
	p, ok := o.store.FindParent(nodeID)
	if !ok {
		// Every non-root node has a parent.
		return history.Entry{}, fmt.Errorf("%w: no parent for %s", ErrHistoryMismatch, nodeID)
	}
	if p == q {
		return history.Entry{}, fmt.Errorf("%w: %s under %s", ErrAlreadyUnderSupervisor, nodeID, newParentID)
	}

	entry := history.Entry{
		NodeID:            nodeID,
		PreviousParentID:  p.ID,
		NewParentID:       q.ID,
		PreviousIndex:     p.IndexOf(nodeID),
		RelocatedChildIDs: n.ChildIDs(),
	}
	relocate(p, n, q)
	return entry, nil
}

// checkCycle rejects q == n and any q strictly below n's direct children.
// A direct child of n is accepted: relocation promotes it to n's parent
// before n is attached, so n never ends up beneath itself.
func (o *Operator) checkCycle(n, q *node.Node) error {
	if n == q {
		return fmt.Errorf("%w: %s under itself", ErrCycleWouldForm, n.ID)
	}
	if n.IndexOf(q.ID) >= 0 {
		return nil
	}
	if o.store.IsDescendant(n.ID, q.ID) {
		return fmt.Errorf("%w: %s is below %s", ErrCycleWouldForm, q.ID, n.ID)
	}
	return nil
}

// Invert restores the tree to its state before the move recorded in e.
// The entry must be the most recently applied move.
func (o *Operator) Invert(e history.Entry) error {
	n, ok := o.store.FindNode(e.NodeID)
	if !ok {
		return fmt.Errorf("%w: moved node %s missing", ErrHistoryMismatch, e.NodeID)
	}
	q, ok := o.store.FindParent(e.NodeID)
	if !ok || q.ID != e.NewParentID {
		return fmt.Errorf("%w: %s is not under %s", ErrHistoryMismatch, e.NodeID, e.NewParentID)
	}
	p, ok := o.store.FindNode(e.PreviousParentID)
	if !ok {
		return fmt.Errorf("%w: previous parent %s missing", ErrHistoryMismatch, e.PreviousParentID)
	}
	if len(n.Children) != 0 {
		return fmt.Errorf("%w: %s gained subordinates after the move", ErrHistoryMismatch, e.NodeID)
	}

	// Resolve every relocated child's current parent before the first edit.
	holders := make([]*node.Node, len(e.RelocatedChildIDs))
	for i, childID := range e.RelocatedChildIDs {
		holder, ok := o.store.FindParent(childID)
		if !ok {
			return fmt.Errorf("%w: relocated node %s missing", ErrHistoryMismatch, childID)
		}
		holders[i] = holder
	}

	q.RemoveChild(n.ID)
	for i, childID := range e.RelocatedChildIDs {
		child, _, _ := holders[i].RemoveChild(childID)
		n.AppendChild(child)
	}
	p.InsertChild(e.PreviousIndex, n)
	return nil
}

// Reapply replays the move recorded in e without re-running the policy
// checks. The node's children must be exactly the recorded snapshot, which
// is what a preceding Invert leaves behind.
func (o *Operator) Reapply(e history.Entry) error {
	n, ok := o.store.FindNode(e.NodeID)
	if !ok {
		return fmt.Errorf("%w: moved node %s missing", ErrHistoryMismatch, e.NodeID)
	}
	p, ok := o.store.FindParent(e.NodeID)
	if !ok || p.ID != e.PreviousParentID {
		return fmt.Errorf("%w: %s is not under %s", ErrHistoryMismatch, e.NodeID, e.PreviousParentID)
	}
	q, ok := o.store.FindNode(e.NewParentID)
	if !ok {
		return fmt.Errorf("%w: new parent %s missing", ErrHistoryMismatch, e.NewParentID)
	}
	if !slices.Equal(n.ChildIDs(), e.RelocatedChildIDs) {
		return fmt.Errorf("%w: subordinates of %s changed since the move", ErrHistoryMismatch, e.NodeID)
	}

	relocate(p, n, q)
	return nil
}

// relocate performs the policy edits: promote n's children to p, detach n
// from p, append n to q.
func relocate(p, n, q *node.Node) {
	for _, c := range n.Children {
		p.AppendChild(c)
	}
	n.Children = nil
	p.RemoveChild(n.ID)
	q.AppendChild(n)
}

// Package nodestore defines the interface for looking up members of the
// hierarchy and answering the ancestry questions the move operator needs.
//
// # Why Node Store Exists
//
// Nodes carry no parent pointer: a node exclusively owns its children and
// the tree has exactly one root. Every "who is the parent of X" question is
// therefore answered by searching from the root. The node store isolates
// that search so the move operator and the engine only speak in terms of
// identifiers.
//
// # Lifecycle and Usage
//
// The node store is:
//  1. **Created** once from caller-supplied seed data
//  2. **Queried** by the move operator to resolve identifiers before each edit
//  3. **Mutated** only through the nodes it hands out, under the engine's lock
//  4. **Discarded** when the owning engine is closed
package nodestore

import (
	"errors"

	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
)

// ErrDuplicateID is returned when seed data uses the same identifier twice.
var ErrDuplicateID = errors.New("duplicate node identifier")

// ErrNilRoot is returned when a store is built without a root node.
var ErrNilRoot = errors.New("hierarchy root must not be nil")

// Store is the interface for resolving identifiers against the live tree.
//
// The nodes returned are live references into the tree, so that the move
// operator can edit child lists in place. Callers outside the engine must
// never hold on to them.
//
// # Thread-Safety Requirements
//
// Implementations are NOT required to be safe for concurrent mutation. The
// engine serializes all access: readers share a read lock, mutators hold the
// write lock for the whole validate-mutate-record sequence.
type Store interface {
	// Root returns the single root of the hierarchy.
	Root() *node.Node

	// FindNode returns the node with the given identifier.
	//
	// The search is depth-first from the root with children visited in stored
	// order; the first match wins. Returns nil and false when absent.
	FindNode(id nodeid.ID) (*node.Node, bool)

	// FindParent returns the unique parent of the node with the given
	// identifier. Returns nil and false when the node is the root or absent.
	FindParent(id nodeid.ID) (*node.Node, bool)

	// IsDescendant reports whether candidateID lies strictly below
	// ancestorID. A node is not its own descendant.
	IsDescendant(ancestorID, candidateID nodeid.ID) bool

	// Len returns the number of nodes in the tree.
	Len() int
}

package inmemorytree

import (
	"fmt"

	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
	"github.com/specialistvlad/orgchart/internal/nodestore"
)

// Store implements the nodestore.Store interface over an owned tree.
type Store struct {
	root  *node.Node
	count int
}

var _ nodestore.Store = (*Store)(nil)

// New builds a store from seed data. The seed is deep-copied, so later edits
// by the caller do not leak into the store and vice versa. Identifiers must
// be unique across the tree.
func New(root *node.Node) (*Store, error) {
	if root == nil {
		return nil, nodestore.ErrNilRoot
	}

	owned := root.Clone()
	seen := make(map[nodeid.ID]struct{})
	var dupErr error
	owned.Walk(func(n *node.Node) bool {
		if _, exists := seen[n.ID]; exists {
			dupErr = fmt.Errorf("%w: %s", nodestore.ErrDuplicateID, n.ID)
			return false
		}
		seen[n.ID] = struct{}{}
		return true
	})
	if dupErr != nil {
		return nil, dupErr
	}

	return &Store{root: owned, count: len(seen)}, nil
}

// Root returns the root of the hierarchy.
func (s *Store) Root() *node.Node {
	return s.root
}

// Len returns the number of nodes. Moves never add or remove nodes, so the
// count computed at construction stays valid.
func (s *Store) Len() int {
	return s.count
}

// FindNode retrieves a node by identifier.
func (s *Store) FindNode(id nodeid.ID) (*node.Node, bool) {
	return find(s.root, id)
}

// FindParent retrieves the parent of the node with the given identifier by
// scanning each visited node's direct children.
func (s *Store) FindParent(id nodeid.ID) (*node.Node, bool) {
	var parent *node.Node
	s.root.Walk(func(n *node.Node) bool {
		if n.IndexOf(id) >= 0 {
			parent = n
			return false
		}
		return true
	})
	return parent, parent != nil
}

// IsDescendant reports whether candidateID lies strictly below ancestorID.
func (s *Store) IsDescendant(ancestorID, candidateID nodeid.ID) bool {
	if ancestorID == candidateID {
		return false
	}
	ancestor, ok := find(s.root, ancestorID)
	if !ok {
		return false
	}
	for _, c := range ancestor.Children {
		if _, ok := find(c, candidateID); ok {
			return true
		}
	}
	return false
}

// find is a first-match depth-first search below (and including) from.
func find(from *node.Node, id nodeid.ID) (*node.Node, bool) {
	var found *node.Node
	from.Walk(func(n *node.Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

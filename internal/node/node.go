// Package node defines the hierarchy member type shared by the store, the
// move operator and every serialization format.
package node

import "github.com/specialistvlad/orgchart/internal/nodeid"

// Node is a single member of the hierarchy. A node exclusively owns its
// children; there is no parent pointer, the parent of a node is found by
// searching from the root.
type Node struct {
	// ID is unique across the whole tree.
	ID nodeid.ID
	// Name is the human-readable display name, e.g. "Sarah Donald".
	Name string
	// Children holds the direct subordinates in insertion order.
	Children []*Node
}

// New creates a node with the given children appended in order.
func New(id nodeid.ID, name string, children ...*Node) *Node {
	return &Node{ID: id, Name: name, Children: children}
}

// ChildIDs returns the identifiers of the direct children in order.
func (n *Node) ChildIDs() []nodeid.ID {
	ids := make([]nodeid.ID, len(n.Children))
	for i, c := range n.Children {
		ids[i] = c.ID
	}
	return ids
}

// IndexOf returns the position of the direct child with the given id, or -1.
func (n *Node) IndexOf(id nodeid.ID) int {
	for i, c := range n.Children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// AppendChild adds c as the last direct child.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// InsertChild places c at position i. Positions past the end append.
func (n *Node) InsertChild(i int, c *Node) {
	if i < 0 {
		i = 0
	}
	if i >= len(n.Children) {
		n.Children = append(n.Children, c)
		return
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = c
}

// RemoveChild detaches the direct child with the given id, keeping the order
// of the remaining children. It returns the removed node and its former
// position.
func (n *Node) RemoveChild(id nodeid.ID) (*Node, int, bool) {
	i := n.IndexOf(id)
	if i < 0 {
		return nil, -1, false
	}
	removed := n.Children[i]
	n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
	return removed, i, true
}

// Walk visits n and every descendant depth-first, pre-order, children in
// stored order. Returning false from fn stops the walk. The traversal uses
// an explicit stack so arbitrarily deep trees are safe.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Clone returns a deep copy of n and its whole subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	type pair struct{ src, dst *Node }

	root := &Node{ID: n.ID, Name: n.Name}
	stack := []pair{{n, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.Children) == 0 {
			continue
		}
		p.dst.Children = make([]*Node, len(p.src.Children))
		for i, c := range p.src.Children {
			cp := &Node{ID: c.ID, Name: c.Name}
			p.dst.Children[i] = cp
			stack = append(stack, pair{c, cp})
		}
	}
	return root
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

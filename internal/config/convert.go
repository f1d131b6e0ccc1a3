package config

import (
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
)

// ToNode converts the employee and all of its reports into a hierarchy tree.
func (e *Employee) ToNode() *node.Node {
	if e == nil {
		return nil
	}
	n := &node.Node{ID: nodeid.ID(e.ID), Name: e.Name}
	for _, r := range e.Reports {
		n.AppendChild(r.ToNode())
	}
	return n
}

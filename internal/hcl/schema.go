package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// rootSchema lists every top-level block. Operations are decoded through
// hcl.BodyContent rather than gohcl so their source order survives across
// block types.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "settings"},
		{Type: "employee", LabelNames: []string{"name"}},
		{Type: "move"},
		{Type: "undo"},
		{Type: "redo"},
	},
}

// employeeBlock is one `employee "<name>" { ... }` block. Nested blocks are
// direct reports.
type employeeBlock struct {
	Name    string           `hcl:"name,label"`
	ID      int              `hcl:"id"`
	Reports []*employeeBlock `hcl:"employee,block"`
}

// settingsBlock is the `settings` block. history_limit is kept as a raw
// expression so that an absent attribute can be told apart from zero.
type settingsBlock struct {
	HistoryLimit hcl.Expression `hcl:"history_limit,optional"`
}

// moveBlock is a scripted `move` call.
type moveBlock struct {
	Employee   int `hcl:"employee"`
	Supervisor int `hcl:"supervisor"`
}

// emptyBlock is the body of `undo {}` and `redo {}`.
type emptyBlock struct{}

package hcl

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/zclconf/go-cty/cty"
)

// Writer serializes a hierarchy as nested `employee` blocks that Loader can
// read back.
type Writer struct{}

var _ config.Writer = Writer{}

// WriteHierarchy writes root and its whole subtree to w.
func (Writer) WriteHierarchy(w io.Writer, root *node.Node) error {
	f := hclwrite.NewEmptyFile()
	if root != nil {
		appendEmployee(f.Body(), root)
	}
	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func appendEmployee(parent *hclwrite.Body, n *node.Node) {
	body := parent.AppendNewBlock("employee", []string{n.Name}).Body()
	body.SetAttributeValue("id", cty.NumberIntVal(int64(n.ID)))
	for _, c := range n.Children {
		appendEmployee(body, c)
	}
}

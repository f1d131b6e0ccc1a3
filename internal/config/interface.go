package config

import (
	"context"
	"io"

	"github.com/specialistvlad/orgchart/internal/node"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads each given file, translates it into the format-agnostic
	// model and merges the results in argument order.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Writer serializes a hierarchy back into a seed file that a Loader of the
// same format can read.
type Writer interface {
	WriteHierarchy(w io.Writer, root *node.Node) error
}

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every given file and merges the results in argument order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		m, err := l.decode(ctx, file, path)
		if err != nil {
			return nil, err
		}
		if err := config.Merge(model, m); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	logger.Debug("HCL loading complete.", "has_root", model.Root != nil, "operations", len(model.Operations))
	return model, nil
}

// Parse decodes HCL source held in memory. filename is only used for
// diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file, filename)
}

// decode walks the top-level blocks in source order.
func (l *Loader) decode(ctx context.Context, file *hcl.File, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := &config.Model{}
	for _, block := range content.Blocks {
		where := block.DefRange.String()
		switch block.Type {
		case "settings":
			var s settingsBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &s); diags.HasErrors() {
				return nil, fmt.Errorf("invalid settings block at %s: %w", where, diags)
			}
			limit, err := optionalInt(s.HistoryLimit)
			if err != nil {
				return nil, fmt.Errorf("invalid history_limit at %s: %w", where, err)
			}
			if limit != nil {
				model.Settings.HistoryLimit = limit
			}

		case "employee":
			if model.Root != nil {
				return nil, fmt.Errorf("multiple root employees defined in %s (second at %s)", filename, where)
			}
			var e employeeBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &e); diags.HasErrors() {
				return nil, fmt.Errorf("invalid employee block at %s: %w", where, diags)
			}
			e.Name = block.Labels[0]
			model.Root = translateEmployee(&e, where)

		case "move":
			var m moveBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &m); diags.HasErrors() {
				return nil, fmt.Errorf("invalid move block at %s: %w", where, diags)
			}
			model.Operations = append(model.Operations, &config.Operation{
				Kind:       config.OpMove,
				Employee:   m.Employee,
				Supervisor: m.Supervisor,
				Source:     where,
			})

		case "undo", "redo":
			var empty emptyBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &empty); diags.HasErrors() {
				return nil, fmt.Errorf("invalid %s block at %s: %w", block.Type, where, diags)
			}
			model.Operations = append(model.Operations, &config.Operation{
				Kind:   config.OpKind(block.Type),
				Source: where,
			})
		}
	}

	logger.Debug("Decoded HCL file.", "path", filename, "blocks", len(content.Blocks))
	return model, nil
}

// translateEmployee converts the HCL schema tree into the agnostic model.
func translateEmployee(e *employeeBlock, source string) *config.Employee {
	out := &config.Employee{ID: e.ID, Name: e.Name, Source: source}
	for _, r := range e.Reports {
		out.Reports = append(out.Reports, translateEmployee(r, source))
	}
	return out
}

// optionalInt evaluates an optional numeric attribute. A missing attribute
// evaluates to null and yields nil.
func optionalInt(expr hcl.Expression) (*int, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

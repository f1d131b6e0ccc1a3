package yamlconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/ctxlog"
	"github.com/specialistvlad/orgchart/internal/node"
	"gopkg.in/yaml.v3"
)

// fileDoc is the top-level shape of a YAML configuration file.
type fileDoc struct {
	Settings   *settingsDoc   `yaml:"settings,omitempty"`
	Root       *employeeDoc   `yaml:"root,omitempty"`
	Operations []operationDoc `yaml:"operations,omitempty"`
}

type settingsDoc struct {
	HistoryLimit *int `yaml:"history_limit,omitempty"`
}

type employeeDoc struct {
	ID      int            `yaml:"id"`
	Name    string         `yaml:"name"`
	Reports []*employeeDoc `yaml:"reports,omitempty"`
}

type operationDoc struct {
	Op         string `yaml:"op"`
	Employee   int    `yaml:"employee,omitempty"`
	Supervisor int    `yaml:"supervisor,omitempty"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every given file and merges the results in argument order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := &config.Model{}
	for _, path := range paths {
		m, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := config.Merge(model, m); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("Decoded YAML file.", "path", path)
	}
	return model, nil
}

func (l *Loader) loadFile(path string) (*config.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	defer f.Close()
	return l.Decode(f, path)
}

// Decode reads a single YAML document from r. Unknown keys are rejected.
// filename is only used for diagnostics.
func (l *Loader) Decode(r io.Reader, filename string) (*config.Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &config.Model{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}
	return translate(&doc, filename)
}

func translate(doc *fileDoc, filename string) (*config.Model, error) {
	model := &config.Model{}
	if doc.Settings != nil {
		model.Settings.HistoryLimit = doc.Settings.HistoryLimit
	}
	if doc.Root != nil {
		model.Root = translateEmployee(doc.Root, filename)
	}
	for i, op := range doc.Operations {
		where := fmt.Sprintf("%s: operations[%d]", filename, i)
		kind := config.OpKind(op.Op)
		switch kind {
		case config.OpMove:
			if op.Employee == 0 || op.Supervisor == 0 {
				return nil, fmt.Errorf("%s: move requires both employee and supervisor", where)
			}
		case config.OpUndo, config.OpRedo:
			if op.Employee != 0 || op.Supervisor != 0 {
				return nil, fmt.Errorf("%s: %s takes no arguments", where, kind)
			}
		default:
			return nil, fmt.Errorf("%s: unknown operation %q", where, op.Op)
		}
		model.Operations = append(model.Operations, &config.Operation{
			Kind:       kind,
			Employee:   op.Employee,
			Supervisor: op.Supervisor,
			Source:     where,
		})
	}
	return model, nil
}

func translateEmployee(e *employeeDoc, source string) *config.Employee {
	out := &config.Employee{ID: e.ID, Name: e.Name, Source: source}
	for _, r := range e.Reports {
		out.Reports = append(out.Reports, translateEmployee(r, source))
	}
	return out
}

// Writer serializes a hierarchy as a YAML document with a single `root` key.
type Writer struct{}

var _ config.Writer = Writer{}

// WriteHierarchy writes root and its whole subtree to w.
func (Writer) WriteHierarchy(w io.Writer, root *node.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fileDoc{Root: toDoc(root)}); err != nil {
		return fmt.Errorf("failed to encode hierarchy: %w", err)
	}
	return enc.Close()
}

func toDoc(n *node.Node) *employeeDoc {
	if n == nil {
		return nil
	}
	doc := &employeeDoc{ID: int(n.ID), Name: n.Name}
	for _, c := range n.Children {
		doc.Reports = append(doc.Reports, toDoc(c))
	}
	return doc
}

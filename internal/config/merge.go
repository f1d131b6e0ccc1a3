package config

import (
	"errors"
	"fmt"
)

// ErrNoRoot is returned when no file defines the root of the hierarchy.
var ErrNoRoot = errors.New("no root employee defined")

// Merge folds src into dst: a second root is an error, settings set in src
// override dst, operations are appended.
func Merge(dst, src *Model) error {
	if src == nil {
		return nil
	}
	if src.Root != nil {
		if dst.Root != nil {
			return fmt.Errorf("multiple root employees defined: %s and %s", describe(dst.Root), describe(src.Root))
		}
		dst.Root = src.Root
	}
	if src.Settings.HistoryLimit != nil {
		v := *src.Settings.HistoryLimit
		dst.Settings.HistoryLimit = &v
	}
	dst.Operations = append(dst.Operations, src.Operations...)
	return nil
}

// Validate checks the merged model: a root must exist and every move must
// name both parties. Identifier uniqueness is checked when the hierarchy
// is built.
func (m *Model) Validate() error {
	if m.Root == nil {
		return ErrNoRoot
	}
	if m.Settings.HistoryLimit != nil && *m.Settings.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", *m.Settings.HistoryLimit)
	}
	for _, op := range m.Operations {
		switch op.Kind {
		case OpMove, OpUndo, OpRedo:
		default:
			return fmt.Errorf("%s: unknown operation %q", op.Source, op.Kind)
		}
	}
	return nil
}

func describe(e *Employee) string {
	if e.Source != "" {
		return fmt.Sprintf("%q (%s)", e.Name, e.Source)
	}
	return fmt.Sprintf("%q", e.Name)
}

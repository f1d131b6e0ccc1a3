package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/orgchart/internal/ctxlog"
	"github.com/specialistvlad/orgchart/internal/fsutil"
)

// ByExtension is a Loader that routes each file to the loader registered for
// its extension (".hcl", ".yaml", ...). Directories are walked and every
// file with a registered extension is loaded in lexical order.
type ByExtension map[string]Loader

// Load resolves paths to files, loads them one by one and merges the results.
func (b ByExtension) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := b.resolve(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no configuration files found in %v", paths)
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	merged := &Model{}
	for _, file := range files {
		loader := b[strings.ToLower(filepath.Ext(file))]
		m, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := Merge(merged, m); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("Loaded configuration file.", "path", file, "operations", len(m.Operations), "has_root", m.Root != nil)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// resolve expands directories and filters out unknown extensions. Explicit
// file arguments with an unknown extension are an error.
func (b ByExtension) resolve(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if !b.known(path) {
				return nil, fmt.Errorf("unsupported configuration format %q for %s", filepath.Ext(path), path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFiles(path, b.known)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return files, nil
}

func (b ByExtension) known(path string) bool {
	_, ok := b[strings.ToLower(filepath.Ext(path))]
	return ok
}

package app

import (
	"github.com/specialistvlad/orgchart/internal/config"
	"github.com/specialistvlad/orgchart/internal/hcl"
	"github.com/specialistvlad/orgchart/internal/yamlconf"
)

// DefaultLoader is the definitive list of configuration formats compiled
// into the orgchart binary.
func DefaultLoader() config.ByExtension {
	yamlLoader := yamlconf.NewLoader()
	return config.ByExtension{
		".hcl":  hcl.NewLoader(),
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	}
}

// writerFor returns the hierarchy writer for an output format.
func writerFor(format string) config.Writer {
	if format == FormatYAML {
		return yamlconf.Writer{}
	}
	return hcl.Writer{}
}

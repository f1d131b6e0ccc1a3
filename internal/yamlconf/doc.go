// Package yamlconf provides the YAML implementation of the configuration
// Loader and Writer defined in the `config` package.
package yamlconf

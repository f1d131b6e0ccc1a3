// Package config defines the format-agnostic model of everything the
// application reads from disk: the seed hierarchy, engine settings and the
// script of operations to replay. Concrete formats (HCL, YAML) live in their
// own packages and implement the Loader interface defined here.
package config

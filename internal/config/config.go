// Package config handles .pyprune.yaml configuration files.
package config

// Config represents the contents of a .pyprune.yaml file.
type Config struct {
	// Linter is the diagnostic command to run (default "pyflakes").
	Linter string `yaml:"linter,omitempty"`

	// Exclude holds glob patterns for files that must never be rewritten,
	// in addition to the built-in __init__.py rule.
	Exclude []string `yaml:"exclude,omitempty"`
}

// FileName is the expected config file name in the scan root.
const FileName = ".pyprune.yaml"

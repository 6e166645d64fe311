package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentFile is the on-disk package manager environment file.
// Keys other than channels and dependencies are accepted and ignored.
type EnvironmentFile struct {
	Name         string      `yaml:"name,omitempty"`
	Prefix       string      `yaml:"prefix,omitempty"`
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}

// Settings holds the user configuration read from .inject.yaml and INJECT_* variables.
type Settings struct {
	Manager          string              `mapstructure:"manager"`
	Interpreter      InterpreterSettings `mapstructure:"interpreter"`
	ModuleVar        string              `mapstructure:"module_var"`
	ExtraConstraints []string            `mapstructure:"extra_constraints"`
	Timeout          time.Duration       `mapstructure:"timeout"`

	// Source is the settings file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// InterpreterSettings configures interpreter detection.
type InterpreterSettings struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Binary  string `mapstructure:"binary"`
}

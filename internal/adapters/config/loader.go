// Package config loads user settings and package manager environment files.
package config

import (
	"os"

	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileSpecLoader implements ports.SpecLoader for YAML and JSON environment files.
type FileSpecLoader struct{}

// NewSpecLoader creates a new FileSpecLoader.
func NewSpecLoader() *FileSpecLoader {
	return &FileSpecLoader{}
}

// Load reads the environment file at path.
func (l *FileSpecLoader) Load(path string) (*domain.EnvironmentSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSpecFileReadFailed, err.Error()), "path", path)
	}

	spec, err := ParseSpec(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return spec, nil
}

// ParseSpec decodes an environment file. Absent keys decode to nil lists and keys
// present with an empty list decode to empty, non-nil lists.
func ParseSpec(data []byte) (*domain.EnvironmentSpec, error) {
	var file EnvironmentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(domain.ErrSpecFileParseFailed, err.Error())
	}

	spec := &domain.EnvironmentSpec{Channels: file.Channels}
	if file.Dependencies == nil {
		return spec, nil
	}

	spec.Dependencies = make([]string, 0, len(file.Dependencies))
	for i := range file.Dependencies {
		node := &file.Dependencies[i]
		if node.Kind != yaml.ScalarNode {
			parseErr := zerr.Wrap(domain.ErrSpecFileParseFailed, "dependencies must be plain package specifiers")
			return nil, zerr.With(parseErr, "line", node.Line)
		}
		spec.Dependencies = append(spec.Dependencies, node.Value)
	}

	return spec, nil
}

// SpecFromPackages builds a spec from a channel list and package specifiers.
// Nil arguments become empty lists.
func SpecFromPackages(channels, packages []string) *domain.EnvironmentSpec {
	spec := &domain.EnvironmentSpec{
		Channels:     make([]string, 0, len(channels)),
		Dependencies: make([]string, 0, len(packages)),
	}
	spec.Channels = append(spec.Channels, channels...)
	spec.Dependencies = append(spec.Dependencies, packages...)
	return spec
}

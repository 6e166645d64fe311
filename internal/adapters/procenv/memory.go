package procenv

import "slices"

// Memory is an in-memory ports.PathContext. The zero value is ready to use.
type Memory struct {
	path    string
	modules []string
}

// NewMemory creates a Memory with the given executable path and module entries.
func NewMemory(path string, modules ...string) *Memory {
	return &Memory{path: path, modules: slices.Clone(modules)}
}

// ExecutablePath returns the stored executable search path.
func (m *Memory) ExecutablePath() string {
	return m.path
}

// SetExecutablePath replaces the stored executable search path.
func (m *Memory) SetExecutablePath(value string) error {
	m.path = value
	return nil
}

// ModulePaths returns a copy of the stored module search path.
func (m *Memory) ModulePaths() []string {
	return slices.Clone(m.modules)
}

// SetModulePaths replaces the stored module search path.
func (m *Memory) SetModulePaths(paths []string) error {
	m.modules = slices.Clone(paths)
	return nil
}

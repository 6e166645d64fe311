package domain

import "path/filepath"

// ManagedEnvironment is an environment installed by the package manager.
type ManagedEnvironment struct {
	// Name is the environment name, the final segment of Path.
	Name string
	// Path is the absolute installation prefix.
	Path string
}

// NewManagedEnvironment builds a ManagedEnvironment from an install path.
func NewManagedEnvironment(path string) ManagedEnvironment {
	return ManagedEnvironment{
		Name: filepath.Base(path),
		Path: path,
	}
}

// BinDir returns the directory holding the environment's executables.
func (e ManagedEnvironment) BinDir() string {
	return filepath.Join(e.Path, BinDirName)
}

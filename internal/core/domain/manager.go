package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageManager selects the command-line tool used to manage environments.
// All supported managers share the same argument shape.
type PackageManager string

const (
	// Mamba is the default package manager.
	Mamba PackageManager = "mamba"
	// Conda is the reference conda implementation.
	Conda PackageManager = "conda"
	// Micromamba is the standalone micromamba binary.
	Micromamba PackageManager = "micromamba"
)

// PackageManagers lists every supported package manager.
var PackageManagers = []PackageManager{Mamba, Conda, Micromamba}

// ParsePackageManager resolves a manager name, case-insensitively.
// An empty name selects Mamba.
func ParsePackageManager(name string) (PackageManager, error) {
	if name == "" {
		return Mamba, nil
	}
	for _, pm := range PackageManagers {
		if strings.EqualFold(name, string(pm)) {
			return pm, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownPackageManager, "unsupported package manager "+name), "manager", name)
}

// Command returns the executable name.
func (pm PackageManager) Command() string {
	return string(pm)
}

// ListArgs returns the arguments listing environments as JSON.
func (pm PackageManager) ListArgs() []string {
	return []string{"env", "list", "--json"}
}

// CreateArgs returns the arguments creating environment name from specFile.
func (pm PackageManager) CreateArgs(name, specFile string) []string {
	return []string{"env", "create", "--name", name, "-f", specFile}
}

// RemoveArgs returns the arguments removing environment name without prompting.
func (pm PackageManager) RemoveArgs(name string) []string {
	return []string{"env", "remove", "-n", name, "-y"}
}

// Package procenv exposes process search paths through ports.PathContext.
package procenv

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
)

const pathVar = "PATH"

// Process implements ports.PathContext over the real process environment.
// The executable search path is PATH; the module search path is stored in a
// configurable list variable such as PYTHONPATH.
type Process struct {
	moduleVar string
}

// NewProcess creates a Process that stores module paths in moduleVar.
// An empty moduleVar selects domain.DefaultModuleVar.
func NewProcess(moduleVar string) *Process {
	if moduleVar == "" {
		moduleVar = domain.DefaultModuleVar
	}
	return &Process{moduleVar: moduleVar}
}

// ModuleVar returns the name of the module search path variable.
func (p *Process) ModuleVar() string {
	return p.moduleVar
}

// ExecutablePath returns the current value of PATH.
func (p *Process) ExecutablePath() string {
	return os.Getenv(pathVar)
}

// SetExecutablePath replaces PATH.
func (p *Process) SetExecutablePath(value string) error {
	if err := os.Setenv(pathVar, value); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrPathUpdateFailed, err.Error()), "variable", pathVar)
	}
	return nil
}

// ModulePaths returns the entries of the module search path variable.
func (p *Process) ModulePaths() []string {
	return filepath.SplitList(os.Getenv(p.moduleVar))
}

// SetModulePaths replaces the module search path variable.
// The variable is unset when paths is empty.
func (p *Process) SetModulePaths(paths []string) error {
	var err error
	if len(paths) == 0 {
		err = os.Unsetenv(p.moduleVar)
	} else {
		err = os.Setenv(p.moduleVar, joinList(paths))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrPathUpdateFailed, err.Error()), "variable", p.moduleVar)
	}
	return nil
}

func joinList(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

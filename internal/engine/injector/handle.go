package injector

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/inject/internal/core/ports"
	"go.trai.ch/zerr"
)

// Handle is one active path injection. It is owned by the caller that created it
// and is not safe for concurrent use.
type Handle struct {
	env         domain.ManagedEnvironment
	pm          domain.PackageManager
	pathEntry   string
	moduleEntry string
	active      bool

	paths   ports.PathContext
	manager ports.EnvironmentManager
}

// Environment returns the injected environment.
func (h *Handle) Environment() domain.ManagedEnvironment {
	return h.env
}

// PathEntry returns the exact substring prepended to the executable search path.
func (h *Handle) PathEntry() string {
	return h.pathEntry
}

// ModuleEntry returns the entry appended to the module search path.
func (h *Handle) ModuleEntry() string {
	return h.moduleEntry
}

// Active reports whether the injection is still in place.
func (h *Handle) Active() bool {
	return h.active
}

// Deactivate undoes the injection. Calling it again is a no-op.
//
// Restoration is best-effort: an entry that is already gone counts as removed, and
// if other code rewrote the executable search path so the added substring no longer
// appears verbatim, it is left as is.
func (h *Handle) Deactivate() error {
	if !h.active {
		return nil
	}
	h.active = false

	var errs []error

	modules := h.paths.ModulePaths()
	if idx := slices.Index(modules, h.moduleEntry); idx >= 0 {
		remaining := slices.Delete(slices.Clone(modules), idx, idx+1)
		if err := h.paths.SetModulePaths(remaining); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to restore search path"), "entry", h.moduleEntry))
		}
	}

	path := h.paths.ExecutablePath()
	if strings.Contains(path, h.pathEntry) {
		if err := h.paths.SetExecutablePath(strings.Replace(path, h.pathEntry, "", 1)); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to restore search path"), "entry", h.pathEntry))
		}
	}

	return errors.Join(errs...)
}

// Close deactivates the injection. It satisfies io.Closer.
func (h *Handle) Close() error {
	return h.Deactivate()
}

// Remove deactivates the injection and then uninstalls the environment.
func (h *Handle) Remove(ctx context.Context) error {
	deactivateErr := h.Deactivate()
	if err := h.manager.Remove(ctx, h.pm, h.env.Name); err != nil {
		return errors.Join(err, deactivateErr)
	}
	return deactivateErr
}

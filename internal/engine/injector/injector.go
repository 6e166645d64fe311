// Package injector ensures package-manager environments exist and splices their
// search paths into a PathContext.
package injector

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/inject/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes the environment a caller wants injected.
type Request struct {
	// Spec is the caller's environment, before the interpreter pin is added.
	Spec *domain.EnvironmentSpec
	// Interpreter is the host interpreter the environment must match.
	Interpreter domain.Interpreter
	// ExtraConstraints are appended after the interpreter pin. Their package names
	// may not appear in Spec.
	ExtraConstraints []string
	// Manager selects the package manager CLI.
	Manager domain.PackageManager
}

// Injector creates environments on demand and injects them into a PathContext.
//
// Ensure performs an unguarded check-then-create: concurrent callers asking for the
// same fingerprint may both invoke the package manager's create command.
type Injector struct {
	manager ports.EnvironmentManager
	paths   ports.PathContext
	logger  ports.Logger
}

// New creates a new Injector.
func New(manager ports.EnvironmentManager, paths ports.PathContext, logger ports.Logger) *Injector {
	return &Injector{
		manager: manager,
		paths:   paths,
		logger:  logger,
	}
}

// Prepare validates the request's spec and derives the environment name.
// It never starts a subprocess.
func (i *Injector) Prepare(req Request) (*domain.PreparedSpec, error) {
	return domain.Prepare(req.Spec, req.Interpreter, req.ExtraConstraints)
}

// Ensure returns the environment named prepared.Name, creating it first if the
// package manager does not list it.
func (i *Injector) Ensure(
	ctx context.Context,
	pm domain.PackageManager,
	prepared *domain.PreparedSpec,
) (domain.ManagedEnvironment, error) {
	envs, err := i.manager.List(ctx, pm)
	if err != nil {
		return domain.ManagedEnvironment{}, err
	}

	if env, ok := envs[prepared.Name]; ok {
		i.logger.Info(fmt.Sprintf("reusing environment %s", env.Name))
		return env, nil
	}

	i.logger.Info(fmt.Sprintf("creating environment %s with %s", prepared.Name, pm))
	if err := i.manager.Create(ctx, pm, prepared.Name, prepared.Spec); err != nil {
		return domain.ManagedEnvironment{}, err
	}

	envs, err = i.manager.List(ctx, pm)
	if err != nil {
		return domain.ManagedEnvironment{}, err
	}

	env, ok := envs[prepared.Name]
	if !ok {
		notFound := zerr.Wrap(domain.ErrEnvironmentNotFound, "environment missing after creation")
		notFound = zerr.With(notFound, "name", prepared.Name)
		return domain.ManagedEnvironment{}, zerr.With(notFound, "manager", string(pm))
	}

	return env, nil
}

// Inject prepends env's executable directory to the executable search path and
// appends its module directory to the module search path.
//
// Repeated injections accumulate; nothing is deduplicated.
func (i *Injector) Inject(
	pm domain.PackageManager,
	env domain.ManagedEnvironment,
	interpreter domain.Interpreter,
) (*Handle, error) {
	h := &Handle{
		env:         env,
		pm:          pm,
		pathEntry:   env.BinDir() + string(os.PathListSeparator),
		moduleEntry: interpreter.SitePackages(env.Path),
		paths:       i.paths,
		manager:     i.manager,
	}

	original := i.paths.ExecutablePath()
	if err := i.paths.SetExecutablePath(h.pathEntry + original); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to inject search path"), "entry", h.pathEntry)
	}

	modules := append(i.paths.ModulePaths(), h.moduleEntry)
	if err := i.paths.SetModulePaths(modules); err != nil {
		_ = i.paths.SetExecutablePath(original)
		return nil, zerr.With(zerr.Wrap(err, "failed to inject search path"), "entry", h.moduleEntry)
	}

	h.active = true
	return h, nil
}

// Acquire prepares the request, ensures its environment exists and injects it.
// The caller owns the returned handle and must deactivate it.
func (i *Injector) Acquire(ctx context.Context, req Request) (*Handle, error) {
	prepared, err := i.Prepare(req)
	if err != nil {
		return nil, err
	}

	env, err := i.Ensure(ctx, req.Manager, prepared)
	if err != nil {
		return nil, err
	}

	return i.Inject(req.Manager, env, prepared.Interpreter)
}

// With acquires the request's environment, runs fn and deactivates the injection
// when fn returns or panics. The environment stays installed.
func (i *Injector) With(ctx context.Context, req Request, fn func(*Handle) error) (err error) {
	h, err := i.Acquire(ctx, req)
	if err != nil {
		return err
	}

	defer func() {
		if deactivateErr := h.Deactivate(); deactivateErr != nil {
			if err == nil {
				err = deactivateErr
				return
			}
			i.logger.Error(deactivateErr)
		}
	}()

	return fn(h)
}

// Remove uninstalls the environment called name.
func (i *Injector) Remove(ctx context.Context, pm domain.PackageManager, name string) error {
	i.logger.Info(fmt.Sprintf("removing environment %s", name))
	return i.manager.Remove(ctx, pm, name)
}

// Environments lists the environments created by inject.
func (i *Injector) Environments(ctx context.Context, pm domain.PackageManager) ([]domain.ManagedEnvironment, error) {
	envs, err := i.manager.List(ctx, pm)
	if err != nil {
		return nil, err
	}

	managed := make([]domain.ManagedEnvironment, 0, len(envs))
	for name, env := range envs {
		if domain.IsManagedName(name) {
			managed = append(managed, env)
		}
	}
	slices.SortFunc(managed, func(a, b domain.ManagedEnvironment) int {
		return strings.Compare(a.Name, b.Name)
	})

	return managed, nil
}

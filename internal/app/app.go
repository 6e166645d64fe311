// Package app implements the application layer for inject.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/inject/internal/adapters/config"
	"go.trai.ch/inject/internal/adapters/python"
	"go.trai.ch/inject/internal/adapters/shell"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/inject/internal/core/ports"
	"go.trai.ch/inject/internal/engine/injector"
)

// App represents the main application logic.
type App struct {
	injector     *injector.Injector
	specLoader   ports.SpecLoader
	interpreters ports.InterpreterDetector
	executor     ports.Executor
	logger       ports.Logger
	settings     *config.Settings
}

// New creates a new App instance.
func New(
	inj *injector.Injector,
	loader ports.SpecLoader,
	detector ports.InterpreterDetector,
	executor ports.Executor,
	log ports.Logger,
	settings *config.Settings,
) *App {
	if settings == nil {
		defaults := config.DefaultSettings()
		settings = &defaults
	}
	return &App{
		injector:     inj,
		specLoader:   loader,
		interpreters: detector,
		executor:     executor,
		logger:       log,
		settings:     settings,
	}
}

// SpecOptions selects the environment an operation works on. Empty fields fall
// back to the loaded settings.
type SpecOptions struct {
	// File is a package manager environment file. It takes precedence over Packages.
	File string
	// Channels and Packages describe the environment inline when File is empty.
	Channels []string
	Packages []string
	// Manager overrides the configured package manager.
	Manager string
	// ExtraConstraints are appended after the configured extra constraints.
	ExtraConstraints []string
	// InterpreterVersion skips interpreter detection.
	InterpreterVersion string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	SpecOptions
	// Command is the child argv.
	Command []string
	// CommandLine is split with shell quoting rules when Command is empty.
	CommandLine string
	Stdout      io.Writer
	Stderr      io.Writer
}

// RemoveOptions configuration for the Remove method.
type RemoveOptions struct {
	SpecOptions
	// Name removes an environment by name instead of deriving it from the spec.
	Name string
}

// Run injects the environment, runs the command inside it and deactivates the
// injection afterwards. The environment is created first if needed.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	argv := opts.Command
	if len(argv) == 0 && opts.CommandLine != "" {
		split, err := shell.Split(opts.CommandLine)
		if err != nil {
			return err
		}
		argv = split
	}
	if len(argv) == 0 {
		return domain.ErrNoCommandSpecified
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	req, err := a.request(ctx, opts.SpecOptions)
	if err != nil {
		return err
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return a.injector.With(ctx, req, func(h *injector.Handle) error {
		a.logger.Info(fmt.Sprintf("running in %s", h.Environment().Name))
		return a.executor.Execute(ctx, argv, stdout, stderr)
	})
}

// Create makes sure the environment exists without injecting it.
func (a *App) Create(ctx context.Context, opts SpecOptions) (domain.ManagedEnvironment, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	req, err := a.request(ctx, opts)
	if err != nil {
		return domain.ManagedEnvironment{}, err
	}

	prepared, err := a.injector.Prepare(req)
	if err != nil {
		return domain.ManagedEnvironment{}, err
	}

	return a.injector.Ensure(ctx, req.Manager, prepared)
}

// Remove uninstalls the environment and returns its name. Without a name, the
// environment is derived from the spec file or packages, one of which is required.
func (a *App) Remove(ctx context.Context, opts RemoveOptions) (string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	pm, err := a.manager(opts.Manager)
	if err != nil {
		return "", err
	}

	name := opts.Name
	if name == "" {
		if opts.File == "" && len(opts.Packages) == 0 {
			return "", domain.ErrNoRemovalTarget
		}
		prepared, err := a.Fingerprint(ctx, opts.SpecOptions)
		if err != nil {
			return "", err
		}
		name = prepared.Name
	}

	if err := a.injector.Remove(ctx, pm, name); err != nil {
		return "", err
	}
	return name, nil
}

// List returns the environments created by inject.
func (a *App) List(ctx context.Context, manager string) ([]domain.ManagedEnvironment, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	pm, err := a.manager(manager)
	if err != nil {
		return nil, err
	}
	return a.injector.Environments(ctx, pm)
}

// Fingerprint validates the environment and derives its name without calling the
// package manager.
func (a *App) Fingerprint(ctx context.Context, opts SpecOptions) (*domain.PreparedSpec, error) {
	req, err := a.request(ctx, opts)
	if err != nil {
		return nil, err
	}
	return a.injector.Prepare(req)
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

func (a *App) request(ctx context.Context, opts SpecOptions) (injector.Request, error) {
	pm, err := a.manager(opts.Manager)
	if err != nil {
		return injector.Request{}, err
	}

	spec, err := a.spec(opts)
	if err != nil {
		return injector.Request{}, err
	}

	interp, err := a.interpreter(ctx, opts.InterpreterVersion)
	if err != nil {
		return injector.Request{}, err
	}

	extras := make([]string, 0, len(a.settings.ExtraConstraints)+len(opts.ExtraConstraints))
	extras = append(extras, a.settings.ExtraConstraints...)
	extras = append(extras, opts.ExtraConstraints...)

	return injector.Request{
		Spec:             spec,
		Interpreter:      interp,
		ExtraConstraints: extras,
		Manager:          pm,
	}, nil
}

func (a *App) spec(opts SpecOptions) (*domain.EnvironmentSpec, error) {
	if opts.File != "" {
		return a.specLoader.Load(opts.File)
	}
	return config.SpecFromPackages(opts.Channels, opts.Packages), nil
}

func (a *App) interpreter(ctx context.Context, version string) (domain.Interpreter, error) {
	if version == "" {
		return a.interpreters.Detect(ctx)
	}
	return python.NewDetector(a.settings.Interpreter.Name, a.settings.Interpreter.Binary, version).Detect(ctx)
}

func (a *App) manager(name string) (domain.PackageManager, error) {
	if name == "" {
		return a.settings.PackageManager()
	}
	return domain.ParsePackageManager(name)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.settings.Timeout > 0 {
		return context.WithTimeout(ctx, a.settings.Timeout)
	}
	return context.WithCancel(ctx)
}

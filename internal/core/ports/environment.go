// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/inject/internal/core/domain"
)

// EnvironmentManager drives an external package manager's environment commands.
//
// Every call blocks until the subprocess exits. Implementations add no locking:
// two callers creating the same environment concurrently race inside the package
// manager itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentManager interface {
	// List returns the installed environments keyed by name.
	List(ctx context.Context, pm domain.PackageManager) (map[string]domain.ManagedEnvironment, error)

	// Create installs a new environment called name from spec.
	Create(ctx context.Context, pm domain.PackageManager, name string, spec *domain.EnvironmentSpec) error

	// Remove uninstalls the environment called name.
	Remove(ctx context.Context, pm domain.PackageManager, name string) error
}

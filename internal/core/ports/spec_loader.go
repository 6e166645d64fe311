package ports

import "go.trai.ch/inject/internal/core/domain"

// SpecLoader reads environment specifications in the package manager's native file format.
//
//go:generate go run go.uber.org/mock/mockgen -source=spec_loader.go -destination=mocks/mock_spec_loader.go -package=mocks
type SpecLoader interface {
	// Load parses the environment file at path.
	Load(path string) (*domain.EnvironmentSpec, error)
}

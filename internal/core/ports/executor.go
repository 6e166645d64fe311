package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running a child command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv with the current process environment, which carries any
	// active injection. It returns an error if the command exits non-zero.
	Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) error
}

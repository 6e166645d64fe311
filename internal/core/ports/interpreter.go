package ports

import (
	"context"

	"go.trai.ch/inject/internal/core/domain"
)

// InterpreterDetector determines the host interpreter environments must match.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type InterpreterDetector interface {
	// Detect returns the interpreter name and its major.minor version.
	Detect(ctx context.Context) (domain.Interpreter, error)
}

package ports

// PathContext holds the search paths an injection mutates.
//
// The process implementation edits the real environment variables; tests and
// embedders can substitute an in-memory one.
//
//go:generate go run go.uber.org/mock/mockgen -source=path_context.go -destination=mocks/mock_path_context.go -package=mocks
type PathContext interface {
	// ExecutablePath returns the executable search path as a single separator-joined string.
	ExecutablePath() string

	// SetExecutablePath replaces the executable search path.
	SetExecutablePath(value string) error

	// ModulePaths returns the ordered module search path.
	ModulePaths() []string

	// SetModulePaths replaces the module search path.
	SetModulePaths(entries []string) error
}

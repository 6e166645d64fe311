package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSpec is the parent of every environment specification validation failure.
	ErrInvalidSpec = zerr.New("invalid environment spec")

	// ErrMissingField is returned when the spec lacks the channels or dependencies key.
	ErrMissingField = zerr.Wrap(ErrInvalidSpec, "missing field")

	// ErrMalformedSpec is returned when a dependency string has no parseable package name.
	ErrMalformedSpec = zerr.Wrap(ErrInvalidSpec, "malformed package spec, expected 'name =1.0' or 'name >=1.0'")

	// ErrReservedPackage is returned when a dependency names a package the injector pins itself.
	ErrReservedPackage = zerr.Wrap(ErrInvalidSpec, "package is reserved and pinned automatically")

	// ErrUnknownPackageManager is returned when a package manager name is not supported.
	ErrUnknownPackageManager = zerr.New("unknown package manager")

	// ErrManagerInvocationFailed is returned when the package manager exits non-zero
	// or produces output that cannot be parsed.
	ErrManagerInvocationFailed = zerr.New("package manager invocation failed")

	// ErrEnvironmentCreationFailed is returned when creating an environment fails.
	ErrEnvironmentCreationFailed = zerr.New("failed to create environment")

	// ErrEnvironmentRemovalFailed is returned when removing an environment fails.
	ErrEnvironmentRemovalFailed = zerr.New("failed to remove environment")

	// ErrEnvironmentNotFound is returned when an environment is missing from the manager's listing.
	ErrEnvironmentNotFound = zerr.New("environment not found")

	// ErrInterpreterDetectionFailed is returned when the host interpreter version cannot be determined.
	ErrInterpreterDetectionFailed = zerr.New("failed to detect interpreter version")

	// ErrSpecFileReadFailed is returned when an environment file cannot be read.
	ErrSpecFileReadFailed = zerr.New("failed to read environment file")

	// ErrSpecFileParseFailed is returned when an environment file cannot be parsed.
	ErrSpecFileParseFailed = zerr.New("failed to parse environment file")

	// ErrSpecFileWriteFailed is returned when the temporary environment file cannot be written.
	ErrSpecFileWriteFailed = zerr.New("failed to write environment file")

	// ErrConfigLoadFailed is returned when the settings file cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrPathUpdateFailed is returned when a process search path cannot be updated.
	ErrPathUpdateFailed = zerr.New("failed to update search path")

	// ErrNoCommandSpecified is returned when run is invoked without a command.
	ErrNoCommandSpecified = zerr.New("no command specified")

	// ErrNoRemovalTarget is returned when remove is given neither a name nor a spec source.
	ErrNoRemovalTarget = zerr.New("no environment to remove, give a name, a spec file or packages")

	// ErrCommandFailed is returned when the child command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")
)

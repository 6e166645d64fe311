package domain

const (
	// EnvNamePrefix namespaces the environments created by inject.
	EnvNamePrefix = "conda-inject-"

	// EnvNameSuffix terminates every generated environment name.
	EnvNameSuffix = "_"

	// BinDirName is the executable directory inside an environment prefix.
	BinDirName = "bin"

	// SpecFilePattern is the os.CreateTemp pattern for generated environment files.
	SpecFilePattern = "inject-*.conda.yaml"

	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = ".inject.yaml"

	// EnvPrefix prefixes environment variables that override settings.
	EnvPrefix = "INJECT"

	// DefaultModuleVar is the variable listing the interpreter's module search path.
	DefaultModuleVar = "PYTHONPATH"

	// DefaultInterpreterBinary is the interpreter executable queried for its version.
	DefaultInterpreterBinary = "python3"

	// PrivateFilePerm is the permission for generated environment files (rw-------).
	PrivateFilePerm = 0o600
)

package domain

import "path/filepath"

// DefaultInterpreterName is the package name of the host interpreter.
const DefaultInterpreterName = "python"

// Interpreter identifies the host interpreter an environment must match.
type Interpreter struct {
	// Name is the interpreter's package name (e.g. "python").
	Name string
	// Version is the major.minor version (e.g. "3.12").
	Version string
}

// Pin returns the exact-version dependency for the interpreter, e.g. "python =3.12".
func (i Interpreter) Pin() string {
	return i.Name + " =" + i.Version
}

// SitePackages returns the module directory of the interpreter inside an environment prefix.
func (i Interpreter) SitePackages(prefix string) string {
	return filepath.Join(prefix, "lib", i.Name+i.Version, "site-packages")
}

package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// packageSpecPattern matches "name", "name =1.0", "name>=1.0,<2" and similar specifiers.
// The name is any run of characters other than '=', '<', '>' and whitespace.
var packageSpecPattern = regexp.MustCompile(`(?s)^(?P<name>[^=<>\s]+)\s*(?P<constraint>.*)$`)

// EnvironmentSpec is a declarative environment description in the package manager's
// native environment-file schema.
//
// A nil slice means the key was absent, an empty slice means it was present but empty.
type EnvironmentSpec struct {
	Channels     []string `json:"channels"     yaml:"channels"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// Clone returns a deep copy of the spec, preserving nil-ness of both lists.
func (s *EnvironmentSpec) Clone() *EnvironmentSpec {
	out := &EnvironmentSpec{}
	if s.Channels != nil {
		out.Channels = append(make([]string, 0, len(s.Channels)), s.Channels...)
	}
	if s.Dependencies != nil {
		out.Dependencies = append(make([]string, 0, len(s.Dependencies)), s.Dependencies...)
	}
	return out
}

// Dependency is the parsed form of a package specifier.
type Dependency struct {
	// Name is the package name (e.g. "numpy").
	Name string
	// Constraint is everything after the name, without leading whitespace (e.g. ">=1.24").
	Constraint string
}

// ParseDependency splits a package specifier into name and constraint.
func ParseDependency(spec string) (Dependency, error) {
	m := packageSpecPattern.FindStringSubmatch(spec)
	if m == nil {
		return Dependency{}, zerr.With(zerr.Wrap(ErrMalformedSpec, "invalid dependency"), "dependency", spec)
	}
	return Dependency{
		Name:       m[packageSpecPattern.SubexpIndex("name")],
		Constraint: m[packageSpecPattern.SubexpIndex("constraint")],
	}, nil
}

// Validate checks that spec has both keys and that no dependency is malformed or
// names one of the reserved packages. It does not modify spec.
func Validate(spec *EnvironmentSpec, reserved []string) error {
	if spec == nil || spec.Channels == nil {
		return zerr.With(zerr.Wrap(ErrMissingField, "missing 'channels' in environment"), "field", "channels")
	}
	if spec.Dependencies == nil {
		return zerr.With(zerr.Wrap(ErrMissingField, "missing 'dependencies' in environment"), "field", "dependencies")
	}

	reservedSet := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		reservedSet[name] = struct{}{}
	}

	for _, raw := range spec.Dependencies {
		dep, err := ParseDependency(raw)
		if err != nil {
			return err
		}
		if _, ok := reservedSet[dep.Name]; ok {
			reservedErr := zerr.Wrap(ErrReservedPackage, "dependency list contains "+dep.Name)
			return zerr.With(reservedErr, "package", dep.Name)
		}
	}

	return nil
}

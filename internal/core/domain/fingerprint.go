package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"
	"go.trai.ch/zerr"
)

// Augment returns a copy of spec with the interpreter pin and the extra constraints
// appended to its dependencies, in that order. spec itself is left untouched.
func Augment(spec *EnvironmentSpec, interpreter Interpreter, extraConstraints []string) *EnvironmentSpec {
	augmented := spec.Clone()
	if augmented.Channels == nil {
		augmented.Channels = []string{}
	}
	augmented.Dependencies = append(augmented.Dependencies, interpreter.Pin())
	augmented.Dependencies = append(augmented.Dependencies, extraConstraints...)
	return augmented
}

// CanonicalJSON returns the RFC 8785 canonical JSON form of spec.
// Channel and dependency order is significant and preserved.
func CanonicalJSON(spec *EnvironmentSpec) ([]byte, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal environment spec")
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to canonicalize environment spec")
	}

	return canonical, nil
}

// Fingerprint derives the environment name for an augmented spec.
// The name is stable across processes and machines for byte-identical canonical forms.
func Fingerprint(spec *EnvironmentSpec) (string, error) {
	canonical, err := CanonicalJSON(spec)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(canonical)
	return EnvNamePrefix + hex.EncodeToString(hash[:]) + EnvNameSuffix, nil
}

// IsManagedName reports whether name looks like an environment created by this tool.
func IsManagedName(name string) bool {
	digestLen := len(name) - len(EnvNamePrefix) - len(EnvNameSuffix)
	if digestLen != sha256.Size*2 {
		return false
	}
	if name[:len(EnvNamePrefix)] != EnvNamePrefix || name[len(name)-len(EnvNameSuffix):] != EnvNameSuffix {
		return false
	}
	_, err := hex.DecodeString(name[len(EnvNamePrefix) : len(EnvNamePrefix)+digestLen])
	return err == nil
}

// PreparedSpec is a validated, augmented spec together with its environment name.
type PreparedSpec struct {
	Spec        *EnvironmentSpec
	Name        string
	Interpreter Interpreter
}

// Prepare validates spec, augments it with the interpreter pin and extra constraints,
// and fingerprints the result.
//
// The interpreter package and the package of every extra constraint are reserved:
// spec must not name them itself, and no extra constraint may name the interpreter.
func Prepare(spec *EnvironmentSpec, interpreter Interpreter, extraConstraints []string) (*PreparedSpec, error) {
	reserved := []string{interpreter.Name}
	for _, constraint := range extraConstraints {
		dep, err := ParseDependency(constraint)
		if err != nil {
			return nil, zerr.With(err, "source", "extra constraint")
		}
		if dep.Name == interpreter.Name {
			reservedErr := zerr.Wrap(ErrReservedPackage, "extra constraint pins "+dep.Name)
			reservedErr = zerr.With(reservedErr, "package", dep.Name)
			return nil, zerr.With(reservedErr, "source", "extra constraint")
		}
		reserved = append(reserved, dep.Name)
	}

	if err := Validate(spec, reserved); err != nil {
		return nil, err
	}

	augmented := Augment(spec, interpreter, extraConstraints)
	name, err := Fingerprint(augmented)
	if err != nil {
		return nil, err
	}

	return &PreparedSpec{
		Spec:        augmented,
		Name:        name,
		Interpreter: interpreter,
	}, nil
}

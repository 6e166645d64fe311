// Package python detects the host interpreter version that injected environments
// must match.
package python

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
)

// execCommandContext is replaced in tests.
var execCommandContext = exec.CommandContext

// versionPattern extracts the numeric release from "Python 3.12.1" or "Python 3.13.0rc1".
var versionPattern = regexp.MustCompile(`\d+(?:\.\d+){0,2}`)

// Detector implements ports.InterpreterDetector.
type Detector struct {
	name    string
	binary  string
	version string
}

// NewDetector creates a Detector for the interpreter package name. When version is
// non-empty it is returned without running binary.
func NewDetector(name, binary, version string) *Detector {
	if name == "" {
		name = domain.DefaultInterpreterName
	}
	if binary == "" {
		binary = domain.DefaultInterpreterBinary
	}
	return &Detector{
		name:    name,
		binary:  binary,
		version: version,
	}
}

// Detect returns the interpreter name and its major.minor version.
func (d *Detector) Detect(ctx context.Context) (domain.Interpreter, error) {
	if d.version != "" {
		version, err := ParseVersion(d.version)
		if err != nil {
			return domain.Interpreter{}, zerr.With(err, "source", "settings")
		}
		return domain.Interpreter{Name: d.name, Version: version}, nil
	}

	var out bytes.Buffer
	//nolint:gosec // binary comes from user settings
	cmd := execCommandContext(ctx, d.binary, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		detectErr := zerr.Wrap(domain.ErrInterpreterDetectionFailed, err.Error())
		detectErr = zerr.With(detectErr, "binary", d.binary)
		return domain.Interpreter{}, zerr.With(detectErr, "output", strings.TrimSpace(out.String()))
	}

	version, err := ParseVersion(out.String())
	if err != nil {
		return domain.Interpreter{}, zerr.With(err, "binary", d.binary)
	}

	return domain.Interpreter{Name: d.name, Version: version}, nil
}

// ParseVersion reduces interpreter version output to "major.minor".
func ParseVersion(output string) (string, error) {
	raw := versionPattern.FindString(output)
	if raw == "" {
		detectErr := zerr.Wrap(domain.ErrInterpreterDetectionFailed, "no version number found")
		return "", zerr.With(detectErr, "output", strings.TrimSpace(output))
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		detectErr := zerr.Wrap(domain.ErrInterpreterDetectionFailed, err.Error())
		return "", zerr.With(detectErr, "output", strings.TrimSpace(output))
	}

	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}

// Package conda implements ports.EnvironmentManager on top of the mamba, conda and
// micromamba command line interfaces.
package conda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// execCommandContext is replaced in tests.
var execCommandContext = exec.CommandContext

// Client implements ports.EnvironmentManager by shelling out to a package manager.
type Client struct {
	tempDir string
}

// NewClient creates a Client that writes environment files to the system temp directory.
func NewClient() *Client {
	return &Client{}
}

// NewClientWithTempDir creates a Client that writes environment files to dir.
func NewClientWithTempDir(dir string) *Client {
	return &Client{tempDir: dir}
}

// listResponse is the output of "env list --json".
type listResponse struct {
	Envs []string `json:"envs"`
}

// List returns every environment known to pm, keyed by name.
func (c *Client) List(ctx context.Context, pm domain.PackageManager) (map[string]domain.ManagedEnvironment, error) {
	args := pm.ListArgs()
	stdout, stderr, err := c.run(ctx, pm, args)
	if err != nil {
		return nil, invocationError(domain.ErrManagerInvocationFailed, pm, args, err, stderr)
	}

	var resp listResponse
	if err := json.Unmarshal(stdout, &resp); err != nil {
		parseErr := zerr.Wrap(domain.ErrManagerInvocationFailed, "failed to parse environment list")
		parseErr = zerr.With(parseErr, "command", render(pm, args))
		return nil, zerr.With(parseErr, "reason", err.Error())
	}

	envs := make(map[string]domain.ManagedEnvironment, len(resp.Envs))
	for _, path := range resp.Envs {
		if path == "" {
			continue
		}
		env := domain.NewManagedEnvironment(path)
		envs[env.Name] = env
	}

	return envs, nil
}

// Create writes spec to a temporary environment file and creates the environment
// called name from it. The file is removed afterwards.
func (c *Client) Create(
	ctx context.Context,
	pm domain.PackageManager,
	name string,
	spec *domain.EnvironmentSpec,
) error {
	path, cleanup, err := c.writeSpecFile(spec)
	if err != nil {
		return err
	}
	defer cleanup()

	args := pm.CreateArgs(name, path)
	stdout, stderr, err := c.run(ctx, pm, args)
	if err != nil {
		createErr := invocationError(domain.ErrEnvironmentCreationFailed, pm, args, err, stderr)
		createErr = zerr.With(createErr, "name", name)
		return zerr.With(createErr, "stdout", strings.TrimSpace(string(stdout)))
	}

	return nil
}

// Remove deletes the environment called name.
func (c *Client) Remove(ctx context.Context, pm domain.PackageManager, name string) error {
	args := pm.RemoveArgs(name)
	_, stderr, err := c.run(ctx, pm, args)
	if err != nil {
		removeErr := invocationError(domain.ErrEnvironmentRemovalFailed, pm, args, err, stderr)
		return zerr.With(removeErr, "name", name)
	}
	return nil
}

func (c *Client) run(ctx context.Context, pm domain.PackageManager, args []string) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer

	//nolint:gosec // command name comes from a closed set of package managers
	cmd := execCommandContext(ctx, pm.Command(), args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

func (c *Client) writeSpecFile(spec *domain.EnvironmentSpec) (tmpPath string, cleanup func(), err error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(domain.ErrSpecFileWriteFailed, err.Error()), "stage", "marshal")
	}

	tmpFile, err := os.CreateTemp(c.tempDir, domain.SpecFilePattern)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(domain.ErrSpecFileWriteFailed, err.Error()), "stage", "create")
	}

	tmpPath = tmpFile.Name()
	cleanup = func() {
		_ = os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(domain.ErrSpecFileWriteFailed, writeErr.Error()), "path", tmpPath)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(domain.ErrSpecFileWriteFailed, closeErr.Error()), "path", tmpPath)
	}

	return tmpPath, cleanup, nil
}

// invocationError wraps kind with the rendered command line, exit code and stderr.
func invocationError(
	kind error,
	pm domain.PackageManager,
	args []string,
	runErr error,
	stderr []byte,
) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	err := zerr.Wrap(kind, pm.Command()+": "+runErr.Error())
	err = zerr.With(err, "command", render(pm, args))
	err = zerr.With(err, "exit_code", exitCode)
	return zerr.With(err, "stderr", strings.TrimSpace(string(stderr)))
}

func render(pm domain.PackageManager, args []string) string {
	return shellquote.Join(append([]string{pm.Command()}, args...)...)
}

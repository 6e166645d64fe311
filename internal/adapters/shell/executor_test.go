package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inject/internal/adapters/shell"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExecutor_Execute_Output(t *testing.T) {
	executor := shell.NewExecutorWithStdin(strings.NewReader("from stdin\n"))

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(), []string{"sh", "-c", "cat; echo out; echo err >&2"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "from stdin\nout\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_SeesInjectedPath(t *testing.T) {
	binDir := t.TempDir()
	script := filepath.Join(binDir, "inject-test-tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho tool:$INJECT_TEST_MARKER\n"), 0o700)) //nolint:gosec // executable fixture
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("INJECT_TEST_MARKER", "ok")

	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(context.Background(), []string{"inject-test-tool"}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tool:ok\n", stdout.String())
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	err := shell.NewExecutor().Execute(context.Background(), []string{"sh", "-c", "exit 3"}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh -c 'exit 3'", zErr.Metadata()["command"])
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	err := shell.NewExecutor().Execute(context.Background(), []string{"inject-no-such-binary"}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_Empty(t *testing.T) {
	err := shell.NewExecutor().Execute(context.Background(), nil, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrNoCommandSpecified)
}

func TestRenderSplit(t *testing.T) {
	argv := []string{"python", "-c", "import humanfriendly; print('ok')"}

	line := shell.Render(argv)
	assert.Equal(t, `python -c 'import humanfriendly; print('\''ok'\'')'`, line)

	parsed, err := shell.Split(line)
	require.NoError(t, err)
	assert.Equal(t, argv, parsed)
}

func TestSplit_Unterminated(t *testing.T) {
	_, err := shell.Split(`python -c "print(1)`)
	require.ErrorIs(t, err, domain.ErrNoCommandSpecified)
}

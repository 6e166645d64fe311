package python_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inject/internal/adapters/python"
	"go.trai.ch/inject/internal/core/domain"
)

func mockExecCommand(output string, exitCode int) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, command string, args ...string) *exec.Cmd {
		cs := []string{"-test.run=TestHelperProcess", "--", command}
		cs = append(cs, args...)
		//nolint:gosec // Test helper calls
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = []string{
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_OUTPUT=" + output,
			fmt.Sprintf("HELPER_EXIT=%d", exitCode),
		}
		return cmd
	}
}

// TestHelperProcess is the fake interpreter.
func TestHelperProcess(_ *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	_, _ = fmt.Fprintln(os.Stdout, os.Getenv("HELPER_OUTPUT"))
	if os.Getenv("HELPER_EXIT") != "0" {
		os.Exit(1)
	}
	os.Exit(0)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{output: "Python 3.12.1", want: "3.12"},
		{output: "Python 3.13.0rc1\n", want: "3.13"},
		{output: "3.9", want: "3.9"},
		{output: "Python 2.7.18", want: "2.7"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, err := python.ParseVersion(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersion_NoVersion(t *testing.T) {
	_, err := python.ParseVersion("command not found")
	require.ErrorIs(t, err, domain.ErrInterpreterDetectionFailed)
}

func TestDetect_ConfiguredVersion(t *testing.T) {
	restore := python.SetExecCommandContext(func(context.Context, string, ...string) *exec.Cmd {
		panic("interpreter must not be executed")
	})
	defer restore()

	interp, err := python.NewDetector("", "", "3.11.4").Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Interpreter{Name: "python", Version: "3.11"}, interp)
}

func TestDetect_RunsBinary(t *testing.T) {
	restore := python.SetExecCommandContext(mockExecCommand("Python 3.12.7", 0))
	defer restore()

	interp, err := python.NewDetector("python", "python3", "").Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.12", interp.Version)
	assert.Equal(t, "python =3.12", interp.Pin())
}

func TestDetect_BinaryFails(t *testing.T) {
	restore := python.SetExecCommandContext(mockExecCommand("boom", 1))
	defer restore()

	_, err := python.NewDetector("python", "python3", "").Detect(context.Background())
	require.ErrorIs(t, err, domain.ErrInterpreterDetectionFailed)
}

func TestDetect_UnparsableOutput(t *testing.T) {
	restore := python.SetExecCommandContext(mockExecCommand("hello", 0))
	defer restore()

	_, err := python.NewDetector("python", "python3", "").Detect(context.Background())
	require.ErrorIs(t, err, domain.ErrInterpreterDetectionFailed)
}

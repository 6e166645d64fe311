package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inject/internal/core/domain"
)

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input string
		want  domain.PackageManager
	}{
		{input: "", want: domain.Mamba},
		{input: "mamba", want: domain.Mamba},
		{input: "Conda", want: domain.Conda},
		{input: "MICROMAMBA", want: domain.Micromamba},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pm, err := domain.ParsePackageManager(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pm)
		})
	}
}

func TestParsePackageManager_Unknown(t *testing.T) {
	_, err := domain.ParsePackageManager("pip")
	require.ErrorIs(t, err, domain.ErrUnknownPackageManager)
}

func TestPackageManager_Args(t *testing.T) {
	pm := domain.Micromamba

	assert.Equal(t, "micromamba", pm.Command())
	assert.Equal(t, []string{"env", "list", "--json"}, pm.ListArgs())
	assert.Equal(t, []string{"env", "create", "--name", "n", "-f", "/tmp/f.yaml"}, pm.CreateArgs("n", "/tmp/f.yaml"))
	assert.Equal(t, []string{"env", "remove", "-n", "n", "-y"}, pm.RemoveArgs("n"))
}

func TestInterpreter(t *testing.T) {
	interp := domain.Interpreter{Name: "python", Version: "3.11"}

	assert.Equal(t, "python =3.11", interp.Pin())
	assert.Equal(t, "/opt/envs/x/lib/python3.11/site-packages", interp.SitePackages("/opt/envs/x"))
}

func TestNewManagedEnvironment(t *testing.T) {
	env := domain.NewManagedEnvironment("/opt/conda/envs/conda-inject-abc_")

	assert.Equal(t, "conda-inject-abc_", env.Name)
	assert.Equal(t, "/opt/conda/envs/conda-inject-abc_", env.Path)
	assert.Equal(t, "/opt/conda/envs/conda-inject-abc_/bin", env.BinDir())
}

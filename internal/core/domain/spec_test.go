package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inject/internal/core/domain"
)

func TestParseDependency(t *testing.T) {
	tests := []struct {
		name           string
		spec           string
		wantName       string
		wantConstraint string
	}{
		{name: "bare name", spec: "numpy", wantName: "numpy"},
		{name: "spaced exact pin", spec: "humanfriendly =10.0", wantName: "humanfriendly", wantConstraint: "=10.0"},
		{name: "attached range", spec: "requests>=2.31,<3", wantName: "requests", wantConstraint: ">=2.31,<3"},
		{name: "double equals", spec: "pandas==2.1.0", wantName: "pandas", wantConstraint: "==2.1.0"},
		{name: "channel qualified", spec: "conda-forge::zlib 1.2.13", wantName: "conda-forge::zlib", wantConstraint: "1.2.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep, err := domain.ParseDependency(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, dep.Name)
			assert.Equal(t, tt.wantConstraint, dep.Constraint)
		})
	}
}

func TestParseDependency_Malformed(t *testing.T) {
	for _, spec := range []string{"", "=1.0", ">=2", " numpy", "<3"} {
		t.Run(spec, func(t *testing.T) {
			_, err := domain.ParseDependency(spec)
			require.ErrorIs(t, err, domain.ErrMalformedSpec)
			require.ErrorIs(t, err, domain.ErrInvalidSpec)
		})
	}
}

func TestValidate(t *testing.T) {
	reserved := []string{"python"}

	tests := []struct {
		name    string
		spec    *domain.EnvironmentSpec
		wantErr error
	}{
		{
			name: "valid",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"humanfriendly =10.0"},
			},
		},
		{
			name: "empty lists are present",
			spec: &domain.EnvironmentSpec{Channels: []string{}, Dependencies: []string{}},
		},
		{
			name:    "nil spec",
			spec:    nil,
			wantErr: domain.ErrMissingField,
		},
		{
			name:    "missing channels",
			spec:    &domain.EnvironmentSpec{Dependencies: []string{"numpy"}},
			wantErr: domain.ErrMissingField,
		},
		{
			name:    "missing dependencies",
			spec:    &domain.EnvironmentSpec{Channels: []string{"conda-forge"}},
			wantErr: domain.ErrMissingField,
		},
		{
			name: "empty dependency",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"numpy", ""},
			},
			wantErr: domain.ErrMalformedSpec,
		},
		{
			name: "dependency starting with constraint",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"=1.0"},
			},
			wantErr: domain.ErrMalformedSpec,
		},
		{
			name: "interpreter without constraint",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"python"},
			},
			wantErr: domain.ErrReservedPackage,
		},
		{
			name: "interpreter with constraint",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"python >=3.8"},
			},
			wantErr: domain.ErrReservedPackage,
		},
		{
			name: "name only prefixed by interpreter",
			spec: &domain.EnvironmentSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"python-dateutil"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.Validate(tt.spec, reserved)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, domain.ErrInvalidSpec)
		})
	}
}

func TestValidate_ReservedPackageMetadata(t *testing.T) {
	spec := &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"requests =2.31"},
	}

	err := domain.Validate(spec, []string{"python", "requests"})
	require.ErrorIs(t, err, domain.ErrReservedPackage)
	assert.Contains(t, err.Error(), "requests")
}

func TestValidate_DoesNotMutate(t *testing.T) {
	spec := &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"numpy"},
	}

	require.NoError(t, domain.Validate(spec, []string{"python"}))
	assert.Equal(t, []string{"numpy"}, spec.Dependencies)
}

func TestEnvironmentSpec_Clone(t *testing.T) {
	spec := &domain.EnvironmentSpec{Channels: []string{"a"}}
	clone := spec.Clone()

	assert.Nil(t, clone.Dependencies)
	clone.Channels[0] = "b"
	assert.Equal(t, "a", spec.Channels[0])
}

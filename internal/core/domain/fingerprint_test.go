package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inject/internal/core/domain"
)

var py312 = domain.Interpreter{Name: "python", Version: "3.12"}

func baseSpec() *domain.EnvironmentSpec {
	return &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"humanfriendly =10.0"},
	}
}

func TestAugment(t *testing.T) {
	spec := baseSpec()

	augmented := domain.Augment(spec, py312, []string{"requests =2.31", "zlib"})

	assert.Equal(t, []string{"humanfriendly =10.0", "python =3.12", "requests =2.31", "zlib"}, augmented.Dependencies)
	assert.Equal(t, []string{"conda-forge"}, augmented.Channels)
	assert.Equal(t, []string{"humanfriendly =10.0"}, spec.Dependencies, "input spec must not change")
}

func TestCanonicalJSON(t *testing.T) {
	canonical, err := domain.CanonicalJSON(&domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"a<2", "python =3.12"},
	})
	require.NoError(t, err)

	// Keys sorted, no whitespace, no HTML escaping of '<'.
	assert.JSONEq(t, `{"channels":["conda-forge"],"dependencies":["a<2","python =3.12"]}`, string(canonical))
	assert.Equal(t, `{"channels":["conda-forge"],"dependencies":["a<2","python =3.12"]}`, string(canonical))
}

func TestFingerprint_Deterministic(t *testing.T) {
	first, err := domain.Fingerprint(domain.Augment(baseSpec(), py312, nil))
	require.NoError(t, err)

	second, err := domain.Fingerprint(domain.Augment(baseSpec(), py312, nil))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, domain.EnvNamePrefix))
	assert.True(t, strings.HasSuffix(first, domain.EnvNameSuffix))
	assert.Len(t, first, len(domain.EnvNamePrefix)+64+len(domain.EnvNameSuffix))
	assert.True(t, domain.IsManagedName(first))
}

func TestFingerprint_Differs(t *testing.T) {
	base, err := domain.Fingerprint(domain.Augment(baseSpec(), py312, nil))
	require.NoError(t, err)

	variants := map[string]*domain.EnvironmentSpec{
		"channel": domain.Augment(&domain.EnvironmentSpec{
			Channels:     []string{"bioconda"},
			Dependencies: []string{"humanfriendly =10.0"},
		}, py312, nil),
		"dependency": domain.Augment(&domain.EnvironmentSpec{
			Channels:     []string{"conda-forge"},
			Dependencies: []string{"humanfriendly =10.1"},
		}, py312, nil),
		"interpreter": domain.Augment(baseSpec(), domain.Interpreter{Name: "python", Version: "3.11"}, nil),
		"extra constraint": domain.Augment(baseSpec(), py312, []string{"zlib"}),
		"channel order": domain.Augment(&domain.EnvironmentSpec{
			Channels:     []string{"defaults", "conda-forge"},
			Dependencies: []string{"humanfriendly =10.0"},
		}, py312, nil),
	}

	seen := map[string]string{base: "base"}
	for label, spec := range variants {
		name, err := domain.Fingerprint(spec)
		require.NoError(t, err)
		other, dup := seen[name]
		assert.False(t, dup, "%s collides with %s", label, other)
		seen[name] = label
	}
}

func TestPrepare(t *testing.T) {
	prepared, err := domain.Prepare(baseSpec(), py312, []string{"requests =2.31"})
	require.NoError(t, err)

	assert.Equal(t, []string{"humanfriendly =10.0", "python =3.12", "requests =2.31"}, prepared.Spec.Dependencies)
	assert.Equal(t, py312, prepared.Interpreter)

	expected, err := domain.Fingerprint(prepared.Spec)
	require.NoError(t, err)
	assert.Equal(t, expected, prepared.Name)
}

func TestPrepare_ExtraConstraintReservesName(t *testing.T) {
	spec := &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"requests =2.31"},
	}

	_, err := domain.Prepare(spec, py312, []string{"requests =2.31"})
	require.ErrorIs(t, err, domain.ErrReservedPackage)
}

func TestPrepare_DistinctExtraConstraintAllowed(t *testing.T) {
	spec := &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"requests =2.31"},
	}

	_, err := domain.Prepare(spec, py312, []string{"urllib3 <2"})
	require.NoError(t, err)
}

func TestPrepare_MalformedExtraConstraint(t *testing.T) {
	_, err := domain.Prepare(baseSpec(), py312, []string{">=1"})
	require.ErrorIs(t, err, domain.ErrMalformedSpec)
}

func TestPrepare_InterpreterReserved(t *testing.T) {
	spec := &domain.EnvironmentSpec{
		Channels:     []string{"conda-forge"},
		Dependencies: []string{"python =3.10"},
	}

	_, err := domain.Prepare(spec, py312, nil)
	require.ErrorIs(t, err, domain.ErrReservedPackage)
}

func TestPrepare_ExtraConstraintPinsInterpreter(t *testing.T) {
	_, err := domain.Prepare(baseSpec(), py312, []string{"python =3.11"})
	require.ErrorIs(t, err, domain.ErrReservedPackage)
	require.ErrorIs(t, err, domain.ErrInvalidSpec)
}

func TestIsManagedName(t *testing.T) {
	assert.False(t, domain.IsManagedName("base"))
	assert.False(t, domain.IsManagedName("conda-inject-xyz_"))
	assert.False(t, domain.IsManagedName(domain.EnvNamePrefix+strings.Repeat("g", 64)+domain.EnvNameSuffix))
	assert.True(t, domain.IsManagedName(domain.EnvNamePrefix+strings.Repeat("a", 64)+domain.EnvNameSuffix))
}

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/bigm/simplex"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFileAndFlags(t *testing.T) {
	c, err := Load(viper.New(), newFlags(t, "--max-iterations=7"), "testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, c.PenaltyScale)
	assert.Equal(t, 7, c.MaxIterations)
	assert.Equal(t, simplex.DefaultTolerance, c.Tolerance)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BIGM_FEASIBILITY_TOLERANCE", "0.001")
	c, err := Load(viper.New(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0.001, c.FeasibilityTolerance)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), nil, "testdata/missing.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.PenaltyScale = 0
	assert.Error(t, c.Validate())

	c.Penalty = 10
	assert.NoError(t, c.Validate())

	c.MaxIterations = -1
	assert.Error(t, c.Validate())
}

func TestOptions(t *testing.T) {
	c := Default()
	c.MaxIterations = 1

	_, err := simplex.SolveDense([]float64{3, 5}, [][]float64{{1, 0}, {0, 2}, {3, 2}}, []float64{4, 12, 18}, true, nil, nil, c.Options()...)
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
}

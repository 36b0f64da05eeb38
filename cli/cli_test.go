package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/bigm/simplex"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveText(t *testing.T) {
	out, err := execute(t, "solve", "testdata/scenario1.txt")
	require.NoError(t, err)
	assert.Equal(t, "Solution: [2, 6]\nObjective value: 36\nSolution to the given problem is feasible\n", out)
}

func TestSolveUnbounded(t *testing.T) {
	out, err := execute(t, "solve", "testdata/unbounded.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Solution to the given problem is unbounded\n", out)
}

func TestSolveShowTableau(t *testing.T) {
	out, err := execute(t, "solve", "--show-tableau", "testdata/scenario1.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "maximize")
	assert.Contains(t, out, "T = ")
	assert.Contains(t, out, "basic = [2 3 4]")
	assert.Contains(t, out, "Objective value: 36")
}

func TestSolveConfigFile(t *testing.T) {
	_, err := execute(t, "solve", "--config", "testdata/config.yaml", "testdata/scenario1.txt")
	assert.ErrorIs(t, err, simplex.ErrIterationLimit)

	// flags take precedence over the file
	out, err := execute(t, "solve", "--config", "testdata/config.yaml", "--max-iterations", "5", "testdata/scenario1.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Objective value: 36")
}

func TestSolveErrors(t *testing.T) {
	_, err := execute(t, "solve", "--format", "xml", "testdata/scenario1.txt")
	assert.Error(t, err)

	_, err = execute(t, "solve", "testdata/missing.txt")
	assert.Error(t, err)

	_, err = execute(t, "solve")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--penalty-scale", "0", "testdata/scenario1.txt")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "convert", "testdata/scenario1.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "sense: maximize")
	assert.Contains(t, out, "coefficients:")
	assert.Contains(t, out, "rhs: 18")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "[0.6, 1.2, 0]", formatValues([]float64{0.6000000000001, 1.2, -0.0}))
}

package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/bigm/model"
)

func mustProblem(t *testing.T, c []float64, rows [][]float64, b []float64) *model.Problem {
	t.Helper()
	p, err := model.FromRows(c, rows, b)
	require.NoError(t, err)
	return p
}

func TestStandardizeSlackOnly(t *testing.T) {
	p := mustProblem(t, []float64{3, 5}, [][]float64{{1, 0}, {0, 2}, {3, 2}}, []float64{4, 12, 18})

	cs, err := Standardize(p)
	require.NoError(t, err)

	assert.True(t, mat.Equal(mat.NewDense(3, 5, []float64{
		1, 0, 1, 0, 0,
		0, 2, 0, 1, 0,
		3, 2, 0, 0, 1,
	}), cs.A))
	assert.True(t, mat.Equal(mat.NewDense(1, 5, []float64{3, 5, 0, 0, 0}), cs.C))
	assert.True(t, mat.Equal(p.B, cs.B))
	assert.Equal(t, []int{2, 3, 4}, cs.Basic)
	assert.Equal(t, 2, cs.NumStructural)
	for j := 2; j < 5; j++ {
		assert.Equal(t, model.Slack, cs.Vars[j].Kind)
		assert.True(t, cs.Vars[j].IsBasic)
	}
}

func TestStandardizeMixedSigns(t *testing.T) {
	p := mustProblem(t, []float64{4, 1}, [][]float64{{3, 1}, {4, 3}, {1, 2}}, []float64{3, 6, 4})
	p.SetSense(model.Minimize)
	require.NoError(t, p.SetSigns([]model.Sign{model.Equal, model.GreaterEqual, model.LessEqual}))

	cs, err := Standardize(p)
	require.NoError(t, err)

	const M = 6e6
	assert.Equal(t, M, cs.Penalty)
	assert.True(t, mat.Equal(mat.NewDense(3, 6, []float64{
		3, 1, 1, 0, 0, 0,
		4, 3, 0, -1, 0, 1,
		1, 2, 0, 0, 1, 0,
	}), cs.A))
	assert.True(t, mat.Equal(mat.NewDense(1, 6, []float64{4, 1, M, 0, 0, M}), cs.C))
	assert.Equal(t, []int{2, 5, 4}, cs.Basic)

	kinds := make([]model.Kind, len(cs.Vars))
	for j, v := range cs.Vars {
		kinds[j] = v.Kind
	}
	assert.Equal(t, []model.Kind{
		model.Decision, model.Decision, model.Artificial, model.Surplus, model.Slack, model.Artificial,
	}, kinds)
	assert.Equal(t, 1, cs.Vars[5].Source)
}

func TestStandardizePenaltySign(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{1}}, []float64{2})
	require.NoError(t, p.SetSigns([]model.Sign{model.GreaterEqual}))

	cs, err := Standardize(p, WithPenalty(100))
	require.NoError(t, err)
	assert.Equal(t, -100.0, cs.Penalty)
	assert.Equal(t, -100.0, cs.C.At(0, 2))

	p.SetSense(model.Minimize)
	cs, err = Standardize(p, WithPenaltyScale(10))
	require.NoError(t, err)
	assert.Equal(t, 20.0, cs.Penalty)
}

func TestStandardizeUnrestricted(t *testing.T) {
	p := mustProblem(t, []float64{1, 2, 3}, [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{7, 8})
	require.NoError(t, p.SetUnrestricted([]bool{true, false, true}))

	cs, err := Standardize(p)
	require.NoError(t, err)

	assert.Equal(t, 5, cs.NumStructural)
	assert.True(t, mat.Equal(mat.NewDense(2, 7, []float64{
		1, -1, 2, 3, -3, 1, 0,
		4, -4, 5, 6, -6, 0, 1,
	}), cs.A))
	assert.True(t, mat.Equal(mat.NewDense(1, 7, []float64{1, -1, 2, 3, -3, 0, 0}), cs.C))
	assert.Equal(t, []int{5, 6}, cs.Basic)
	assert.Equal(t, model.Negative, cs.Vars[1].Kind)
	assert.Equal(t, 0, cs.Vars[1].Source)
	assert.Equal(t, model.Negative, cs.Vars[4].Kind)
	assert.Equal(t, 2, cs.Vars[4].Source)

	assert.Equal(t, []float64{-1, 3, 2}, cs.Structural([]float64{1, 2, 3, 5, 3}))
}

func TestStandardizeNegativeRHS(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{-1, -1}, {1, 0}}, []float64{-5, 3})
	require.NoError(t, p.SetSigns([]model.Sign{model.GreaterEqual, model.LessEqual}))

	cs, err := Standardize(p)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, cs.Flipped)
	assert.Equal(t, []model.Sign{model.LessEqual, model.LessEqual}, cs.Signs)
	assert.True(t, mat.Equal(mat.NewDense(2, 1, []float64{5, 3}), cs.B))
	assert.Equal(t, 1.0, cs.A.At(0, 0))
	assert.Equal(t, []int{2, 3}, cs.Basic)
	assert.Equal(t, -5.0, p.B.At(0, 0), "input problem must not be modified")
}

func TestStandardizeShapeMismatch(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 1}}, []float64{1})
	p.Signs = []model.Sign{model.LessEqual, model.LessEqual}

	_, err := Standardize(p)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Standardize(nil)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/bigm/model"
)

func TestEngineFirstIteration(t *testing.T) {
	tab := scenarioOneTableau(t)
	e := newEngine(tab, model.Maximize, newOptions(nil))

	e.reducedCosts()
	assert.Equal(t, []float64{-3, -5, 0, 0, 0}, e.zc.RawVector().Data)

	enter := e.entering()
	require.Equal(t, 1, enter)
	require.False(t, e.optimal(enter))
	require.False(t, e.unbounded(enter))

	row, ratio := e.leaving(enter)
	require.Equal(t, 1, row)
	assert.Equal(t, 6.0, ratio)

	require.NoError(t, e.pivot(row, enter))
	assert.True(t, mat.EqualApprox(mat.NewDense(4, 6, []float64{
		1, 0, 1, 0, 0, 4,
		0, 1, 0, 0.5, 0, 6,
		3, 0, 0, -1, 1, 6,
		3, 0, 0, -2.5, 0, -30,
	}), tab.T, 1e-12))
	assert.Equal(t, []int{2, 1, 4}, tab.Basis.Basic)
	assert.Equal(t, []int{0, 3}, tab.Basis.Nonbasic)

	e.reducedCosts()
	enter = e.entering()
	require.Equal(t, 0, enter)
	row, ratio = e.leaving(enter)
	assert.Equal(t, 2, row)
	assert.Equal(t, 2.0, ratio)
}

func TestEngineRun(t *testing.T) {
	tab := scenarioOneTableau(t)
	e := newEngine(tab, model.Maximize, newOptions(nil))

	status, err := e.run()
	require.NoError(t, err)
	assert.Equal(t, Feasible, status)
	assert.Equal(t, 2, e.iterations)
	assert.InDelta(t, -36, tab.Corner(), 1e-9)
	assert.Equal(t, []int{2, 1, 0}, tab.Basis.Basic)
}

func TestEnteringTieBreak(t *testing.T) {
	tab := scenarioOneTableau(t)
	e := newEngine(tab, model.Maximize, newOptions(nil))
	e.zc = mat.NewVecDense(5, []float64{0, -2, 1, -2, 0})
	assert.Equal(t, 1, e.entering())

	e.sense = model.Minimize
	e.zc = mat.NewVecDense(5, []float64{1, 3, 3, -1, 0})
	assert.Equal(t, 1, e.entering())
}

func TestLeavingTieBreak(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{2, 1}, {1, 1}, {1, 0}}, []float64{4, 2, 0})
	cs, err := Standardize(p)
	require.NoError(t, err)
	tab, err := NewTableau(cs)
	require.NoError(t, err)
	e := newEngine(tab, model.Maximize, newOptions(nil))

	// rows 0 and 1 tie at ratio 2 but the degenerate row 2 wins at 0
	row, ratio := e.leaving(0)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0.0, ratio)

	// column 1 has ratios 4, 2 and no entry in row 2
	row, ratio = e.leaving(1)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2.0, ratio)
}

func TestPivotZeroElement(t *testing.T) {
	tab := scenarioOneTableau(t)
	e := newEngine(tab, model.Maximize, newOptions(nil))

	err := e.pivot(0, 1)
	require.ErrorIs(t, err, ErrPivotDegeneracy)
	assert.Equal(t, []int{2, 3, 4}, tab.Basis.Basic)
}

func TestUnboundedColumn(t *testing.T) {
	p := mustProblem(t, []float64{1, 0}, [][]float64{{1, -1}}, []float64{1})
	cs, err := Standardize(p)
	require.NoError(t, err)
	tab, err := NewTableau(cs)
	require.NoError(t, err)
	e := newEngine(tab, model.Maximize, newOptions(nil))

	assert.False(t, e.unbounded(0))
	assert.True(t, e.unbounded(1))
}

func TestOptimalScalesWithPenalty(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 1}}, []float64{2})
	require.NoError(t, p.SetSigns([]model.Sign{model.GreaterEqual}))
	cs, err := Standardize(p, WithPenalty(1e12))
	require.NoError(t, err)
	tab, err := NewTableau(cs)
	require.NoError(t, err)
	assert.Equal(t, -1e12, tab.Penalty)

	e := newEngine(tab, model.Maximize, newOptions(nil))
	e.zc = mat.NewVecDense(4, []float64{-1e-5, 0, 0, 0})
	assert.True(t, e.optimal(0))
	e.zc = mat.NewVecDense(4, []float64{-1e-2, 0, 0, 0})
	assert.False(t, e.optimal(0))

	small := newEngine(scenarioOneTableau(t), model.Maximize, newOptions(nil))
	small.zc = mat.NewVecDense(5, []float64{-1e-5, 0, 0, 0, 0})
	assert.False(t, small.optimal(0))
}

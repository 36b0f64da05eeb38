package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
	"q.log/bigm/model"
	"q.log/bigm/simplex"
)

// referenceMinimum solves minimize c·x s.t. G·x <= h, x >= 0 with gonum,
// passing it the standard form [G I]·[x; s] = h.
func referenceMinimum(t *testing.T, c []float64, g *mat.Dense, h []float64) float64 {
	t.Helper()
	m, n := g.Dims()
	a := mat.NewDense(m, n+m, nil)
	a.Slice(0, m, 0, n).(*mat.Dense).Copy(g)
	for i := range m {
		a.Set(i, n+i, 1)
	}
	cs := append(append([]float64(nil), c...), make([]float64, m)...)

	opt, _, err := lp.Simplex(cs, a, h, 0, nil)
	require.NoError(t, err)
	return opt
}

func TestSolveMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := range 50 {
		m, n := 2+rnd.Intn(3), 2+rnd.Intn(3)
		c := make([]float64, n)
		for j := range c {
			c[j] = rnd.Float64()*10 - 5
		}
		rows := make([][]float64, m)
		h := make([]float64, m)
		g := mat.NewDense(m+1, n, nil)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = 1 + rnd.Float64()*9
				g.Set(i, j, rows[i][j])
			}
			h[i] = 5 + rnd.Float64()*20
		}
		// sum(x) >= 0.1 keeps the origin out and exercises an artificial column
		sumRow := make([]float64, n)
		for j := range sumRow {
			sumRow[j] = 1
			g.Set(m, j, -1)
		}
		want := referenceMinimum(t, c, g, append(append([]float64(nil), h...), -0.1))

		p, err := model.FromRows(c, rows, h)
		require.NoError(t, err)
		require.NoError(t, p.SetSigns(make([]model.Sign, m)))
		require.NoError(t, p.AddRow(sumRow, model.GreaterEqual, 0.1))
		p.SetSense(model.Minimize)

		sol, err := simplex.Solve(p)
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, simplex.Feasible, sol.Status, "trial %d", trial)
		assert.InDelta(t, want, sol.Objective, 1e-6, "trial %d", trial)
		assert.InDelta(t, p.Objective(sol.Values()), sol.Objective, 1e-6, "trial %d", trial)
	}
}

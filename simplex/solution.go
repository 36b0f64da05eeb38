package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
	"q.log/bigm/model"
)

// Solution contains the results of a solve.
type Solution struct {
	Status Status

	// X holds one value per structural column: every original variable
	// followed, for free variables, by its negative part. Nil when
	// unbounded.
	X []float64

	// Objective is the value of the objective function at X. Only
	// meaningful when HasSolution is true.
	Objective float64

	// Full holds the value of every canonical column, slack, surplus and
	// artificial ones included.
	Full []float64

	// Basic is the final basic column of every row.
	Basic []int

	Variables []model.Variable

	Iterations int

	system  *Canonical
	problem *model.Problem
}

// HasSolution reports whether X and Objective are present.
func (s *Solution) HasSolution() bool {
	return s.Status != Unbounded && s.X != nil
}

func (s *Solution) IsFeasible() bool {
	return s.Status == Feasible
}

func (s *Solution) IsInfeasible() bool {
	return s.Status == Infeasible
}

func (s *Solution) IsUnbounded() bool {
	return s.Status == Unbounded
}

// Values returns one value per original variable, x⁺ - x⁻ for free ones.
func (s *Solution) Values() []float64 {
	if !s.HasSolution() {
		return nil
	}
	return s.system.Structural(s.X)
}

// Activity returns A_i·x for every original constraint row.
func (s *Solution) Activity() []float64 {
	if !s.HasSolution() {
		return nil
	}
	values := s.Values()
	activity := make([]float64, s.problem.NumRows)
	for i := range activity {
		activity[i] = floats.Dot(s.problem.Row(i), values)
	}
	return activity
}

// Slack returns b_i - A_i·x for every original row. Surplus rows come out
// negative.
func (s *Solution) Slack() []float64 {
	activity := s.Activity()
	if activity == nil {
		return nil
	}
	for i := range activity {
		activity[i] = s.problem.B.At(i, 0) - activity[i]
	}
	return activity
}

// extract reads the basic solution out of an optimal tableau and audits it
// against the original constraints.
func extract(tab *Tableau, cs *Canonical, p *model.Problem, o Options) *Solution {
	full := make([]float64, cs.NumCols)
	for i, b := range tab.Basis.Basic {
		full[b] = tab.RHS(i)
	}

	vars := make([]model.Variable, len(cs.Vars))
	copy(vars, cs.Vars)
	for j := range vars {
		vars[j].IsBasic = tab.Basis.IsBasic(j)
		vars[j].Value = full[j]
	}

	sol := &Solution{
		Status:    Feasible,
		X:         append([]float64(nil), full[:cs.NumStructural]...),
		Objective: -tab.Corner(),
		Full:      full,
		Basic:     append([]int(nil), tab.Basis.Basic...),
		Variables: vars,
		system:    cs,
		problem:   p,
	}

	for j, v := range vars {
		if !v.IsArtificial() || !v.IsBasic {
			continue
		}
		i := v.Source
		if full[j] > o.FeasibilityTolerance*rowScale(mat.Row(nil, i, cs.A), full, cs.B.At(i, 0)) {
			klog.V(2).Infof("artificial column %d is basic at %g, row %d is not satisfied", j, full[j], v.Source)
			sol.Status = Infeasible
		}
	}
	if !audit(p, sol.X, sol.Values(), o.FeasibilityTolerance) {
		sol.Status = Infeasible
	}
	return sol
}

// rowScale is max(1, |b_i|, sum_j |a_ij x_j|), the magnitude a row's
// residual is measured against.
func rowScale(row, x []float64, rhs float64) float64 {
	scale := math.Max(1, math.Abs(rhs))
	var sum float64
	for j, a := range row {
		sum += math.Abs(a * x[j])
	}
	return math.Max(scale, sum)
}

// audit re-evaluates every original row at the extracted point. Each side
// may be off by tol relative to the row's scale.
func audit(p *model.Problem, x, values []float64, tol float64) bool {
	xTol := tol * math.Max(1, floats.Norm(x, math.Inf(1)))
	for j, v := range x {
		if v < -xTol {
			klog.V(2).Infof("column %d is negative: %g", j, v)
			return false
		}
	}
	for i := range p.NumRows {
		row := p.Row(i)
		lhs := floats.Dot(row, values)
		rhs := p.B.At(i, 0)
		if !p.SignAt(i).Holds(lhs, rhs, tol*rowScale(row, values, rhs)) {
			klog.V(2).Infof("constraint %d violated: %g %s %g", i, lhs, p.SignAt(i), rhs)
			return false
		}
	}
	return true
}

package simplex

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
	"q.log/bigm/model"
)

// penaltyRoundoff is the relative error allowed on reduced costs, in units
// of |M|.
const penaltyRoundoff = 16 * 0x1p-52

// engine owns the tableau for the duration of one solve.
type engine struct {
	tab   *Tableau
	sense model.Sense
	opts  Options

	// zc holds z_j - c_j for every canonical column.
	zc *mat.VecDense
	cb *mat.VecDense

	// costTol is the zero threshold of reduced costs. They carry roundoff
	// proportional to the penalty.
	costTol float64

	iterations int
}

func newEngine(tab *Tableau, sense model.Sense, opts Options) *engine {
	return &engine{
		tab:   tab,
		sense: sense,
		opts:  opts,
		zc:    mat.NewVecDense(tab.NumCols, nil),
		cb:    mat.NewVecDense(tab.NumRows, nil),

		costTol: math.Max(opts.Tolerance, penaltyRoundoff*math.Abs(tab.Penalty)),
	}
}

// reducedCosts computes z_j - c_j as the objective-row entries of the basic
// columns dotted with column j, minus the objective-row entry of column j.
func (e *engine) reducedCosts() {
	m, n := e.tab.NumRows, e.tab.NumCols
	t := e.tab.T
	for i, b := range e.tab.Basis.Basic {
		e.cb.SetVec(i, t.At(m, b))
	}
	e.zc.MulVec(t.Slice(0, m, 0, n).T(), e.cb)
	e.zc.SubVec(e.zc, t.Slice(m, m+1, 0, n).(*mat.Dense).RowView(0))
}

// entering picks the most negative reduced cost when maximizing and the most
// positive one when minimizing. Ties keep the lowest index.
func (e *engine) entering() int {
	best := 0
	for j := 1; j < e.zc.Len(); j++ {
		v := e.zc.AtVec(j)
		if e.sense == model.Maximize && v < e.zc.AtVec(best) {
			best = j
		}
		if e.sense == model.Minimize && v > e.zc.AtVec(best) {
			best = j
		}
	}
	return best
}

func (e *engine) optimal(enter int) bool {
	v := e.zc.AtVec(enter)
	if e.sense == model.Maximize {
		return v >= -e.costTol
	}
	return v <= e.costTol
}

// unbounded reports whether no constraint row limits the entering column.
func (e *engine) unbounded(enter int) bool {
	for i := range e.tab.NumRows {
		if e.tab.T.At(i, enter) > e.opts.Tolerance {
			return false
		}
	}
	return true
}

// leaving runs the minimum ratio test over rows with a positive entry in the
// entering column. Ties keep the lowest row.
func (e *engine) leaving(enter int) (int, float64) {
	row := -1
	minimalRatio := math.Inf(1)
	for i := range e.tab.NumRows {
		a := e.tab.T.At(i, enter)
		if a <= e.opts.Tolerance {
			continue
		}
		rhs := e.tab.RHS(i)
		if math.Abs(rhs) < e.opts.Tolerance {
			rhs = 0
		}
		if ratio := rhs / a; ratio < minimalRatio {
			minimalRatio = ratio
			row = i
		}
	}
	return row, minimalRatio
}

// pivot divides the pivot row by the pivot element, eliminates the entering
// column from every other row (objective row included) and updates the basis.
func (e *engine) pivot(row, enter int) error {
	t := e.tab.T
	p := t.At(row, enter)
	if math.Abs(p) <= e.opts.Tolerance || math.IsNaN(p) || math.IsInf(p, 0) {
		return errors.Wrapf(ErrPivotDegeneracy, "pivot element %g at row %d, column %d", p, row, enter)
	}

	pivotRow := t.RawRowView(row)
	floats.Scale(1/p, pivotRow)
	pivotRow[enter] = 1
	for i := 0; i <= e.tab.NumRows; i++ {
		if i == row {
			continue
		}
		r := t.RawRowView(i)
		f := r[enter]
		if f == 0 {
			continue
		}
		floats.AddScaled(r, -f, pivotRow)
		r[enter] = 0
	}
	if rhs := t.At(row, e.tab.NumCols); math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return errors.Wrapf(ErrPivotDegeneracy, "non-finite rhs after pivoting on row %d, column %d", row, enter)
	}

	e.tab.Basis.swap(row, enter)
	return nil
}

// run pivots until the basis is optimal or the problem is found unbounded.
func (e *engine) run() (Status, error) {
	for {
		e.reducedCosts()
		enter := e.entering()
		if e.optimal(enter) {
			return Feasible, nil
		}
		// A column whose reduced cost does not improve the objective cannot
		// prove unboundedness, so this check follows the optimality test.
		if e.unbounded(enter) {
			klog.V(3).Infof("column %d has no positive entry, problem is unbounded", enter)
			return Unbounded, nil
		}
		if e.iterations >= e.opts.MaxIterations {
			return 0, errors.Wrapf(ErrIterationLimit, "%d pivots", e.iterations)
		}

		row, ratio := e.leaving(enter)
		if row < 0 {
			return 0, errors.Wrapf(ErrPivotDegeneracy, "no leaving row for column %d", enter)
		}
		ev := PivotEvent{
			Iteration:   e.iterations + 1,
			Entering:    enter,
			Leaving:     e.tab.Basis.Basic[row],
			Row:         row,
			Ratio:       ratio,
			ReducedCost: e.zc.AtVec(enter),
		}
		if err := e.pivot(row, enter); err != nil {
			return 0, err
		}
		e.iterations++

		klog.V(3).Infof("iteration %d: %d -> %d (row %d, ratio %g)", ev.Iteration, ev.Leaving, ev.Entering, ev.Row, ev.Ratio)
		if klogV := klog.V(5); klogV.Enabled() {
			var buf bytes.Buffer
			e.tab.Print(&buf)
			klogV.Info(buf.String())
		}
		if e.opts.Observer != nil {
			e.opts.Observer.ObservePivot(ev)
		}
	}
}

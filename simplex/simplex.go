// Package simplex solves small dense linear programs with the tableau
// form of the simplex method, using Big-M penalties for the artificial
// variables of >= and = rows.
package simplex

import (
	"bytes"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"q.log/bigm/model"
)

// Solve standardizes p, builds the initial tableau, pivots it to optimality
// and extracts the solution. Unbounded and infeasible problems are reported
// through Solution.Status; the returned error is reserved for malformed
// input and numerical breakdown.
func Solve(p *model.Problem, opts ...Option) (*Solution, error) {
	o := newOptions(opts)

	cs, err := standardize(p, o)
	if err != nil {
		return nil, err
	}
	tab, err := NewTableau(cs)
	if err != nil {
		return nil, err
	}
	if klogV := klog.V(5); klogV.Enabled() {
		var buf bytes.Buffer
		p.Print(&buf)
		tab.Print(&buf)
		klogV.Info(buf.String())
	}

	e := newEngine(tab, p.Sense, o)
	status, err := e.run()
	if err != nil {
		return nil, errors.Wrapf(err, "%s %d×%d", p.Sense, p.NumRows, p.NumCols)
	}

	sol := &Solution{Status: Unbounded, system: cs, problem: p}
	if status != Unbounded {
		sol = extract(tab, cs, p, o)
	}
	sol.Iterations = e.iterations

	klog.V(2).Infof("%s %d×%d: %s after %d pivots", p.Sense, p.NumRows, p.NumCols, sol.Status, sol.Iterations)
	if o.Observer != nil {
		o.Observer.ObserveSolution(sol)
	}
	return sol, nil
}

// SolveDense solves
//
//	maximize (or minimize) c·x  s.t.  A·x <sign> b
//
// where sign holds "<=", ">=" or "=" per row (nil means all "<=") and
// unrestricted flags free-sign variables (nil means none).
func SolveDense(c []float64, A [][]float64, b []float64, maximize bool, sign []string, unrestricted []bool, opts ...Option) (*Solution, error) {
	p, err := model.FromRows(c, A, b)
	if err != nil {
		return nil, err
	}
	if !maximize {
		p.SetSense(model.Minimize)
	}
	signs, err := model.ParseSigns(sign)
	if err != nil {
		return nil, err
	}
	if err := p.SetSigns(signs); err != nil {
		return nil, err
	}
	if err := p.SetUnrestricted(unrestricted); err != nil {
		return nil, err
	}
	return Solve(p, opts...)
}

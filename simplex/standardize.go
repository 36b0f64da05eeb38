package simplex

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/bigm/model"
)

// Canonical is a problem rewritten as A·x = b, x >= 0 where every row owns
// a unit column to start the basis from.
//
// Column layout, left to right:
//
//	x_0 [x_0⁻] x_1 [x_1⁻] ...   one column per variable, plus a negated
//	                            companion right after each free variable
//	s_0 ... s_{m-1}             one column per row: slack (<=), surplus (>=)
//	                            or artificial (=)
//	a_0 ... a_{g-1}             one artificial column per >= row
type Canonical struct {
	// A is the augmented constraint matrix (m×n').
	A *mat.Dense
	// C is the augmented objective (1×n'), artificial columns carry Penalty.
	C *mat.Dense
	// B is the right-hand side after sign normalisation (m×1, all >= 0).
	B *mat.Dense

	Vars []model.Variable

	// Basic holds the initial basic column of every row.
	Basic []int

	// Signs are the row relations after normalisation.
	Signs []model.Sign

	// Flipped marks rows that were multiplied by -1 because b_i < 0.
	Flipped []bool

	// NumStructural is the number of original and companion columns, the
	// length of the solution vector x.
	NumStructural int

	// Penalty is the signed Big-M cost of artificial columns.
	Penalty float64

	NumRows int
	NumCols int
}

// Standardize converts p into canonical form. p is not modified.
func Standardize(p *model.Problem, opts ...Option) (*Canonical, error) {
	o := newOptions(opts)
	return standardize(p, o)
}

func standardize(p *model.Problem, o Options) (*Canonical, error) {
	if p == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "nil problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, n := p.NumRows, p.NumCols

	// Structural columns first, so the companion of a free variable sits
	// right after it and later columns never have to shift.
	pos := make([]int, n)
	var vars []model.Variable
	for j := range n {
		pos[j] = len(vars)
		vars = append(vars, model.Variable{Kind: model.Decision, Source: j})
		if p.IsUnrestricted(j) {
			vars = append(vars, model.Variable{Kind: model.Negative, Source: j})
		}
	}
	nx := len(vars)

	signs := make([]model.Sign, m)
	flipped := make([]bool, m)
	geRows := 0
	for i := range m {
		signs[i] = p.SignAt(i)
		if p.B.At(i, 0) < 0 {
			signs[i] = signs[i].Flip()
			flipped[i] = true
		}
		if signs[i] == model.GreaterEqual {
			geRows++
		}
	}

	penalty := o.Penalty
	if penalty <= 0 {
		penalty = o.PenaltyScale * math.Max(1, p.MaxAbs())
	}
	if p.Sense == model.Maximize {
		penalty = -penalty
	}

	numCols := nx + m + geRows
	cs := &Canonical{
		A:             mat.NewDense(m, numCols, nil),
		C:             mat.NewDense(1, numCols, nil),
		B:             mat.NewDense(m, 1, nil),
		Basic:         make([]int, m),
		Signs:         signs,
		Flipped:       flipped,
		NumStructural: nx,
		Penalty:       penalty,
		NumRows:       m,
		NumCols:       numCols,
	}

	for j := range n {
		cj := p.C.At(0, j)
		cs.C.Set(0, pos[j], cj)
		if p.IsUnrestricted(j) {
			cs.C.Set(0, pos[j]+1, -cj)
		}
	}

	art := nx + m
	for i := range m {
		mul := 1.0
		if flipped[i] {
			mul = -1
		}
		for j := range n {
			a := mul * p.A.At(i, j)
			cs.A.Set(i, pos[j], a)
			if p.IsUnrestricted(j) {
				cs.A.Set(i, pos[j]+1, -a)
			}
		}
		cs.B.Set(i, 0, mul*p.B.At(i, 0))

		col := nx + i
		switch signs[i] {
		case model.LessEqual:
			cs.A.Set(i, col, 1)
			vars = append(vars, model.Variable{Kind: model.Slack, Source: i})
			cs.Basic[i] = col
		case model.Equal:
			cs.A.Set(i, col, 1)
			cs.C.Set(0, col, penalty)
			vars = append(vars, model.Variable{Kind: model.Artificial, Source: i})
			cs.Basic[i] = col
		case model.GreaterEqual:
			cs.A.Set(i, col, -1)
			vars = append(vars, model.Variable{Kind: model.Surplus, Source: i})
			cs.A.Set(i, art, 1)
			cs.C.Set(0, art, penalty)
			cs.Basic[i] = art
			art++
		}
	}
	for i := range m {
		if signs[i] == model.GreaterEqual {
			vars = append(vars, model.Variable{Kind: model.Artificial, Source: i})
		}
	}
	for _, b := range cs.Basic {
		vars[b].IsBasic = true
	}
	cs.Vars = vars

	return cs, nil
}

// Structural maps a vector over the structural columns back to the
// original variables, combining the parts of every free variable.
func (cs *Canonical) Structural(x []float64) []float64 {
	var values []float64
	for j, v := range cs.Vars {
		switch {
		case !v.IsStructural():
		case v.Kind == model.Negative:
			values[len(values)-1] -= x[j]
		default:
			values = append(values, x[j])
		}
	}
	return values
}

package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Problem is a linear program in the user's own terms:
//
//	maximize or minimize  c·x
//	subject to            A_i·x <sign_i> b_i   for every row i
//	                      x_j >= 0             unless Unrestricted[j]
type Problem struct {
	//C objective function coefficients (1×NumCols)
	C *mat.Dense

	//A constraints matrix (NumRows×NumCols)
	A *mat.Dense

	//B constraints rhs (NumRows×1)
	B *mat.Dense

	Sense Sense

	// Signs holds one relation per row. When nil every row is <=.
	Signs []Sign

	// Unrestricted flags free-sign variables. When nil every variable is
	// non-negative.
	Unrestricted []bool

	NumRows int
	NumCols int
}

func NewProblem(numRows, numCols int) (*Problem, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d rows, %d columns", numRows, numCols)
	}
	return &Problem{
		C:       mat.NewDense(1, numCols, nil),
		A:       mat.NewDense(numRows, numCols, nil),
		B:       mat.NewDense(numRows, 1, nil),
		NumRows: numRows,
		NumCols: numCols,
	}, nil
}

// FromRows builds a problem from an objective, one slice per constraint
// row and the right-hand sides. The slices are copied.
func FromRows(c []float64, rows [][]float64, b []float64) (*Problem, error) {
	if len(rows) != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d constraint rows but %d right-hand sides", len(rows), len(b))
	}
	p, err := NewProblem(len(rows), len(c))
	if err != nil {
		return nil, err
	}
	if err := p.SetC(c); err != nil {
		return nil, err
	}
	aVec := make([]float64, 0, p.NumRows*p.NumCols)
	for i, row := range rows {
		if len(row) != p.NumCols {
			return nil, errors.Wrapf(ErrShapeMismatch, "row %d has %d coefficients, objective has %d", i, len(row), p.NumCols)
		}
		aVec = append(aVec, row...)
	}
	if err := p.SetA(aVec); err != nil {
		return nil, err
	}
	if err := p.SetB(b); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Problem) SetC(cVec []float64) error {
	if len(cVec) != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "objective has %d coefficients, want %d", len(cVec), p.NumCols)
	}

	p.C = mat.NewDense(1, p.NumCols, append([]float64(nil), cVec...))

	return nil
}

// SetA sets the constraint matrix from a row-major slice.
func (p *Problem) SetA(aVec []float64) error {
	if len(aVec) != p.NumCols*p.NumRows {
		return errors.Wrapf(ErrShapeMismatch, "constraint matrix has %d entries, want %d×%d", len(aVec), p.NumRows, p.NumCols)
	}

	p.A = mat.NewDense(p.NumRows, p.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (p *Problem) SetB(bVec []float64) error {
	if len(bVec) != p.NumRows {
		return errors.Wrapf(ErrShapeMismatch, "rhs has %d entries, want %d", len(bVec), p.NumRows)
	}

	p.B = mat.NewDense(p.NumRows, 1, append([]float64(nil), bVec...))

	return nil
}

// SetSigns sets one relation per row. A nil slice means all rows are <=.
func (p *Problem) SetSigns(signs []Sign) error {
	if signs != nil && len(signs) != p.NumRows {
		return errors.Wrapf(ErrShapeMismatch, "%d signs for %d constraints", len(signs), p.NumRows)
	}
	p.Signs = append([]Sign(nil), signs...)
	if signs == nil {
		p.Signs = nil
	}
	return nil
}

// SetUnrestricted flags free-sign variables. A nil slice clears the flags.
func (p *Problem) SetUnrestricted(flags []bool) error {
	if flags != nil && len(flags) != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "%d unrestricted flags for %d variables", len(flags), p.NumCols)
	}
	p.Unrestricted = append([]bool(nil), flags...)
	if flags == nil {
		p.Unrestricted = nil
	}
	return nil
}

func (p *Problem) SetSense(s Sense) {
	p.Sense = s
}

// AddRow appends the constraint rVec·x <sign> rhs.
func (p *Problem) AddRow(rVec []float64, sign Sign, rhs float64) error {
	if len(rVec) != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "new row has %d coefficients, want %d", len(rVec), p.NumCols)
	}
	if p.Signs == nil && sign != LessEqual {
		p.Signs = make([]Sign, p.NumRows)
	}

	p.A = mat.DenseCopyOf(p.A.Grow(1, 0))
	p.A.SetRow(p.NumRows, rVec)

	p.B = mat.DenseCopyOf(p.B.Grow(1, 0))
	p.B.Set(p.NumRows, 0, rhs)

	if p.Signs != nil {
		p.Signs = append(p.Signs, sign)
	}
	p.NumRows++
	return nil
}

// SignAt returns the relation of row i.
func (p *Problem) SignAt(i int) Sign {
	if p.Signs == nil {
		return LessEqual
	}
	return p.Signs[i]
}

// IsUnrestricted reports whether variable j may take negative values.
func (p *Problem) IsUnrestricted(j int) bool {
	return p.Unrestricted != nil && p.Unrestricted[j]
}

// NumFree returns the number of unrestricted variables.
func (p *Problem) NumFree() int {
	h := 0
	for j := range p.NumCols {
		if p.IsUnrestricted(j) {
			h++
		}
	}
	return h
}

// Row returns a copy of the coefficients of constraint i.
func (p *Problem) Row(i int) []float64 {
	return mat.Row(nil, i, p.A)
}

// Objective evaluates c·x for a vector in the original variable space.
func (p *Problem) Objective(x []float64) float64 {
	return mat.Dot(p.C.RowView(0), mat.NewVecDense(p.NumCols, x))
}

// MaxAbs returns the largest magnitude among c, A and b.
func (p *Problem) MaxAbs() float64 {
	largest := 0.0
	for _, m := range []*mat.Dense{p.C, p.A, p.B} {
		r, c := m.Dims()
		for i := range r {
			for j := range c {
				largest = math.Max(largest, math.Abs(m.At(i, j)))
			}
		}
	}
	return largest
}

// Validate checks that every part of the problem agrees on its dimensions
// and that all coefficients are finite.
func (p *Problem) Validate() error {
	if p.C == nil || p.A == nil || p.B == nil {
		return errors.Wrap(ErrShapeMismatch, "c, A and b are required")
	}
	if r, c := p.C.Dims(); r != 1 || c != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "objective is %d×%d, want 1×%d", r, c, p.NumCols)
	}
	if r, c := p.A.Dims(); r != p.NumRows || c != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "constraint matrix is %d×%d, want %d×%d", r, c, p.NumRows, p.NumCols)
	}
	if r, c := p.B.Dims(); r != p.NumRows || c != 1 {
		return errors.Wrapf(ErrShapeMismatch, "rhs is %d×%d, want %d×1", r, c, p.NumRows)
	}
	if p.Signs != nil && len(p.Signs) != p.NumRows {
		return errors.Wrapf(ErrShapeMismatch, "%d signs for %d constraints", len(p.Signs), p.NumRows)
	}
	for i, s := range p.Signs {
		if s != LessEqual && s != GreaterEqual && s != Equal {
			return errors.Wrapf(ErrUnknownSign, "constraint %d: %v", i, s)
		}
	}
	if p.Unrestricted != nil && len(p.Unrestricted) != p.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "%d unrestricted flags for %d variables", len(p.Unrestricted), p.NumCols)
	}
	if p.Sense != Maximize && p.Sense != Minimize {
		return errors.Errorf("model: unknown sense %d", p.Sense)
	}
	if math.IsNaN(p.MaxAbs()) || math.IsInf(p.MaxAbs(), 0) {
		return ErrNonFinite
	}
	return nil
}

package simplex

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Basis partitions the canonical columns into basic and nonbasic ones.
// Basic[i] is the variable whose unit column sits in row i.
type Basis struct {
	Basic    []int
	Nonbasic []int
}

// NewBasis builds the partition of 0..numCols-1 for the given basic columns.
func NewBasis(basic []int, numCols int) (*Basis, error) {
	seen := make([]bool, numCols)
	for i, b := range basic {
		if b < 0 || b >= numCols {
			return nil, errors.Wrapf(ErrInvalidBasis, "row %d: column %d out of range", i, b)
		}
		if seen[b] {
			return nil, errors.Wrapf(ErrInvalidBasis, "column %d is basic in more than one row", b)
		}
		seen[b] = true
	}
	nonbasic := make([]int, 0, numCols-len(basic))
	for j := range numCols {
		if !seen[j] {
			nonbasic = append(nonbasic, j)
		}
	}
	return &Basis{Basic: slices.Clone(basic), Nonbasic: nonbasic}, nil
}

// swap makes entering basic in row and moves the old basic variable out.
func (bs *Basis) swap(row, entering int) {
	leaving := bs.Basic[row]
	bs.Basic[row] = entering
	if k := slices.Index(bs.Nonbasic, entering); k >= 0 {
		bs.Nonbasic[k] = leaving
	}
}

func (bs *Basis) IsBasic(j int) bool {
	return slices.Contains(bs.Basic, j)
}

// Tableau is the (m+1)×(n'+1) simplex tableau. Rows 0..m-1 hold the
// constraints, row m the objective; column n' holds the right-hand side.
type Tableau struct {
	T     *mat.Dense
	Basis *Basis

	// Penalty is the signed Big-M cost of the artificial columns.
	Penalty float64

	NumRows int
	NumCols int
}

// NewTableau stacks [A' | b] over [c' | 0].
func NewTableau(cs *Canonical) (*Tableau, error) {
	m, n := cs.NumRows, cs.NumCols
	basis, err := NewBasis(cs.Basic, n)
	if err != nil {
		return nil, err
	}

	t := mat.NewDense(m+1, n+1, nil)
	t.Slice(0, m, 0, n).(*mat.Dense).Copy(cs.A)
	t.Slice(0, m, n, n+1).(*mat.Dense).Copy(cs.B)
	t.Slice(m, m+1, 0, n).(*mat.Dense).Copy(cs.C)

	return &Tableau{T: t, Basis: basis, Penalty: cs.Penalty, NumRows: m, NumCols: n}, nil
}

// RHS returns the right-hand side of constraint row i.
func (tb *Tableau) RHS(i int) float64 {
	return tb.T.At(i, tb.NumCols)
}

// Corner returns the bottom-right cell, minus the current objective value.
func (tb *Tableau) Corner() float64 {
	return tb.T.At(tb.NumRows, tb.NumCols)
}

func (tb *Tableau) Print(w io.Writer) {
	taux := mat.Formatted(tb.T, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "T = %v\n", taux)
	fmt.Fprintf(w, "basic = %v\nnonbasic = %v\n", tb.Basis.Basic, tb.Basis.Nonbasic)
}

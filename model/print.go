package model

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

func (p *Problem) PrintC(w io.Writer) {
	caux := mat.Formatted(p.C, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "c = %v\n", caux)
}

func (p *Problem) PrintA(w io.Writer) {
	caux := mat.Formatted(p.A, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "A = %v\n", caux)
}

func (p *Problem) PrintB(w io.Writer) {
	caux := mat.Formatted(p.B, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "b = %v\n", caux)
}

// Print writes the sense, c, A, b and the row signs.
func (p *Problem) Print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", p.Sense)
	p.PrintC(w)
	p.PrintA(w)
	p.PrintB(w)
	signs := make([]string, p.NumRows)
	for i := range p.NumRows {
		signs[i] = p.SignAt(i).String()
	}
	fmt.Fprintf(w, "signs = %v\n", signs)
	if p.NumFree() > 0 {
		fmt.Fprintf(w, "unrestricted = %v\n", p.Unrestricted)
	}
}

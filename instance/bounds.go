package instance

import (
	"math"

	"q.log/bigm/model"
)

// Bound is one constraint row derived from a bound pair.
type Bound struct {
	Sign model.Sign
	RHS  float64
}

// infinite reports whether v stands for a missing bound. GLPK uses
// ±math.MaxFloat64 for those.
func infinite(v float64) bool {
	return math.IsInf(v, 0) || math.Abs(v) >= math.MaxFloat64
}

// RowBounds maps lb <= a·x <= ub to constraint rows. A free row yields
// none and a ranged row yields a >= and a <= row.
func RowBounds(lb, ub float64) []Bound {
	switch {
	case infinite(lb) && infinite(ub):
		return nil
	case infinite(lb):
		return []Bound{{model.LessEqual, ub}}
	case infinite(ub):
		return []Bound{{model.GreaterEqual, lb}}
	case lb == ub:
		return []Bound{{model.Equal, lb}}
	}
	return []Bound{{model.GreaterEqual, lb}, {model.LessEqual, ub}}
}

// ColumnBounds maps lb <= x_j <= ub onto the x_j >= 0 convention. A column
// that may go negative is unrestricted; every finite bound other than
// lb = 0 becomes a row over x_j alone.
func ColumnBounds(lb, ub float64) (unrestricted bool, rows []Bound) {
	unrestricted = infinite(lb) || lb < 0
	if !infinite(lb) && lb != 0 {
		rows = append(rows, Bound{model.GreaterEqual, lb})
	}
	if !infinite(ub) {
		rows = append(rows, Bound{model.LessEqual, ub})
	}
	return unrestricted, rows
}

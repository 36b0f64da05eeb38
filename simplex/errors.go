package simplex

import (
	"errors"

	"q.log/bigm/model"
)

var (
	// ErrShapeMismatch is returned before any tableau work when the
	// dimensions of c, A, b, signs or unrestricted flags disagree.
	ErrShapeMismatch = model.ErrShapeMismatch

	// ErrPivotDegeneracy is returned instead of dividing by a (near) zero
	// pivot element or producing non-finite tableau entries.
	ErrPivotDegeneracy = errors.New("simplex: zero or non-finite pivot")

	// ErrIterationLimit is returned when the pivot loop exceeds
	// Options.MaxIterations without reaching optimality.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")

	// ErrInvalidBasis is returned when a basis does not partition the
	// tableau columns.
	ErrInvalidBasis = errors.New("simplex: invalid basis")
)

package model

import "errors"

var (
	// ErrShapeMismatch is returned when c, A, b, signs or unrestricted flags
	// disagree on the number of rows or columns.
	ErrShapeMismatch = errors.New("model: shape mismatch")

	// ErrUnknownSign is returned for a constraint relation other than <=, >= or =.
	ErrUnknownSign = errors.New("model: unknown constraint sign")

	// ErrNonFinite is returned when an input coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("model: NaN or Inf coefficient")
)

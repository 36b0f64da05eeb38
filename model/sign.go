package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sign is the relation between a constraint row and its right-hand side.
type Sign int

const (
	LessEqual Sign = iota
	GreaterEqual
	Equal
)

func (s Sign) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	}
	return "Sign(" + strconv.Itoa(int(s)) + ")"
}

// Flip returns the relation obtained by multiplying both sides by -1.
func (s Sign) Flip() Sign {
	switch s {
	case LessEqual:
		return GreaterEqual
	case GreaterEqual:
		return LessEqual
	}
	return s
}

// Holds reports whether lhs <s> rhs is satisfied, allowing tol of slack.
func (s Sign) Holds(lhs, rhs, tol float64) bool {
	switch s {
	case LessEqual:
		return lhs <= rhs+tol
	case GreaterEqual:
		return lhs >= rhs-tol
	case Equal:
		return lhs <= rhs+tol && lhs >= rhs-tol
	}
	return false
}

// ParseSign accepts "<=", ">=", "=" and the unicode forms "≤", "≥".
func ParseSign(s string) (Sign, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return LessEqual, nil
	case ">=", "≥", "=>":
		return GreaterEqual, nil
	case "=", "==":
		return Equal, nil
	}
	return 0, errors.Wrapf(ErrUnknownSign, "%q", s)
}

// ParseSigns parses every entry of ss, stopping at the first bad one.
func ParseSigns(ss []string) ([]Sign, error) {
	if ss == nil {
		return nil, nil
	}
	signs := make([]Sign, len(ss))
	for i, s := range ss {
		sign, err := ParseSign(s)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i)
		}
		signs[i] = sign
	}
	return signs, nil
}

// Sense is the optimisation direction.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	if s == Minimize {
		return "minimize"
	}
	return "maximize"
}

// ParseSense accepts max/maximize/min/minimize in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	}
	return 0, errors.Errorf("model: unknown sense %q", s)
}

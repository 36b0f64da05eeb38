package simplex

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Status classifies the outcome of a solve.
type Status int

const (
	Feasible Status = iota
	Infeasible
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Message is the sentence shown to users for the status.
func (s Status) Message() string {
	return "Solution to the given problem is " + s.String()
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "feasible":
		*s = Feasible
	case "infeasible":
		*s = Infeasible
	case "unbounded":
		*s = Unbounded
	default:
		return errors.Errorf("simplex: unknown status %q", text)
	}
	return nil
}

package model

// Kind tells where a column of the canonical system came from.
type Kind int

const (
	// Decision is an original variable, or the positive part of a free one.
	Decision Kind = iota
	// Negative is the companion column carrying the negative part of a free variable.
	Negative
	Slack
	Surplus
	Artificial
)

func (k Kind) String() string {
	switch k {
	case Decision:
		return "decision"
	case Negative:
		return "negative"
	case Slack:
		return "slack"
	case Surplus:
		return "surplus"
	case Artificial:
		return "artificial"
	}
	return "unknown"
}

// Variable describes one column of the canonical system.
type Variable struct {
	Kind Kind

	// Source is the original variable index for Decision and Negative
	// columns, and the constraint row for the others.
	Source int

	Value   float64
	IsBasic bool
}

func (v *Variable) IsArtificial() bool {
	return v.Kind == Artificial
}

// IsStructural reports whether the column is part of the solution vector x.
func (v *Variable) IsStructural() bool {
	return v.Kind == Decision || v.Kind == Negative
}

package simplex

const (
	DefaultPenaltyScale         = 1e6
	DefaultTolerance            = 1e-9
	DefaultFeasibilityTolerance = 1e-6
	DefaultMaxIterations        = 10000
)

// Options tunes a solve. The zero value of a field means "use the default".
type Options struct {
	// PenaltyScale multiplies the largest input magnitude to obtain the
	// Big-M penalty. A penalty that does not dominate the objective lets
	// artificial variables stay basic, and the result is then reported
	// infeasible even when a feasible optimum exists.
	PenaltyScale float64

	// Penalty, when positive, is used as the Big-M magnitude as is and
	// PenaltyScale is ignored.
	Penalty float64

	// Tolerance is the zero threshold for reduced costs, pivot column
	// entries and pivot elements.
	Tolerance float64

	// FeasibilityTolerance is the relative slack allowed by the final
	// audit of the original constraints.
	FeasibilityTolerance float64

	MaxIterations int

	Observer Observer
}

type Option func(*Options)

// WithPenaltyScale sets M to scale times the largest input magnitude (at
// least 1). A scale too small for the problem can let an artificial column
// stay basic at a better objective, and the solve is then reported
// Infeasible.
func WithPenaltyScale(scale float64) Option {
	return func(o *Options) { o.PenaltyScale = scale }
}

// WithPenalty sets the magnitude of M directly. Values <= 0 fall back to
// the scaled penalty.
func WithPenalty(m float64) Option {
	return func(o *Options) { o.Penalty = m }
}

func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

func WithFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.FeasibilityTolerance = tol }
}

func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.PenaltyScale <= 0 {
		o.PenaltyScale = DefaultPenaltyScale
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.FeasibilityTolerance <= 0 {
		o.FeasibilityTolerance = DefaultFeasibilityTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// PivotEvent describes one basis change.
type PivotEvent struct {
	Iteration int

	// Entering and Leaving are canonical column indices.
	Entering int
	Leaving  int

	// Row is the constraint row whose basic variable changed.
	Row int

	Ratio       float64
	ReducedCost float64
}

// Degenerate reports whether the pivot left the objective unchanged.
func (ev PivotEvent) Degenerate() bool {
	return ev.Ratio == 0
}

// Observer is notified of every pivot and of the final solution.
// Observers run synchronously inside Solve.
type Observer interface {
	ObservePivot(PivotEvent)
	ObserveSolution(*Solution)
}

// Package metrics exposes solver activity to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"q.log/bigm/simplex"
)

const namespace = "bigm"

// Recorder is a simplex.Observer that counts solves and pivots.
type Recorder struct {
	solves     *prometheus.CounterVec
	pivots     prometheus.Histogram
	degenerate prometheus.Counter
}

var _ simplex.Observer = &Recorder{}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Number of completed solves by status.",
		}, []string{"status"}),
		pivots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pivots_per_solve",
			Help:      "Number of pivots performed by a solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degenerate_pivots_total",
			Help:      "Number of pivots with a zero step length.",
		}),
	}
	for _, c := range []prometheus.Collector{r.solves, r.pivots, r.degenerate} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObservePivot(ev simplex.PivotEvent) {
	if ev.Degenerate() {
		r.degenerate.Inc()
	}
}

func (r *Recorder) ObserveSolution(sol *simplex.Solution) {
	r.solves.WithLabelValues(sol.Status.String()).Inc()
	r.pivots.Observe(float64(sol.Iterations))
}

package frontier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by Search. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	rounds   *prometheus.CounterVec
	expanded *prometheus.CounterVec
	pruned   *prometheus.CounterVec
	cut      *prometheus.CounterVec
	finished *prometheus.CounterVec
	frontier *prometheus.GaugeVec
}

// NewMetrics creates the search collectors and registers them with reg.
// A nil reg creates unregistered collectors. Panics if registration fails
// (for example, NewMetrics called twice on one registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	counter := func(name, help string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pareto",
			Name:      name,
			Help:      help,
		}, []string{"problem"})
	}

	return &Metrics{
		rounds:   counter("rounds_total", "Completed search rounds."),
		expanded: counter("states_expanded_total", "Successor states generated."),
		pruned:   counter("states_pruned_total", "States removed by dominance pruning."),
		cut:      counter("states_cut_total", "States removed by bound cuts."),
		finished: counter("states_finished_total", "States that reached the horizon."),
		frontier: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pareto",
			Name:      "frontier_states",
			Help:      "Live states carried into the next round.",
		}, []string{"problem"}),
	}
}

func (m *Metrics) observe(label string, st RoundStats) {
	if m == nil {
		return
	}
	m.rounds.WithLabelValues(label).Inc()
	m.expanded.WithLabelValues(label).Add(float64(st.Expanded))
	m.pruned.WithLabelValues(label).Add(float64(st.Pruned))
	m.cut.WithLabelValues(label).Add(float64(st.Cut))
	m.finished.WithLabelValues(label).Add(float64(st.Finished))
	m.frontier.WithLabelValues(label).Set(float64(st.Frontier))
}

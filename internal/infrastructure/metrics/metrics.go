package metrics

import (
	"strings"

	"rab_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts estimate mutations and lifecycle transitions in Prometheus.
type Recorder struct {
	mutations   *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the collectors on registerer, or on the default
// registry when it is nil.
func NewRecorder(registerer prometheus.Registerer) *Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rab",
			Subsystem: "estimate",
			Name:      "mutations_total",
			Help:      "Estimate mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rab",
			Subsystem: "estimate",
			Name:      "transitions_total",
			Help:      "Estimate lifecycle transitions by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	registerer.MustRegister(r.mutations, r.transitions)
	return r
}

func (r *Recorder) ObserveMutation(operation, outcome string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

func (r *Recorder) ObserveTransition(kind, outcome string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return value
}

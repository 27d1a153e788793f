package bigmath

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StatsSink receives counter increments for named events: construction
// kinds ("construct.from_string", "construct.random", ...), per-operation
// kinds ("op.factorial"), and scratch-buffer resize reasons
// ("resize.scratch.alloc", "resize.scratch.grow"). A no-op implementation is the
// default; the core never requires a sink to function.
type StatsSink interface {
	Inc(event string)
}

// NoopStatsSink discards every event. It is the zero-cost default used
// when no sink is configured.
type NoopStatsSink struct{}

// Inc implements StatsSink.
func (NoopStatsSink) Inc(string) {}

var defaultStats StatsSink = NoopStatsSink{}

// SetStatsSink installs the process-wide sink consumed by the package's
// constructors and scratch-buffer management. Not safe to call
// concurrently with in-flight operations, matching the rest of the
// package's single-owner concurrency model.
func SetStatsSink(s StatsSink) {
	if s == nil {
		s = NoopStatsSink{}
	}
	defaultStats = s
}

// PrometheusStatsSink backs StatsSink with a Prometheus CounterVec,
// following the same promauto registration pattern cloudflared uses for
// its flow-control counters: one vector per namespace, one label
// ("event") distinguishing the named events.
type PrometheusStatsSink struct {
	counter *prometheus.CounterVec
}

// NewPrometheusStatsSink registers (via promauto) a CounterVec named
// "<namespace>_events_total" with a single "event" label.
func NewPrometheusStatsSink(namespace string) *PrometheusStatsSink {
	return &PrometheusStatsSink{
		counter: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Count of bigmath internal events by name.",
		}, []string{"event"}),
	}
}

// Inc implements StatsSink.
func (p *PrometheusStatsSink) Inc(event string) {
	p.counter.WithLabelValues(event).Inc()
}

package scheduler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeFailed      = "failed"
	OutcomeStopped     = "stopped"
)

// Metrics holds the Prometheus collectors updated by a Scheduler.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Steps        *prometheus.CounterVec
	ReplayFrames *prometheus.CounterVec
	Runs         *prometheus.CounterVec
	Visited      *prometheus.HistogramVec
	PathLength   *prometheus.GaugeVec
	Duration     *prometheus.HistogramVec
}

// NewMetrics creates the collectors under namespace and registers them on
// reg. Pass prometheus.NewRegistry() in tests to avoid global state.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_steps_total",
				Help:      "Total number of exploration steps executed",
			},
			[]string{"algorithm"},
		),
		ReplayFrames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "replay_frames_total",
				Help:      "Total number of path nodes replayed",
			},
			[]string{"algorithm"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of finished runs by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Visited: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "visited_nodes",
				Help:      "Nodes finalized per run",
				Buckets:   prometheus.ExponentialBuckets(8, 4, 8),
			},
			[]string{"algorithm"},
		),
		PathLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "path_length",
				Help:      "Length in edges of the last path found",
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Exploration time per run in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.Steps, m.ReplayFrames, m.Runs, m.Visited, m.PathLength, m.Duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) step(alg string) {
	if m == nil {
		return
	}
	m.Steps.WithLabelValues(alg).Inc()
}

func (m *Metrics) replay(alg string) {
	if m == nil {
		return
	}
	m.ReplayFrames.WithLabelValues(alg).Inc()
}

func (m *Metrics) run(alg, outcome string, visited, pathLen int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(alg, outcome).Inc()
	m.Visited.WithLabelValues(alg).Observe(float64(visited))
	m.Duration.WithLabelValues(alg).Observe(elapsed.Seconds())
	if outcome == OutcomeFound {
		m.PathLength.WithLabelValues(alg).Set(float64(pathLen))
	}
}

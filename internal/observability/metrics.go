package observability

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	solverRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aocctl",
			Subsystem: "solver",
			Name:      "runs_total",
			Help:      "Total solver runs.",
		},
		[]string{"exercise", "part", "status"},
	)
	solverDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aocctl",
			Subsystem: "solver",
			Name:      "duration_seconds",
			Help:      "Solver run duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"exercise", "part"},
	)
	solverAnswer = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "aocctl",
			Subsystem: "solver",
			Name:      "answer",
			Help:      "Last answer produced per exercise and part.",
		},
		[]string{"exercise", "part"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		registry.MustRegister(solverRuns, solverDuration, solverAnswer)
	})
}

// Gatherer exposes the solver metrics registry.
func Gatherer() prometheus.Gatherer {
	RegisterMetrics()
	return registry
}

func RecordSolve(exercise, part string, answer int64, duration time.Duration, err error) {
	RegisterMetrics()
	status := statusOK
	if err != nil {
		status = statusError
	}
	solverRuns.WithLabelValues(exercise, part, status).Inc()
	solverDuration.WithLabelValues(exercise, part).Observe(duration.Seconds())
	if err == nil {
		solverAnswer.WithLabelValues(exercise, part).Set(float64(answer))
	}
}

// WriteTextfile dumps the solver metrics in text exposition format, suitable
// for a node_exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return errors.New("observability: empty metrics path")
	}
	return prometheus.WriteToTextfile(path, Gatherer())
}

package stopwatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// promSink feeds samples into Prometheus collectors, labeled by section
// name.
type promSink struct {
	durations *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

// NewPromSink returns a Sink that records section durations into a
// histogram and failed sections into a counter, both registered on reg.
// Pass prometheus.DefaultRegisterer to use the process-wide registry; a
// dedicated prometheus.NewRegistry keeps tests isolated.
//
// Exposed series:
//
//	lvlseq_section_duration_seconds{section="..."}
//	lvlseq_section_errors_total{section="..."}
func NewPromSink(reg prometheus.Registerer) Sink {
	factory := promauto.With(reg)

	return promSink{
		durations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lvlseq",
				Name:      "section_duration_seconds",
				Help:      "Wall-clock duration of timed sections in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"section"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lvlseq",
				Name:      "section_errors_total",
				Help:      "Total number of timed sections that returned an error",
			},
			[]string{"section"},
		),
	}
}

// Observe records the sample into the duration histogram and, on error,
// bumps the error counter.
func (ps promSink) Observe(s Sample) {
	ps.durations.WithLabelValues(s.Name).Observe(s.Elapsed.Seconds())
	if s.Err != nil {
		ps.errors.WithLabelValues(s.Name).Inc()
	}
}

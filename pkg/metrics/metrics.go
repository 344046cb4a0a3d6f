package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every Prometheus collector scenario generation reports to.
type Metrics struct {
	registry *prometheus.Registry

	generationsTotal     *prometheus.CounterVec
	generationDuration   *prometheus.HistogramVec
	perturbationAttempts *prometheus.HistogramVec
	candidatesMined      *prometheus.HistogramVec
	activeGenerations    prometheus.Gauge
	serverStartTime      prometheus.Gauge
}

// New creates and registers every collector against a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenariogen_generations_total",
				Help: "Total number of scenarios generated, by difficulty and outcome",
			},
			[]string{"difficulty", "outcome"}, // outcome: "success", "partial"
		),

		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scenariogen_generation_duration_seconds",
				Help:    "Wall-clock time to generate one scenario",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"difficulty"},
		),

		perturbationAttempts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scenariogen_perturbation_attempts",
				Help:    "Number of outer attempts the perturbation engine used before stopping",
				Buckets: []float64{1, 2, 5, 10, 15, 20, 30},
			},
			[]string{"difficulty"},
		),

		candidatesMined: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scenariogen_candidates_mined",
				Help:    "Number of candidate constraints the miner emitted for a solution board",
				Buckets: []float64{5, 10, 20, 30, 50, 75, 100},
			},
			[]string{"difficulty"},
		),

		activeGenerations: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "scenariogen_generations_active",
				Help: "Number of scenario generations currently in flight",
			},
		),

		serverStartTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "scenariogen_start_time_seconds",
				Help: "Unix timestamp when this process started",
			},
		),

		registry: registry,
	}

	m.registry.MustRegister(
		m.generationsTotal,
		m.generationDuration,
		m.perturbationAttempts,
		m.candidatesMined,
		m.activeGenerations,
		m.serverStartTime,
	)
	m.serverStartTime.SetToCurrentTime()

	return m
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordGeneration records one completed generation's outcome and duration.
func (m *Metrics) RecordGeneration(difficulty string, success bool, duration time.Duration) {
	outcome := "partial"
	if success {
		outcome = "success"
	}
	m.generationsTotal.WithLabelValues(difficulty, outcome).Inc()
	m.generationDuration.WithLabelValues(difficulty).Observe(duration.Seconds())
}

// RecordPerturbationAttempts records how many outer attempts the
// perturbation engine spent.
func (m *Metrics) RecordPerturbationAttempts(difficulty string, attempts int) {
	m.perturbationAttempts.WithLabelValues(difficulty).Observe(float64(attempts))
}

// RecordCandidatesMined records how many candidates the miner emitted.
func (m *Metrics) RecordCandidatesMined(difficulty string, n int) {
	m.candidatesMined.WithLabelValues(difficulty).Observe(float64(n))
}

// BeginGeneration increments the in-flight gauge; call the returned func
// when the generation finishes to decrement it again.
func (m *Metrics) BeginGeneration() func() {
	m.activeGenerations.Inc()
	return m.activeGenerations.Dec
}

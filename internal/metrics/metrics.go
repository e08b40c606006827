// Package metrics holds the Prometheus collectors of the captioner.
//
// All collectors live on a private registry so tests can create as many
// [Metrics] values as they need. The registry is exposed by [Metrics.Handler]
// on GET /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeFailed    = "failed"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	// Caption metrics
	captionGenerations *prometheus.CounterVec
	noisyAttempts      *prometheus.CounterVec
	captionCandidates  prometheus.Histogram

	// Translation metrics
	translations *prometheus.CounterVec

	// Flow metrics
	commits      prometheus.Counter
	authAttempts *prometheus.CounterVec

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with every collector registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		captionGenerations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captioner_caption_generations_total",
				Help: "Caption diversification runs by outcome",
			},
			[]string{"outcome"},
		),

		noisyAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captioner_noisy_attempts_total",
				Help: "Noise-perturbed caption calls by outcome",
			},
			[]string{"outcome"},
		),

		captionCandidates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "captioner_caption_candidates",
				Help:    "Number of distinct candidates per successful run",
				Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
			},
		),

		translations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captioner_translations_total",
				Help: "Per-language translation results by status",
			},
			[]string{"language", "status"},
		),

		commits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "captioner_commits_total",
				Help: "Committed captions",
			},
		),

		authAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captioner_auth_attempts_total",
				Help: "Registration and login attempts by outcome",
			},
			[]string{"operation", "outcome"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captioner_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "captioner_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.captionGenerations,
		m.noisyAttempts,
		m.captionCandidates,
		m.translations,
		m.commits,
		m.authAttempts,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

// RecordGeneration records one diversification run. candidates is ignored
// for failed runs.
func (m *Metrics) RecordGeneration(outcome string, candidates int) {
	m.captionGenerations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.captionCandidates.Observe(float64(candidates))
	}
}

// RecordNoisyAttempt records one noisy caption call.
func (m *Metrics) RecordNoisyAttempt(outcome string) {
	m.noisyAttempts.WithLabelValues(outcome).Inc()
}

// RecordTranslation records the result for one target language.
func (m *Metrics) RecordTranslation(language, status string) {
	m.translations.WithLabelValues(language, status).Inc()
}

// RecordCommit records a persisted caption.
func (m *Metrics) RecordCommit() {
	m.commits.Inc()
}

// RecordAuth records a registration or login attempt.
func (m *Metrics) RecordAuth(operation, outcome string) {
	m.authAttempts.WithLabelValues(operation, outcome).Inc()
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, statusCode string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RegisterSessionGauge exposes the number of live sessions reported by count.
func (m *Metrics) RegisterSessionGauge(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "captioner_sessions_active",
			Help: "Number of sessions currently held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

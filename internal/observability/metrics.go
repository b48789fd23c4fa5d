package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "neuroadapt"

// Fallback reasons for content adaptation.
const (
	FallbackProfileLookup      = "profile_lookup"
	FallbackNeuroProfileLookup = "neuroprofile_lookup"
	FallbackInference          = "inference"
	FallbackMalformedResult    = "malformed_result"
)

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	inferenceRequests *prometheus.CounterVec
	inferenceLatency  *prometheus.HistogramVec

	adaptationFallback *prometheus.CounterVec
	adaptationApplied  *prometheus.CounterVec
}

// Init returns nil when metrics are disabled.
func Init(enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	return NewMetrics(prometheus.NewRegistry())
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		apiRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency in seconds by method/route/status.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "route", "status"}),
		apiInflight: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_inflight_requests",
			Help:      "In-flight API requests.",
		}),
		inferenceRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inference_requests_total",
			Help:      "Inference calls by operation/outcome.",
		}, []string{"operation", "outcome"}),
		inferenceLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_request_duration_seconds",
			Help:      "Inference call latency in seconds by operation.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"operation"}),
		adaptationFallback: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adaptation_fallback_total",
			Help:      "Content adaptations that returned the original text because a step failed.",
		}, []string{"reason"}),
		adaptationApplied: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adaptation_applied_total",
			Help:      "Content adaptations by neuroprofile strategy.",
		}, []string{"profile"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveInference records one outbound inference call; outcome is "ok" or "error".
func (m *Metrics) ObserveInference(operation string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.inferenceRequests.WithLabelValues(operation, outcome).Inc()
	m.inferenceLatency.WithLabelValues(operation).Observe(dur.Seconds())
}

func (m *Metrics) IncAdaptationFallback(reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "unknown"
	}
	m.adaptationFallback.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncAdaptationApplied(profile string) {
	if m == nil {
		return
	}
	m.adaptationApplied.WithLabelValues(profile).Inc()
}

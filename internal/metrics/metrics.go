package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics expõe contadores da API da agenda.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	themeToggles    *prometheus.CounterVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oficina",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "oficina",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		themeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oficina",
			Subsystem: "preferences",
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting mode",
		}, []string{"mode"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.themeToggles)
	return m
}

func (m *HTTPMetrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *HTTPMetrics) ObserveThemeToggle(mode string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(mode).Inc()
}

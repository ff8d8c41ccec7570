// Package metrics exposes Prometheus counters for the book server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors of the book server. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	pageViews      *prometheus.CounterVec
	serviceCalls   *prometheus.CounterVec
	sidebarToggles prometheus.Counter
	scrollSessions prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptobook_page_views_total",
			Help: "Rendered pages by route path; unknown paths are counted as \"not_found\".",
		}, []string{"path"}),
		serviceCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptobook_service_calls_total",
			Help: "Calls to the cryptography service by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		sidebarToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cryptobook_sidebar_toggles_total",
			Help: "Sidebar visibility toggles.",
		}),
		scrollSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cryptobook_scroll_sessions",
			Help: "Connected header scroll streams.",
		}),
	}
	reg.MustRegister(m.pageViews, m.serviceCalls, m.sidebarToggles, m.scrollSessions)
	return m
}

func (m *Metrics) PageView(path string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(path).Inc()
}

// ServiceCall implements cryptoapi.Recorder.
func (m *Metrics) ServiceCall(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.serviceCalls.WithLabelValues(endpoint, outcome).Inc()
}

func (m *Metrics) SidebarToggled() {
	if m == nil {
		return
	}
	m.sidebarToggles.Inc()
}

// ScrollSessionOpened increments the live session gauge; call the returned
// function when the session ends.
func (m *Metrics) ScrollSessionOpened() (closed func()) {
	if m == nil {
		return func() {}
	}
	m.scrollSessions.Inc()
	return m.scrollSessions.Dec
}

// Handler returns an HTTP handler for serving Prometheus metrics from a custom registry.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

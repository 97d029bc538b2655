package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Dashboard metrics
	panelRenders      *prometheus.CounterVec
	signalsServed     prometheus.Counter
	feedbackVotes     *prometheus.CounterVec
	clockTicks        prometheus.Counter
	snapshotExports   *prometheus.CounterVec
	assistantRequests *prometheus.CounterVec
	assistantDuration prometheus.Histogram
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Dashboard metrics
	r.panelRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vega_panel_renders_total",
			Help: "Total number of dashboard panel renders",
		},
		[]string{"tab"},
	)
	r.signalsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vega_signals_served_total",
			Help: "Total number of signals returned by the API",
		},
	)
	r.feedbackVotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vega_feedback_votes_total",
			Help: "Total number of signal feedback votes",
		},
		[]string{"helpful"},
	)
	r.clockTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vega_clock_ticks_total",
			Help: "Total number of dashboard clock ticks",
		},
	)
	r.snapshotExports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vega_snapshot_exports_total",
			Help: "Total number of dashboard snapshot exports",
		},
		[]string{"status"},
	)
	r.assistantRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vega_assistant_requests_total",
			Help: "Total number of assistant requests",
		},
		[]string{"provider", "status"},
	)
	r.assistantDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vega_assistant_duration_seconds",
			Help:    "Assistant request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	reg.MustRegister(r.panelRenders)
	reg.MustRegister(r.signalsServed)
	reg.MustRegister(r.feedbackVotes)
	reg.MustRegister(r.clockTicks)
	reg.MustRegister(r.snapshotExports)
	reg.MustRegister(r.assistantRequests)
	reg.MustRegister(r.assistantDuration)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordPanelRender records a dashboard tab render.
func (r *Registry) RecordPanelRender(tab string) {
	r.panelRenders.WithLabelValues(tab).Inc()
}

// RecordSignalsServed adds to the served-signal counter.
func (r *Registry) RecordSignalsServed(n int) {
	r.signalsServed.Add(float64(n))
}

// RecordFeedback records a feedback vote.
func (r *Registry) RecordFeedback(helpful bool) {
	label := "no"
	if helpful {
		label = "yes"
	}
	r.feedbackVotes.WithLabelValues(label).Inc()
}

// RecordClockTick counts one clock tick.
func (r *Registry) RecordClockTick() {
	r.clockTicks.Inc()
}

// RecordExport records a snapshot export attempt.
func (r *Registry) RecordExport(status string) {
	r.snapshotExports.WithLabelValues(status).Inc()
}

// RecordAssistantRequest records an assistant round trip.
func (r *Registry) RecordAssistantRequest(provider, status string, duration float64) {
	r.assistantRequests.WithLabelValues(provider, status).Inc()
	r.assistantDuration.Observe(duration)
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}

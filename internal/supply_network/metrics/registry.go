// Package metrics exposes Prometheus collectors for the API process.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	MutationsTotal        *prometheus.CounterVec
	SaveTransitionsTotal  *prometheus.CounterVec
	RepositoryDuration    *prometheus.HistogramVec
	WorkspacesActive      prometheus.Gauge
	WorkspacesEvicted     prometheus.Counter
	SimulationRunsTotal   *prometheus.CounterVec
	SimulationDuration    prometheus.Histogram
	ValidationFindings    *prometheus.CounterVec
	RepositoryErrorsTotal *prometheus.CounterVec
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every collector registered, plus the
// Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initWorkspaceMetrics()
	r.initSimulationMetrics()
	return r
}

func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supplynet_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
}

func (r *Registry) initWorkspaceMetrics() {
	r.MutationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_graph_mutations_total",
			Help: "Graph mutations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	r.SaveTransitionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_autosave_transitions_total",
			Help: "Autosave status transitions",
		},
		[]string{"from", "to"},
	)

	r.RepositoryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supplynet_repository_operation_duration_seconds",
			Help:    "Network repository call latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	r.RepositoryErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_repository_errors_total",
			Help: "Failed network repository calls",
		},
		[]string{"operation"},
	)

	r.WorkspacesActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "supplynet_workspaces_active",
			Help: "Open editing workspaces",
		},
	)

	r.WorkspacesEvicted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "supplynet_workspaces_evicted_total",
			Help: "Workspaces closed by the idle sweeper",
		},
	)

	r.ValidationFindings = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_validation_findings_total",
			Help: "Validation findings by check and severity",
		},
		[]string{"check", "severity"},
	)
}

func (r *Registry) initSimulationMetrics() {
	r.SimulationRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplynet_simulation_runs_total",
			Help: "Simulation runs by outcome",
		},
		[]string{"outcome"},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "supplynet_simulation_duration_seconds",
			Help:    "Simulation engine round-trip time in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
}

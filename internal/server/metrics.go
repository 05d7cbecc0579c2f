package server

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

// Metrics bundles the Prometheus collectors exported by the stats server.
// Every instance owns a private registry, so constructing a second Metrics
// never trips a duplicate-registration panic on the default registry.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	workers        prometheus.Gauge
	handler        http.Handler

	// latest holds the most recent benchmark snapshot pushed by the
	// reporter. The benchmark collectors and the stats endpoint serve
	// from this value, so scrapes never touch the hot counter directly.
	latest atomic.Pointer[repeat.Stats]
}

var _ report.StatsObserver = (*Metrics)(nil)

// NewMetrics builds the full collector set: HTTP server instrumentation,
// the benchmark gauges and the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "repbench_active_requests",
			Help: "Number of HTTP requests currently in flight.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "repbench_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "repbench_workers",
			Help: "Number of worker goroutines in the pool.",
		}),
	}

	m.registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.workers,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "repbench_repetitions_total",
			Help: "Repetitions completed by the worker pool, as of the last reporting tick.",
		}, func() float64 { return float64(m.LatestStats().Ops) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "repbench_speed_ops_per_second",
			Help: "Average throughput over the whole run, in repetitions per second.",
		}, func() float64 { return m.LatestStats().Speed }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "repbench_elapsed_seconds",
			Help: "Seconds the run had been going at the last reporting tick.",
		}, func() float64 { return m.LatestStats().Elapsed.Seconds() }),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks one more HTTP request in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks one HTTP request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// IncrementRequestsTotal counts one served HTTP request.
func (m *Metrics) IncrementRequestsTotal() {
	m.requestsTotal.Inc()
}

// SetWorkers records the size of the worker pool.
func (m *Metrics) SetWorkers(n int) {
	m.workers.Set(float64(n))
}

// Observe stores the snapshot for the benchmark collectors. It is called on
// the reporter goroutine once per reporting interval and never blocks.
func (m *Metrics) Observe(stats repeat.Stats) {
	m.latest.Store(&stats)
}

// LatestStats returns the most recently observed snapshot, or the zero
// Stats before the first reporting tick.
func (m *Metrics) LatestStats() repeat.Stats {
	if p := m.latest.Load(); p != nil {
		return *p
	}
	return repeat.Stats{}
}

// WritePrometheus renders the current metric values in the Prometheus text
// exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

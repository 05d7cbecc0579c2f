// Package server exposes the benchmark over HTTP while a run is active:
// Prometheus metrics on /metrics, a JSON snapshot on /stats and a liveness
// probe on /healthz. The server is optional; it only starts when an address
// is configured, and it shuts down with the run's context.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	apperrors "github.com/agbru/repbench/internal/errors"
	"github.com/agbru/repbench/internal/logging"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

// shutdownGrace bounds how long an in-flight scrape may delay process exit.
const shutdownGrace = 2 * time.Second

// Server serves the observability endpoints for one benchmark run.
type Server struct {
	addr     string
	workers  int
	metrics  *Metrics
	security SecurityConfig
	logger   logging.Logger
	httpSrv  *http.Server
}

var _ report.StatsObserver = (*Server)(nil)

// NewServer builds a stats server bound to addr. The worker count is fixed
// for the lifetime of a run and is exported as a gauge immediately.
func NewServer(addr string, workers int, logger logging.Logger) *Server {
	m := NewMetrics()
	m.SetWorkers(workers)
	return &Server{
		addr:     addr,
		workers:  workers,
		metrics:  m,
		security: DefaultSecurityConfig(),
		logger:   logger,
	}
}

// Observe forwards a benchmark snapshot to the metric collectors and the
// stats endpoint.
func (s *Server) Observe(stats repeat.Stats) {
	s.metrics.Observe(stats)
}

// Start binds the listener and serves in the background until ctx is
// canceled. It returns the bound address, so callers can log the effective
// port when addr was ":0". A bind failure is a SetupError; nothing has been
// spawned yet at that point.
func (s *Server) Start(ctx context.Context) (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", apperrors.SetupError{Resource: "metrics listener", Cause: err}
	}

	s.httpSrv = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("stats server shutdown failed", err)
		}
	}()

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("stats server terminated", err)
		}
	}()

	addr := ln.Addr().String()
	s.logger.Info("stats server listening", logging.String("addr", addr))
	return addr, nil
}

// routes wires every endpoint through the security and metrics middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	mux.HandleFunc("/stats", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleStats)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealthz)))
	return mux
}

// metricsMiddleware tracks the request counter and the in-flight gauge
// around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.IncrementRequestsTotal()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// statsResponse is the JSON shape served by the stats endpoint.
type statsResponse struct {
	Ops            uint64  `json:"ops"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Speed          float64 `json:"speed"`
	Workers        int     `json:"workers"`
}

// handleStats serves the latest benchmark snapshot as JSON. Before the
// first reporting tick the counters are all zero.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected stats request", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := s.metrics.LatestStats()
	resp := statsResponse{
		Ops:            stats.Ops,
		ElapsedSeconds: stats.Elapsed.Seconds(),
		Speed:          stats.Speed,
		Workers:        s.workers,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encoding stats response failed", err)
	}
}

// handleHealthz reports liveness. It answers 200 whenever the process is
// up; a single-process tool has no separate readiness state.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calder-analytics/cascade/pkg/batch"
	"github.com/calder-analytics/cascade/pkg/cascade"
	"github.com/calder-analytics/cascade/pkg/health"
	"github.com/calder-analytics/cascade/pkg/logging"
	"github.com/calder-analytics/cascade/pkg/metrics"
)

// TopologyDirectory is the provider surface the API needs: roster resolution
// plus region enumeration. Both the static and Postgres providers satisfy it.
type TopologyDirectory interface {
	cascade.TopologyProvider
	Regions() []string
}

// Server exposes cascade analysis over HTTP.
type Server struct {
	analyzer        *cascade.Analyzer
	runner          *batch.Runner
	provider        TopologyDirectory
	healthChecker   *health.HealthChecker
	metricsRegistry *metrics.Registry
	logger          logging.Logger
	config          Config
	startTime       time.Time

	corsMu      sync.RWMutex
	corsOrigins []string
}

// Options carries the server's collaborators. Provider and Analyzer are
// required; nil Logger and Metrics fall back to process defaults.
type Options struct {
	Analyzer *cascade.Analyzer
	Provider TopologyDirectory
	Metrics  *metrics.Registry
	Logger   logging.Logger
	Config   Config

	// DatabasePing, when set, registers a readiness check against the
	// topology database.
	DatabasePing func(ctx context.Context) error
}

// NewServer creates a new API server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	registry := opts.Metrics
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	s := &Server{
		analyzer:        opts.Analyzer,
		runner:          batch.NewRunner(opts.Analyzer, opts.Config.BatchWorkers),
		provider:        opts.Provider,
		healthChecker:   health.NewHealthChecker(),
		metricsRegistry: registry,
		logger:          logger.With(logging.Component("api")),
		config:          opts.Config,
		startTime:       time.Now(),
		corsOrigins:     append([]string(nil), opts.Config.CORS.AllowedOrigins...),
	}

	s.registerHealthChecks(opts)
	return s
}

// SetCORSOrigins replaces the allowed CORS origins while the server is
// running. The config reload path calls this after re-reading the
// environment.
func (s *Server) SetCORSOrigins(origins []string) {
	s.corsMu.Lock()
	s.corsOrigins = append([]string(nil), origins...)
	s.corsMu.Unlock()
}

func (s *Server) registerHealthChecks(opts Options) {
	if s.provider != nil {
		probeRegion := "asia"
		if regions := s.provider.Regions(); len(regions) > 0 {
			probeRegion = regions[0]
		}
		check := health.TopologyCheck(probeRegion, func(region string) int {
			return len(s.provider.GetTopology(region))
		})
		s.healthChecker.RegisterCheck("topology", check)
		s.healthChecker.RegisterReadinessCheck("topology", check)
	}

	engineCheck := health.EngineCheck(s.engineSelfTest)
	s.healthChecker.RegisterCheck("engine", engineCheck)
	s.healthChecker.RegisterLivenessCheck("engine", engineCheck)

	if opts.DatabasePing != nil {
		dbCheck := health.DatabaseCheck(opts.DatabasePing)
		s.healthChecker.RegisterCheck("database", dbCheck)
		s.healthChecker.RegisterReadinessCheck("database", dbCheck)
	}
}

var errOriginMissingFromResult = errors.New("origin node missing from self-test result")

// engineSelfTest runs a fixed three-node cascade and verifies the engine still
// produces the expected shape.
func (s *Server) engineSelfTest() error {
	probe := []cascade.NetworkNode{
		{ID: "probe-s", Type: cascade.TypeSupplier, Region: "probe", RiskLevel: cascade.RiskMedium, ImpactScore: 85},
		{ID: "probe-m", Type: cascade.TypeManufacturer, Region: "probe", RiskLevel: cascade.RiskHigh, ImpactScore: 92},
		{ID: "probe-d", Type: cascade.TypeDistributor, Region: "probe", RiskLevel: cascade.RiskMedium, ImpactScore: 78},
	}
	result, err := cascade.Propagate(probe, "probe-s", cascade.SeveritySevere)
	if err != nil {
		return err
	}
	if len(result.AffectedNodes) == 0 || result.AffectedNodes[0].ID != "probe-s" {
		return errOriginMissingFromResult
	}
	return nil
}

// Handler builds the full routing table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Analysis endpoints
	mux.HandleFunc("/api/v1/cascade/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/cascade/batch", s.handleBatchAnalyze)

	// Topology endpoints
	mux.HandleFunc("/api/v1/topology/", s.handleTopology) // /api/v1/topology/{region}
	mux.HandleFunc("/api/v1/regions", s.handleRegions)

	// Operational endpoints
	mux.HandleFunc("/health", s.healthChecker.HTTPHandler())
	mux.HandleFunc("/ready", s.healthChecker.ReadinessHandler())
	mux.HandleFunc("/live", s.healthChecker.LivenessHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(s.metricsRegistry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))

	var handler http.Handler = mux
	handler = s.bodySizeLimitMiddleware(handler, s.config.MaxBodyBytes)
	handler = s.metricsMiddleware(handler)
	handler = s.corsMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	handler = s.panicRecoveryMiddleware(handler)
	return handler
}

// Helper methods

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	s.respondJSON(w, status, response)
}

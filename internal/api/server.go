// Package api exposes the dashboard data API over HTTP and websocket.
package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"cip-engine/internal/degradation"
	"cip-engine/internal/observability"
	"cip-engine/internal/reporting"
	"cip-engine/internal/storage"
	"cip-engine/internal/storage/memory"
	"cip-engine/internal/workorder"
)

// ReportSource produces the scenario comparison report.
type ReportSource interface {
	Generate(ctx context.Context) (*reporting.Report, error)
}

// Server serves the dashboard API.
type Server struct {
	engine         *degradation.Engine
	issuer         *workorder.Issuer
	workOrders     storage.WorkOrderStore
	reports        ReportSource
	metrics        *observability.Metrics
	gatherer       prometheus.Gatherer
	logger         *log.Logger
	accessLog      io.Writer
	allowedOrigins []string
	streamInterval time.Duration
	seedFn         func() int64
	upgrader       websocket.Upgrader

	// Comparison report is computed once and reused.
	reportMu sync.Mutex
	report   *reporting.Report
}

// Options contains configuration for creating a Server.
type Options struct {
	Engine         *degradation.Engine    // defaults to degradation.DefaultParams()
	Issuer         *workorder.Issuer      // defaults to a wall-clock issuer
	WorkOrders     storage.WorkOrderStore // defaults to an in-memory store
	Reports        ReportSource
	Metrics        *observability.Metrics // optional
	Gatherer       prometheus.Gatherer    // served on /metrics; defaults to prometheus.DefaultGatherer
	Logger         *log.Logger            // optional
	AccessLog      io.Writer              // defaults to os.Stdout
	AllowedOrigins []string               // CORS and websocket origins; "*" allows all
	StreamInterval time.Duration          // delay between streamed curve points
	SeedFn         func() int64           // seed when the request carries none; defaults to wall clock
}

// NewServer creates a dashboard API server.
func NewServer(opts Options) *Server {
	if opts.Engine == nil {
		opts.Engine = degradation.NewEngine(degradation.DefaultParams())
	}
	if opts.Issuer == nil {
		opts.Issuer = workorder.NewIssuer(nil)
	}
	if opts.WorkOrders == nil {
		opts.WorkOrders = memory.NewWorkOrderStore()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.SeedFn == nil {
		opts.SeedFn = func() int64 { return time.Now().UnixNano() }
	}

	s := &Server{
		engine:         opts.Engine,
		issuer:         opts.Issuer,
		workOrders:     opts.WorkOrders,
		reports:        opts.Reports,
		metrics:        opts.Metrics,
		gatherer:       opts.Gatherer,
		logger:         opts.Logger,
		accessLog:      opts.AccessLog,
		allowedOrigins: opts.AllowedOrigins,
		streamInterval: opts.StreamInterval,
		seedFn:         opts.SeedFn,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Router returns the route table without outer middleware.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", observability.Handler(s.gatherer)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/degradation", s.handleDegradation).Methods(http.MethodGet)
	v1.HandleFunc("/work-orders", s.handleWorkOrder).Methods(http.MethodPost)
	v1.HandleFunc("/work-orders", s.handleListWorkOrders).Methods(http.MethodGet)
	v1.HandleFunc("/work-orders/{ref}", s.handleGetWorkOrder).Methods(http.MethodGet)
	v1.HandleFunc("/scenarios", s.handleScenarios).Methods(http.MethodGet)
	v1.HandleFunc("/terminals", s.handleTerminals).Methods(http.MethodGet)

	r.HandleFunc("/ws/degradation", s.handleStream).Methods(http.MethodGet)

	return r
}

// Handler returns the router wrapped with CORS and access logging.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.LoggingHandler(s.accessLog, cors(s.Router()))
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(s.allowedOrigins, "*") {
		return true
	}
	return slices.Contains(s.allowedOrigins, origin)
}

// comparisonReport returns the cached report, generating it on first use.
func (s *Server) comparisonReport(ctx context.Context) (*reporting.Report, error) {
	s.reportMu.Lock()
	defer s.reportMu.Unlock()

	if s.report != nil {
		return s.report, nil
	}
	report, err := s.reports.Generate(ctx)
	if err != nil {
		return nil, err
	}
	s.report = report
	return report, nil
}

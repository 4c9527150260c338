// Package server exposes the queueing metrics engine over a small HTTP JSON
// API, with Prometheus instrumentation and environment-driven configuration.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/queueworks/qcalc/logging"
)

// Server ties together the router, the metrics collector and the listener.
type Server struct {
	cfg     *Config
	log     logging.Logger
	metrics *Collector
	router  *mux.Router
	httpSrv *http.Server
}

// New builds a fully routed server from config.
func New(cfg *Config) *Server {
	s := &Server{
		cfg:     cfg,
		log:     logging.Default(),
		metrics: NewCollector(),
	}
	s.router = s.buildRouter()
	s.httpSrv = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.metrics.Middleware)

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.Handle("/metrics", s.metrics.Handler())

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/models/{model}", s.handleCompute).Methods("GET")
	api.HandleFunc("/diagram", s.handleDiagram).Methods("GET")

	return router
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("qcalc API listening on %s", s.cfg.Addr())
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

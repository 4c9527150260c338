package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector manages the Prometheus metrics for the compute API.
type Collector struct {
	computations    *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewCollector creates and registers all metrics on a private registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qcalc_computations_total",
				Help: "Total model computations by model and outcome (ok, unstable, invalid)",
			},
			[]string{"model", "outcome"},
		),
		computeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qcalc_compute_duration_seconds",
				Help:    "Time spent inside the analytical engine",
				Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
			},
			[]string{"model"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qcalc_http_request_duration_seconds",
				Help:    "HTTP request latency by route and status code",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "code"},
		),
		registry: registry,
	}

	registry.MustRegister(c.computations, c.computeDuration, c.httpDuration)
	return c
}

// ObserveComputation records one engine call.
func (c *Collector) ObserveComputation(model, outcome string, seconds float64) {
	c.computations.WithLabelValues(model, outcome).Inc()
	if outcome != "invalid" {
		c.computeDuration.WithLabelValues(model).Observe(seconds)
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware times each request and records it against its mux route.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		c.httpDuration.WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

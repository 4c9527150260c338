package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/queueworks/qcalc/models"
)

func testServer() *Server {
	return New(&Config{Host: "localhost", Port: 0})
}

func doGet(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doGet(t, testServer(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, strings.Contains(w.Body.String(), "ok"))
}

func TestComputeMM1Endpoint(t *testing.T) {
	w := doGet(t, testServer(), "/api/v1/models/mm1?lambda=2&mu=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Model   string         `json:"model"`
		Metrics models.Metrics `json:"metrics"`
	}
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "mm1", resp.Model)
	assert.Equal(t, "", resp.Metrics.Err)

	// Presentation values are rounded to 3 decimals.
	l, ok := resp.Metrics.L.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 0.667, l)
	rho, ok := resp.Metrics.Rho.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 0.4, rho)
}

func TestComputeUnstableIsStillOK(t *testing.T) {
	w := doGet(t, testServer(), "/api/v1/models/mm1?lambda=5&mu=4")
	assert.Equal(t, http.StatusOK, w.Code, "instability is a result, not a request failure")

	var resp struct {
		Metrics models.Metrics `json:"metrics"`
	}
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, models.MM1UnstableMsg, resp.Metrics.Err)
	assert.Assert(t, resp.Metrics.L.IsUnbounded())

	rho, ok := resp.Metrics.Rho.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 1.25, rho)
}

func TestComputeMMCEndpoint(t *testing.T) {
	w := doGet(t, testServer(), "/api/v1/models/mmc?lambda=10&mu=4&servers=3")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metrics models.Metrics `json:"metrics"`
	}
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&resp))
	lq, ok := resp.Metrics.Lq.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 3.511, lq)
}

func TestComputeDD1KEndpoint(t *testing.T) {
	w := doGet(t, testServer(), "/api/v1/models/dd1k?lambda=3&mu=2&capacity=10&initial=0&time=4")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metrics models.Metrics `json:"metrics"`
	}
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&resp))
	nt, ok := resp.Metrics.Nt.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 4.0, nt)
	l, ok := resp.Metrics.L.Float64()
	assert.Assert(t, ok)
	assert.Equal(t, 9.0, l)
}

func TestComputeBadRequests(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"unknown model", "/api/v1/models/md1?lambda=1&mu=2"},
		{"missing mu", "/api/v1/models/mm1?lambda=1"},
		{"non-numeric lambda", "/api/v1/models/mm1?lambda=abc&mu=2"},
		{"zero lambda", "/api/v1/models/mm1?lambda=0&mu=2"},
		{"zero servers", "/api/v1/models/mmc?lambda=1&mu=2&servers=0"},
		{"zero capacity", "/api/v1/models/dd1k?lambda=1&mu=2&capacity=0&initial=0&time=1"},
	}
	s := testServer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(t, s, tc.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Assert(t, strings.Contains(w.Body.String(), "error"))
		})
	}
}

func TestDiagramEndpoint(t *testing.T) {
	s := testServer()

	w := doGet(t, s, "/api/v1/diagram?model=mmc&lambda=10&mu=4&servers=3&format=svg")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Assert(t, strings.HasPrefix(w.Body.String(), "<svg"))

	w = doGet(t, s, "/api/v1/diagram?model=mm1&lambda=2&mu=5&format=mermaid")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, strings.HasPrefix(w.Body.String(), "graph LR;"))

	w = doGet(t, s, "/api/v1/diagram?model=mm1&lambda=2&mu=5&format=png")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer()
	doGet(t, s, "/api/v1/models/mm1?lambda=2&mu=5")

	w := doGet(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, strings.Contains(w.Body.String(), "qcalc_computations_total"))
}

// Unrecognized model names must not become metric label values, or the
// counter's cardinality grows with every junk path a client invents.
func TestMetricsUnknownModelLabel(t *testing.T) {
	s := testServer()
	doGet(t, s, "/api/v1/models/md1?lambda=1&mu=2")
	doGet(t, s, "/api/v1/models/totally-bogus?lambda=1&mu=2")

	body := doGet(t, s, "/metrics").Body.String()
	assert.Assert(t, strings.Contains(body, `model="unknown"`))
	assert.Assert(t, !strings.Contains(body, "md1"))
	assert.Assert(t, !strings.Contains(body, "totally-bogus"))
}

func TestShutdownStopsStart(t *testing.T) {
	s := New(&Config{Host: "127.0.0.1", Port: 0})

	done := make(chan error, 1)
	go func() { done <- s.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NilError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NilError(t, err, "Start must return cleanly after Shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

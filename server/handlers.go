package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/queueworks/qcalc/models"
	"github.com/queueworks/qcalc/viz"
)

type errorResponse struct {
	Error string `json:"error"`
}

type computeResponse struct {
	Model   string         `json:"model"`
	Metrics models.Metrics `json:"metrics"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCompute serves GET /api/v1/models/{model}. Invalid input is a 400;
// an unstable system is a 200 with the structured error payload, since
// instability is a result, not a request failure.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	// The metrics label is the canonical kind name, never the raw path
	// segment: arbitrary request strings would grow label cardinality
	// without bound.
	modelLabel := "unknown"
	if kind, err := models.ParseKind(mux.Vars(r)["model"]); err == nil {
		modelLabel = kind.String()
	}

	in, err := inputFromRequest(mux.Vars(r)["model"], r)
	if err != nil {
		s.metrics.ObserveComputation(modelLabel, "invalid", 0)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	m := in.Compute()
	outcome := "ok"
	if m.Unstable() {
		outcome = "unstable"
	}
	s.metrics.ObserveComputation(in.Kind.String(), outcome, time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, computeResponse{Model: in.Kind.String(), Metrics: m})
}

// handleDiagram serves GET /api/v1/diagram?model=&format=&... rendering the
// schematic for the computed result.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	in, err := inputFromRequest(r.URL.Query().Get("model"), r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	gen, err := viz.GeneratorFor(format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	m := in.Compute()
	out, err := gen.Generate(viz.BuildSchematic(in, &m))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	switch format {
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

// inputFromRequest builds and validates a typed model input from query
// parameters. This is the caller-side validation step: the engine itself
// assumes preconditions hold.
func inputFromRequest(model string, r *http.Request) (*models.Input, error) {
	kind, err := models.ParseKind(model)
	if err != nil {
		return nil, err
	}

	in := &models.Input{Kind: kind}
	if in.Lambda, err = queryFloat(r, "lambda"); err != nil {
		return nil, err
	}
	if in.Mu, err = queryFloat(r, "mu"); err != nil {
		return nil, err
	}

	switch kind {
	case models.KindDD1K1:
		if in.K, err = queryInt(r, "capacity"); err != nil {
			return nil, err
		}
		if in.N0, err = queryInt(r, "initial"); err != nil {
			return nil, err
		}
		if in.T, err = queryFloat(r, "time"); err != nil {
			return nil, err
		}
	case models.KindMMC:
		if in.C, err = queryInt(r, "servers"); err != nil {
			return nil, err
		}
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s=%q", name, raw)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s=%q", name, raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"cip-engine/internal/degradation"
	"cip-engine/internal/domain"
	"cip-engine/internal/reporting"
	"cip-engine/internal/sampling"
	"cip-engine/internal/storage"
	"cip-engine/internal/workorder"
)

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// workOrderRequest is the body of POST /api/v1/work-orders.
type workOrderRequest struct {
	degradation.Input
	Seed *int64 `json:"seed,omitempty"`
}

// scenariosResponse is the JSON body of GET /api/v1/scenarios.
type scenariosResponse struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Results     []reporting.ScenarioRow `json:"results"`
	Skipped     []string                `json:"skipped"`
}

// terminalResponse describes one selectable terminal.
type terminalResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleDegradation returns the degradation assessment for query inputs.
func (s *Server) handleDegradation(w http.ResponseWriter, r *http.Request) {
	in, seed, err := parseQuery(r.URL.Query(), s.seedFn)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := s.engine.Assess(sampling.New(seed), in)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.metrics.RecordAssessment(a.ThresholdCrossed)

	writeJSON(w, http.StatusOK, a)
}

// handleWorkOrder assesses the posted inputs and issues a mock work order.
func (s *Server) handleWorkOrder(w http.ResponseWriter, r *http.Request) {
	req := workOrderRequest{Input: degradation.DefaultInput()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	seed := s.seedFn()
	if req.Seed != nil {
		seed = *req.Seed
	}

	a, err := s.engine.Assess(sampling.New(seed), req.Input)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.metrics.RecordAssessment(a.ThresholdCrossed)

	wo := s.issuer.Issue(a)
	if err := s.workOrders.Insert(r.Context(), wo); err != nil {
		s.logger.Printf("Failed to store work order %s: %v", wo.Number, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.metrics.RecordWorkOrder()
	s.logger.Printf("Issued work order %s (ref %s) for %s", wo.Number, wo.Ref, wo.Terminal)

	writeJSON(w, http.StatusCreated, wo)
}

// handleListWorkOrders returns issued work orders, optionally filtered by terminal.
func (s *Server) handleListWorkOrders(w http.ResponseWriter, r *http.Request) {
	var (
		orders []*workorder.WorkOrder
		err    error
	)
	if v := r.URL.Query().Get("terminal"); v != "" {
		t, ok := degradation.ParseTerminal(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: unknown terminal %q", degradation.ErrInvalidInput, v))
			return
		}
		orders, err = s.workOrders.GetByTerminal(r.Context(), string(t))
	} else {
		orders, err = s.workOrders.List(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if orders == nil {
		orders = []*workorder.WorkOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetWorkOrder(w http.ResponseWriter, r *http.Request) {
	wo, err := s.workOrders.GetByRef(r.Context(), mux.Vars(r)["ref"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

// handleScenarios returns the scenario comparison as JSON or CSV.
func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("scenario comparison not configured"))
		return
	}

	report, err := s.comparisonReport(r.Context())
	if err != nil {
		s.logger.Printf("Scenario comparison failed: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		skipped := report.Skipped
		if skipped == nil {
			skipped = []string{}
		}
		writeJSON(w, http.StatusOK, scenariosResponse{
			GeneratedAt: report.GeneratedAt,
			Results:     report.Rows,
			Skipped:     skipped,
		})
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(reporting.RenderCSV(report.Rows)))
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(reporting.RenderMarkdown(report)))
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", r.URL.Query().Get("format")))
	}
}

func (s *Server) handleTerminals(w http.ResponseWriter, r *http.Request) {
	terminals := degradation.Terminals()
	resp := make([]terminalResponse, len(terminals))
	for i, t := range terminals {
		resp[i] = terminalResponse{Code: string(t), Name: t.DisplayName()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseQuery reads beta, downtime_cost, terminal and seed, falling back to
// the dashboard defaults for absent values.
func parseQuery(q url.Values, seedFn func() int64) (degradation.Input, int64, error) {
	in := degradation.DefaultInput()

	if v := q.Get("beta"); v != "" {
		beta, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, 0, fmt.Errorf("%w: beta: %v", degradation.ErrInvalidInput, err)
		}
		in.Beta = beta
	}
	if v := q.Get("downtime_cost"); v != "" {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, 0, fmt.Errorf("%w: downtime_cost: %v", degradation.ErrInvalidInput, err)
		}
		in.DowntimeCostMnIDR = cost
	}
	if v := q.Get("terminal"); v != "" {
		t, ok := degradation.ParseTerminal(v)
		if !ok {
			return in, 0, fmt.Errorf("%w: unknown terminal %q", degradation.ErrInvalidInput, v)
		}
		in.Terminal = t
	}

	var seed int64
	if v := q.Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return in, 0, fmt.Errorf("%w: seed: %v", degradation.ErrInvalidInput, err)
		}
		seed = parsed
	} else {
		seed = seedFn()
	}
	return in, seed, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, degradation.ErrInvalidInput), errors.Is(err, domain.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

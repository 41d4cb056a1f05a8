package runway

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"Craneway/internal/catalog"
	"Craneway/internal/repo"

	"github.com/gorilla/mux"
)

// Handler serves the runway sizing endpoints. Repo may be nil; analyses
// are then computed but not saved.
type Handler struct {
	Set  *catalog.Set
	Repo repo.Repository
}

type calcRequest struct {
	Project string `json:"project"`
	Input
}

type calcResponse struct {
	ID     int    `json:"id,omitempty"`
	Result Result `json:"result"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cfg, err := NewConfiguration(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Analyze(h.Set, cfg)
	var selErr *SelectionError
	if errors.As(err, &selErr) {
		http.Error(w, selErr.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	resp := calcResponse{Result: res}
	if h.Repo != nil && req.Project != "" {
		inputs, _ := json.Marshal(req.Input)
		result, _ := json.Marshal(res)
		id, err := h.Repo.SaveAnalysis(r.Context(), req.Project, inputs, result)
		if err != nil {
			log.Printf("SaveAnalysis error: %v", err)
		} else {
			resp.ID = id
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Validate builds the derived configuration without running the analysis,
// so clients can echo impact factor, wheel load and ratios back to the user.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cfg, err := NewConfiguration(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *Handler) Factors(w http.ResponseWriter, r *http.Request) {
	ratio, err := strconv.ParseFloat(r.URL.Query().Get("ratio"), 64)
	if err != nil {
		http.Error(w, "ratio query parameter required", http.StatusBadRequest)
		return
	}
	k1, k2 := LookupFactors(ratio)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"k1": k1, "k2": k2})
}

func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	designation := q.Get("designation")
	span, err := strconv.ParseFloat(q.Get("span"), 64)
	if designation == "" || err != nil {
		http.Error(w, "designation and span query parameters required", http.StatusBadRequest)
		return
	}
	capped := q.Get("capped") == "true"
	value, ok := h.Set.Capacity(designation, span, capped)
	if !ok {
		http.Error(w, "No tabulated capacity for that beam and span", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"capacity_lb": value})
}

func (h *Handler) Beams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	load, errL := strconv.ParseFloat(q.Get("load"), 64)
	span, errS := strconv.ParseFloat(q.Get("span"), 64)
	if errL != nil || errS != nil {
		http.Error(w, "load and span query parameters required", http.StatusBadRequest)
		return
	}
	capped := q.Get("capped") == "true"
	limit := candidateLimit
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	beams := FindTopAdequate(h.Set, load, span, capped, limit)
	if beams == nil {
		beams = []catalog.BeamSection{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(beams)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		http.Error(w, "History not available", http.StatusServiceUnavailable)
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	records, err := h.Repo.ListAnalyses(r.Context(), q.Get("project"), limit)
	if err != nil {
		log.Printf("ListAnalyses error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []repo.AnalysisRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *Handler) HistoryByID(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		http.Error(w, "History not available", http.StatusServiceUnavailable)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	rec, err := h.Repo.GetAnalysis(r.Context(), id)
	if err != nil {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

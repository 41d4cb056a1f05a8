package runway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Craneway/internal/catalog"
)

func newTestHandler() *Handler {
	return &Handler{Set: catalog.Load()}
}

func TestCalcEndpoint(t *testing.T) {
	h := newTestHandler()
	body := `{
		"capacity_lb": 10000, "hoist_weight_lb": 1700,
		"girder_weight_lb": 3000, "panel_weight_lb": 2000, "end_truck_weight_lb": 1000,
		"column_count": 6, "rail_height_ft": 20, "wheelbase_ft": 7,
		"support_centers_ft": 45, "bridge_span_ft": 44, "capped_system": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/runway/calc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp calcResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Result.Selected.Designation != "W21x50+C12x20.7" {
		t.Errorf("selected beam: got %s", resp.Result.Selected.Designation)
	}
	if resp.ID != 0 {
		t.Error("no repository configured, no id expected")
	}
}

func TestCalcEndpointValidationFailure(t *testing.T) {
	h := newTestHandler()
	// Wheelbase wider than the support centers.
	body := `{
		"capacity_lb": 10000, "hoist_weight_lb": 1700,
		"girder_weight_lb": 3000, "panel_weight_lb": 2000, "end_truck_weight_lb": 1000,
		"column_count": 6, "rail_height_ft": 20, "wheelbase_ft": 10,
		"support_centers_ft": 8, "bridge_span_ft": 44
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/runway/calc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "wheelbase_ft") {
		t.Errorf("error should name the field: %q", w.Body.String())
	}
}

func TestCalcEndpointSelectionFailure(t *testing.T) {
	h := newTestHandler()
	body := `{
		"capacity_lb": 80000, "hoist_weight_lb": 1700,
		"girder_weight_lb": 3000, "panel_weight_lb": 2000, "end_truck_weight_lb": 1000,
		"column_count": 6, "rail_height_ft": 20, "wheelbase_ft": 7,
		"support_centers_ft": 45, "bridge_span_ft": 44, "capped_system": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/runway/calc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
}

func TestFactorsEndpoint(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/tools/runway/factors?ratio=0.5", nil)
	w := httptest.NewRecorder()
	h.Factors(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp map[string]float64
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["k1"] != 1.25 || resp["k2"] != 1.13 {
		t.Errorf("factors at 0.5: got %v", resp)
	}
}

func TestCapacityEndpointNotFound(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/tools/runway/capacity?designation=W16x36&span=90", nil)
	w := httptest.NewRecorder()
	h.Capacity(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestBeamsEndpoint(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/tools/runway/beams?load=14260&span=44&capped=true&limit=3", nil)
	w := httptest.NewRecorder()
	h.Beams(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var beams []catalog.BeamSection
	if err := json.NewDecoder(w.Body).Decode(&beams); err != nil {
		t.Fatal(err)
	}
	if len(beams) != 3 {
		t.Fatalf("limit 3: got %d beams", len(beams))
	}
	if beams[0].Designation != "W21x50+C12x20.7" {
		t.Errorf("lightest adequate: got %s", beams[0].Designation)
	}
}

func TestBeamsEndpointEmptyIsJSONArray(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/tools/runway/beams?load=99999999&span=44&capped=true", nil)
	w := httptest.NewRecorder()
	h.Beams(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty search must serialize as []: %q", w.Body.String())
	}
}

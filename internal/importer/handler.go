package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Craneway/internal/calc/runway"
	"Craneway/internal/catalog"

	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Set *catalog.Set
}

type RunwayImportResult struct {
	Count   int             `json:"count"`
	Results []runway.Result `json:"results"`
}

// Runway accepts an XLSX upload with one crane configuration per row and
// runs the full analysis for each parsable row. Bad rows are skipped.
func (h *Handler) Runway(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []runway.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRunwayRow(rows[i])
		if err != nil {
			continue
		}
		cfg, err := runway.NewConfiguration(input)
		if err != nil {
			continue
		}
		res, err := runway.Analyze(h.Set, cfg)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RunwayImportResult{Count: len(results), Results: results})
}

// expected: capacity, hoist, girder, panel, end_truck, columns, rail_height,
// wheelbase, support_centers, bridge_span, freestanding, capped, hoist_speed
func parseRunwayRow(row []string) (runway.Input, error) {
	if len(row) < 10 {
		return runway.Input{}, fmt.Errorf("bad row")
	}
	var in runway.Input
	var err error
	floats := []*float64{
		&in.CapacityLb, &in.HoistWeightLb, &in.GirderWeightLb,
		&in.PanelWeightLb, &in.EndTruckWeightLb,
	}
	for i, dst := range floats {
		if *dst, err = toFloat(row[i]); err != nil {
			return runway.Input{}, err
		}
	}
	columns, err := toFloat(row[5])
	if err != nil {
		return runway.Input{}, err
	}
	in.ColumnCount = int(columns)
	geo := []*float64{&in.RailHeightFt, &in.WheelbaseFt, &in.SupportCentersFt, &in.BridgeSpanFt}
	for i, dst := range geo {
		if *dst, err = toFloat(row[6+i]); err != nil {
			return runway.Input{}, err
		}
	}
	if len(row) > 10 {
		in.Freestanding = toBool(row[10])
	}
	if len(row) > 11 {
		in.CappedSystem = toBool(row[11])
	}
	if len(row) > 12 && row[12] != "" {
		in.HoistSpeedFPM, _ = toFloat(row[12])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

func toBool(s string) bool {
	return s == "true" || s == "yes" || s == "1"
}

package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"Craneway/internal/calc/runway"
	"Craneway/internal/catalog"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	Config runway.Input `json:"config"`
}

type Handler struct {
	Set *catalog.Set
}

// Generate runs the analysis for the embedded configuration and streams a
// one-page PDF summary of the selected beam and the four checks.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Crane Runway Beam Report"
	}

	cfg, err := runway.NewConfiguration(input.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := runway.Analyze(h.Set, cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Selected beam: %s (%.1f lb/ft)", res.Selected.Designation, res.Selected.Weight))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Max wheel load: %.0f lb (impact factor %.3f)", cfg.MaxWheelLoadLb, cfg.ImpactFactor),
		fmt.Sprintf("Distribution factors: k1 = %.3f, k2 = %.3f", res.K1, res.K2),
		fmt.Sprintf("Equivalent concentrated load: %.0f lb at %.1f ft span", res.ECLLb, cfg.BridgeSpanFt),
		fmt.Sprintf("Runway beam weight: %.0f lb", res.RunwayBeamWeightLb),
		fmt.Sprintf("Column OTM: %.2f kip-ft, foundation OTM: %.2f kip-ft", res.ColumnOTMKipFt, res.FoundationOTMKipFt),
		fmt.Sprintf("Column load on foundation: %.2f kip", res.ColumnFoundationLoadKip),
		"",
		fmt.Sprintf("Lateral deflection: %.4f in (limit %.4f in) - %s",
			res.LateralDeflectionIn, res.LateralDeflectionLimitIn, verdict(res.LateralDeflectionOK)),
		fmt.Sprintf("Longitudinal deflection: %.4f in (limit %.4f in) - %s",
			res.LongitudinalDeflectionIn, res.LongitudinalDeflLimitIn, verdict(res.LongitudinalDeflectionOK)),
		fmt.Sprintf("Bending stress: %.0f psi (limit 24000 psi) - %s",
			res.BendingStressPsi, verdict(res.BendingStressOK)),
		fmt.Sprintf("Axial unity ratio: %.3f (limit 1.0) - %s", res.UnityRatio, verdict(res.UnityOK)),
		"",
		fmt.Sprintf("Overall: %s", verdict(res.OverallPass)),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"runway-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

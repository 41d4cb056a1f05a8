package batch

import (
	"encoding/json"
	"net/http"

	"Craneway/internal/catalog"
)

type Handler struct {
	Set *catalog.Set
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input RunwayBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(h.Set, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

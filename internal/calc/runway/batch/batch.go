package batch

import (
	"fmt"

	"Craneway/internal/calc/runway"
	"Craneway/internal/catalog"
)

type RunwayBatchInput struct {
	Items []runway.Input `json:"items"`
}

type RunwayBatchItem struct {
	Result *runway.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type RunwayBatchResult struct {
	Results []RunwayBatchItem `json:"results"`
}

// Calculate runs every configuration in the batch. Individual validation
// or selection failures are reported per item rather than aborting the
// whole batch, since neighbouring rows are independent designs.
func Calculate(set *catalog.Set, in RunwayBatchInput) (RunwayBatchResult, error) {
	if len(in.Items) == 0 {
		return RunwayBatchResult{}, fmt.Errorf("no items")
	}
	out := RunwayBatchResult{Results: make([]RunwayBatchItem, 0, len(in.Items))}
	for _, item := range in.Items {
		cfg, err := runway.NewConfiguration(item)
		if err != nil {
			out.Results = append(out.Results, RunwayBatchItem{Error: err.Error()})
			continue
		}
		res, err := runway.Analyze(set, cfg)
		if err != nil {
			out.Results = append(out.Results, RunwayBatchItem{Error: err.Error()})
			continue
		}
		out.Results = append(out.Results, RunwayBatchItem{Result: &res})
	}
	return out, nil
}

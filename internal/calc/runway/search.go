package runway

import (
	"sort"

	"Craneway/internal/catalog"
)

// FindTopAdequate scans one catalog for beams whose interpolated capacity
// at the given span meets requiredLb and returns up to limit of them,
// lightest first. Weight is the only sort key; the stable sort keeps
// catalog order for equal weights, so results are deterministic. An empty
// slice is a normal outcome, not an error.
func FindTopAdequate(set *catalog.Set, requiredLb, spanFt float64, capped bool, limit int) []catalog.BeamSection {
	if requiredLb <= 0 || spanFt <= 0 || limit <= 0 {
		return nil
	}
	var adequate []catalog.BeamSection
	for _, beam := range set.Sections(capped) {
		cap, ok := set.Capacity(beam.Designation, spanFt, capped)
		if !ok || cap <= 0 {
			continue
		}
		if cap >= requiredLb {
			adequate = append(adequate, beam)
		}
	}
	sort.SliceStable(adequate, func(i, j int) bool {
		return adequate[i].Weight < adequate[j].Weight
	})
	if len(adequate) > limit {
		adequate = adequate[:limit]
	}
	return adequate
}

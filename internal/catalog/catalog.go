package catalog

import "sort"

// BeamSection holds the geometric properties of one runway beam cross
// section. A capped section is a wide-flange beam with a channel laid flat
// on the top flange; for those rows Capped is true, the composite-only
// fields are populated, and MomentOfInertia/SectionModulus describe the
// composite (SectionModulus is the smaller of the two face moduli).
type BeamSection struct {
	Designation      string  `json:"designation"`
	Depth            float64 `json:"depth_in"`
	Weight           float64 `json:"weight_lb_ft"`
	Area             float64 `json:"area_in2"`
	WebThickness     float64 `json:"web_thickness_in"`
	FlangeWidth      float64 `json:"flange_width_in"`
	FlangeThickness  float64 `json:"flange_thickness_in"`
	FlangeArea       float64 `json:"flange_area_in2"`
	MomentOfInertia  float64 `json:"moment_of_inertia_in4"`
	SectionModulus   float64 `json:"section_modulus_in3"`
	RadiusOfGyration float64 `json:"radius_of_gyration_in"`
	Gage             float64 `json:"gage_in"`

	Capped          bool    `json:"capped"`
	Channel         string  `json:"channel,omitempty"`
	CombinedWidth   float64 `json:"combined_width_in,omitempty"`
	TopCentroid     float64 `json:"top_centroid_in,omitempty"`
	BottomCentroid  float64 `json:"bottom_centroid_in,omitempty"`
	TopModulus      float64 `json:"top_modulus_in3,omitempty"`
	BottomModulus   float64 `json:"bottom_modulus_in3,omitempty"`
	TorsionConstant float64 `json:"torsion_constant_in4,omitempty"`
}

// Set is the full beam catalog: both section lists, their capacity tables
// and a per-beam sorted span index. It is built once by Load and never
// mutated afterwards, so concurrent reads need no locking (the memo cache
// in capacity.go carries its own lock).
type Set struct {
	uncapped []BeamSection
	capped   []BeamSection

	uncappedByName map[string]int
	cappedByName   map[string]int

	uncappedSpans map[string][]int
	cappedSpans   map[string][]int

	memo memoCache
}

// Load builds the catalog set from the static tables in data.go.
func Load() *Set {
	s := &Set{
		uncapped:       uncappedSections,
		capped:         cappedSections,
		uncappedByName: make(map[string]int, len(uncappedSections)),
		cappedByName:   make(map[string]int, len(cappedSections)),
	}
	for i, b := range s.uncapped {
		s.uncappedByName[b.Designation] = i
	}
	for i, b := range s.capped {
		s.cappedByName[b.Designation] = i
	}
	s.uncappedSpans = buildSpanIndex(uncappedCapacity)
	s.cappedSpans = buildSpanIndex(cappedCapacity)
	s.memo.entries = make(map[memoKey]float64)
	return s
}

func buildSpanIndex(tables map[string]map[int]int) map[string][]int {
	idx := make(map[string][]int, len(tables))
	for des, table := range tables {
		spans := make([]int, 0, len(table))
		for span := range table {
			spans = append(spans, span)
		}
		sort.Ints(spans)
		idx[des] = spans
	}
	return idx
}

// Sections returns the ordered section list for one catalog. Callers must
// treat the returned slice as read-only.
func (s *Set) Sections(capped bool) []BeamSection {
	if capped {
		return s.capped
	}
	return s.uncapped
}

// Section looks a beam up by designation within one catalog.
func (s *Set) Section(designation string, capped bool) (BeamSection, bool) {
	if capped {
		if i, ok := s.cappedByName[designation]; ok {
			return s.capped[i], true
		}
		return BeamSection{}, false
	}
	if i, ok := s.uncappedByName[designation]; ok {
		return s.uncapped[i], true
	}
	return BeamSection{}, false
}

// SpanRange returns the smallest and largest tabulated span for a beam.
func (s *Set) SpanRange(designation string, capped bool) (min, max int, ok bool) {
	spans := s.spanIndex(designation, capped)
	if len(spans) == 0 {
		return 0, 0, false
	}
	return spans[0], spans[len(spans)-1], true
}

func (s *Set) spanIndex(designation string, capped bool) []int {
	if capped {
		return s.cappedSpans[designation]
	}
	return s.uncappedSpans[designation]
}

func (s *Set) capacityTable(capped bool) map[string]map[int]int {
	if capped {
		return cappedCapacity
	}
	return uncappedCapacity
}

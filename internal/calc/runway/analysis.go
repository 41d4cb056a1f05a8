package runway

import (
	"fmt"

	"Craneway/internal/catalog"
)

const (
	steelModulusPsi   = 29000000.0
	allowableBendPsi  = 24000.0
	allowableAxialPsi = 24000.0
	slendernessLimit  = 43.2
	candidateLimit    = 5
	foundationPadLb   = 2500.0
)

// Result is the full record of one runway analysis: the distribution
// factors, the selected beam with its runner-up candidates, every
// intermediate load and moment, and the four structural checks.
type Result struct {
	K1     float64 `json:"k1"`
	K2     float64 `json:"k2"`
	ECLLb  float64 `json:"ecl_lb"`

	Selected   catalog.BeamSection   `json:"selected"`
	Candidates []catalog.BeamSection `json:"candidates"`

	RunwayBeamWeightLb      float64 `json:"runway_beam_weight_lb"`
	ColumnMomentLbIn        float64 `json:"column_moment_lb_in"`
	FoundationMomentLbIn    float64 `json:"foundation_moment_lb_in"`
	ColumnOTMKipFt          float64 `json:"column_otm_kip_ft"`
	FoundationOTMKipFt      float64 `json:"foundation_otm_kip_ft"`
	MaxVerticalLoadLb       float64 `json:"max_vertical_load_lb"`
	ColumnFoundationLoadKip float64 `json:"column_foundation_load_kip"`

	LateralDeflectionIn       float64 `json:"lateral_deflection_in"`
	LateralDeflectionLimitIn  float64 `json:"lateral_deflection_limit_in"`
	LateralDeflectionOK       bool    `json:"ok_lateral_deflection"`
	LongitudinalDeflectionIn  float64 `json:"longitudinal_deflection_in"`
	LongitudinalDeflLimitIn   float64 `json:"longitudinal_deflection_limit_in"`
	LongitudinalDeflectionOK  bool    `json:"ok_longitudinal_deflection"`
	BendingStressPsi          float64 `json:"bending_stress_psi"`
	BendingStressOK           bool    `json:"ok_bending_stress"`
	UnityRatio                float64 `json:"unity_ratio"`
	UnityOK                   bool    `json:"ok_unity"`

	OverallPass bool `json:"overall_pass"`
}

// SelectionError means no beam in the chosen catalog carries the required
// load at the runway span.
type SelectionError struct {
	RequiredLb float64
	SpanFt     float64
	Capped     bool
}

func (e *SelectionError) Error() string {
	system := "uncapped"
	other := "capped"
	if e.Capped {
		system, other = other, system
	}
	return fmt.Sprintf(
		"no %s beam carries %.0f lb over a %.1f ft span; try the %s system or reduce loads",
		system, e.RequiredLb, e.SpanFt, other)
}

// Analyze runs the full selection and check pipeline for one validated
// configuration. It is a pure function: identical configurations yield
// identical results.
func Analyze(set *catalog.Set, cfg Configuration) (Result, error) {
	k1, k2 := LookupFactors(cfg.WheelbaseRatio)
	ecl := k1 * cfg.MaxWheelLoadLb

	candidates := FindTopAdequate(set, ecl, cfg.BridgeSpanFt, cfg.CappedSystem, candidateLimit)
	if len(candidates) == 0 {
		return Result{}, &SelectionError{RequiredLb: ecl, SpanFt: cfg.BridgeSpanFt, Capped: cfg.CappedSystem}
	}
	selected := candidates[0]

	runwayWeight := selected.Weight * cfg.BridgeSpanFt
	columnMoment := cfg.LateralLoadLb * cfg.RailHeightIn
	foundationMoment := cfg.LongitudinalLoadLb * cfg.RailHeightIn
	maxVertical := cfg.CapacityLb + cfg.TotalBeamWeightLb + cfg.HoistWeightLb + runwayWeight

	res := Result{
		K1:                      k1,
		K2:                      k2,
		ECLLb:                   ecl,
		Selected:                selected,
		Candidates:              candidates,
		RunwayBeamWeightLb:      runwayWeight,
		ColumnMomentLbIn:        columnMoment,
		FoundationMomentLbIn:    foundationMoment,
		ColumnOTMKipFt:          columnMoment / 12000,
		FoundationOTMKipFt:      foundationMoment / 12000,
		MaxVerticalLoadLb:       maxVertical,
		ColumnFoundationLoadKip: (maxVertical + foundationPadLb) / 1000,
	}

	h := cfg.RailHeightIn
	res.LateralDeflectionIn = cantileverDeflection(cfg.LateralLoadLb, h, selected.MomentOfInertia)
	res.LateralDeflectionLimitIn = h / 450
	res.LateralDeflectionOK = res.LateralDeflectionIn < res.LateralDeflectionLimitIn

	res.LongitudinalDeflectionIn = cantileverDeflection(cfg.LongitudinalLoadLb, h, selected.MomentOfInertia)
	res.LongitudinalDeflLimitIn = h / 500
	res.LongitudinalDeflectionOK = res.LongitudinalDeflectionIn < res.LongitudinalDeflLimitIn

	res.BendingStressPsi = cfg.LateralLoadLb * h / selected.SectionModulus
	res.BendingStressOK = res.BendingStressPsi < allowableBendPsi

	res.UnityRatio = maxVertical/allowableAxialPsi + cfg.EffectiveLengthFt/slendernessLimit
	res.UnityOK = res.UnityRatio < 1.0

	res.OverallPass = res.LateralDeflectionOK && res.LongitudinalDeflectionOK &&
		res.BendingStressOK && res.UnityOK
	return res, nil
}

// Tip deflection of a cantilever of height h under a point load at the top.
func cantileverDeflection(loadLb, hIn, inertia float64) float64 {
	return loadLb * hIn * hIn * hIn / (3 * steelModulusPsi * inertia)
}

package runway

import "fmt"

// Input carries the raw crane and geometry values exactly as submitted.
type Input struct {
	CapacityLb       float64 `json:"capacity_lb"`
	HoistWeightLb    float64 `json:"hoist_weight_lb"`
	GirderWeightLb   float64 `json:"girder_weight_lb"`
	PanelWeightLb    float64 `json:"panel_weight_lb"`
	EndTruckWeightLb float64 `json:"end_truck_weight_lb"`
	ColumnCount      int     `json:"column_count"`
	RailHeightFt     float64 `json:"rail_height_ft"`
	WheelbaseFt      float64 `json:"wheelbase_ft"`
	SupportCentersFt float64 `json:"support_centers_ft"`
	BridgeSpanFt     float64 `json:"bridge_span_ft"`
	Freestanding     bool    `json:"freestanding"`
	CappedSystem     bool    `json:"capped_system"`
	HoistSpeedFPM    float64 `json:"hoist_speed_fpm"`
}

// Configuration is a validated Input plus every quantity derived from it.
// It is built once per analysis and never modified afterwards.
type Configuration struct {
	Input

	ImpactFactor          float64 `json:"impact_factor"`
	TotalBeamWeightLb     float64 `json:"total_beam_weight_lb"`
	MaxWheelLoadLb        float64 `json:"max_wheel_load_lb"`
	WheelbaseRatio        float64 `json:"wheelbase_ratio"`
	LateralLoadLb         float64 `json:"lateral_load_lb"`
	LongitudinalLoadLb    float64 `json:"longitudinal_load_lb"`
	RailHeightIn          float64 `json:"rail_height_in"`
	EffectiveLengthFactor float64 `json:"effective_length_factor"`
	EffectiveLengthFt     float64 `json:"effective_length_ft"`
}

// ValidationError reports the first input bound an Input violates.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewConfiguration validates in and derives the load quantities used by the
// rest of the engine. Validation stops at the first violated rule.
func NewConfiguration(in Input) (Configuration, error) {
	totalBeam := in.GirderWeightLb + in.PanelWeightLb + in.EndTruckWeightLb

	switch {
	case in.CapacityLb <= 0 || in.CapacityLb > 80000:
		return Configuration{}, invalid("capacity_lb", "must be in (0, 80000]")
	case in.HoistWeightLb <= 0:
		return Configuration{}, invalid("hoist_weight_lb", "must be positive")
	case totalBeam <= 0:
		return Configuration{}, invalid("beam self-weight", "girder + panel + end truck must be positive")
	case in.ColumnCount < 2:
		return Configuration{}, invalid("column_count", "at least 2 columns required")
	case in.RailHeightFt < 8 || in.RailHeightFt > 100:
		return Configuration{}, invalid("rail_height_ft", "must be in [8, 100]")
	case in.WheelbaseFt <= 0 || in.WheelbaseFt > 50:
		return Configuration{}, invalid("wheelbase_ft", "must be in (0, 50]")
	case in.SupportCentersFt <= 0 || in.SupportCentersFt > 150:
		return Configuration{}, invalid("support_centers_ft", "must be in (0, 150]")
	case in.BridgeSpanFt <= 0 || in.BridgeSpanFt > 120:
		return Configuration{}, invalid("bridge_span_ft", "must be in (0, 120]")
	case in.HoistSpeedFPM < 0 || in.HoistSpeedFPM > 500:
		return Configuration{}, invalid("hoist_speed_fpm", "must be in [0, 500]")
	case in.WheelbaseFt > in.SupportCentersFt:
		return Configuration{}, invalid("wheelbase_ft", "cannot exceed support centers")
	}

	impact := 1.15
	if in.HoistSpeedFPM > 0 {
		impact = 1.0 + 0.005*in.HoistSpeedFPM
	}
	kFactor := 0.5
	if in.Freestanding {
		kFactor = 2.0
	}
	maxWheel := impact*in.CapacityLb/2 + in.HoistWeightLb/2 + totalBeam/4

	return Configuration{
		Input:                 in,
		ImpactFactor:          impact,
		TotalBeamWeightLb:     totalBeam,
		MaxWheelLoadLb:        maxWheel,
		WheelbaseRatio:        in.WheelbaseFt / in.SupportCentersFt,
		LateralLoadLb:         0.2 * (in.CapacityLb + in.HoistWeightLb),
		LongitudinalLoadLb:    0.1 * maxWheel,
		RailHeightIn:          in.RailHeightFt * 12,
		EffectiveLengthFactor: kFactor,
		EffectiveLengthFt:     in.RailHeightFt * kFactor,
	}, nil
}

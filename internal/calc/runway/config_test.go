package runway

import (
	"errors"
	"math"
	"testing"
)

func validInput() Input {
	return Input{
		CapacityLb:       10000,
		HoistWeightLb:    1700,
		GirderWeightLb:   3000,
		PanelWeightLb:    2000,
		EndTruckWeightLb: 1000,
		ColumnCount:      6,
		RailHeightFt:     20,
		WheelbaseFt:      7,
		SupportCentersFt: 45,
		BridgeSpanFt:     44,
		Freestanding:     false,
		CappedSystem:     true,
		HoistSpeedFPM:    0,
	}
}

func TestNewConfigurationValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"zero capacity", func(in *Input) { in.CapacityLb = 0 }, "capacity_lb"},
		{"capacity over limit", func(in *Input) { in.CapacityLb = 80001 }, "capacity_lb"},
		{"zero hoist weight", func(in *Input) { in.HoistWeightLb = 0 }, "hoist_weight_lb"},
		{"zero self weight", func(in *Input) {
			in.GirderWeightLb, in.PanelWeightLb, in.EndTruckWeightLb = 0, 0, 0
		}, "beam self-weight"},
		{"single column", func(in *Input) { in.ColumnCount = 1 }, "column_count"},
		{"rail too low", func(in *Input) { in.RailHeightFt = 7.5 }, "rail_height_ft"},
		{"rail too high", func(in *Input) { in.RailHeightFt = 101 }, "rail_height_ft"},
		{"zero wheelbase", func(in *Input) { in.WheelbaseFt = 0 }, "wheelbase_ft"},
		{"wheelbase over limit", func(in *Input) { in.WheelbaseFt = 51 }, "wheelbase_ft"},
		{"support centers over limit", func(in *Input) { in.SupportCentersFt = 151 }, "support_centers_ft"},
		{"bridge span over limit", func(in *Input) { in.BridgeSpanFt = 121 }, "bridge_span_ft"},
		{"negative hoist speed", func(in *Input) { in.HoistSpeedFPM = -1 }, "hoist_speed_fpm"},
		{"hoist speed over limit", func(in *Input) { in.HoistSpeedFPM = 501 }, "hoist_speed_fpm"},
		{"wheelbase wider than rail gauge", func(in *Input) {
			in.WheelbaseFt = 10
			in.SupportCentersFt = 8
		}, "wheelbase_ft"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := NewConfiguration(in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("reported field %q, want %q", vErr.Field, tc.field)
			}
		})
	}
}

func TestNewConfigurationDerivations(t *testing.T) {
	cfg, err := NewConfiguration(validInput())
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"impact factor", cfg.ImpactFactor, 1.15},
		{"total beam weight", cfg.TotalBeamWeightLb, 6000},
		{"max wheel load", cfg.MaxWheelLoadLb, 8100}, // 5750 + 850 + 1500
		{"wheelbase ratio", cfg.WheelbaseRatio, 7.0 / 45.0},
		{"lateral load", cfg.LateralLoadLb, 2340},
		{"longitudinal load", cfg.LongitudinalLoadLb, 810},
		{"rail height in inches", cfg.RailHeightIn, 240},
		{"effective length factor", cfg.EffectiveLengthFactor, 0.5},
		{"effective length", cfg.EffectiveLengthFt, 10},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestImpactFactorFromHoistSpeed(t *testing.T) {
	in := validInput()
	in.HoistSpeedFPM = 40
	cfg, err := NewConfiguration(in)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ImpactFactor != 1.2 {
		t.Errorf("impact factor at 40 fpm: got %v, want 1.2", cfg.ImpactFactor)
	}
	// Derived loads follow the larger wheel load.
	want := 1.2*10000/2 + 850 + 1500
	if cfg.MaxWheelLoadLb != want {
		t.Errorf("max wheel load: got %v, want %v", cfg.MaxWheelLoadLb, want)
	}
}

func TestFreestandingEffectiveLength(t *testing.T) {
	in := validInput()
	in.Freestanding = true
	cfg, err := NewConfiguration(in)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EffectiveLengthFactor != 2.0 || cfg.EffectiveLengthFt != 40 {
		t.Errorf("freestanding: got k=%v Leff=%v, want k=2 Leff=40",
			cfg.EffectiveLengthFactor, cfg.EffectiveLengthFt)
	}
}

package runway

import "math"

// loadFactor is one row of the wheel-load distribution table: the
// wheelbase-to-span ratio with its two distribution coefficients.
type loadFactor struct {
	ratio float64
	k1    float64
	k2    float64
}

// Distribution coefficients for two equal moving wheel loads on a simply
// supported runway. k1 converts the max wheel load into the equivalent
// concentrated design load; k2 applies to the companion reaction. Both
// taper to 1.0 once the wheelbase approaches the support spacing.
var loadFactorTable = []loadFactor{
	{0.00, 2.00, 1.50},
	{0.05, 1.92, 1.46},
	{0.10, 1.85, 1.42},
	{0.15, 1.77, 1.38},
	{0.20, 1.68, 1.34},
	{0.25, 1.60, 1.30},
	{0.30, 1.52, 1.26},
	{0.35, 1.45, 1.22},
	{0.40, 1.38, 1.19},
	{0.45, 1.31, 1.16},
	{0.50, 1.25, 1.13},
	{0.55, 1.19, 1.10},
	{0.60, 1.14, 1.08},
	{0.65, 1.10, 1.06},
	{0.70, 1.07, 1.04},
	{0.75, 1.04, 1.03},
	{0.80, 1.02, 1.02},
	{0.85, 1.01, 1.01},
	{0.90, 1.00, 1.00},
	{0.95, 1.00, 1.00},
	{1.00, 1.00, 1.00},
}

// LookupFactors returns (k1, k2) for a wheelbase/span ratio. Ratios outside
// the table are clamped to the boundary rows; in between, each factor is
// interpolated linearly and rounded to 3 decimals. Never fails.
func LookupFactors(ratio float64) (k1, k2 float64) {
	first := loadFactorTable[0]
	last := loadFactorTable[len(loadFactorTable)-1]
	if ratio <= first.ratio {
		return first.k1, first.k2
	}
	if ratio >= last.ratio {
		return last.k1, last.k2
	}
	for i := 1; i < len(loadFactorTable); i++ {
		hi := loadFactorTable[i]
		if ratio > hi.ratio {
			continue
		}
		lo := loadFactorTable[i-1]
		t := (ratio - lo.ratio) / (hi.ratio - lo.ratio)
		return round3(lo.k1 + t*(hi.k1-lo.k1)), round3(lo.k2 + t*(hi.k2-lo.k2))
	}
	return last.k1, last.k2
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

package runway

import (
	"testing"

	"Craneway/internal/catalog"
)

func TestFindTopAdequateOrdering(t *testing.T) {
	set := catalog.Load()
	found := FindTopAdequate(set, 14260, 44, true, 5)
	if len(found) == 0 {
		t.Fatal("expected adequate capped beams at 44 ft")
	}
	for i := 1; i < len(found); i++ {
		if found[i].Weight < found[i-1].Weight {
			t.Errorf("weight ordering violated: %s (%v) after %s (%v)",
				found[i].Designation, found[i].Weight, found[i-1].Designation, found[i-1].Weight)
		}
	}
	for _, b := range found {
		cap, ok := set.Capacity(b.Designation, 44, true)
		if !ok || cap < 14260 {
			t.Errorf("%s returned with capacity %v < required", b.Designation, cap)
		}
	}
	if found[0].Designation != "W21x50+C12x20.7" {
		t.Errorf("lightest adequate beam: got %s, want W21x50+C12x20.7", found[0].Designation)
	}
}

func TestFindTopAdequateLimit(t *testing.T) {
	set := catalog.Load()
	all := FindTopAdequate(set, 1000, 24, true, 100)
	if len(all) < 3 {
		t.Fatalf("expected several adequate beams for a light load, got %d", len(all))
	}
	top2 := FindTopAdequate(set, 1000, 24, true, 2)
	if len(top2) != 2 {
		t.Fatalf("limit 2: got %d beams", len(top2))
	}
	for i := range top2 {
		if top2[i].Designation != all[i].Designation {
			t.Errorf("truncation changed ordering at %d: %s vs %s", i, top2[i].Designation, all[i].Designation)
		}
	}
}

// W12x30+C10x15.3 and W14x30+C10x15.3 weigh the same 45.3 lb/ft; the
// stable sort must keep their catalog order.
func TestFindTopAdequateEqualWeightDeterminism(t *testing.T) {
	set := catalog.Load()
	found := FindTopAdequate(set, 1000, 24, true, 100)
	posW12, posW14 := -1, -1
	for i, b := range found {
		switch b.Designation {
		case "W12x30+C10x15.3":
			posW12 = i
		case "W14x30+C10x15.3":
			posW14 = i
		}
	}
	if posW12 < 0 || posW14 < 0 {
		t.Fatalf("expected both 45.3 lb/ft beams in results, got %v/%v", posW12, posW14)
	}
	if posW12 > posW14 {
		t.Error("equal-weight beams reordered against catalog order")
	}
}

func TestFindTopAdequateDegenerateInputs(t *testing.T) {
	set := catalog.Load()
	cases := []struct {
		name  string
		load  float64
		span  float64
		limit int
	}{
		{"zero load", 0, 30, 5},
		{"negative load", -5, 30, 5},
		{"zero span", 9000, 0, 5},
		{"zero limit", 9000, 30, 0},
	}
	for _, tc := range cases {
		if got := FindTopAdequate(set, tc.load, tc.span, true, tc.limit); len(got) != 0 {
			t.Errorf("%s: expected empty result, got %d beams", tc.name, len(got))
		}
	}
}

func TestFindTopAdequateNothingQualifies(t *testing.T) {
	set := catalog.Load()
	if got := FindTopAdequate(set, 1e9, 44, true, 5); len(got) != 0 {
		t.Errorf("impossible load: expected empty result, got %d beams", len(got))
	}
	// Span beyond every tabulated range.
	if got := FindTopAdequate(set, 1000, 90, true, 5); len(got) != 0 {
		t.Errorf("span 90 ft: expected empty result, got %d beams", len(got))
	}
}

package punch

import "testing"

func TestRoundHalf(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{100.0, 100.0},
		{100.24, 100.0},
		{100.25, 100.5},
		{100.74, 100.5},
		{100.76, 101.0},
		{-100.25, -100.5},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundHalf(c.in); got != c.want {
			t.Errorf("RoundHalf(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestKindStationNameTotal(t *testing.T) {
	kinds := []Kind{BoltHole, Dimple, WebTab, Service, SmallServiceHole, MServiceHole, LargeServiceHole, CornerBrackets}
	for _, k := range kinds {
		if k.StationName() == "" {
			t.Errorf("Kind(%d).StationName() is empty", k)
		}
	}
}

func TestCornerBracketsAliasesToService(t *testing.T) {
	if CornerBrackets.StationName() != Service.StationName() {
		t.Errorf("CornerBrackets station name = %q, want alias to Service %q", CornerBrackets.StationName(), Service.StationName())
	}
}

func TestPlaneTotal(t *testing.T) {
	kinds := []Kind{BoltHole, Dimple, WebTab, Service, SmallServiceHole, MServiceHole, LargeServiceHole, CornerBrackets}
	for _, k := range kinds {
		p := k.Plane()
		if p != FlangePlane && p != WebFacePlane {
			t.Errorf("Kind(%d).Plane() = %v, not a valid Plane", k, p)
		}
	}
}

func TestRadiusUsesWidthForOvalShapes(t *testing.T) {
	if got := LargeServiceHole.Radius(); got != 200 {
		t.Errorf("LargeServiceHole.Radius() = %v, want 200 (half its 400mm width, not half its zero diameter)", got)
	}
	if got := MServiceHole.Radius(); got != 100 {
		t.Errorf("MServiceHole.Radius() = %v, want 100 (half its 200mm diameter)", got)
	}
}

func TestSpecTotal(t *testing.T) {
	kinds := []Kind{BoltHole, Dimple, WebTab, Service, SmallServiceHole, MServiceHole, LargeServiceHole, CornerBrackets}
	for _, k := range kinds {
		if _, ok := Spec[k]; !ok {
			t.Errorf("Spec missing entry for Kind(%d)", k)
		}
	}
}

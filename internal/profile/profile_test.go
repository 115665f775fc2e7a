package profile

import "testing"

func TestNewProfileSpecDefaultsValidate(t *testing.T) {
	variants := []Variant{JoistSingle, JoistBox, BearerSingle, BearerBox}
	for _, v := range variants {
		spec := NewProfileSpec(v)
		if err := spec.Validate(); err != nil {
			t.Fatalf("NewProfileSpec(%v) failed validation: %v", v, err)
		}
	}
}

func TestValidateRejectsOutOfRangeLength(t *testing.T) {
	spec := NewProfileSpec(JoistSingle)
	spec.LengthMM = 500
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected validation error for length_mm=500")
	}
}

func TestValidateRejectsBadProfileHeight(t *testing.T) {
	spec := NewProfileSpec(JoistSingle)
	spec.ProfileHeightMM = 275
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected validation error for profile_height_mm=275")
	}
}

func TestValidateRejectsStubPositionOutOfRange(t *testing.T) {
	spec := NewProfileSpec(BearerSingle)
	spec.StubPositions = []int{spec.LengthMM}
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected validation error for stub position == length_mm")
	}
}

func TestValidateRejectsBadKPaRating(t *testing.T) {
	spec := NewProfileSpec(JoistSingle)
	bad := 3.7
	spec.KPaRating = &bad
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected validation error for kpa_rating=3.7")
	}
}

func TestHoleTypeDiameter(t *testing.T) {
	if HoleNone.Diameter() != 200 {
		t.Fatalf("HoleNone.Diameter() = %v, want 200", HoleNone.Diameter())
	}
	if HoleOval200x400.Diameter() != 400 {
		t.Fatalf("HoleOval200x400.Diameter() = %v, want 400", HoleOval200x400.Diameter())
	}
}

func TestStationEnabledDefaultsAllTrue(t *testing.T) {
	spec := NewProfileSpec(JoistSingle)
	for kind := range spec.PunchStations {
		if !spec.StationEnabled(kind) {
			t.Errorf("station %v expected enabled by default", kind)
		}
	}
}

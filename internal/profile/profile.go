// Package profile defines the input to the layout planner: a
// ProfileSpec describing the member being punched, plus the closed
// HoleType/ProfileVariant enums and a total punch-station mapping.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// Variant is the member's structural role and doubling.
type Variant int

const (
	JoistSingle Variant = iota
	JoistBox
	BearerSingle
	BearerBox
)

func (v Variant) IsBearer() bool {
	return v == BearerSingle || v == BearerBox
}

func (v Variant) IsJoist() bool {
	return v == JoistSingle || v == JoistBox
}

// HoleType selects both the service-hole kind to emit and the nominal
// diameter used in end-exclusion maths.
type HoleType int

const (
	HoleNone HoleType = iota
	HoleR50
	HoleR115
	HoleR200
	HoleOval200x400
)

// Diameter returns the nominal diameter (mm) used for end-exclusion
// maths. HoleNone uses a 200 mm default.
func (h HoleType) Diameter() float64 {
	switch h {
	case HoleR50:
		return 50
	case HoleR115:
		return 115
	case HoleR200:
		return 200
	case HoleOval200x400:
		return 400
	default:
		return 200
	}
}

// Kind maps a HoleType to the service-hole punch.Kind it drives.
func (h HoleType) Kind() punch.Kind {
	switch h {
	case HoleR50:
		return punch.SmallServiceHole
	case HoleR200:
		return punch.MServiceHole
	case HoleOval200x400:
		return punch.LargeServiceHole
	default:
		// Legacy fallthrough for values outside the closed set: treated
		// as R115, the legacy default for an unrecognised hole type.
		return punch.SmallServiceHole
	}
}

// Station configures one PunchKind: whether it is enabled. Bearer stub
// positions are carried on ProfileSpec.StubPositions, not here.
type Station struct {
	Enabled bool
}

// ProfileSpec is the full input to the layout planner.
type ProfileSpec struct {
	Variant          Variant
	LengthMM         int
	ProfileHeightMM  int
	JoistLengthMM    *int // bearers only
	JoistSpacingMM   int
	StubSpacingMM    int
	StubPositions    []int // bearer only, ordered
	StubsEnabled     bool
	HoleType         HoleType
	HoleSpacingMM    int
	PunchStations    map[punch.Kind]Station
	EndBoxJoist      bool // joist only
	ScreensEnabled   bool
	JoistBox         bool // bearer only
	KPaRating        *float64
}

// NewProfileSpec returns a spec with every documented field at its most
// permissive in-range default and every station enabled, mirroring the
// teacher's all-fields-computed constructors (beam.NewSinglyReinforced).
func NewProfileSpec(variant Variant) ProfileSpec {
	stations := map[punch.Kind]Station{
		punch.BoltHole:         {Enabled: true},
		punch.Dimple:           {Enabled: true},
		punch.WebTab:           {Enabled: true},
		punch.Service:          {Enabled: true},
		punch.SmallServiceHole: {Enabled: true},
		punch.MServiceHole:     {Enabled: true},
		punch.LargeServiceHole: {Enabled: true},
		punch.CornerBrackets:   {Enabled: true},
	}
	return ProfileSpec{
		Variant:         variant,
		LengthMM:        5200,
		ProfileHeightMM: 250,
		JoistSpacingMM:  600,
		StubSpacingMM:   1200,
		HoleType:        HoleNone,
		HoleSpacingMM:   650,
		PunchStations:   stations,
	}
}

// StationEnabled reports whether kind is enabled in this spec. Total
// over punch.Kind: an absent entry is treated as disabled.
func (p ProfileSpec) StationEnabled(k punch.Kind) bool {
	return p.PunchStations[k].Enabled
}

// ValidationError represents an out-of-range ProfileSpec field
// Grounded on section.ValidationError.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validate checks every numeric field against its documented range
// No partial state change occurs on failure: callers
// must not install a layout derived from an invalid spec (§7).
func (p ProfileSpec) Validate() error {
	if p.LengthMM < 1000 || p.LengthMM > 15000 {
		return &ValidationError{fmt.Sprintf("length_mm out of range [1000,15000]: %d", p.LengthMM)}
	}
	switch p.ProfileHeightMM {
	case 200, 250, 300, 350:
	default:
		return &ValidationError{fmt.Sprintf("profile_height_mm must be one of 200/250/300/350: %d", p.ProfileHeightMM)}
	}
	if p.JoistSpacingMM < 400 || p.JoistSpacingMM > 1200 {
		return &ValidationError{fmt.Sprintf("joist_spacing_mm out of range [400,1200]: %d", p.JoistSpacingMM)}
	}
	if p.StubSpacingMM < 600 || p.StubSpacingMM > 2400 {
		return &ValidationError{fmt.Sprintf("stub_spacing_mm out of range [600,2400]: %d", p.StubSpacingMM)}
	}
	if p.HoleSpacingMM < 400 || p.HoleSpacingMM > 1000 {
		return &ValidationError{fmt.Sprintf("hole_spacing_mm out of range [400,1000]: %d", p.HoleSpacingMM)}
	}
	if p.JoistLengthMM != nil && (*p.JoistLengthMM < 1000 || *p.JoistLengthMM > 15000) {
		return &ValidationError{fmt.Sprintf("joist_length_mm out of range [1000,15000]: %d", *p.JoistLengthMM)}
	}
	if p.KPaRating != nil {
		switch *p.KPaRating {
		case 2.5, 5.0:
		default:
			return &ValidationError{fmt.Sprintf("kpa_rating must be 2.5 or 5.0: %v", *p.KPaRating)}
		}
	}
	for i, sp := range p.StubPositions {
		if sp <= 0 || sp >= p.LengthMM {
			return &ValidationError{fmt.Sprintf("stub_positions[%d]=%d must satisfy 0 < p < length_mm", i, sp)}
		}
	}
	return nil
}

// jsonSpec mirrors ProfileSpec for file-based loading, the way
// section.Section is JSON-tagged for LoadFromFile.
type jsonSpec struct {
	Variant         string          `json:"variant"`
	LengthMM        int             `json:"length_mm"`
	ProfileHeightMM int             `json:"profile_height_mm"`
	JoistLengthMM   *int            `json:"joist_length_mm,omitempty"`
	JoistSpacingMM  int             `json:"joist_spacing_mm"`
	StubSpacingMM   int             `json:"stub_spacing_mm"`
	StubPositions   []int           `json:"stub_positions,omitempty"`
	StubsEnabled    bool            `json:"stubs_enabled"`
	HoleType        string          `json:"hole_type"`
	HoleSpacingMM   int             `json:"hole_spacing_mm"`
	EndBoxJoist     bool            `json:"end_box_joist,omitempty"`
	ScreensEnabled  bool            `json:"screens_enabled"`
	JoistBox        bool            `json:"joist_box,omitempty"`
	KPaRating       *float64        `json:"kpa_rating,omitempty"`
	Stations        map[string]bool `json:"punch_stations,omitempty"`
}

var variantNames = map[string]Variant{
	"JoistSingle":  JoistSingle,
	"JoistBox":     JoistBox,
	"BearerSingle": BearerSingle,
	"BearerBox":    BearerBox,
}

var holeTypeNames = map[string]HoleType{
	"None":         HoleNone,
	"R50":          HoleR50,
	"R115":         HoleR115,
	"R200":         HoleR200,
	"Oval200x400":  HoleOval200x400,
}

var stationKeyNames = map[string]punch.Kind{
	"BoltHole":         punch.BoltHole,
	"Dimple":           punch.Dimple,
	"WebTab":           punch.WebTab,
	"Service":          punch.Service,
	"SmallServiceHole": punch.SmallServiceHole,
	"MServiceHole":     punch.MServiceHole,
	"LargeServiceHole": punch.LargeServiceHole,
	"CornerBrackets":   punch.CornerBrackets,
}

// LoadSpecFromFile loads a ProfileSpec from a JSON file, the way
// section.LoadFromFile loads a Section: read, unmarshal, Validate.
func LoadSpecFromFile(path string) (*ProfileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var js jsonSpec
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, err
	}

	variant, ok := variantNames[js.Variant]
	if !ok {
		return nil, &ValidationError{fmt.Sprintf("unknown variant: %q", js.Variant)}
	}
	holeType, ok := holeTypeNames[js.HoleType]
	if !ok && js.HoleType != "" {
		// UnsupportedHoleType: fall back to the legacy default (§7).
		holeType = HoleR115
	}

	spec := NewProfileSpec(variant)
	spec.LengthMM = js.LengthMM
	if js.ProfileHeightMM != 0 {
		spec.ProfileHeightMM = js.ProfileHeightMM
	}
	spec.JoistLengthMM = js.JoistLengthMM
	if js.JoistSpacingMM != 0 {
		spec.JoistSpacingMM = js.JoistSpacingMM
	}
	if js.StubSpacingMM != 0 {
		spec.StubSpacingMM = js.StubSpacingMM
	}
	spec.StubPositions = js.StubPositions
	spec.StubsEnabled = js.StubsEnabled
	spec.HoleType = holeType
	if js.HoleSpacingMM != 0 {
		spec.HoleSpacingMM = js.HoleSpacingMM
	}
	spec.EndBoxJoist = js.EndBoxJoist
	spec.ScreensEnabled = js.ScreensEnabled
	spec.JoistBox = js.JoistBox
	spec.KPaRating = js.KPaRating

	for name, enabled := range js.Stations {
		if kind, ok := stationKeyNames[name]; ok {
			spec.PunchStations[kind] = Station{Enabled: enabled}
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

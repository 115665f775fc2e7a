// Package clash implements the clash detector (C5): a fixed, ordered
// battery of ten rules run over a completed layout.Layout, producing
// diagnostics ordered first by rule, then by ascending position within
// a rule. The detector never errors and never mutates its input — a
// Layout that fails every rule still produces a full Report.
package clash

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/alexiusacademia/ncpunch/internal/mfgrules"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// Severity classifies a Diagnostic. Error diagnostics mean the layout
// cannot go to the press; Warning diagnostics flag a layout that is
// punchable but worth a second look.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Diagnostic is one clash finding.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Position float64
	Message  string
}

// Report summarises a DetectClashes run.
type Report struct {
	Diagnostics  []Diagnostic
	ErrorCount   int
	WarningCount int
}

// DetectClashes runs the full ten-rule battery against l for spec, in
// rule order, each rule's own hits ordered by ascending position.
func DetectClashes(spec profile.ProfileSpec, l layout.Layout) Report {
	var diags []Diagnostic

	diags = append(diags, ruleEdgeClearance(spec, l)...)
	diags = append(diags, ruleWebTabServiceHoleDistance(l)...)
	diags = append(diags, ruleStubServiceHoleDistance(l)...)
	diags = append(diags, ruleBoltOverWebTabAlignment(spec, l)...)
	diags = append(diags, ruleFlangeConflict(l)...)
	diags = append(diags, ruleDimpleGrid(spec, l)...)
	diags = append(diags, ruleSpanLimitExceeded(spec)...)
	diags = append(diags, ruleWebTabSpacing(spec, l)...)
	diags = append(diags, ruleServiceHoleSpacing(spec, l)...)
	diags = append(diags, ruleFacePlaneOverlap(l)...)

	report := Report{Diagnostics: diags}
	for _, d := range diags {
		if d.Severity == Error {
			report.ErrorCount++
		} else {
			report.WarningCount++
		}
	}
	return report
}

func byPosition(diags []Diagnostic) []Diagnostic {
	sort.SliceStable(diags, func(i, j int) bool { return diags[i].Position < diags[j].Position })
	return diags
}

// Rule 1 (edge clearance): a bolt hole may not sit within 50mm of
// either end except the canonical end bolts near 30mm (positions
// within 35mm of an end are exempt); a web-tab centre must lie in
// [22.5, length-22.5]; a service-hole centre must lie in
// [radius, length-radius] for its nominal diameter.
func ruleEdgeClearance(spec profile.ProfileSpec, l layout.Layout) []Diagnostic {
	length := float64(spec.LengthMM)
	var diags []Diagnostic

	for _, b := range l.BoltHoles {
		if !b.Active {
			continue
		}
		if b.Position <= 35 || b.Position >= length-35 {
			continue
		}
		if b.Position < mfgrules.MinClearance || b.Position > length-mfgrules.MinClearance {
			diags = append(diags, Diagnostic{
				Rule: "edge_clearance", Severity: Error, Position: b.Position,
				Message: fmt.Sprintf("bolt hole at %.1f is within %.1f mm of an end", b.Position, mfgrules.MinClearance),
			})
		}
	}

	for _, w := range l.WebTabs {
		if !w.Active {
			continue
		}
		if w.Position < mfgrules.WebTabClearance || w.Position > length-mfgrules.WebTabClearance {
			diags = append(diags, Diagnostic{
				Rule: "edge_clearance", Severity: Error, Position: w.Position,
				Message: fmt.Sprintf("web tab at %.1f is within %.1f mm of an end", w.Position, mfgrules.WebTabClearance),
			})
		}
	}

	for _, s := range l.ServiceHoles {
		if !s.Active {
			continue
		}
		r := s.Kind.Radius()
		if s.Position < r || s.Position > length-r {
			diags = append(diags, Diagnostic{
				Rule: "edge_clearance", Severity: Error, Position: s.Position,
				Message: fmt.Sprintf("%s at %.1f is within %.1f mm of an end", s.Kind.StationName(), s.Position, r),
			})
		}
	}

	return byPosition(diags)
}

// webTabServiceDistance returns the minimum required centre distance
// between a web tab and a service hole of the given kind.
func webTabServiceDistance(k punch.Kind) float64 {
	switch k {
	case punch.MServiceHole:
		return 145.0
	case punch.LargeServiceHole:
		return 245.0
	case punch.SmallServiceHole:
		return 102.5
	default:
		return mfgrules.WebTabClearance + k.Radius() + mfgrules.WebTabClearance
	}
}

// Rule 2 (web-tab x service-hole distance): a web tab and a service
// hole must keep the kind-specific minimum centre distance.
func ruleWebTabServiceHoleDistance(l layout.Layout) []Diagnostic {
	var diags []Diagnostic
	for _, tab := range l.WebTabs {
		if !tab.Active {
			continue
		}
		for _, hole := range l.ServiceHoles {
			if !hole.Active {
				continue
			}
			dist := abs(tab.Position - hole.Position)
			required := webTabServiceDistance(hole.Kind)
			if dist < required {
				diags = append(diags, Diagnostic{
					Rule: "web_tab_service_hole_distance", Severity: Warning, Position: tab.Position,
					Message: fmt.Sprintf("web tab at %.1f is %.1f mm from %s at %.1f (need %.1f)",
						tab.Position, dist, hole.Kind.StationName(), hole.Position, required),
				})
			}
		}
	}
	return byPosition(diags)
}

// Rule 3 (stub x service-hole distance): a stub/corner-bracket and a
// service hole must keep at least ServiceClearance between centres.
func ruleStubServiceHoleDistance(l layout.Layout) []Diagnostic {
	var diags []Diagnostic
	for _, s := range l.Stubs {
		if !s.Active {
			continue
		}
		for _, hole := range l.ServiceHoles {
			if !hole.Active {
				continue
			}
			dist := abs(s.Position - hole.Position)
			if dist < mfgrules.ServiceClearance {
				diags = append(diags, Diagnostic{
					Rule: "stub_service_hole_distance", Severity: Warning, Position: s.Position,
					Message: fmt.Sprintf("%s at %.1f is %.1f mm from %s at %.1f (need %.1f)",
						s.Kind.StationName(), s.Position, dist, hole.Kind.StationName(), hole.Position, mfgrules.ServiceClearance),
				})
			}
		}
	}
	return byPosition(diags)
}

// Rule 4 (bolt-over-web-tab alignment, bearer only): every web tab
// must have an interior bolt within PositionTolerance of its paired
// ±29.5mm offset.
func ruleBoltOverWebTabAlignment(spec profile.ProfileSpec, l layout.Layout) []Diagnostic {
	if !spec.Variant.IsBearer() {
		return nil
	}
	length := float64(spec.LengthMM)

	tabs := append([]punch.Punch(nil), l.WebTabs...)
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Position < tabs[j].Position })

	var diags []Diagnostic
	for _, w := range tabs {
		if !w.Active {
			continue
		}
		for _, offset := range mfgrules.BoltOffsetPattern {
			want := w.Position + offset
			if want <= mfgrules.MinClearance || want >= length-mfgrules.MinClearance {
				continue
			}

			found := false
			for _, b := range l.BoltHoles {
				if !b.Active {
					continue
				}
				if b.Position <= mfgrules.MinClearance || b.Position >= length-mfgrules.MinClearance {
					continue
				}
				if abs(b.Position-want) <= mfgrules.PositionTolerance {
					found = true
					break
				}
			}
			if !found {
				diags = append(diags, Diagnostic{
					Rule: "bolt_over_web_tab_alignment", Severity: Warning, Position: w.Position,
					Message: fmt.Sprintf("web tab at %.1f has no paired bolt near %.1f", w.Position, want),
				})
			}
		}
	}
	return byPosition(diags)
}

// Rule 5 (flange conflict): every dimple/bolt pair on the flange plane
// must keep at least their radius sum plus 5mm between centres.
func ruleFlangeConflict(l layout.Layout) []Diagnostic {
	var flange []punch.Punch
	for _, b := range l.BoltHoles {
		if b.Active {
			flange = append(flange, b)
		}
	}
	for _, d := range l.Dimples {
		if d.Active {
			flange = append(flange, d)
		}
	}
	sort.SliceStable(flange, func(i, j int) bool { return flange[i].Position < flange[j].Position })

	var diags []Diagnostic
	for i := 0; i < len(flange); i++ {
		for j := i + 1; j < len(flange); j++ {
			a, b := flange[i], flange[j]
			dist := abs(a.Position - b.Position)
			required := a.Kind.Radius() + b.Kind.Radius() + 5
			if dist < required {
				diags = append(diags, Diagnostic{
					Rule: "flange_conflict", Severity: Warning, Position: a.Position,
					Message: fmt.Sprintf("%s at %.1f is %.1f mm from %s at %.1f (need %.1f)",
						a.Kind.StationName(), a.Position, dist, b.Kind.StationName(), b.Position, required),
				})
			}
		}
	}
	return byPosition(diags)
}

// Rule 6 (dimple grid): bearer dimples must fall on DimpleStartBearer
// + k*DimpleSpacingBearer within 1mm. Joist dimples are checked
// against a legacy 409.5/509.5 grid the generator no longer produces,
// a kept inconsistency (see mfgrules.DimpleSpacingJoistLegacy).
func ruleDimpleGrid(spec profile.ProfileSpec, l layout.Layout) []Diagnostic {
	var diags []Diagnostic
	if spec.Variant.IsBearer() {
		for _, d := range l.Dimples {
			if !d.Active {
				continue
			}
			if !onGrid(d.Position, mfgrules.DimpleStartBearer, mfgrules.DimpleSpacingBearer) {
				diags = append(diags, Diagnostic{
					Rule: "dimple_grid", Severity: Warning, Position: d.Position,
					Message: fmt.Sprintf("dimple at %.1f is off the %.1f + k*%.1f grid", d.Position, mfgrules.DimpleStartBearer, mfgrules.DimpleSpacingBearer),
				})
			}
		}
	} else {
		for _, d := range l.Dimples {
			if !d.Active {
				continue
			}
			if !onGrid(d.Position, mfgrules.DimpleStartJoistLegacy, mfgrules.DimpleSpacingJoistLegacy) {
				diags = append(diags, Diagnostic{
					Rule: "dimple_grid", Severity: Warning, Position: d.Position,
					Message: fmt.Sprintf("dimple at %.1f does not fall on the legacy %.1f + k*%.1f grid", d.Position, mfgrules.DimpleStartJoistLegacy, mfgrules.DimpleSpacingJoistLegacy),
				})
			}
		}
	}
	return byPosition(diags)
}

// onGrid reports whether pos falls within 1mm of start + k*spacing
// for some integer k >= 0; positions more than 1mm before start are
// never on the grid.
func onGrid(pos, start, spacing float64) bool {
	k := int64((pos-start)/spacing + 0.5)
	nearest := start + float64(k)*spacing
	return abs(pos-nearest) <= 1.0
}

// Rule 7 (span limits): for a rated spec, a joist exceeding its span
// limit is an Error; a bearer whose joist length exceeds it is only a
// Warning (the advisor already surfaced the same condition).
func ruleSpanLimitExceeded(spec profile.ProfileSpec) []Diagnostic {
	if spec.KPaRating == nil {
		return nil
	}
	limit, ok := mfgrules.SpanLimits[*spec.KPaRating]
	if !ok {
		return nil
	}

	if spec.Variant.IsJoist() {
		length := float64(spec.LengthMM)
		if length > limit {
			return []Diagnostic{{
				Rule: "span_limit_exceeded", Severity: Error, Position: 0,
				Message: fmt.Sprintf("joist length %.1f mm exceeds the %.1f kPa limit of %.1f mm", length, *spec.KPaRating, limit),
			}}
		}
		return nil
	}

	if spec.JoistLengthMM != nil && float64(*spec.JoistLengthMM) > limit {
		return []Diagnostic{{
			Rule: "span_limit_exceeded", Severity: Warning, Position: 0,
			Message: fmt.Sprintf("joist length %.1f mm exceeds the %.1f kPa limit of %.1f mm", float64(*spec.JoistLengthMM), *spec.KPaRating, limit),
		}}
	}
	return nil
}

// Rule 8 (web-tab spacing): adjacent web tabs must not deviate from
// joist_spacing_mm by more than max(15%, MinSpacingTolerance).
func ruleWebTabSpacing(spec profile.ProfileSpec, l layout.Layout) []Diagnostic {
	tabs := append([]punch.Punch(nil), l.WebTabs...)
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Position < tabs[j].Position })
	if len(tabs) < 2 {
		return nil
	}

	nominal := float64(spec.JoistSpacingMM)
	tolerance := nominal * mfgrules.SpacingTolerancePct
	if tolerance < mfgrules.MinSpacingTolerance {
		tolerance = mfgrules.MinSpacingTolerance
	}

	var diags []Diagnostic
	for i := 1; i < len(tabs); i++ {
		gap := tabs[i].Position - tabs[i-1].Position
		if abs(gap-nominal) > tolerance {
			diags = append(diags, Diagnostic{
				Rule: "web_tab_spacing", Severity: Warning, Position: tabs[i].Position,
				Message: fmt.Sprintf("web tab spacing %.1f mm deviates from nominal %.1f mm by more than %.1f mm", gap, nominal, tolerance),
			})
		}
	}
	return byPosition(diags)
}

// Rule 9 (service-hole spacing): unless screens_enabled, adjacent
// non-corner-bracket service centres must keep ServiceHoleSpacing
// within MinSpacingTolerance.
func ruleServiceHoleSpacing(spec profile.ProfileSpec, l layout.Layout) []Diagnostic {
	if spec.ScreensEnabled {
		return nil
	}

	length := float64(spec.LengthMM)
	var holes []punch.Punch
	for _, s := range l.ServiceHoles {
		if !s.Active {
			continue
		}
		if s.Position <= 150 || s.Position >= length-150 {
			continue
		}
		holes = append(holes, s)
	}
	sort.SliceStable(holes, func(i, j int) bool { return holes[i].Position < holes[j].Position })
	if len(holes) < 2 {
		return nil
	}

	var diags []Diagnostic
	for i := 1; i < len(holes); i++ {
		gap := holes[i].Position - holes[i-1].Position
		if abs(gap-mfgrules.ServiceHoleSpacing) > mfgrules.MinSpacingTolerance {
			diags = append(diags, Diagnostic{
				Rule: "service_hole_spacing", Severity: Warning, Position: holes[i].Position,
				Message: fmt.Sprintf("service hole spacing %.1f mm deviates from nominal %.1f mm by more than %.1f mm", gap, mfgrules.ServiceHoleSpacing, mfgrules.MinSpacingTolerance),
			})
		}
	}
	return byPosition(diags)
}

// Rule 10 (face-plane overlap): every pair of active web-face-plane
// punches must keep at least clearance(a)+clearance(b)+PositionTolerance
// between centres; a gap under 5mm is an Error, otherwise a Warning.
func ruleFacePlaneOverlap(l layout.Layout) []Diagnostic {
	var face []punch.Punch
	for _, p := range l.All() {
		if p.Active && p.Kind.Plane() == punch.WebFacePlane {
			face = append(face, p)
		}
	}
	sort.SliceStable(face, func(i, j int) bool { return face[i].Position < face[j].Position })

	var diags []Diagnostic
	for i := 0; i < len(face); i++ {
		for j := i + 1; j < len(face); j++ {
			a, b := face[i], face[j]
			dist := abs(a.Position - b.Position)
			required := a.Kind.Radius() + b.Kind.Radius() + mfgrules.PositionTolerance
			if dist >= required {
				continue
			}
			severity := Warning
			if dist < 5 {
				severity = Error
			}
			diags = append(diags, Diagnostic{
				Rule: "face_plane_overlap", Severity: severity, Position: a.Position,
				Message: fmt.Sprintf("%s at %.1f overlaps %s at %.1f (%.1f mm apart, need %.1f)",
					a.Kind.StationName(), a.Position, b.Kind.StationName(), b.Position, dist, required),
			})
		}
	}
	return byPosition(diags)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

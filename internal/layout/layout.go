// Package layout implements the core punch-position generator (C3):
// given a validated profile.ProfileSpec, Plan produces the full set of
// longitudinal punch positions across the five ordered lists of a
// Layout. The dispatch lattice (bearer/joist x normal/screens x
// box-mode) mirrors the branching shape of a
// beam.SinglyReinforced.Design / DoublyReinforced.Design pair: each
// branch is a self-contained function over the same derived scalars.
package layout

import (
	"math"
	"sort"

	"github.com/alexiusacademia/ncpunch/internal/mfgrules"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// Layout is the planner's output: five ordered-by-position punch lists
// plus the derived scalars attached to every plan.
type Layout struct {
	BoltHoles    []punch.Punch
	Dimples      []punch.Punch
	WebTabs      []punch.Punch
	ServiceHoles []punch.Punch
	Stubs        []punch.Punch

	EndExclusionMM     float64
	LengthModMM        float64
	OpeningCentresMM   float64
	HoleQty            int
	TabOffsetMM        float64
	FlangeMM           float64
	ThicknessMM        float64
	HoleDiameterMM     float64
	HoleEdgeDistanceMM float64
}

// All returns every punch across all five lists, sorted by position
// ascending. Ties are broken stably in flange-before-web order (bolt
// holes, dimples, then web tabs, service holes, stubs), since each
// list is appended in that order before the stable sort runs. Used by
// the CSV encoder and by clash-detector rules that scan the whole
// layout.
func (l Layout) All() []punch.Punch {
	var out []punch.Punch
	out = append(out, l.BoltHoles...)
	out = append(out, l.Dimples...)
	out = append(out, l.WebTabs...)
	out = append(out, l.ServiceHoles...)
	out = append(out, l.Stubs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

type derived struct {
	holeDiameter   float64
	endExclusion   float64
	lengthMod      float64
	openingCentres float64
	holeQty        int
	flange         float64
	tabOffset      float64
}

func deriveScalars(spec profile.ProfileSpec) derived {
	length := float64(spec.LengthMM)
	holeDiameter := spec.HoleType.Diameter()
	endExclusion := 2 * (holeDiameter/2 + mfgrules.EndExclusionBase)
	lengthMod := length - endExclusion

	holeSpacing := float64(spec.HoleSpacingMM)
	n := 0.0
	if holeSpacing > 0 {
		n = math.Floor(lengthMod / holeSpacing)
	}
	openingCentres := 0.0
	if n > 0 {
		openingCentres = lengthMod / n
	}

	flange := 59.0
	if spec.Variant.IsBearer() {
		flange = 63.0
	}

	return derived{
		holeDiameter:   holeDiameter,
		endExclusion:   endExclusion,
		lengthMod:      lengthMod,
		openingCentres: openingCentres,
		holeQty:        int(n),
		flange:         flange,
		tabOffset:      mfgrules.WebTabClearance,
	}
}

// Plan is the entry point for C3: it validates spec, computes derived
// scalars, dispatches to the variant/screens/box-mode branch, and
// returns a fully sorted, quantised Layout. Clash detection is not run
// here — an invalid layout can exist and must be
// caught by the clash detector.
func Plan(spec profile.ProfileSpec) (Layout, error) {
	if err := spec.Validate(); err != nil {
		return Layout{}, err
	}

	d := deriveScalars(spec)

	var l Layout
	switch {
	case spec.Variant.IsBearer() && !spec.ScreensEnabled && !spec.JoistBox:
		l = bearerNormal(spec, d)
	case spec.Variant.IsBearer() && !spec.ScreensEnabled && spec.JoistBox:
		l = bearerNormalBoxMode(spec, d)
	case spec.Variant.IsBearer() && spec.ScreensEnabled && !spec.JoistBox:
		l = bearerScreens(spec, d)
	case spec.Variant.IsBearer() && spec.ScreensEnabled && spec.JoistBox:
		l = bearerScreensBoxMode(spec, d)
	case spec.Variant.IsJoist() && !spec.ScreensEnabled:
		l = joistNormal(spec, d)
	case spec.Variant.IsJoist() && spec.ScreensEnabled:
		l = joistScreens(spec, d)
	}

	l.EndExclusionMM = d.endExclusion
	l.LengthModMM = d.lengthMod
	l.OpeningCentresMM = d.openingCentres
	l.HoleQty = d.holeQty
	l.TabOffsetMM = d.tabOffset
	l.FlangeMM = d.flange
	l.ThicknessMM = 1.8
	l.HoleDiameterMM = d.holeDiameter
	l.HoleEdgeDistanceMM = d.holeDiameter / 2

	sortLayout(&l)
	return l, nil
}

func sortLayout(l *Layout) {
	byPosition := func(list []punch.Punch) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	}
	byPosition(l.BoltHoles)
	byPosition(l.Dimples)
	byPosition(l.WebTabs)
	byPosition(l.ServiceHoles)
	byPosition(l.Stubs)
}

// appendPunch quantises pos and appends it as an active punch, unless
// it falls outside [0, length] — a Computed-mode
// construction silently drops out-of-range positions.
func appendPunch(list *[]punch.Punch, pos, length float64, kind punch.Kind) {
	pos = punch.RoundHalf(pos)
	if pos < 0 || pos > length {
		return
	}
	*list = append(*list, punch.Punch{Position: pos, Kind: kind, Active: true})
}

func nearExisting(list []punch.Punch, pos, tolerance float64) bool {
	for _, p := range list {
		if math.Abs(p.Position-pos) < tolerance {
			return true
		}
	}
	return false
}

// ResyncBoltsOverWebTabs computes the paired bolt-hole set for a given
// web-tab list and member length, the flanking ±29.5 mm rule used by
// the bearer branches. Exported so the manual override engine can
// resync bearer bolt holes against an operator-edited web-tab list
// without re-deriving a whole layout.
func ResyncBoltsOverWebTabs(webTabs []punch.Punch, length float64) []punch.Punch {
	l := Layout{WebTabs: webTabs}
	pairBoltsOverWebTabs(&l, length)
	return l.BoltHoles
}

// pairBoltsOverWebTabs adds a flanking pair of bolts per web tab, at
// w_i-29.5 and w_i+29.5 (BoltOffsetPattern), skipping any that land
// outside the interior clearance band or duplicate an existing bolt.
func pairBoltsOverWebTabs(l *Layout, length float64) {
	tabs := append([]punch.Punch(nil), l.WebTabs...)
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Position < tabs[j].Position })

	for _, w := range tabs {
		for _, offset := range mfgrules.BoltOffsetPattern {
			pos := punch.RoundHalf(w.Position + offset)
			if pos <= mfgrules.MinClearance || pos >= length-mfgrules.MinClearance {
				continue
			}
			if nearExisting(l.BoltHoles, pos, mfgrules.PositionTolerance) {
				continue
			}
			l.BoltHoles = append(l.BoltHoles, punch.Punch{Position: pos, Kind: punch.BoltHole, Active: true})
		}
	}
}

// symmetricServiceHolePositions generalises the bearer
// formula (n = floor((width - 2*spacing)/spacing)) generalised to an
// arbitrary [lo,hi] interval, used verbatim for the bearer case
// (lo=0, hi=length) and for the joist interior interval.
func symmetricServiceHolePositions(lo, hi, spacing float64) []float64 {
	if spacing <= 0 {
		return nil
	}
	width := hi - lo
	n := math.Floor(width/spacing) - 2
	if n <= 0 {
		return nil
	}
	count := int(n)
	mid := (lo + hi) / 2
	start := mid - float64(count-1)/2*spacing

	positions := make([]float64, count)
	for i := 0; i < count; i++ {
		positions[i] = start + float64(i)*spacing
	}
	return positions
}

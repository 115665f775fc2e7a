package layout

import (
	"github.com/alexiusacademia/ncpunch/internal/mfgrules"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// bearerNormal lays out a bearer in normal mode: end bolts, a 450 mm dimple grid,
// symmetric service holes, a joist-spacing web-tab grid with paired
// bolts, and corner brackets / user stub positions.
func bearerNormal(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)

	if spec.StationEnabled(punch.BoltHole) {
		appendPunch(&l.BoltHoles, mfgrules.EndBoltPosition, length, punch.BoltHole)
		appendPunch(&l.BoltHoles, length-mfgrules.EndBoltPosition, length, punch.BoltHole)
	}

	if spec.StationEnabled(punch.Dimple) {
		for pos := mfgrules.DimpleStartBearer; pos <= length-220.5; pos += mfgrules.DimpleSpacingBearer {
			appendPunch(&l.Dimples, pos, length, punch.Dimple)
		}
	}

	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) {
		kind := spec.HoleType.Kind()
		for _, p := range symmetricServiceHolePositions(0, length, d.openingCentres) {
			appendPunch(&l.ServiceHoles, p, length, kind)
		}
	}

	if spec.StationEnabled(punch.WebTab) {
		js := float64(spec.JoistSpacingMM)
		for pos := js; pos <= length-mfgrules.WebTabClearance; pos += js {
			appendPunch(&l.WebTabs, pos, length, punch.WebTab)
		}
	}

	if spec.StationEnabled(punch.BoltHole) {
		pairBoltsOverWebTabs(&l, length)
	}

	if spec.StubsEnabled && spec.StationEnabled(punch.Service) {
		appendPunch(&l.Stubs, mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		appendPunch(&l.Stubs, length-mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		for _, sp := range spec.StubPositions {
			p := float64(sp)
			if p > 0 && p < length {
				appendPunch(&l.Stubs, p, length, punch.Service)
			}
		}
	}

	return l
}

// bearerNormalBoxMode lays out a bearer in joist-box mode: web tabs and their paired
// bolts are replaced by a pair of Service hits straddling each joist
// position, plus a dimple at the joist itself; end bolts become end
// dimples.
func bearerNormalBoxMode(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)
	js := float64(spec.JoistSpacingMM)

	if spec.StationEnabled(punch.Dimple) {
		appendPunch(&l.Dimples, mfgrules.EndBoltPosition, length, punch.Dimple)
		appendPunch(&l.Dimples, length-mfgrules.EndBoltPosition, length, punch.Dimple)
	}

	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) {
		kind := spec.HoleType.Kind()
		for _, p := range symmetricServiceHolePositions(0, length, d.openingCentres) {
			appendPunch(&l.ServiceHoles, p, length, kind)
		}
	}

	if spec.StationEnabled(punch.Service) {
		for p := js; p <= length-mfgrules.WebTabClearance; p += js {
			appendPunch(&l.Stubs, p-12, length, punch.Service)
			appendPunch(&l.Stubs, p+12, length, punch.Service)
		}
	}

	if spec.StationEnabled(punch.Dimple) {
		for p := js; p <= length-mfgrules.WebTabClearance; p += js {
			if p > mfgrules.MinClearance && p < length-mfgrules.MinClearance {
				appendPunch(&l.Dimples, p, length, punch.Dimple)
			}
		}
	}

	if spec.StubsEnabled && spec.StationEnabled(punch.Service) {
		appendPunch(&l.Stubs, mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		appendPunch(&l.Stubs, length-mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
	}

	return l
}

// screensWebTabPositions returns the {475, 475+js, ..., length-475}
// sequence shared by bearerScreens and bearerScreensBoxMode.
func screensWebTabPositions(length, joistSpacing float64) []float64 {
	positions := []float64{mfgrules.ScreensBearerFirstTab}
	for p := mfgrules.ScreensBearerFirstTab + joistSpacing; p < length-mfgrules.ScreensBearerFirstTab; p += joistSpacing {
		positions = append(positions, p)
	}
	positions = append(positions, length-mfgrules.ScreensBearerFirstTab)
	return positions
}

// bearerScreens lays out a bearer in screens mode: web tabs start at 475 mm instead of
// one joist_spacing, with the same paired-bolt rule as normal mode.
func bearerScreens(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)
	js := float64(spec.JoistSpacingMM)

	if spec.StationEnabled(punch.WebTab) {
		for _, p := range screensWebTabPositions(length, js) {
			appendPunch(&l.WebTabs, p, length, punch.WebTab)
		}
	}

	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) {
		kind := spec.HoleType.Kind()
		for _, p := range symmetricServiceHolePositions(0, length, d.openingCentres) {
			appendPunch(&l.ServiceHoles, p, length, kind)
		}
	}

	if spec.StationEnabled(punch.BoltHole) {
		pairBoltsOverWebTabs(&l, length)
	}

	if spec.StubsEnabled && spec.StationEnabled(punch.Service) {
		appendPunch(&l.Stubs, mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		appendPunch(&l.Stubs, length-mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
	}

	return l
}

// bearerScreensBoxMode lays out a bearer with both screens and joist-box mode active:
// each screens web-tab position becomes a triple Service hit (p-12,
// p, p+12) plus a centred bolt with no offset.
func bearerScreensBoxMode(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)
	js := float64(spec.JoistSpacingMM)
	positions := screensWebTabPositions(length, js)

	if spec.StationEnabled(punch.Service) {
		for _, p := range positions {
			appendPunch(&l.Stubs, p-12, length, punch.Service)
			appendPunch(&l.Stubs, p, length, punch.Service)
			appendPunch(&l.Stubs, p+12, length, punch.Service)
		}
	}

	if spec.StationEnabled(punch.BoltHole) {
		for _, p := range positions {
			appendPunch(&l.BoltHoles, p, length, punch.BoltHole)
		}
	}

	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) {
		kind := spec.HoleType.Kind()
		for _, p := range symmetricServiceHolePositions(0, length, d.openingCentres) {
			appendPunch(&l.ServiceHoles, p, length, kind)
		}
	}

	if spec.StubsEnabled && spec.StationEnabled(punch.Service) {
		appendPunch(&l.Stubs, mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		appendPunch(&l.Stubs, length-mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
	}

	return l
}

package layout

import (
	"math"

	"github.com/alexiusacademia/ncpunch/internal/mfgrules"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// joistNormal lays out a joist in normal mode: end bolts, a paired-offset dimple
// pattern, service holes centred in the interior exclusion band, a
// conflict-avoiding web-tab grid, bolts centred on each tab, and
// corner brackets.
func joistNormal(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)

	if spec.StationEnabled(punch.BoltHole) {
		appendPunch(&l.BoltHoles, mfgrules.EndBoltPosition, length, punch.BoltHole)
		appendPunch(&l.BoltHoles, length-mfgrules.EndBoltPosition, length, punch.BoltHole)
	}

	if spec.StationEnabled(punch.Dimple) {
		placeJoistDimples(&l, length)
	}

	var serviceHolePositions []float64
	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) {
		kind := spec.HoleType.Kind()
		lo, hi := d.endExclusion/2, length-d.endExclusion/2
		serviceHolePositions = symmetricServiceHolePositions(lo, hi, d.openingCentres)
		for _, p := range serviceHolePositions {
			appendPunch(&l.ServiceHoles, p, length, kind)
		}
	}

	var webTabPositions []float64
	if spec.StationEnabled(punch.WebTab) {
		webTabPositions = placeJoistWebTabs(serviceHolePositions)
		for _, p := range webTabPositions {
			appendPunch(&l.WebTabs, p, length, punch.WebTab)
		}
	}

	if spec.StationEnabled(punch.BoltHole) {
		for _, w := range webTabPositions {
			pos := punch.RoundHalf(w)
			if nearExisting(l.BoltHoles, pos, mfgrules.MinClearance) {
				continue
			}
			appendPunch(&l.BoltHoles, pos, length, punch.BoltHole)
		}
	}

	if spec.StationEnabled(punch.CornerBrackets) {
		appendPunch(&l.Stubs, mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
		appendPunch(&l.Stubs, length-mfgrules.CornerBracketPosition, length, punch.CornerBrackets)
	}

	return l
}

// placeJoistDimples emits the {75, 600-75, 600+75, 1200-75, ...,
// length-75} paired-offset grid.
func placeJoistDimples(l *Layout, length float64) {
	appendPunch(&l.Dimples, mfgrules.DimpleOffsetJoist, length, punch.Dimple)

	for base := mfgrules.DimpleBaseIntervalJoist; base < length-mfgrules.DimpleOffsetJoist; base += mfgrules.DimpleBaseIntervalJoist {
		appendPunch(&l.Dimples, base-mfgrules.DimpleOffsetJoist, length, punch.Dimple)
		if base+mfgrules.DimpleOffsetJoist < length-mfgrules.DimpleOffsetJoist {
			appendPunch(&l.Dimples, base+mfgrules.DimpleOffsetJoist, length, punch.Dimple)
		}
	}

	appendPunch(&l.Dimples, length-mfgrules.DimpleOffsetJoist, length, punch.Dimple)
}

// webTabServiceClearance is the minimum centre-to-centre distance a
// web tab must keep from any service-hole centre: 100 mm hole radius +
// 20 mm half-tab-width + 30 mm safety margin.
const webTabServiceClearance = 150.0

// placeJoistWebTabs spaces web tabs evenly between the first and last
// service hole, then resolves each ideal position against the 150 mm
// service-hole clearance: centre between adjacent holes if within
// 650 mm of the ideal, else shift 150 mm off the nearest conflicting
// hole, else drop the slot.
func placeJoistWebTabs(serviceHoles []float64) []float64 {
	if len(serviceHoles) < 2 {
		return nil
	}
	first := serviceHoles[0]
	last := serviceHoles[len(serviceHoles)-1]
	span := last - first

	const maxSpacing = 2400 + mfgrules.MinSpacingTolerance
	tabCount := int(math.Ceil(span / maxSpacing))
	if tabCount < 1 {
		tabCount = 1
	}

	var positions []float64
	for _, ideal := range evenlySpaced(first, last, tabCount) {
		if pos, ok := resolveWebTabPosition(ideal, serviceHoles); ok {
			positions = append(positions, pos)
		}
	}
	return positions
}

// evenlySpaced returns n points strictly between lo and hi, evenly spaced.
func evenlySpaced(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := (hi - lo) / float64(n+1)
	pts := make([]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = lo + step*float64(i+1)
	}
	return pts
}

func resolveWebTabPosition(ideal float64, serviceHoles []float64) (float64, bool) {
	if clearanceOK(ideal, serviceHoles) {
		return ideal, true
	}

	for i := 0; i+1 < len(serviceHoles); i++ {
		mid := (serviceHoles[i] + serviceHoles[i+1]) / 2
		if math.Abs(mid-ideal) <= 650 && clearanceOK(mid, serviceHoles) {
			return mid, true
		}
	}

	conflict := nearestHole(ideal, serviceHoles)
	for _, shift := range []float64{-150, 150} {
		candidate := conflict + shift
		if clearanceOK(candidate, serviceHoles) {
			return candidate, true
		}
	}

	return 0, false
}

func clearanceOK(pos float64, serviceHoles []float64) bool {
	for _, s := range serviceHoles {
		if math.Abs(pos-s) < webTabServiceClearance {
			return false
		}
	}
	return true
}

func nearestHole(pos float64, serviceHoles []float64) float64 {
	best := serviceHoles[0]
	bestDist := math.Abs(pos - best)
	for _, s := range serviceHoles[1:] {
		if dist := math.Abs(pos - s); dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best
}

// joistScreens lays out a joist in screens mode: web tabs at 425 mm + k*delta where
// delta evenly divides the interior span, service holes at 650 mm
// spacing between consecutive tabs, and a bolt centred on every tab.
func joistScreens(spec profile.ProfileSpec, d derived) Layout {
	var l Layout
	length := float64(spec.LengthMM)

	var webTabPositions []float64
	if spec.StationEnabled(punch.WebTab) {
		span := length - 2*mfgrules.ScreensJoistFirstTab
		count := math.Ceil(span / mfgrules.ScreensMaxTabSpacing)
		if count < 1 {
			count = 1
		}
		delta := span / count

		for p := mfgrules.ScreensJoistFirstTab; p <= length-mfgrules.ScreensJoistFirstTab+1e-6; p += delta {
			webTabPositions = append(webTabPositions, p)
		}
		for _, p := range webTabPositions {
			appendPunch(&l.WebTabs, p, length, punch.WebTab)
		}
	}

	if spec.HoleType != profile.HoleNone && spec.StationEnabled(spec.HoleType.Kind()) && len(webTabPositions) >= 2 {
		kind := spec.HoleType.Kind()
		for i := 0; i+1 < len(webTabPositions); i++ {
			a, b := webTabPositions[i], webTabPositions[i+1]
			for p := a + mfgrules.ServiceHoleSpacing; p < b; p += mfgrules.ServiceHoleSpacing {
				appendPunch(&l.ServiceHoles, p, length, kind)
			}
		}
	}

	if spec.StationEnabled(punch.BoltHole) {
		for _, p := range webTabPositions {
			appendPunch(&l.BoltHoles, p, length, punch.BoltHole)
		}
	}

	return l
}

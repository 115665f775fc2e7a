// Package mfgrules is the immutable catalogue of manufacturing constants
// the layout planner, clash detector and span-table advisor are built
// against: clearance distances, spacing rules and the joist/bearer span
// limit table. Values here must be reproduced bit-identically; they have
// visible consequences on the shop floor.
package mfgrules

// Edge exclusion and clearance constants (mm).
const (
	EndExclusionBase     = 300.0
	MinClearance         = 50.0
	WebTabClearance      = 22.5
	ServiceClearance     = 250.0
	PositionTolerance    = 10.0
	SpacingTolerancePct  = 0.15
	MinSpacingTolerance  = 100.0
)

// Canonical punch positions (mm).
const (
	EndBoltPosition        = 30.0
	CornerBracketPosition  = 131.0
	FirstStubPosition      = 331.0
	ScreensBearerFirstTab  = 475.0
	ScreensJoistFirstTab   = 425.0
	ScreensMaxTabSpacing   = 1200.0
)

// BoltOffsetPattern holds the ±29.5 mm bolt offsets around a web tab;
// both offsets are applied to every tab, giving a flanking bolt pair.
var BoltOffsetPattern = [2]float64{-29.5, 29.5}

// Dimple grid constants (mm).
const (
	DimpleSpacingBearer     = 450.0
	DimpleStartBearer       = 479.5
	DimpleBaseIntervalJoist = 600.0
	DimpleOffsetJoist       = 75.0

	// Legacy constants the clash detector still validates joist dimples
	// against, even though the generator moved to the 600 mm paired-offset
	// pattern. Kept deliberately stale — see DESIGN.md.
	DimpleSpacingJoistLegacy = 409.5
	DimpleStartJoistLegacy   = 509.5
)

const ServiceHoleSpacing = 650.0

// SpanLimits is the maximum span (mm) permitted for a kPa rating before
// the advisor/clash detector flag it as exceeded.
var SpanLimits = map[float64]float64{
	2.5: 11750,
	5.0: 9300,
}

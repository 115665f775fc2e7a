// Package punch defines the closed set of NC punch kinds the layout
// planner emits, their manufacturing geometry, and the plane (flange or
// web face) each one lives on.
package punch

import "fmt"

// Kind is a punch class. The set is closed; every member has a fixed
// hit code and nominal geometry in Spec.
type Kind int

const (
	BoltHole Kind = iota
	Dimple
	WebTab
	Service
	SmallServiceHole
	MServiceHole
	LargeServiceHole
	CornerBrackets
)

// Plane is the structural face a punch lies on. Punches on different
// planes never geometrically clash with one another.
type Plane int

const (
	FlangePlane Plane = iota
	WebFacePlane
)

// Shape describes the cut geometry. Within this module it only decides
// how Radius measures a punch (diameter for round, width otherwise).
type Shape int

const (
	Square Shape = iota
	Round
	Rectangular
	Oval
)

// Geometry holds the nominal manufacturing geometry for a Kind.
type Geometry struct {
	HitCode  string
	Shape    Shape
	Width    float64 // mm, 0 if round
	Height   float64 // mm, 0 if round
	Diameter float64 // mm, 0 if rectangular/square/oval
}

// Spec is the total mapping Kind -> Geometry.
var Spec = map[Kind]Geometry{
	BoltHole:         {HitCode: ".1", Shape: Square, Width: 11, Height: 11},
	Dimple:           {HitCode: ".2", Shape: Round, Diameter: 5},
	WebTab:           {HitCode: ".3", Shape: Rectangular, Width: 45, Height: 70},
	Service:          {HitCode: ".4", Shape: Rectangular, Width: 115, Height: 300},
	SmallServiceHole: {HitCode: ".5", Shape: Round, Diameter: 115},
	MServiceHole:     {HitCode: ".6", Shape: Round, Diameter: 200},
	LargeServiceHole: {HitCode: ".7", Shape: Oval, Width: 400, Height: 200},
	CornerBrackets:   {HitCode: ".4", Shape: Rectangular, Width: 115, Height: 300},
}

// stationNames is used by the CSV encoder; CornerBrackets aliases to
// SERVICE on emit.
var stationNames = map[Kind]string{
	BoltHole:         "BOLT HOLE",
	Dimple:           "DIMPLE",
	WebTab:           "WEB TAB",
	Service:          "SERVICE",
	SmallServiceHole: "SMALL SERVICE HOLE",
	MServiceHole:     "M SERVICE HOLE",
	LargeServiceHole: "LARGE SERVICE HOLE",
	CornerBrackets:   "SERVICE",
}

// StationName returns the upper-case station string the press brake
// expects for this Kind.
func (k Kind) StationName() string {
	if name, ok := stationNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// planes assigns each Kind to its structural face.
var planes = map[Kind]Plane{
	BoltHole:         FlangePlane,
	Dimple:           FlangePlane,
	WebTab:           WebFacePlane,
	Service:          WebFacePlane,
	SmallServiceHole: WebFacePlane,
	MServiceHole:     WebFacePlane,
	LargeServiceHole: WebFacePlane,
	CornerBrackets:   WebFacePlane,
}

// Plane returns the structural face this Kind is cut on. Total over Kind.
func (k Kind) Plane() Plane {
	return planes[k]
}

// Radius returns the clearance distance used by edge/face clash
// checks: half the nominal diameter for round shapes, half the
// nominal width for rectangular, square and oval shapes. LargeServiceHole
// is Oval, so its clearance is half its 400mm width (200mm), not half
// its 200mm height.
func (k Kind) Radius() float64 {
	g, ok := Spec[k]
	if !ok {
		return 0
	}
	if g.Shape == Round {
		return g.Diameter / 2
	}
	return g.Width / 2
}

// Punch is a single emitted position along the member.
type Punch struct {
	Position float64 // mm, half-millimetre quantised
	Kind     Kind
	Active   bool
}

// RoundHalf quantises x to the nearest half-millimetre: round(2x)/2.
func RoundHalf(x float64) float64 {
	return roundAwayFromZero(x*2) / 2
}

func roundAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

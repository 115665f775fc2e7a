// Package advisor implements the span-table lookup: a pure function
// mapping (length, kPa rating) to a recommended profile variant and
// joist spacing. Encoded as an ordered data table plus a linear-scan
// interpreter, mirroring the NSCP reinforcement-ratio tables' shape but
// as literal step data rather than a formula.
package advisor

import "github.com/alexiusacademia/ncpunch/internal/profile"

// row is one entry in the ordered span table. Rows are evaluated
// top-to-bottom; the first row whose maxLengthMM bound is met wins. This
// ordering is part of the contract: it is not sorted by
// maxLengthMM, and the non-monotonic splice between the Single and Box
// sub-tables is deliberate.
type row struct {
	maxLengthMM  float64
	variant      profile.Variant
	joistSpacing int
}

var table25kPa = []row{
	{6800, profile.JoistSingle, 600},
	{7600, profile.JoistSingle, 500},
	{8600, profile.JoistSingle, 400},
	{9550, profile.JoistSingle, 300},
	{9100, profile.JoistBox, 600},
	{9750, profile.JoistBox, 500},
	{10600, profile.JoistBox, 400},
	{11750, profile.JoistBox, 300},
}

var table50kPa = []row{
	{4500, profile.JoistSingle, 600},
	{5100, profile.JoistSingle, 500},
	{5850, profile.JoistSingle, 400},
	{7000, profile.JoistSingle, 300},
	{7700, profile.JoistBox, 500},
	{8350, profile.JoistBox, 400},
	{9300, profile.JoistBox, 300},
}

// Advice is the span-table recommendation.
type Advice struct {
	Variant      profile.Variant // JoistSingle or JoistBox
	JoistSpacing int             // mm
	ExceedsLimit bool
}

// Advise evaluates the span table for lengthMM at the given kPa rating.
// Bearers use the same table with joist_length_mm as the length
// argument; callers ignore the returned Variant and apply only
// JoistSpacing.
func Advise(lengthMM float64, kpa float64) Advice {
	table := table25kPa
	fallbackSpacing := 300
	if kpa == 5.0 {
		table = table50kPa
	}

	for _, r := range table {
		if lengthMM <= r.maxLengthMM {
			return Advice{Variant: r.variant, JoistSpacing: r.joistSpacing}
		}
	}

	return Advice{Variant: profile.JoistBox, JoistSpacing: fallbackSpacing, ExceedsLimit: true}
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/spf13/pflag"
)

// specFlags holds the profile.ProfileSpec fields every planning
// subcommand (plan, clash, csv) accepts, bound directly to cobra
// flags the way a beam-design command binds dimension flags.
type specFlags struct {
	variant        string
	lengthMM       int
	heightMM       int
	joistSpacingMM int
	stubSpacingMM  int
	holeType       string
	holeSpacingMM  int
	screensEnabled bool
	joistBox       bool
	stubsEnabled   bool
	kpaRating      float64
}

func (f *specFlags) toProfileSpec() (profile.ProfileSpec, error) {
	variant, ok := variantFromFlag(f.variant)
	if !ok {
		return profile.ProfileSpec{}, fmt.Errorf("unknown variant %q (want joist-single, joist-box, bearer-single, or bearer-box)", f.variant)
	}

	spec := profile.NewProfileSpec(variant)
	spec.LengthMM = f.lengthMM
	if f.heightMM != 0 {
		spec.ProfileHeightMM = f.heightMM
	}
	if f.joistSpacingMM != 0 {
		spec.JoistSpacingMM = f.joistSpacingMM
	}
	if f.stubSpacingMM != 0 {
		spec.StubSpacingMM = f.stubSpacingMM
	}
	if f.holeType != "" {
		holeType, ok := holeTypeFromFlag(f.holeType)
		if !ok {
			return profile.ProfileSpec{}, fmt.Errorf("unknown hole type %q (want none, r50, r115, r200, or oval)", f.holeType)
		}
		spec.HoleType = holeType
	}
	if f.holeSpacingMM != 0 {
		spec.HoleSpacingMM = f.holeSpacingMM
	}
	spec.ScreensEnabled = f.screensEnabled
	spec.JoistBox = f.joistBox
	spec.StubsEnabled = f.stubsEnabled
	if f.kpaRating != 0 {
		spec.KPaRating = &f.kpaRating
	}

	if err := spec.Validate(); err != nil {
		return profile.ProfileSpec{}, err
	}
	return spec, nil
}

func (f *specFlags) addTo(flags *pflag.FlagSet) {
	flags.StringVarP(&f.variant, "variant", "V", "joist-single", "Profile variant: joist-single, joist-box, bearer-single, bearer-box")
	flags.IntVarP(&f.lengthMM, "length", "l", 5200, "Member length (mm)")
	flags.IntVar(&f.heightMM, "height", 0, "Profile height (mm): 200, 250, 300, or 350")
	flags.IntVar(&f.joistSpacingMM, "joist-spacing", 0, "Joist spacing (mm), bearer layouts only")
	flags.IntVar(&f.stubSpacingMM, "stub-spacing", 0, "Stub spacing (mm), bearer layouts only")
	flags.StringVar(&f.holeType, "hole-type", "none", "Service hole type: none, r50, r115, r200, oval")
	flags.IntVar(&f.holeSpacingMM, "hole-spacing", 0, "Service hole spacing (mm)")
	flags.BoolVar(&f.screensEnabled, "screens", false, "Enable screens mode")
	flags.BoolVar(&f.joistBox, "joist-box", false, "Enable joist-box mode (bearer only)")
	flags.BoolVar(&f.stubsEnabled, "stubs", false, "Enable corner brackets / stub positions (bearer only)")
	flags.Float64Var(&f.kpaRating, "kpa", 0, "kPa rating for span-limit checking: 2.5 or 5.0")
}

func variantFromFlag(s string) (profile.Variant, bool) {
	switch s {
	case "joist-single":
		return profile.JoistSingle, true
	case "joist-box":
		return profile.JoistBox, true
	case "bearer-single":
		return profile.BearerSingle, true
	case "bearer-box":
		return profile.BearerBox, true
	default:
		return 0, false
	}
}

func holeTypeFromFlag(s string) (profile.HoleType, bool) {
	switch s {
	case "none":
		return profile.HoleNone, true
	case "r50":
		return profile.HoleR50, true
	case "r115":
		return profile.HoleR115, true
	case "r200":
		return profile.HoleR200, true
	case "oval":
		return profile.HoleOval200x400, true
	default:
		return 0, false
	}
}

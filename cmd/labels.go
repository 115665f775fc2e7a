package cmd

import "github.com/alexiusacademia/ncpunch/internal/profile"

func variantLabel(v profile.Variant) string {
	switch v {
	case profile.JoistSingle:
		return "Joist, single"
	case profile.JoistBox:
		return "Joist, box"
	case profile.BearerSingle:
		return "Bearer, single"
	case profile.BearerBox:
		return "Bearer, box"
	default:
		return "Unknown"
	}
}

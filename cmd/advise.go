package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/ncpunch/internal/advisor"
	"github.com/spf13/cobra"
)

var (
	adviseLengthMM float64
	adviseKPa      float64
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Recommend a profile variant and joist spacing from the span table",
	Long: `Look up the span table for a given span and loading rating and report
the recommended joist variant (single or box) and joist spacing.

Examples:
  ncpunch advise --length 7000 --kpa 2.5
  ncpunch advise --length 8000 --kpa 5.0`,
	Run: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)

	adviseCmd.Flags().Float64VarP(&adviseLengthMM, "length", "l", 0, "Span length (mm) [required]")
	adviseCmd.Flags().Float64VarP(&adviseKPa, "kpa", "k", 2.5, "Loading rating: 2.5 or 5.0")
	adviseCmd.MarkFlagRequired("length")
}

func runAdvise(cmd *cobra.Command, args []string) {
	advice := advisor.Advise(adviseLengthMM, adviseKPa)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SPAN-TABLE ADVISOR")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.1f mm\n", adviseLengthMM)
	fmt.Fprintf(w, "  Loading:\t%.1f kPa\n", adviseKPa)
	w.Flush()
	fmt.Println()

	fmt.Println("RECOMMENDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Variant:\t%s\n", variantLabel(advice.Variant))
	fmt.Fprintf(w, "  Joist spacing:\t%d mm\n", advice.JoistSpacing)
	w.Flush()
	fmt.Println()

	if advice.ExceedsLimit {
		fmt.Println("  WARNING: span exceeds the table's documented bounds; the")
		fmt.Println("  fallback recommendation (box variant, 300 mm spacing) is a")
		fmt.Println("  conservative default, not a verified span table entry.")
		fmt.Println()
	}
}

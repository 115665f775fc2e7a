package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/alexiusacademia/ncpunch/internal/punch"
	"github.com/spf13/cobra"
)

var planFlags specFlags

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the full punch layout for a joist or bearer",
	Long: `Generate the complete set of longitudinal punch positions for a
joist or bearer profile: bolt holes, dimples, web tabs, service holes
and stubs/corner brackets.

Examples:
  ncpunch plan --variant joist-single --length 5200
  ncpunch plan --variant bearer-box --length 6000 --joist-box --screens`,
	Run: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planFlags.addTo(planCmd.Flags())
}

func runPlan(cmd *cobra.Command, args []string) {
	spec, err := planFlags.toProfileSpec()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	l, err := layout.Plan(spec)
	if err != nil {
		fmt.Printf("Error planning layout: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          PUNCH LAYOUT PLAN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Variant:\t%s\n", variantLabel(spec.Variant))
	fmt.Fprintf(w, "  Length:\t%d mm\n", spec.LengthMM)
	fmt.Fprintf(w, "  End exclusion:\t%.1f mm\n", l.EndExclusionMM)
	fmt.Fprintf(w, "  Length (mod):\t%.1f mm\n", l.LengthModMM)
	fmt.Fprintf(w, "  Opening centres:\t%.1f mm\n", l.OpeningCentresMM)
	fmt.Fprintf(w, "  Hole quantity:\t%d\n", l.HoleQty)
	w.Flush()
	fmt.Println()

	printPunchList("BOLT HOLES", l.BoltHoles)
	printPunchList("DIMPLES", l.Dimples)
	printPunchList("WEB TABS", l.WebTabs)
	printPunchList("SERVICE HOLES", l.ServiceHoles)
	printPunchList("STUBS / CORNER BRACKETS", l.Stubs)
}

func printPunchList(title string, punches []punch.Punch) {
	fmt.Printf("%s (%d):\n", title, len(punches))
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(punches) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range punches {
		fmt.Fprintf(tw, "  %.1f mm\t%s\n", p.Position, p.Kind.StationName())
	}
	tw.Flush()
	fmt.Println()
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/ncpunch/internal/clash"
	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/spf13/cobra"
)

var clashFlags specFlags

var clashCmd = &cobra.Command{
	Use:   "clash",
	Short: "Detect clashes in the punch layout for a joist or bearer",
	Long: `Generate the punch layout for a profile and run the full clash
detector over it, reporting every diagnostic in rule order.

Examples:
  ncpunch clash --variant joist-single --length 5200
  ncpunch clash --variant bearer-single --length 7200 --kpa 2.5`,
	Run: runClash,
}

func init() {
	rootCmd.AddCommand(clashCmd)
	clashFlags.addTo(clashCmd.Flags())
}

func runClash(cmd *cobra.Command, args []string) {
	spec, err := clashFlags.toProfileSpec()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	l, err := layout.Plan(spec)
	if err != nil {
		fmt.Printf("Error planning layout: %v\n", err)
		return
	}

	report := clash.DetectClashes(spec, l)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CLASH DETECTION REPORT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(report.Diagnostics) == 0 {
		fmt.Println("  No clashes detected.")
		fmt.Println()
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Severity\tPosition\tRule\tMessage\n")
	fmt.Fprintf(w, "  ────────\t────────\t────\t───────\n")
	for _, d := range report.Diagnostics {
		fmt.Fprintf(w, "  %s\t%.1f mm\t%s\t%s\n", d.Severity, d.Position, d.Rule, d.Message)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  %d error(s), %d warning(s)\n", report.ErrorCount, report.WarningCount)
	fmt.Println()
}

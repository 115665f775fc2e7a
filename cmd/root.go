package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/ncpunch/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ncpunch",
	Short: "NC Punch Program Planner for Roll-Formed Steel Flooring Profiles",
	Long: `ncpunch - NC Punch Program Planner

A CLI tool for planning the longitudinal punch positions of roll-formed
steel joists and bearers used in modular flooring systems.

This tool helps production engineers:
  - Get a recommended profile variant and joist spacing from a span table
  - Generate the full punch layout for a joist or bearer
  - Detect clashes between punches before a layout reaches the press
  - Encode a layout to the CSV wire format the press brake loader reads

All calculations are deterministic: the same profile spec always
produces the same layout.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   ncpunch v%-47s║\n", version.Version)
		fmt.Println("  ║   NC Punch Program Planner                                ║")
		fmt.Printf("  ║   © %s %-53s║\n", version.Year, version.Author)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for planning punch positions on roll-formed steel")
		fmt.Println("  joists and bearers for modular flooring.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Span-table advisor recommending variant and joist spacing")
		fmt.Println("    • Full punch layout generation (bolts, dimples, tabs, holes)")
		fmt.Println("    • Clash detection before a layout reaches the press")
		fmt.Println("    • CSV encoding for the press-brake loader")
		fmt.Println()
		fmt.Println("  Use 'ncpunch --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

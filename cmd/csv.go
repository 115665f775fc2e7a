package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/ncpunch/internal/csvenc"
	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/spf13/cobra"
)

var (
	csvFlags    specFlags
	csvPartCode string
	csvQty      int
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Encode the punch layout for a joist or bearer to the press-brake CSV format",
	Long: `Generate the punch layout for a profile and write it as the
single-line CSV wire record the press-brake loader reads.

Examples:
  ncpunch csv --variant joist-single --length 5200 --part-code J-5200-01 --qty 12`,
	Run: runCSV,
}

func init() {
	rootCmd.AddCommand(csvCmd)
	csvFlags.addTo(csvCmd.Flags())
	csvCmd.Flags().StringVar(&csvPartCode, "part-code", "", "Part code for this run [required]")
	csvCmd.Flags().IntVar(&csvQty, "qty", 1, "Quantity for this run")
	csvCmd.MarkFlagRequired("part-code")
}

func runCSV(cmd *cobra.Command, args []string) {
	spec, err := csvFlags.toProfileSpec()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	l, err := layout.Plan(spec)
	if err != nil {
		fmt.Printf("Error planning layout: %v\n", err)
		return
	}

	meta := csvenc.Meta{
		PartCode: csvPartCode,
		Qty:      csvQty,
		LengthMM: spec.LengthMM,
	}

	fmt.Fprintln(os.Stdout, csvenc.Encode(meta, l))
}
